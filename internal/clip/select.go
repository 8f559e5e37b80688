package clip

import (
	"fmt"
	"log/slog"

	"go.klb.dev/cliphold/internal/config"
	"go.klb.dev/cliphold/internal/display"
)

// Backend constructors, indirected so tests can force construction
// outcomes without a display server or helper binaries present.
var (
	newFork = func(cfg *config.Config) (Provider, error) {
		p, err := NewFork(cfg)
		if err != nil {
			return nil, err
		}
		return p, nil
	}
	newX11Bin = func(cfg *config.Config) (Provider, error) {
		p, err := NewX11Bin(cfg)
		if err != nil {
			return nil, err
		}
		return p, nil
	}
	newWaylandBin = func(cfg *config.Config) (Provider, error) {
		p, err := NewWaylandBin(cfg)
		if err != nil {
			return nil, err
		}
		return p, nil
	}
	newOSC52 = func(_ *config.Config) (Provider, error) {
		p, err := NewOSC52()
		if err != nil {
			return nil, err
		}
		return p, nil
	}
	newNative = func(_ *config.Config) (Provider, error) {
		p, err := NewNative()
		if err != nil {
			return nil, err
		}
		return p, nil
	}
)

// Select constructs the clipboard backend for the detected display server.
//
// Candidates are tried in priority order; within one environment, backends
// whose contents persist past process exit come first. A candidate that
// fails to construct is logged at debug level and skipped. When every
// candidate fails, ErrNoBackend is returned: there is no fallback across
// environments, so a broken Wayland session never silently degrades to
// X11 helpers.
//
// Construction probes PATH and may open a display connection. Call once
// and keep the result for the process lifetime.
func Select(srv display.Server, cfg *config.Config) (Provider, error) {
	var candidates []func(*config.Config) (Provider, error)
	switch srv {
	case display.X11:
		candidates = []func(*config.Config) (Provider, error){newFork, newX11Bin}
	case display.Wayland:
		candidates = []func(*config.Config) (Provider, error){newWaylandBin}
	case display.TTY:
		candidates = []func(*config.Config) (Provider, error){newOSC52}
	case display.MacOS, display.Windows:
		candidates = []func(*config.Config) (Provider, error){newNative}
	}

	for _, build := range candidates {
		p, err := build(cfg)
		if err != nil {
			slog.Debug("clipboard backend unavailable", "display", srv, "err", err)
			continue
		}
		slog.Debug("clipboard backend selected", "display", srv, "backend", p.Name())
		return p, nil
	}
	return nil, fmt.Errorf("%s: %w", srv, ErrNoBackend)
}

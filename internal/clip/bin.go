package clip

import (
	"fmt"
	"os/exec"

	"go.klb.dev/cliphold/internal/config"
)

// helper is one resolved half of a helper pair: the binary identity plus
// the fixed argument list for its direction.
type helper struct {
	bin  string // canonical name, used in error messages
	path string // resolved or configured path; never empty after construction
	args []string
}

// Bin invokes external helper binaries to access the clipboard. The
// helpers fork internally (xclip/xsel) or hand contents to the compositor
// (wl-copy), so contents set through them survive the calling process.
// Which helper serves is resolved exactly once, at construction.
type Bin struct {
	get helper
	set helper
}

// NewX11Bin resolves xclip or xsel, in that order. A configured override
// path wins over PATH lookup and is trusted without probing; with no
// override and neither helper on PATH, construction fails.
func NewX11Bin(cfg *config.Config) (*Bin, error) {
	switch {
	case cfg.XclipPath != "":
		return xclipBin(cfg.XclipPath), nil
	case cfg.XselPath != "":
		return xselBin(cfg.XselPath), nil
	}
	if path, err := exec.LookPath("xclip"); err == nil {
		return xclipBin(path), nil
	}
	if path, err := exec.LookPath("xsel"); err == nil {
		return xselBin(path), nil
	}
	return nil, fmt.Errorf("xclip or xsel: %w", ErrNoBinary)
}

func xclipBin(path string) *Bin {
	return &Bin{
		get: helper{bin: "xclip", path: path, args: []string{"-sel", "clip", "-out"}},
		set: helper{bin: "xclip", path: path, args: []string{"-sel", "clip"}},
	}
}

func xselBin(path string) *Bin {
	return &Bin{
		get: helper{bin: "xsel", path: path, args: []string{"--clipboard", "--output"}},
		set: helper{bin: "xsel", path: path, args: []string{"--clipboard"}},
	}
}

// NewWaylandBin resolves wl-paste and wl-copy from wl-clipboard. The two
// halves are resolved independently so their override paths may differ.
// wl-paste is invoked with --no-newline; the bare invocation appends one
// and breaks round-tripping.
func NewWaylandBin(cfg *config.Config) (*Bin, error) {
	get := helper{bin: "wl-paste", path: cfg.WlPastePath, args: []string{"--no-newline"}}
	set := helper{bin: "wl-copy", path: cfg.WlCopyPath}

	if get.path == "" {
		path, err := exec.LookPath(get.bin)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", get.bin, ErrNoBinary)
		}
		get.path = path
	}
	if set.path == "" {
		path, err := exec.LookPath(set.bin)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", set.bin, ErrNoBinary)
		}
		set.path = path
	}
	return &Bin{get: get, set: set}, nil
}

func (b *Bin) Name() string     { return b.set.bin }
func (b *Bin) Persistent() bool { return true }

func (b *Bin) Get() (string, error) {
	return runGet(b.get.bin, b.get.path, b.get.args...)
}

func (b *Bin) Set(text string) error {
	return runSet(text, b.set.bin, b.set.path, b.set.args...)
}

// WithNativeReader combines this backend with a native reader, pairing the
// cheap read path with the persistent write path. The two sides are not
// kept consistent; see Combined.
func (b *Bin) WithNativeReader() (*Combined, error) {
	r, err := NewNative()
	if err != nil {
		return nil, err
	}
	return Combine(r, b), nil
}

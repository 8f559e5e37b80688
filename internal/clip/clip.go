// Package clip provides a unified interface to the system clipboard across
// display environments. Each backend wraps one persistence strategy:
//
//	native.go   — golang.design/x/clipboard passthrough; on X11 the contents
//	              die with the process
//	bin.go      — xclip/xsel and wl-copy/wl-paste invocation
//	fork.go     — detached re-exec that owns the X11 selection until another
//	              application takes it
//	osc52.go    — OSC 52 escape emission for terminals, write-only
//	combined.go — independent reader and writer behind one Provider
//
// Select constructs the backend best suited to a detected display server.
package clip

import (
	"errors"
	"fmt"
)

// Provider is the interface all clipboard backends satisfy.
type Provider interface {
	// Name returns a human-readable name for the backend.
	Name() string

	// Persistent reports whether contents set through this backend remain
	// available after the calling process exits.
	Persistent() bool

	// Get returns the current clipboard contents as UTF-8 text.
	Get() (string, error)

	// Set replaces the clipboard contents.
	Set(text string) error
}

var (
	// ErrNoBackend is returned by Select when no backend could be
	// constructed for the detected environment. "No usable clipboard" is a
	// different outcome from an operation failing on a selected provider.
	ErrNoBackend = errors.New("no usable clipboard backend")

	// ErrNoBinary means a required helper binary could not be found or
	// started.
	ErrNoBinary = errors.New("clipboard helper binary not found")

	// ErrUnsupported means the backend cannot perform the operation, such
	// as reading through the write-only OSC 52 backend.
	ErrUnsupported = errors.New("operation not supported by this clipboard backend")

	// ErrFork means the detached hold process could not be started.
	ErrFork = errors.New("failed to start detached clipboard hold process")

	// ErrNotUTF8 means a helper produced output that is not valid UTF-8.
	ErrNotUTF8 = errors.New("clipboard contents are not valid UTF-8")
)

// ExitError reports a helper binary that ran but exited non-zero. A
// non-zero exit is always an error, even when output was captured.
type ExitError struct {
	Bin  string
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("%s exited with status %d", e.Bin, e.Code)
}

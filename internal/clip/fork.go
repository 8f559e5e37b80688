package clip

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"go.klb.dev/cliphold/internal/config"
)

// Fork keeps clipboard contents alive past process exit by handing them to
// a detached copy of this program. Go's runtime cannot survive a bare
// fork(), so the process-duplication strategy is re-exec: Set starts
// cfg.HoldArgv in its own session with the text piped to stdin, and the
// child owns the X11 selection until another application takes it
// (see Hold).
//
// The parent returns as soon as the child has started, before the child
// has stored anything. Failures inside the child never reach the parent;
// the child reports them on stderr before exiting.
type Fork struct {
	native *Native
	argv   []string
}

// NewFork returns the fork backend. Construction requires a native
// clipboard connection, which serves the read path.
func NewFork(cfg *config.Config) (*Fork, error) {
	native, err := NewNative()
	if err != nil {
		return nil, err
	}
	return &Fork{native: native, argv: cfg.HoldCommand()}, nil
}

func (*Fork) Name() string     { return "fork" }
func (*Fork) Persistent() bool { return true }

// Get reads through the live native connection; no child is involved.
func (f *Fork) Get() (string, error) { return f.native.Get() }

// Set starts the detached hold process and returns without waiting for it.
func (f *Fork) Set(text string) error {
	cmd := exec.Command(f.argv[0], f.argv[1:]...)
	cmd.Stdin = strings.NewReader(text)
	// The child inherits stderr so its failures stay diagnosable even
	// though they cannot be returned here.
	cmd.Stderr = os.Stderr
	cmd.SysProcAttr = detachAttr()
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("%w: %v", ErrFork, err)
	}
	slog.Debug("detached clipboard hold process started", "pid", cmd.Process.Pid)
	// No Wait: the child must be free to outlive this process.
	_ = cmd.Process.Release()
	return nil
}

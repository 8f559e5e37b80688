// Package config holds the static clipboard configuration. It is resolved
// once at startup and threaded into backend construction; backends never
// read the process environment ad hoc at call time.
package config

import "os"

// HoldCommandName is the hidden CLI sub-command that runs the clipboard
// hold loop in a detached process.
const HoldCommandName = "__hold"

// Helper path defaults can be baked into the binary, in the same way
// Version is:
//
//	go build -ldflags "-X go.klb.dev/cliphold/internal/config.DefaultXclipPath=/opt/bin/xclip"
var (
	DefaultXclipPath   string
	DefaultXselPath    string
	DefaultWlCopyPath  string
	DefaultWlPastePath string
)

// Config carries everything backend construction needs to know.
type Config struct {
	// Explicit helper binary paths. A non-empty path wins over PATH lookup
	// and is trusted as-is: it is not probed at construction, so a bogus
	// path surfaces as an error on first use.
	XclipPath   string
	XselPath    string
	WlCopyPath  string
	WlPastePath string

	// HoldArgv is the command started by the fork backend to keep the
	// clipboard selection alive after this process exits. Empty means
	// re-exec this binary with the hidden hold sub-command.
	HoldArgv []string
}

// New returns a Config carrying the build-time defaults.
func New() *Config {
	return &Config{
		XclipPath:   DefaultXclipPath,
		XselPath:    DefaultXselPath,
		WlCopyPath:  DefaultWlCopyPath,
		WlPastePath: DefaultWlPastePath,
	}
}

// HoldCommand returns the argv for the detached hold process.
func (c *Config) HoldCommand() []string {
	if len(c.HoldArgv) > 0 {
		return c.HoldArgv
	}
	exe, err := os.Executable()
	if err != nil {
		exe = os.Args[0]
	}
	return []string{exe, HoldCommandName}
}

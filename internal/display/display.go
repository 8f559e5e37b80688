// Package display classifies the display or terminal environment driving
// this process. Classification is best effort: it looks at the build target
// and session environment variables, it never talks to a display server.
package display

import (
	"os"
	"runtime"
	"strings"
)

// Server is a display server or terminal session kind.
type Server string

const (
	X11     Server = "x11"
	Wayland Server = "wayland"
	MacOS   Server = "macos"
	Windows Server = "windows"
	TTY     Server = "tty"
)

// Detect returns the active display server.
//
// macOS and Windows are decided by the build target alone. Elsewhere an
// explicit XDG_SESSION_TYPE claim wins; when it is silent or carries an
// unknown value, the presence of WAYLAND_DISPLAY, then DISPLAY, decides.
// The final fallback is X11 — a deliberate guess, not a guarantee, so
// callers must tolerate a wrong answer.
//
// Detection is recomputed on every call; nothing is cached.
func Detect() Server {
	return detect(runtime.GOOS, os.Getenv)
}

func detect(goos string, getenv func(string) string) Server {
	switch goos {
	case "darwin":
		return MacOS
	case "windows":
		return Windows
	}

	// An explicit session-type claim always wins over presence inference.
	switch strings.ToLower(strings.TrimSpace(getenv("XDG_SESSION_TYPE"))) {
	case "wayland":
		return Wayland
	case "x11":
		return X11
	case "tty":
		return TTY
	}

	if getenv("WAYLAND_DISPLAY") != "" {
		return Wayland
	}
	if getenv("DISPLAY") != "" {
		return X11
	}
	return X11
}

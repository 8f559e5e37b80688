package clip

import (
	"errors"
	"fmt"
	"io/fs"
	"os/exec"
	"strings"
	"unicode/utf8"
)

// runGet spawns a helper, captures its stdout and decodes it as UTF-8.
func runGet(bin, path string, args ...string) (string, error) {
	out, err := exec.Command(path, args...).Output()
	if err != nil {
		return "", helperErr(bin, err)
	}
	if !utf8.Valid(out) {
		return "", fmt.Errorf("%s: %w", bin, ErrNotUTF8)
	}
	return string(out), nil
}

// runSet spawns a helper with text piped to stdin, discards its stdout and
// waits for it to exit. No timeout is imposed: a hung helper blocks the
// caller, and callers needing bounded latency must cancel externally.
func runSet(text, bin, path string, args ...string) error {
	cmd := exec.Command(path, args...)
	cmd.Stdin = strings.NewReader(text)
	if err := cmd.Run(); err != nil {
		return helperErr(bin, err)
	}
	return nil
}

// helperErr maps a process failure onto the error taxonomy: a missing
// binary, a non-zero exit and a pipe failure are distinct classes.
func helperErr(bin string, err error) error {
	var exit *exec.ExitError
	switch {
	case errors.Is(err, exec.ErrNotFound), errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%s: %w", bin, ErrNoBinary)
	case errors.As(err, &exit):
		return &ExitError{Bin: bin, Code: exit.ExitCode()}
	default:
		return fmt.Errorf("%s: %w", bin, err)
	}
}

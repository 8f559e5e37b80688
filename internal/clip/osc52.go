package clip

import (
	"fmt"
	"io"
	"os"

	osc52 "github.com/aymanbagabas/go-osc52/v2"

	"go.klb.dev/cliphold/internal/logging"
)

// OSC52 sets the clipboard by emitting an OSC 52 escape sequence on the
// controlling terminal, which makes it work over SSH and on bare TTYs.
// There is no acknowledgement channel: Set succeeding means the bytes were
// written, not that the terminal accepted them. Reading back is impossible
// by construction.
type OSC52 struct {
	out io.Writer
}

// NewOSC52 returns the escape-sequence backend writing to stdout.
// Construction fails when stdout is not a terminal, since only a terminal
// can interpret the sequence.
func NewOSC52() (*OSC52, error) {
	if !logging.IsTTY(os.Stdout) {
		return nil, fmt.Errorf("osc52: stdout is not a terminal: %w", ErrUnsupported)
	}
	return &OSC52{out: os.Stdout}, nil
}

func (*OSC52) Name() string     { return "osc52" }
func (*OSC52) Persistent() bool { return true }

// Get always fails: the escape sequence offers no read channel.
func (*OSC52) Get() (string, error) {
	return "", fmt.Errorf("osc52: %w", ErrUnsupported)
}

// Set writes ESC ] 52 ; c ; <base64> BEL. Base64 framing keeps every byte
// of text, including BEL itself, from terminating the sequence early.
func (o *OSC52) Set(text string) error {
	if _, err := osc52.New(text).WriteTo(o.out); err != nil {
		return fmt.Errorf("osc52: %w", err)
	}
	return nil
}

// WithReader combines this write-only backend with a reader so the result
// serves both directions.
func (o *OSC52) WithReader(r Provider) *Combined {
	return Combine(r, o)
}

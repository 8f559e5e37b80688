package clip

import (
	"fmt"
	"io"

	"golang.design/x/clipboard"
)

// Hold is the child side of the fork backend. It acquires its own
// clipboard connection, stores the text read from r, and blocks until
// another application takes clipboard ownership, then returns so the
// process can exit. It is run from the hidden hold sub-command only.
func Hold(r io.Reader) error {
	text, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("reading contents to hold: %w", err)
	}
	if err := initNative(); err != nil {
		return fmt.Errorf("native clipboard: %w", err)
	}
	// Write hands back a channel that fires once the clipboard has been
	// overwritten by someone else — exactly the lifetime this process has.
	<-clipboard.Write(clipboard.FmtText, text)
	return nil
}

package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"go.klb.dev/cliphold/internal/clip"
	"go.klb.dev/cliphold/internal/config"
	"go.klb.dev/cliphold/internal/logging"
)

// newHoldCmd is the child side of the fork backend. "cliphold copy" on X11
// re-execs this binary with this hidden sub-command, pipes the contents to
// its stdin and detaches; this process then owns the clipboard selection
// until another application takes it. Its failures can never reach the
// parent — by then the parent has returned or exited — so they are logged
// to stderr instead.
func newHoldCmd() *cobra.Command {
	return &cobra.Command{
		Use:    config.HoldCommandName,
		Hidden: true,
		Short:  "Own the clipboard selection until another application takes it",
		Args:   cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			logging.Setup("auto", slog.LevelInfo)
			if err := clip.Hold(os.Stdin); err != nil {
				slog.Error("clipboard hold failed", "err", err)
				os.Exit(1)
			}
		},
	}
}

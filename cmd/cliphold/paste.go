package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.klb.dev/cliphold/internal/clip"
	"go.klb.dev/cliphold/internal/display"
)

func newPasteCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "paste",
		Short: "Print the clipboard to stdout (like pbpaste)",
		Long: `Retrieves the current clipboard contents through the backend selected
for the current display environment and writes them to stdout, verbatim.

In a terminal-only session the selected backend is write-only (OSC 52)
and paste reports an unsupported operation.`,
		Args:    cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE:    func(_ *cobra.Command, _ []string) error { return runPaste(v) },
	}

	addCommonFlags(cmd)
	return cmd
}

func runPaste(v *viper.Viper) error {
	setupLogging(v)

	provider, err := clip.Select(display.Detect(), buildConfig(v))
	if err != nil {
		return err
	}
	text, err := provider.Get()
	if err != nil {
		return fmt.Errorf("paste via %s: %w", provider.Name(), err)
	}
	_, err = os.Stdout.WriteString(text)
	return err
}

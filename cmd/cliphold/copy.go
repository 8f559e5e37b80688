package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.klb.dev/cliphold/internal/clip"
	"go.klb.dev/cliphold/internal/display"
)

func newCopyCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "copy",
		Short: "Copy stdin to the clipboard (like pbcopy)",
		Long: `Reads stdin and stores it on the system clipboard through the backend
selected for the current display environment. Backends are chosen so the
contents stay available after cliphold exits; on X11 a detached hold
process keeps the selection alive until another application takes it.`,
		Args:    cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE:    func(_ *cobra.Command, _ []string) error { return runCopy(v) },
	}

	addCommonFlags(cmd)
	return cmd
}

func runCopy(v *viper.Viper) error {
	setupLogging(v)

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}

	provider, err := clip.Select(display.Detect(), buildConfig(v))
	if err != nil {
		return err
	}
	if err := provider.Set(string(data)); err != nil {
		return fmt.Errorf("copy via %s: %w", provider.Name(), err)
	}
	return nil
}

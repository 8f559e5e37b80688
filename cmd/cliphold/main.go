// cliphold: clipboard access that outlives your process.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via -ldflags "-X main.Version=x.y.z".
var Version = "dev"

func main() {
	root := &cobra.Command{
		Use:   "cliphold",
		Short: "Clipboard access that outlives your process",
		Long: `cliphold reads and writes the system clipboard across X11, Wayland, macOS,
Windows and plain terminal sessions, picking whichever backend keeps the
contents alive after cliphold itself exits.

On X11 that means handing the selection to a detached copy of this binary,
or to xclip/xsel; on Wayland, wl-copy/wl-paste; over SSH or on a bare TTY,
the OSC 52 terminal escape. "cliphold status" shows what was detected and
which backend would serve.

Config file search order (first found wins):
  /etc/cliphold/cliphold.toml
  $HOME/.config/cliphold/cliphold.toml
  path supplied via --config

All flags can be set via CLIPHOLD_<FLAG> env vars or config-file keys.`,
		SilenceUsage: true,
	}

	root.AddCommand(
		newCopyCmd(),
		newPasteCmd(),
		newStatusCmd(),
		newVersionCmd(),
		newHoldCmd(),
	)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("cliphold %s\n", Version)
		},
	}
}

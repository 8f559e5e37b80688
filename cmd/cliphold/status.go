package main

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.klb.dev/cliphold/internal/clip"
	"go.klb.dev/cliphold/internal/config"
	"go.klb.dev/cliphold/internal/display"
)

func newStatusCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the detected environment and selected backend",
		Long: `Shows which display environment was detected, which clipboard backend
selection would hand out, and where each helper binary resolved to.

Useful when copy/paste behaves unexpectedly: a missing helper or a wrong
XDG_SESSION_TYPE shows up here.`,
		Args:    cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE:    func(_ *cobra.Command, _ []string) error { return runStatus(v) },
	}

	addCommonFlags(cmd)
	cmd.Flags().Bool("json", false, "output raw JSON")
	return cmd
}

type helperStatus struct {
	Name string `json:"name"`
	Path string `json:"path,omitempty"`
	Note string `json:"note"`
}

type status struct {
	Display    display.Server `json:"display"`
	Backend    string         `json:"backend,omitempty"`
	Persistent bool           `json:"persistent"`
	Error      string         `json:"error,omitempty"`
	Helpers    []helperStatus `json:"helpers"`
}

func runStatus(v *viper.Viper) error {
	setupLogging(v)
	cfg := buildConfig(v)

	st := status{Display: display.Detect()}
	if provider, err := clip.Select(st.Display, cfg); err != nil {
		st.Error = err.Error()
	} else {
		st.Backend = provider.Name()
		st.Persistent = provider.Persistent()
	}
	st.Helpers = probeHelpers(cfg)

	if v.GetBool("json") {
		enc, _ := json.MarshalIndent(st, "", "  ")
		fmt.Println(string(enc))
		return nil
	}

	printStatus(st)
	return nil
}

// probeHelpers resolves every known helper the way backend construction
// would, reporting overrides as-is and PATH lookups by result.
func probeHelpers(cfg *config.Config) []helperStatus {
	probes := []struct {
		name     string
		override string
	}{
		{"xclip", cfg.XclipPath},
		{"xsel", cfg.XselPath},
		{"wl-copy", cfg.WlCopyPath},
		{"wl-paste", cfg.WlPastePath},
	}

	out := make([]helperStatus, 0, len(probes))
	for _, p := range probes {
		hs := helperStatus{Name: p.name}
		if p.override != "" {
			hs.Path = p.override
			hs.Note = "configured"
		} else if path, err := exec.LookPath(p.name); err == nil {
			hs.Path = path
			hs.Note = "found"
		} else {
			hs.Note = "not found"
		}
		out = append(out, hs)
	}
	return out
}

func printStatus(st status) {
	w := tabwriter.NewWriter(os.Stdout, 1, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Display:\t%s\n", st.Display)
	if st.Error != "" {
		fmt.Fprintf(w, "Backend:\tnone (%s)\n", st.Error)
	} else {
		fmt.Fprintf(w, "Backend:\t%s\n", st.Backend)
		persistence := "contents die with the process"
		if st.Persistent {
			persistence = "contents survive process exit"
		}
		fmt.Fprintf(w, "Persistence:\t%s\n", persistence)
	}
	fmt.Fprintln(w)
	_ = w.Flush()

	tw := tabwriter.NewWriter(os.Stdout, 1, 0, 2, ' ', 0)
	_, _ = fmt.Fprintf(tw, "HELPER\tPATH\tNOTE\n")
	_, _ = fmt.Fprintf(tw, "------\t----\t----\n")
	for _, h := range st.Helpers {
		path := h.Path
		if path == "" {
			path = "-"
		}
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\n", h.Name, path, h.Note)
	}
	_ = tw.Flush()
}

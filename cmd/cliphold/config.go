package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.klb.dev/cliphold/internal/config"
	"go.klb.dev/cliphold/internal/logging"
)

// bindViper wires a command's flags into a viper instance with the standard
// config file search order and CLIPHOLD_* env var prefix.
//
// Precedence (lowest → highest): defaults → config file → CLIPHOLD_* env vars → flags
func bindViper(cmd *cobra.Command, v *viper.Viper) error {
	configFlag, _ := cmd.Flags().GetString("config")
	if configFlag != "" {
		v.SetConfigFile(configFlag)
	} else {
		v.SetConfigName("cliphold")
		v.SetConfigType("toml")
		v.AddConfigPath("/etc/cliphold/")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(fmt.Sprintf("%s/.config/cliphold", home))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("config: %w", err)
		}
	}

	v.SetEnvPrefix("CLIPHOLD")
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("binding flags: %w", err)
	}
	return nil
}

// addCommonFlags adds the flags shared by every clipboard sub-command.
func addCommonFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("config", "", "path to config file (overrides auto-discovery)")
	f.String("log-format", "auto", "log format: auto|text|json")
	f.String("log-level", "warn", "log level: debug|info|warn|error")
	f.String("xclip-path", "", "explicit path to xclip (skips PATH lookup)")
	f.String("xsel-path", "", "explicit path to xsel (skips PATH lookup)")
	f.String("wl-copy-path", "", "explicit path to wl-copy (skips PATH lookup)")
	f.String("wl-paste-path", "", "explicit path to wl-paste (skips PATH lookup)")
}

// setupLogging configures slog from bound flags.
func setupLogging(v *viper.Viper) {
	logging.Setup(v.GetString("log-format"), logging.ParseLevel(v.GetString("log-level")))
}

// buildConfig resolves the static clipboard configuration once per
// invocation: build-time defaults overlaid with config file, env and flag
// values.
func buildConfig(v *viper.Viper) *config.Config {
	cfg := config.New()
	if s := v.GetString("xclip-path"); s != "" {
		cfg.XclipPath = s
	}
	if s := v.GetString("xsel-path"); s != "" {
		cfg.XselPath = s
	}
	if s := v.GetString("wl-copy-path"); s != "" {
		cfg.WlCopyPath = s
	}
	if s := v.GetString("wl-paste-path"); s != "" {
		cfg.WlPastePath = s
	}
	return cfg
}

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const version = "3.0.0"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "koe",
		Short:         "Japanese voice announcements for Claude Code hook events",
		Version:       version,
		Args:          cobra.NoArgs,
		RunE:          runHook,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newInstallCmd(),
		newPauseCmd(),
		newResumeCmd(),
		newToggleCmd(),
		newStatusCmd(),
	)
	return root
}

// runHook is the default mode: read one event descriptor from stdin,
// announce it, exit.
func runHook(cmd *cobra.Command, _ []string) error {
	dir := hookDir()
	cfg := loadConfig(dir)

	raw, err := io.ReadAll(cmd.InOrStdin())
	if err != nil || len(raw) == 0 {
		return fmt.Errorf("%w: empty input", errBadInput)
	}
	event, err := parseEvent(raw)
	if err != nil {
		return err
	}

	debug := newDebugLogger(cfg.Debug)
	defer debug.Sync()

	log, err := openEventLog(dir)
	if err != nil {
		debug.Warn("event log unavailable", zap.Error(err))
	} else {
		defer log.Close()
	}

	out := announce(event, cfg, Backends{
		Speaker: systemSpeaker(),
		Player:  systemPlayer(),
		Log:     log,
		Debug:   debug,
	})
	if cfg.TestMode {
		fmt.Fprintf(cmd.OutOrStdout(), "koe test mode: %s (%s)\n", out.Message, out.Key)
	}
	return nil
}

func newInstallCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "install",
		Short: "Add the announcement variables to your shell profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := loadConfig(hookDir())
			res, err := defaultInstaller(cfg).Install()
			if err != nil {
				return err
			}
			if res.Added {
				fmt.Fprintf(cmd.OutOrStdout(), "koe: added %s and %s to %s\n", modeVar, voiceVar, res.Profile)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "koe: already configured in %s\n", res.Profile)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "koe: mode=%s voice=%s\n", cfg.Mode, cfg.Voice)
			return nil
		},
	}
}

func pausedPath() string {
	return filepath.Join(hookDir(), ".paused")
}

func newPauseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pause",
		Short: "Mute announcements",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := os.MkdirAll(hookDir(), 0755); err != nil {
				return err
			}
			f, err := os.Create(pausedPath())
			if err != nil {
				return err
			}
			f.Close()
			fmt.Fprintln(cmd.OutOrStdout(), "koe: announcements paused")
			return nil
		},
	}
}

func newResumeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resume",
		Short: "Unmute announcements",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			os.Remove(pausedPath())
			fmt.Fprintln(cmd.OutOrStdout(), "koe: announcements resumed")
			return nil
		},
	}
}

func newToggleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle",
		Short: "Toggle mute on/off",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if fileExists(pausedPath()) {
				os.Remove(pausedPath())
				fmt.Fprintln(cmd.OutOrStdout(), "koe: announcements resumed")
				return nil
			}
			if err := os.MkdirAll(hookDir(), 0755); err != nil {
				return err
			}
			f, err := os.Create(pausedPath())
			if err != nil {
				return err
			}
			f.Close()
			fmt.Fprintln(cmd.OutOrStdout(), "koe: announcements paused")
			return nil
		},
	}
}

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the current configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := loadConfig(hookDir())
			state := "active"
			if cfg.Paused {
				state = "paused"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "koe: %s mode=%s voice=%s test=%t\n",
				state, cfg.Mode, cfg.Voice, cfg.TestMode)
			return nil
		},
	}
}

package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/csheth/newsreframer/internal/config"
	"github.com/csheth/newsreframer/internal/logging"
	"github.com/csheth/newsreframer/internal/rewrite"
	"github.com/csheth/newsreframer/internal/tui"
	"github.com/csheth/newsreframer/internal/version"
)

type rootOptions struct {
	configPath  string
	noAltScreen bool
}

// appContext is what every command needs after flags are parsed.
type appContext struct {
	settings   config.Settings
	resolution config.Resolution
	logger     *zap.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "reframer",
		Short: "Explore responsible angles on any news topic",
		Long: `Reframer sends a news topic to the rewrite service and shows five
labeled reframings: a neutral summary, a curiosity headline, a human-interest
angle, an economic lens, and sober bullet points.

Running without a subcommand opens the interactive terminal UI.`,
		Version:       version.String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(cmd, opts, true)
			if err != nil {
				return err
			}
			defer logging.Sync()
			return runTUI(app, opts)
		},
	}
	cmd.CompletionOptions.DisableDefaultCmd = true

	flags := cmd.PersistentFlags()
	flags.String("api-url", "", "rewrite service base URL (overrides REFRAMER_API_URL and the config file)")
	flags.String("log-level", "", "log level: debug, info, warn, error (silent when empty)")
	flags.String("log-file", "", "write logs to this file")
	flags.StringVar(&opts.configPath, "config", "", "path to a YAML config file")
	cmd.Flags().BoolVar(&opts.noAltScreen, "no-alt-screen", false, "disable the alternate screen buffer")

	cmd.AddCommand(newRewriteCmd(opts), newConfigCmd(opts), newVersionCmd())
	return cmd
}

// loadApp reads settings once, walks the base URL chain once, and builds the
// logger. The interactive UI owns the terminal, so it only logs to a file.
func loadApp(cmd *cobra.Command, opts *rootOptions, interactive bool) (*appContext, error) {
	settings, err := config.Load(config.LoadOptions{
		ConfigPath: opts.configPath,
		Flags:      cmd.Flags(),
	})
	if err != nil {
		return nil, err
	}

	var logger *zap.Logger
	if interactive && settings.LogFile == "" {
		logger = zap.NewNop()
		logging.SetLogger(logger)
	} else {
		logger, err = logging.Initialize(logging.Options{Level: settings.LogLevel, OutputPath: settings.LogFile})
		if err != nil {
			return nil, err
		}
	}

	resolution := settings.Resolution()
	logger.Debug("settings loaded",
		zap.String("configured_base", resolution.Base),
		zap.String("source", resolution.Source),
	)
	return &appContext{settings: settings, resolution: resolution, logger: logger}, nil
}

func (a *appContext) client() rewrite.Client {
	return rewrite.New(rewrite.Config{Resolution: a.resolution, Logger: a.logger})
}

func runTUI(app *appContext, opts *rootOptions) error {
	programOpts := []tea.ProgramOption{}
	if !opts.noAltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	program := tea.NewProgram(
		tui.NewHost(tui.HostConfig{Client: app.client(), Logger: app.logger}),
		programOpts...,
	)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("program error: %w", err)
	}
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "reframer %s\n", version.String())
		},
	}
}

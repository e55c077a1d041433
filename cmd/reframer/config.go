package main

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/csheth/newsreframer/internal/config"
)

type configReport struct {
	Settings   config.Settings   `yaml:"settings"`
	Resolution config.Resolution `yaml:"resolution"`
	Endpoint   string            `yaml:"endpoint"`
	ConfigFile string            `yaml:"config_file,omitempty"`
}

func newConfigCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the effective settings and resolved API base URL",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(cmd, opts, false)
			if err != nil {
				return err
			}
			report := configReport{
				Settings:   app.settings,
				Resolution: app.resolution,
				Endpoint:   app.client().BaseURL(),
				ConfigFile: opts.configPath,
			}
			if report.ConfigFile == "" {
				if path, err := config.DefaultConfigPath(); err == nil {
					report.ConfigFile = path
				}
			}
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(report); err != nil {
				return err
			}
			return enc.Close()
		},
	}
}

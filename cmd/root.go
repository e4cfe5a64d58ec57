package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kilianp07/plugkit/app"
	"github.com/kilianp07/plugkit/config"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "plugkit",
	Short: "Pluggable variant registry demos",
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "config.yaml", "configuration file")
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }

func newService() (*app.Service, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return app.New(cfg)
}

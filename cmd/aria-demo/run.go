package main

import (
	"github.com/spf13/cobra"

	"github.com/go-aria/aria/showcase"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Launch the interactive showcase",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return showcase.Run(cfg)
	},
}

func loadConfig() (showcase.Config, error) {
	if flagConfig == "" {
		return showcase.DefaultConfig(), nil
	}
	return showcase.LoadConfig(flagConfig)
}

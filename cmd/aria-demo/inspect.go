package main

import (
	"github.com/spf13/cobra"

	"github.com/go-aria/aria/showcase"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Print the wired ARIA tree for a demo config",
	Long: `inspect builds the demo document, initializes every widget, and
prints the resulting element tree with its ARIA attributes. Useful for
checking what wiring a config produces without launching the UI.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		m := showcase.NewModel(cfg)
		cmd.Print(showcase.DumpTree(m.Document()))
		return nil
	},
}

// Command aria-demo runs the terminal showcase for the widget engine and
// inspects the ARIA tree a demo config produces.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/go-aria/aria/pkg/logging"
)

var (
	flagConfig   string
	flagLogLevel string
)

var rootCmd = &cobra.Command{
	Use:   "aria-demo",
	Short: "Interactive demo of the aria widget engine",
	Long: `aria-demo drives the accordion, disclosure, and tab widgets in a
terminal UI. Key presses become document events and terminal resizes
become viewport changes, so breakpoint-gated widgets activate and
deactivate as you resize the window.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogging(flagLogLevel)
	},
}

func setupLogging(level string) error {
	var l slog.Level
	switch level {
	case "debug":
		l = slog.LevelDebug
	case "info":
		l = slog.LevelInfo
	case "warn":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	case "off":
		return nil
	default:
		return fmt.Errorf("unknown log level %q (debug|info|warn|error|off)", level)
	}
	logging.Init(l, os.Stderr)
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to a YAML demo config (built-in content when omitted)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "off", "engine log level: debug, info, warn, error, or off")
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(inspectCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// Package cli is mreqctl's command tree: one file per subcommand, a
// root command that wires them together, following the teacher's
// rnx/cli layout (one NewXxxCmd per concern, assembled in root.go).
package cli

import (
	"github.com/spf13/cobra"

	"github.com/mreqlib/mreq/api"
	_ "github.com/mreqlib/mreq/examples/sensor"
	"github.com/mreqlib/mreq/pkg/config"
	"github.com/mreqlib/mreq/pkg/logger"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "mreqctl",
	Short: "Inspect and exercise the process-local publish/poll bus",
	Long: `mreqctl is an operator CLI over the in-process mreq bus.

It registers the bus's built-in topic declarations (see the examples
package), runs api.Init, and offers a handful of subcommands to list
topics, watch one for reads, publish to it, or run a short walkthrough.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if level, err := logger.ParseLevel(cfg.LogLevel); err == nil {
			logger.SetLevel(level)
		}
		return api.Init()
	},
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "mreq.yaml",
		"Path to the runtime config file (only log_level is applied)")

	rootCmd.AddCommand(newTopicsCmd())
	rootCmd.AddCommand(newWatchCmd())
	rootCmd.AddCommand(newPublishCmd())
	rootCmd.AddCommand(newDemoCmd())
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

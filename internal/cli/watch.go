package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mreqlib/mreq/api"
	"github.com/mreqlib/mreq/internal/diagnostics"
	"github.com/mreqlib/mreq/pkg/logger"
)

func newWatchCmd() *cobra.Command {
	var (
		topicName string
		interval  time.Duration
		stats     bool
		cron      string
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Poll a topic and print every message read",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, ok := api.Registry().FindByName(topicName)
			if !ok {
				return fmt.Errorf("unknown topic %q", topicName)
			}

			token, err := api.Subscribe(d)
			if err != nil {
				return printClassified(cmd, err)
			}
			defer api.Unsubscribe(d, token)

			var reporter *diagnostics.Reporter
			if stats {
				reporter = diagnostics.NewReporter(api.Registry(), logger.WithField("component", "diagnostics"))
				if err := reporter.Start(cron); err != nil {
					return fmt.Errorf("diagnostics: %w", err)
				}
				defer reporter.Stop()
			}

			ticker := time.NewTicker(interval)
			defer ticker.Stop()

			for range ticker.C {
				for {
					msg, ok := api.Read(d, token)
					if !ok {
						break
					}
					fmt.Fprintf(cmd.OutOrStdout(), "%s: %+v\n", topicName, msg)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&topicName, "topic", "sensor.reading", "Topic name to watch")
	cmd.Flags().DurationVar(&interval, "interval", 200*time.Millisecond, "Poll interval")
	cmd.Flags().BoolVar(&stats, "stats", false, "Enable the periodic diagnostics reporter while watching")
	cmd.Flags().StringVar(&cron, "stats-cron", "@every 30s", "Cron schedule for --stats")
	return cmd
}

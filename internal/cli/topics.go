package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mreqlib/mreq/api"
	"github.com/mreqlib/mreq/internal/bus/registry"
)

func newTopicsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "topics",
		Short: "List registered topics",
		RunE: func(cmd *cobra.Command, args []string) error {
			count := 0
			api.Registry().Iterate(func(d *registry.Descriptor) bool {
				count++
				fmt.Fprintf(cmd.OutOrStdout(), "%-24s message_id=%-20d payload_size=%-6d subscribers=%d\n",
					d.TopicName, d.MessageID, d.PayloadSize, d.Vtable.SubscriberCount())
				return true
			})
			if count == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no topics registered")
			}
			return nil
		},
	}
}

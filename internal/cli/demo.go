package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mreqlib/mreq/api"
	"github.com/mreqlib/mreq/examples/sensor"
)

// newDemoCmd runs the basic publish/read walkthrough: subscribe,
// publish one message, check, read, read again, unsubscribe.
func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the basic subscribe/publish/read walkthrough",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			d := sensor.Descriptor()

			token, err := api.Subscribe(d)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "subscribed: token=%d\n", token)

			reading := sensor.Reading{ID: 42, Temp: 36.5, TS: 123456789}
			sensor.Publish(reading)
			fmt.Fprintf(out, "published: %+v\n", reading)

			fmt.Fprintf(out, "check: %v\n", api.Check(d, token))

			msg, ok := api.Read(d, token)
			fmt.Fprintf(out, "read: %+v ok=%v\n", msg, ok)

			_, ok = api.Read(d, token)
			fmt.Fprintf(out, "read again: ok=%v\n", ok)

			api.Unsubscribe(d, token)
			fmt.Fprintln(out, "unsubscribed")
			return nil
		},
	}
}

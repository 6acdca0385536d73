package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mreqlib/mreq/api"
	"github.com/mreqlib/mreq/examples/sensor"
)

func newPublishCmd() *cobra.Command {
	var (
		id   int32
		temp float32
		ts   uint64
	)

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Publish one sensor.reading message",
		RunE: func(cmd *cobra.Command, args []string) error {
			reading := sensor.Reading{ID: id, Temp: temp, TS: ts}
			if err := api.Publish(sensor.Descriptor(), reading); err != nil {
				return printClassified(cmd, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "published %+v\n", reading)
			return nil
		},
	}

	cmd.Flags().Int32Var(&id, "id", 0, "Sensor ID")
	cmd.Flags().Float32Var(&temp, "temp", 0, "Temperature reading")
	cmd.Flags().Uint64Var(&ts, "ts", 0, "Timestamp")
	return cmd
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mreqlib/mreq/pkg/errors"
)

// printClassified classifies err and, when it is retryable, prints a
// one-line hint to cmd's error stream before returning err unchanged
// so cobra still reports the command as failed.
func printClassified(cmd *cobra.Command, err error) error {
	if err == nil {
		return nil
	}

	classified := errors.ClassifyError(err)
	if classified.Retryable {
		fmt.Fprintf(cmd.ErrOrStderr(), "retry hint: %s is a %s/%s error and may succeed on retry\n",
			classified.Err, classified.Category, classified.Severity)
	}
	return err
}

// Command mreqctl is a small operator CLI over the process-local bus:
// list registered topics, watch one for incoming reads, publish a
// sample message, or run the Scenario-A walkthrough end to end.
package main

import (
	"fmt"
	"os"

	"github.com/mreqlib/mreq/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Command potholes serves and inspects pothole detection records.
package main

import (
	"fmt"
	"os"

	"github.com/couchcryptid/pothole-dashboard/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(cli.GetExitCode(err))
	}
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tripctl",
	Short: "Inspect the TripRoute catalog and live transport data",
	Long: `tripctl exercises the TripRoute data sources from the command line:
the embedded destination catalog, nearby station lookup, and departure
schedules, using the same configuration as the API server.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

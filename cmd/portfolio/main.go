// Command portfolio serves the multi-locale portfolio site and ships the
// maintenance commands around it.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "portfolio",
	Short:         "Multi-locale portfolio site",
	Long:          "Serves a server-rendered CV site in several languages, archives contact messages and validates the embedded content.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "kestrel",
		Short: "A minimal session-aware HTTP server",
		Long: `Kestrel is a minimal HTTP server built straight on TCP.

It parses GET and POST requests itself, dispatches them to registered
handlers by exact path match, tracks per-client state through a session
cookie, and serves static files from local directories or S3.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		serveCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("kestrel %s (commit %s, built %s)\n", version, commit, date)
		},
	}
}

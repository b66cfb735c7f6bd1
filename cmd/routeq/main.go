package main

import (
	"fmt"
	"os"

	"github.com/rohanthewiz/logger"
	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		logger.LogErr(err, "routeq failed")
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "routeq",
		Short: "Query a route table",
		Long: `routeq loads a route file and answers which pattern matches a path.

A route file has one "<pattern> <handler>" pair per line:

  /users/:id          user
  /users/new          new-user
  /files/*path        files`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(
		matchCmd(),
		treeCmd(),
		htmlCmd(),
		versionCmd(),
	)

	return cmd
}

package main

import (
	"github.com/rohanthewiz/routerec/routefile"
	"github.com/spf13/cobra"
)

func treeCmd() *cobra.Command {
	var routesFile string

	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Print the route trie",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			router, err := routefile.LoadRouter(routesFile)
			if err != nil {
				return err
			}
			return router.Dump(cmd.OutOrStdout())
		},
	}

	routesFlag(cmd, &routesFile)
	return cmd
}

package main

import (
	"fmt"

	"github.com/rohanthewiz/routerec/core/rtrview"
	"github.com/rohanthewiz/routerec/routefile"
	"github.com/spf13/cobra"
)

func htmlCmd() *cobra.Command {
	var (
		routesFile string
		title      string
	)

	cmd := &cobra.Command{
		Use:   "html [PATH...]",
		Short: "Render the route table as HTML",
		Long:  `Render the route table, and a match report for any given paths, as an HTML page on stdout.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			router, err := routefile.LoadRouter(routesFile)
			if err != nil {
				return err
			}

			page := rtrview.Page(title, router.ListRoutes(), rtrview.Probes(router, args...))
			_, err = fmt.Fprintln(cmd.OutOrStdout(), page)
			return err
		},
	}

	routesFlag(cmd, &routesFile)
	cmd.Flags().StringVarP(&title, "title", "t", "Route table", "Page title")
	return cmd
}

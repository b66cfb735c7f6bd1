package main

import (
	"fmt"

	"github.com/rohanthewiz/routerec/core/rtrview"
	"github.com/rohanthewiz/routerec/routefile"
	"github.com/spf13/cobra"
)

func matchCmd() *cobra.Command {
	var routesFile string

	cmd := &cobra.Command{
		Use:   "match PATH...",
		Short: "Recognize paths against the route file",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			router, err := routefile.LoadRouter(routesFile)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, probe := range rtrview.Probes(router, args...) {
				if !probe.Matched {
					fmt.Fprintf(out, "%s\tno match\n", probe.Path)
					continue
				}
				fmt.Fprintf(out, "%s\t%s\t%s", probe.Path, probe.Pattern, probe.Handler)
				if len(probe.Params) > 0 {
					fmt.Fprintf(out, "\t%s", rtrview.FormatParams(probe.Params))
				}
				fmt.Fprintln(out)
			}
			return nil
		},
	}

	routesFlag(cmd, &routesFile)
	return cmd
}

func routesFlag(cmd *cobra.Command, target *string) {
	cmd.Flags().StringVarP(target, "routes", "r", "routes.txt", "Route file to load")
}

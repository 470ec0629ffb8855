package main

import (
	"fmt"

	"i3ctiming/profiles"

	"github.com/spf13/cobra"
)

func newProfileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "profile [name]",
		Short: "Compute controller timing for an embedded board profile, or list profiles",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			if len(args) == 0 {
				for _, n := range profiles.Names() {
					fmt.Fprintln(w, n)
				}
				return nil
			}
			p, err := profiles.Load(args[0])
			if err != nil {
				return err
			}
			req, err := p.Request()
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "%-10s %s\n", "profile", p.Name)
			return printController(w, req)
		},
	}
}

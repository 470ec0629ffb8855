package main

import (
	"fmt"

	"i3ctiming/drivers/i3c"

	"github.com/spf13/cobra"
)

func newTargetCmd() *cobra.Command {
	var req i3c.TargetRequest
	cmd := &cobra.Command{
		Use:   "target",
		Short: "Compute target-role timing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := i3c.ComputeTarget(req)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%-10s %d\n", "AVAL", cfg.BusAvailable)
			fmt.Fprintf(w, "%-10s %#08x\n", "TIMINGR1", cfg.Timing1(0))
			return nil
		},
	}
	cmd.Flags().Uint32Var(&req.ClockSourceHz, "clock", 0, "clock source frequency in Hz")
	_ = cmd.MarkFlagRequired("clock")
	return cmd
}

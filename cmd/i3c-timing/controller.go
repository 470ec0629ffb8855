package main

import (
	"i3ctiming/drivers/i3c"

	"github.com/spf13/cobra"
)

func newControllerCmd() *cobra.Command {
	var (
		req i3c.ControllerRequest
		bus string
	)
	cmd := &cobra.Command{
		Use:   "controller",
		Short: "Compute controller-role timing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := i3c.ParseBusMode(bus)
			if err != nil {
				return err
			}
			req.Bus = mode
			return printController(cmd.OutOrStdout(), req)
		},
	}
	f := cmd.Flags()
	f.Uint32Var(&req.ClockSourceHz, "clock", 0, "clock source frequency in Hz")
	f.Uint32Var(&req.I3CFreqHz, "i3c", 12_500_000, "I3C push-pull SCL frequency in Hz")
	f.Uint32Var(&req.I2CFreqHz, "i2c", 0, "I2C SCL frequency in Hz (mixed bus)")
	f.Uint32Var(&req.DutyCycle, "duty", 50, "duty cycle in percent, 0..50")
	f.StringVar(&bus, "bus", "pure", "bus type: pure or mixed")
	_ = cmd.MarkFlagRequired("clock")
	return cmd
}

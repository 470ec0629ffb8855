package main

import "github.com/spf13/cobra"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "i3c-timing",
		Short: "Compute I3C controller and target timing register fields.",
		Long: `i3c-timing derives the SCL, bus-free and bus-available counts of an I3C ` +
			`controller from its clock source and the requested bus frequencies, and ` +
			`prints the resulting TIMINGR0/TIMINGR1 words.`,
		SilenceUsage: true,
	}
	root.AddCommand(newControllerCmd(), newTargetCmd(), newProfileCmd())
	return root
}

package main

import (
	"github.com/sgaunet/dateutil/internal/clock"
	"github.com/spf13/cobra"
)

func newNowCmd(a *app) *cobra.Command {
	var outPattern string

	cmd := &cobra.Command{
		Use:   "now",
		Short: "Print the current local date-time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.printDateTime(cmd, clock.Local(a.clock), outPattern)
		},
	}

	cmd.Flags().StringVarP(&outPattern, "pattern", "p", "", "Output pattern")
	return cmd
}

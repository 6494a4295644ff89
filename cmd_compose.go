package main

import (
	"fmt"

	"cloud.google.com/go/civil"
	"github.com/sgaunet/dateutil/pkg/dateutil"
	"github.com/spf13/cobra"
)

func newSplitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "split DATETIME",
		Short: "Print the date and the time of day of a date-time on two lines",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dt, err := a.readDateTime(args[0])
			if err != nil {
				return err
			}
			d, err := dateutil.Decompose(dt)
			if err != nil {
				return err
			}
			t, err := dateutil.DecomposeTime(dt)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\n%s\n", d, t)
			return err
		},
	}
}

func newJoinCmd(a *app) *cobra.Command {
	var outPattern string

	cmd := &cobra.Command{
		Use:     "join DATE TIME",
		Short:   "Combine an ISO date and time of day into a date-time",
		Example: `  dateutil join 2023-06-15 14:30:00`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := civil.ParseDate(args[0])
			if err != nil {
				return fmt.Errorf("%w: date %q: %w", dateutil.ErrInvalidArgument, args[0], err)
			}
			t, err := civil.ParseTime(args[1])
			if err != nil {
				return fmt.Errorf("%w: time %q: %w", dateutil.ErrInvalidArgument, args[1], err)
			}
			dt, err := dateutil.Compose(d, t)
			if err != nil {
				return err
			}
			return a.printDateTime(cmd, dt, outPattern)
		},
	}

	cmd.Flags().StringVarP(&outPattern, "pattern", "p", "", "Output pattern")
	return cmd
}

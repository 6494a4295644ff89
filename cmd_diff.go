package main

import (
	"fmt"

	"cloud.google.com/go/civil"
	"github.com/sgaunet/dateutil/internal/clock"
	"github.com/sgaunet/dateutil/internal/timeutil"
	"github.com/sgaunet/dateutil/pkg/dateutil"
	"github.com/spf13/cobra"
)

type diffOptions struct {
	unit  string
	human bool
}

func newDiffCmd(a *app) *cobra.Command {
	var opts diffOptions

	cmd := &cobra.Command{
		Use:   "diff START [END]",
		Short: "Print END - START in whole units (END defaults to now)",
		Example: `  dateutil diff "2023-01-01 00:00:00" "2023-06-15 14:30:00" --unit days
  dateutil diff "2023-01-01 00:00:00" --human`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDiff(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.unit, "unit", "u", "", "Unit (days, hours, minutes, seconds), default from configuration")
	cmd.Flags().BoolVarP(&opts.human, "human", "H", false, "Print the exact difference as 1d 2h 3m 4s")
	cmd.MarkFlagsMutuallyExclusive("unit", "human")
	return cmd
}

func (a *app) runDiff(cmd *cobra.Command, args []string, opts diffOptions) error {
	start, err := a.readDateTime(args[0])
	if err != nil {
		return err
	}

	var end civil.DateTime
	if len(args) == 2 {
		if end, err = a.readDateTime(args[1]); err != nil {
			return err
		}
	} else {
		end = clock.Local(a.clock)
		a.log.Debug(fmt.Sprintf("END defaults to now: %s", end))
	}

	if opts.human {
		d, err := dateutil.Between(start, end)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), timeutil.FormatDuration(d))
		return err
	}

	unit, err := a.diffUnit(opts.unit)
	if err != nil {
		return err
	}
	n, err := dateutil.Diff(start, end, unit)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "%d %s\n", n, unit)
	return err
}

func (a *app) diffUnit(flag string) (dateutil.Unit, error) {
	if flag == "" {
		return a.cfg.ResolveUnit()
	}
	return dateutil.ParseUnit(flag)
}

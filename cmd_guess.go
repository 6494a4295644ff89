package main

import (
	"fmt"
	"time"

	"cloud.google.com/go/civil"
	"github.com/araddon/dateparse"
	"github.com/sgaunet/dateutil/pkg/dateutil"
	"github.com/spf13/cobra"
)

func newGuessCmd(a *app) *cobra.Command {
	var outPattern string

	cmd := &cobra.Command{
		Use:   "guess TEXT",
		Short: "Read a date-time in any common layout and print it in the configured pattern",
		Long: `guess detects the layout of TEXT (ISO 8601, RFC 1123, "Jun 15 2023 14:30",
"06/15/2023 14:30", ...) instead of requiring a pattern. Month-first is assumed
for ambiguous numeric dates. A zone or offset in TEXT is dropped and the wall
clock time is kept as written.`,
		Example: `  dateutil guess "2023-06-15T14:30:00Z"
  dateutil guess "Thu, 15 Jun 2023 14:30:00 +0200" --pattern "yyyy-MM-dd HH:mm"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := dateparse.ParseIn(args[0], time.UTC)
			if err != nil {
				return fmt.Errorf("%w: could not guess layout of %q: %w", dateutil.ErrInvalidArgument, args[0], err)
			}
			dt := civil.DateTimeOf(t)
			a.log.Debug(fmt.Sprintf("Guessed %s from %q", dt, args[0]))
			return a.printDateTime(cmd, dt, outPattern)
		},
	}

	cmd.Flags().StringVarP(&outPattern, "pattern", "p", "", "Output pattern")
	return cmd
}

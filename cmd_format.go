package main

import (
	"fmt"

	"cloud.google.com/go/civil"
	"github.com/sgaunet/dateutil/internal/ui"
	"github.com/sgaunet/dateutil/pkg/dateutil"
	"github.com/sgaunet/dateutil/pkg/locale"
	"github.com/spf13/cobra"
)

type formatOptions struct {
	pattern     string
	style       string
	interactive bool
}

func newFormatCmd(a *app) *cobra.Command {
	var opts formatOptions

	cmd := &cobra.Command{
		Use:   "format DATETIME",
		Short: "Format a date-time with a pattern or a locale style",
		Example: `  dateutil format "2023-06-15 14:30:00" --pattern "EEEE d MMMM yyyy"
  dateutil format "2023-06-15 14:30:00" --style long --locale de-DE`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runFormat(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.pattern, "pattern", "p", "", "Output pattern")
	cmd.Flags().StringVarP(&opts.style, "style", "s", "", "Output style (short, medium, long, full)")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "Choose the style interactively")
	cmd.MarkFlagsMutuallyExclusive("pattern", "style", "interactive")
	return cmd
}

func (a *app) runFormat(cmd *cobra.Command, text string, opts formatOptions) error {
	dt, err := a.readDateTime(text)
	if err != nil {
		return err
	}

	var style locale.Style
	switch {
	case opts.style != "":
		if style, err = locale.ParseStyle(opts.style); err != nil {
			return fmt.Errorf("%w: %w", dateutil.ErrInvalidArgument, err)
		}
	case opts.interactive:
		if style, err = a.chooseStyle(dt); err != nil {
			return err
		}
	default:
		return a.printDateTime(cmd, dt, opts.pattern)
	}

	a.log.Debug(fmt.Sprintf("Formatting with style %s", style))
	out, err := dateutil.FormatStyleIn(dt, style, a.loc)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
	return err
}

// chooseStyle prompts for a style, previewing dt in each one.
func (a *app) chooseStyle(dt civil.DateTime) (locale.Style, error) {
	if !a.isTerminal() {
		return 0, errNotTerminal
	}

	styles := locale.Styles()
	options := make([]ui.Option, 0, len(styles))
	for _, s := range styles {
		preview, err := dateutil.FormatStyleIn(dt, s, a.loc)
		if err != nil {
			return 0, err
		}
		options = append(options, ui.Option{Name: s.String(), Preview: preview})
	}

	name, err := a.selector.Select(options, a.cfg.Style)
	if err != nil {
		return 0, err
	}
	return locale.ParseStyle(name)
}

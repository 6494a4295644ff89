package main

import (
	"github.com/sgaunet/dateutil/pkg/dateutil"
	"github.com/spf13/cobra"
)

func newParseCmd(a *app) *cobra.Command {
	var inPattern string

	cmd := &cobra.Command{
		Use:     "parse TEXT",
		Short:   "Parse text strictly and print it in the configured pattern",
		Example: `  dateutil parse "15/06/2023 2:30 PM" --pattern "dd/MM/yyyy h:mm a"`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := a.inputFormatter(inPattern)
			if err != nil {
				return err
			}
			dt, err := dateutil.ParseWith(args[0], f)
			if err != nil {
				return err
			}
			a.log.Debug("Text parsed successfully")
			return a.printDateTime(cmd, dt, "")
		},
	}

	cmd.Flags().StringVarP(&inPattern, "pattern", "p", "", "Pattern of TEXT (default --input-pattern)")
	return cmd
}

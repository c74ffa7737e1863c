package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLogCmd() *cobra.Command {
	return &cobra.Command{
		Use:                "log",
		Short:              "Print commit history starting at HEAD",
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 {
				return incorrectOperands(cmd.OutOrStdout())
			}
			r, err := openRepo()
			if err != nil {
				return report(cmd.OutOrStdout(), err)
			}
			entries, err := r.Log()
			if err != nil {
				return report(cmd.OutOrStdout(), err)
			}
			for _, e := range entries {
				fmt.Fprint(cmd.OutOrStdout(), formatLogEntry(e))
			}
			return nil
		},
	}
}

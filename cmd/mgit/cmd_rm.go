package main

import "github.com/spf13/cobra"

func newRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:                "rm <path>",
		Short:              "Unstage and/or remove a tracked file",
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return incorrectOperands(cmd.OutOrStdout())
			}
			r, err := openRepo()
			if err != nil {
				return report(cmd.OutOrStdout(), err)
			}
			return report(cmd.OutOrStdout(), r.Remove(args[0]))
		},
	}
}

package main

import "github.com/spf13/cobra"

func newResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:                "reset <commit>",
		Short:              "Point the current branch at a given commit",
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return incorrectOperands(cmd.OutOrStdout())
			}
			r, err := openRepo()
			if err != nil {
				return report(cmd.OutOrStdout(), err)
			}
			return report(cmd.OutOrStdout(), r.Reset(args[0]))
		},
	}
}

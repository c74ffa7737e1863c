package main

import "github.com/spf13/cobra"

func newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:                "add <path>",
		Short:              "Stage a file for the next commit",
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return incorrectOperands(cmd.OutOrStdout())
			}
			r, err := openRepo()
			if err != nil {
				return report(cmd.OutOrStdout(), err)
			}
			return report(cmd.OutOrStdout(), r.Add(args[0]))
		},
	}
}

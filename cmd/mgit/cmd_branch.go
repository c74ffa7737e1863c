package main

import "github.com/spf13/cobra"

func newBranchCmd() *cobra.Command {
	return &cobra.Command{
		Use:                "branch <name>",
		Short:              "Create a new branch pointing at the current commit",
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return incorrectOperands(cmd.OutOrStdout())
			}
			r, err := openRepo()
			if err != nil {
				return report(cmd.OutOrStdout(), err)
			}
			return report(cmd.OutOrStdout(), r.CreateBranch(args[0]))
		},
	}
}

package main

import "github.com/spf13/cobra"

func newRmBranchCmd() *cobra.Command {
	return &cobra.Command{
		Use:                "rm-branch <name>",
		Short:              "Delete a branch pointer",
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return incorrectOperands(cmd.OutOrStdout())
			}
			r, err := openRepo()
			if err != nil {
				return report(cmd.OutOrStdout(), err)
			}
			return report(cmd.OutOrStdout(), r.DeleteBranch(args[0]))
		},
	}
}

package main

import "github.com/spf13/cobra"

func newCommitCmd() *cobra.Command {
	return &cobra.Command{
		Use:                "commit <message>",
		Short:              "Record staged changes as a new commit",
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return incorrectOperands(cmd.OutOrStdout())
			}
			r, err := openRepo()
			if err != nil {
				return report(cmd.OutOrStdout(), err)
			}
			return report(cmd.OutOrStdout(), r.Commit(args[0]))
		},
	}
}

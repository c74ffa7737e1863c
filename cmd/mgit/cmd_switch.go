package main

import "github.com/spf13/cobra"

func newSwitchCmd() *cobra.Command {
	return &cobra.Command{
		Use:                "switch <branch>",
		Short:              "Move HEAD and the working tree to another branch",
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return incorrectOperands(cmd.OutOrStdout())
			}
			r, err := openRepo()
			if err != nil {
				return report(cmd.OutOrStdout(), err)
			}
			return report(cmd.OutOrStdout(), r.Switch(args[0]))
		},
	}
}

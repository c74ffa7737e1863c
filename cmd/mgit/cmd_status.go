package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:                "status",
		Short:              "Show the state of the working tree and staging area",
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 {
				return incorrectOperands(cmd.OutOrStdout())
			}
			r, err := openRepo()
			if err != nil {
				return report(cmd.OutOrStdout(), err)
			}
			st, err := r.BuildStatus()
			if err != nil {
				return report(cmd.OutOrStdout(), err)
			}
			fmt.Fprint(cmd.OutOrStdout(), st.Render())
			return nil
		},
	}
}

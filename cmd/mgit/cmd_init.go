package main

import (
	"github.com/spf13/cobra"
	"github.com/sufjanF/miniature-git/pkg/vcs"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:                "init",
		Short:              "Create a new repository in the current directory",
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 {
				return incorrectOperands(cmd.OutOrStdout())
			}
			_, err := vcs.Init(".")
			return report(cmd.OutOrStdout(), err)
		},
	}
}

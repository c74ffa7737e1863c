package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newFindCmd() *cobra.Command {
	return &cobra.Command{
		Use:                "find <message>",
		Short:              "Print the ids of commits with a given message",
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return incorrectOperands(cmd.OutOrStdout())
			}
			r, err := openRepo()
			if err != nil {
				return report(cmd.OutOrStdout(), err)
			}
			ids, err := r.Find(args[0])
			if err != nil {
				return report(cmd.OutOrStdout(), err)
			}
			for _, id := range ids {
				fmt.Fprintln(cmd.OutOrStdout(), id)
			}
			return nil
		},
	}
}

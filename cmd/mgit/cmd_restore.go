package main

import "github.com/spf13/cobra"

// newRestoreCmd implements both `restore -- <path>` (from HEAD) and
// `restore <commit> -- <path>` (from a specific commit), dispatching on
// whether a "--" separator token is present.
func newRestoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:                "restore [<commit>] -- <path>",
		Short:              "Overwrite a working-tree file from a commit",
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := openRepo()
			if err != nil {
				return report(cmd.OutOrStdout(), err)
			}

			switch len(args) {
			case 2:
				if args[0] != "--" {
					return incorrectOperands(cmd.OutOrStdout())
				}
				return report(cmd.OutOrStdout(), r.RestoreFromHead(args[1]))
			case 3:
				if args[1] != "--" {
					return incorrectOperands(cmd.OutOrStdout())
				}
				return report(cmd.OutOrStdout(), r.RestoreFromCommit(args[0], args[2]))
			default:
				return incorrectOperands(cmd.OutOrStdout())
			}
		},
	}
}

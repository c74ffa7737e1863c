package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Please enter a command.")
		os.Exit(0)
	}

	root := newRootCmd()
	root.SetArgs(os.Args[1:])

	if _, _, err := root.Find(os.Args[1:]); err != nil {
		fmt.Println("No command with that name exists.")
		os.Exit(0)
	}

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "mgit",
		Short:         "A miniature, local-only version-control tool",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newInitCmd())
	root.AddCommand(newAddCmd())
	root.AddCommand(newCommitCmd())
	root.AddCommand(newRmCmd())
	root.AddCommand(newLogCmd())
	root.AddCommand(newGlobalLogCmd())
	root.AddCommand(newFindCmd())
	root.AddCommand(newStatusCmd())
	root.AddCommand(newRestoreCmd())
	root.AddCommand(newBranchCmd())
	root.AddCommand(newSwitchCmd())
	root.AddCommand(newRmBranchCmd())
	root.AddCommand(newResetCmd())
	root.AddCommand(newMergeCmd())

	return root
}

package main

import (
	"fmt"
	"io"

	"github.com/sufjanF/miniature-git/pkg/vcs"
)

// report prints the outcome of a repository operation: a *vcs.UserError's
// message goes to out and the process still exits 0; any other error is a
// corrupt-store failure and propagates to main to be reported on stderr
// with a non-zero exit.
func report(out io.Writer, err error) error {
	if err == nil {
		return nil
	}
	if ue, ok := vcs.AsUserError(err); ok {
		fmt.Fprintln(out, ue.Error())
		return nil
	}
	return err
}

func openRepo() (*vcs.Repo, error) {
	return vcs.Open(".")
}

// incorrectOperands reports the fixed arity-mismatch message. Every
// subcommand calls this itself rather than relying on cobra's built-in
// Args validators, since those surface as framework errors rather than the
// exact fixed wording the command vocabulary requires.
func incorrectOperands(out io.Writer) error {
	fmt.Fprintln(out, "Incorrect operands.")
	return nil
}

package vcs

import (
	"fmt"

	"github.com/sufjanF/miniature-git/pkg/objectstore"
)

// HeadCommitID exposes the commit id and branch name the current HEAD
// names, for callers that need it outside this package.
func (r *Repo) HeadCommitID() (objectstore.Hash, string, error) {
	return r.headCommitID()
}

// CreateBranch creates a new branch pointing at the current HEAD commit.
func (r *Repo) CreateBranch(name string) error {
	id, _, err := r.headCommitID()
	if err != nil {
		return fmt.Errorf("branch %q: %w", name, err)
	}
	if err := r.Refs.CreateBranch(name, id); err != nil {
		return userError("A branch with that name already exists.")
	}
	return nil
}

// DeleteBranch removes a branch pointer. It refuses to remove the branch
// HEAD currently names.
func (r *Repo) DeleteBranch(name string) error {
	current, err := r.Refs.HeadBranch()
	if err != nil {
		return fmt.Errorf("rm-branch %q: %w", name, err)
	}
	if name == current {
		return userError("Cannot remove the current branch.")
	}
	if _, exists, err := r.Refs.BranchCommit(name); err != nil {
		return fmt.Errorf("rm-branch %q: %w", name, err)
	} else if !exists {
		return userError("A branch with that name does not exist.")
	}
	if err := r.Refs.DeleteBranch(name); err != nil {
		return fmt.Errorf("rm-branch %q: %w", name, err)
	}
	return nil
}

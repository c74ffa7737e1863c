package vcs

import (
	"fmt"

	"github.com/sufjanF/miniature-git/pkg/objectstore"
)

// RestoreFromHead overwrites path in the working tree with the version
// recorded in HEAD. The staging area is left untouched.
func (r *Repo) RestoreFromHead(path string) error {
	head, err := r.headCommit()
	if err != nil {
		return fmt.Errorf("restore %q: %w", path, err)
	}
	blobID, ok := head.Files[path]
	if !ok {
		return userError("File does not exist in that commit.")
	}
	if err := r.restoreBlob(path, blobID); err != nil {
		return fmt.Errorf("restore %q: %w", path, err)
	}
	return nil
}

// RestoreFromCommit overwrites path in the working tree with the version
// recorded in the commit identified by (a prefix of) commitID.
func (r *Repo) RestoreFromCommit(commitID, path string) error {
	full, found, err := r.Store.ResolvePrefix(commitID)
	if err != nil {
		return fmt.Errorf("restore %q from %s: %w", path, commitID, err)
	}
	if !found {
		return userError("No commit with that id exists.")
	}
	c, err := r.readCommit(full)
	if err != nil {
		return fmt.Errorf("restore %q from %s: %w", path, commitID, err)
	}
	blobID, ok := c.Files[path]
	if !ok {
		return userError("File does not exist in that commit.")
	}
	if err := r.restoreBlob(path, blobID); err != nil {
		return fmt.Errorf("restore %q from %s: %w", path, commitID, err)
	}
	return nil
}

func (r *Repo) restoreBlob(path string, blobID objectstore.Hash) error {
	data, err := r.Store.GetBlob(blobID)
	if err != nil {
		return err
	}
	return r.writeWorkingFile(path, data)
}

// Switch moves HEAD to branch, overwriting the working tree to match the
// files tracked by that branch's commit, and clears the staging area.
//
// A file present in the working tree but tracked by neither the current
// HEAD commit nor the staging area's pending additions is an "untracked
// file in the way": Switch aborts before mutating anything if one is
// found. The whole set of writes/deletes is computed up front so that a
// rejected switch never leaves the tree partially updated.
func (r *Repo) Switch(branch string) error {
	curBranch, err := r.Refs.HeadBranch()
	if err != nil {
		return fmt.Errorf("switch %q: %w", branch, err)
	}
	if branch == curBranch {
		return userError("No need to switch to the current branch.")
	}
	targetID, ok, err := r.Refs.BranchCommit(branch)
	if err != nil {
		return fmt.Errorf("switch %q: %w", branch, err)
	}
	if !ok {
		return userError("No such branch exists.")
	}
	target, err := r.readCommit(targetID)
	if err != nil {
		return fmt.Errorf("switch %q: %w", branch, err)
	}
	head, err := r.headCommit()
	if err != nil {
		return fmt.Errorf("switch %q: %w", branch, err)
	}
	stg, err := r.Stage.Read()
	if err != nil {
		return fmt.Errorf("switch %q: %w", branch, err)
	}

	if err := r.checkNoUntrackedInTheWay(head, target, stg.Added); err != nil {
		return err
	}
	if err := r.materialize(head, target); err != nil {
		return fmt.Errorf("switch %q: %w", branch, err)
	}

	if err := r.Refs.SetHeadBranch(branch); err != nil {
		return fmt.Errorf("switch %q: %w", branch, err)
	}
	stg.Clear()
	if err := r.Stage.Write(stg); err != nil {
		return fmt.Errorf("switch %q: %w", branch, err)
	}
	return nil
}

// Reset moves the current branch to commitID, overwriting the working tree
// to match, and clears the staging area. Unlike Switch, the current branch
// stays active; only where it points changes.
func (r *Repo) Reset(commitID string) error {
	full, found, err := r.Store.ResolvePrefix(commitID)
	if err != nil {
		return fmt.Errorf("reset %s: %w", commitID, err)
	}
	if !found {
		return userError("No commit with that id exists.")
	}
	target, err := r.readCommit(full)
	if err != nil {
		return fmt.Errorf("reset %s: %w", commitID, err)
	}
	head, err := r.headCommit()
	if err != nil {
		return fmt.Errorf("reset %s: %w", commitID, err)
	}
	branch, err := r.Refs.HeadBranch()
	if err != nil {
		return fmt.Errorf("reset %s: %w", commitID, err)
	}
	stg, err := r.Stage.Read()
	if err != nil {
		return fmt.Errorf("reset %s: %w", commitID, err)
	}

	if err := r.checkNoUntrackedInTheWay(head, target, stg.Added); err != nil {
		return err
	}
	if err := r.materialize(head, target); err != nil {
		return fmt.Errorf("reset %s: %w", commitID, err)
	}

	if err := r.Refs.SetBranch(branch, full); err != nil {
		return fmt.Errorf("reset %s: %w", commitID, err)
	}
	stg.Clear()
	if err := r.Stage.Write(stg); err != nil {
		return fmt.Errorf("reset %s: %w", commitID, err)
	}
	return nil
}

// checkNoUntrackedInTheWay fails the calling operation if a file tracked by
// target but not by head or staged for addition sits in the working tree
// already, since materializing target would silently clobber it. A path
// staged for addition isn't untracked even though HEAD doesn't know about
// it yet.
func (r *Repo) checkNoUntrackedInTheWay(head, target *objectstore.Commit, staged map[string]objectstore.Hash) error {
	for path := range target.Files {
		if _, trackedByHead := head.Files[path]; trackedByHead {
			continue
		}
		if _, stagedForAdd := staged[path]; stagedForAdd {
			continue
		}
		if _, present, err := r.readWorkingFile(path); err != nil {
			return fmt.Errorf("check working tree: %w", err)
		} else if present {
			return userError("There is an untracked file in the way; delete it, or add and commit it first.")
		}
	}
	return nil
}

// materialize rewrites the working tree from head's file set to target's:
// files target no longer tracks are deleted, files target tracks are
// written with target's content.
func (r *Repo) materialize(head, target *objectstore.Commit) error {
	for path := range head.Files {
		if _, stillTracked := target.Files[path]; !stillTracked {
			if err := r.deleteWorkingFile(path); err != nil {
				return err
			}
		}
	}
	for path, blobID := range target.Files {
		if err := r.restoreBlob(path, blobID); err != nil {
			return err
		}
	}
	return nil
}

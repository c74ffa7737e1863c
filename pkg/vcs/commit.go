package vcs

import (
	"fmt"
	"strings"

	"github.com/sufjanF/miniature-git/pkg/objectstore"
)

// Commit synthesizes a new commit from HEAD's files plus the pending
// staging area: removals delete keys, additions overwrite keys. The new
// commit's sole parent is HEAD; the current branch advances to it and the
// staging area is cleared.
func (r *Repo) Commit(message string) error {
	return r.commitAt(message, nowUnix())
}

func (r *Repo) commitAt(message string, timestamp int64) error {
	if strings.TrimSpace(message) == "" {
		return userError("Please enter a commit message.")
	}

	stg, err := r.Stage.Read()
	if err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	if stg.IsEmpty() {
		return userError("No changes added to the commit.")
	}

	headID, branch, err := r.headCommitID()
	if err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	head, err := r.readCommit(headID)
	if err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	files := make(map[string]objectstore.Hash, len(head.Files))
	for p, h := range head.Files {
		files[p] = h
	}
	for p := range stg.Removed {
		delete(files, p)
	}
	for p, h := range stg.Added {
		files[p] = h
	}

	c := &objectstore.Commit{
		Message:   message,
		Timestamp: timestamp,
		Parent:    headID,
		Files:     files,
	}

	newID, err := r.Store.PutCommit(c)
	if err != nil {
		return fmt.Errorf("commit: write: %w", err)
	}
	if err := r.Refs.SetBranch(branch, newID); err != nil {
		return fmt.Errorf("commit: advance branch %q: %w", branch, err)
	}
	stg.Clear()
	if err := r.Stage.Write(stg); err != nil {
		return fmt.Errorf("commit: clear staging: %w", err)
	}
	return nil
}

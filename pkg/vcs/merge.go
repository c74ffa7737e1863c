package vcs

import (
	"fmt"
	"strings"

	"github.com/sufjanF/miniature-git/pkg/objectstore"
	"github.com/sufjanF/miniature-git/pkg/stage"
)

// splitPoint finds the latest common ancestor of current and other via a
// naive FIFO double breadth-first traversal: other is enqueued before
// current, and the first id dequeued twice wins. This is deliberately not
// a generation-number-pruned merge-base search; in merge-of-merges DAGs it
// can land on a non-optimal common ancestor, a simplification kept on
// purpose rather than hardened away.
func (r *Repo) splitPoint(current, other objectstore.Hash) (objectstore.Hash, error) {
	seen := make(map[objectstore.Hash]bool)
	queue := []objectstore.Hash{other, current}

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		if seen[id] {
			return id, nil
		}
		seen[id] = true
		c, err := r.readCommit(id)
		if err != nil {
			return "", err
		}
		if c.Parent != "" {
			queue = append(queue, c.Parent)
		}
		if c.SecondParent != "" {
			queue = append(queue, c.SecondParent)
		}
	}
	return "", fmt.Errorf("no common ancestor between %s and %s", current, other)
}

// Merge three-way merges branch into the current branch.
func (r *Repo) Merge(branch string) (string, error) {
	stg, err := r.Stage.Read()
	if err != nil {
		return "", fmt.Errorf("merge %q: %w", branch, err)
	}
	if !stg.IsEmpty() {
		return "", userError("You have uncommitted changes.")
	}

	curBranch, err := r.Refs.HeadBranch()
	if err != nil {
		return "", fmt.Errorf("merge %q: %w", branch, err)
	}
	if branch == curBranch {
		return "", userError("Cannot merge a branch with itself.")
	}
	otherID, ok, err := r.Refs.BranchCommit(branch)
	if err != nil {
		return "", fmt.Errorf("merge %q: %w", branch, err)
	}
	if !ok {
		return "", userError("A branch with that name does not exist.")
	}

	curID, _, err := r.headCommitID()
	if err != nil {
		return "", fmt.Errorf("merge %q: %w", branch, err)
	}
	cur, err := r.readCommit(curID)
	if err != nil {
		return "", fmt.Errorf("merge %q: %w", branch, err)
	}
	other, err := r.readCommit(otherID)
	if err != nil {
		return "", fmt.Errorf("merge %q: %w", branch, err)
	}

	if err := r.checkNoUntrackedInTheWay(cur, other, stg.Added); err != nil {
		return "", err
	}

	splitID, err := r.splitPoint(curID, otherID)
	if err != nil {
		return "", fmt.Errorf("merge %q: %w", branch, err)
	}

	if splitID == curID {
		if err := r.materialize(cur, other); err != nil {
			return "", fmt.Errorf("merge %q: %w", branch, err)
		}
		if err := r.Refs.SetBranch(curBranch, otherID); err != nil {
			return "", fmt.Errorf("merge %q: %w", branch, err)
		}
		return "Current branch fast-forwarded.", nil
	}
	if splitID == otherID {
		return "Given branch is an ancestor of the current branch.", nil
	}

	split, err := r.readCommit(splitID)
	if err != nil {
		return "", fmt.Errorf("merge %q: %w", branch, err)
	}

	paths := make(map[string]bool)
	for p := range split.Files {
		paths[p] = true
	}
	for p := range cur.Files {
		paths[p] = true
	}
	for p := range other.Files {
		paths[p] = true
	}

	conflicts := 0
	for path := range paths {
		s, sOK := split.Files[path]
		c, cOK := cur.Files[path]
		o, oOK := other.Files[path]

		currChanged := sOK && cOK && c != s
		otherChanged := sOK && oOK && o != s

		switch {
		case currChanged && otherChanged:
			conflicts++
			if err := r.writeConflict(path, c, cOK, o, oOK, stg); err != nil {
				return "", fmt.Errorf("merge %q: %w", branch, err)
			}
		case sOK && cOK && !oOK:
			stg.UnstageAdd(path)
			stg.StageRemove(path)
			if err := r.deleteWorkingFile(path); err != nil {
				return "", fmt.Errorf("merge %q: %w", branch, err)
			}
		case !sOK && !cOK && oOK:
			if err := r.restoreBlob(path, o); err != nil {
				return "", fmt.Errorf("merge %q: %w", branch, err)
			}
			stg.StageAdd(path, o)
		case sOK && !currChanged && otherChanged:
			if err := r.restoreBlob(path, o); err != nil {
				return "", fmt.Errorf("merge %q: %w", branch, err)
			}
			stg.StageAdd(path, o)
		case sOK && !currChanged && !cOK && !oOK:
			if err := r.deleteWorkingFile(path); err != nil {
				return "", fmt.Errorf("merge %q: %w", branch, err)
			}
		default:
			// current side's state stands; no action.
		}
	}

	mergeFiles := make(map[string]objectstore.Hash, len(stg.Added))
	for p, h := range stg.Added {
		mergeFiles[p] = h
	}

	mc := &objectstore.Commit{
		Message:      fmt.Sprintf("Merged %s into %s.", branch, curBranch),
		Timestamp:    nowUnix(),
		Parent:       curID,
		SecondParent: otherID,
		Files:        mergeFiles,
	}
	newID, err := r.Store.PutCommit(mc)
	if err != nil {
		return "", fmt.Errorf("merge %q: write commit: %w", branch, err)
	}
	if err := r.Refs.SetBranch(curBranch, newID); err != nil {
		return "", fmt.Errorf("merge %q: %w", branch, err)
	}
	stg.Clear()
	if err := r.Stage.Write(stg); err != nil {
		return "", fmt.Errorf("merge %q: %w", branch, err)
	}

	if conflicts > 0 {
		return strings.TrimSuffix(strings.Repeat("Encountered a merge conflict.\n", conflicts), "\n"), nil
	}
	return "", nil
}

// writeConflict synthesizes the exact conflict-marker byte sequence for a
// file that changed on both sides since the split point, writes it to the
// working tree, and stages the resulting bytes as the blob for path.
func (r *Repo) writeConflict(path string, c objectstore.Hash, cOK bool, o objectstore.Hash, oOK bool, stg *stage.Staging) error {
	var curContent, otherContent []byte
	if cOK {
		data, err := r.Store.GetBlob(c)
		if err != nil {
			return err
		}
		curContent = data
	}
	if oOK {
		data, err := r.Store.GetBlob(o)
		if err != nil {
			return err
		}
		otherContent = data
	}

	var out []byte
	out = append(out, "<<<<<<< HEAD\n"...)
	out = append(out, curContent...)
	out = append(out, "=======\n"...)
	out = append(out, otherContent...)
	out = append(out, ">>>>>>>\n"...)

	if err := r.writeWorkingFile(path, out); err != nil {
		return err
	}
	blobID, err := r.Store.PutBlob(out)
	if err != nil {
		return err
	}
	stg.StageAdd(path, blobID)
	return nil
}

package vcs

import (
	"fmt"
	"os"
	"path/filepath"
)

// Add stages path for the next commit.
//
// If the path's current on-disk content matches what HEAD already records
// for it, any pending staged change for that path is canceled instead of
// being recorded (staging a no-op change back out). Otherwise the content
// is written to the object store as a new blob and staged as an addition.
// Either way, any pending removal for the same path is cleared: a path is
// Added XOR Removed XOR neither.
func (r *Repo) Add(path string) error {
	absPath := filepath.Join(r.RootDir, filepath.FromSlash(path))
	content, err := os.ReadFile(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return userError("File does not exist.")
		}
		return fmt.Errorf("add %q: %w", path, err)
	}

	head, err := r.headCommit()
	if err != nil {
		return fmt.Errorf("add %q: %w", path, err)
	}

	stg, err := r.Stage.Read()
	if err != nil {
		return fmt.Errorf("add %q: %w", path, err)
	}

	headBlob, trackedByHead := head.Files[path]
	currentHash := hashOf(content)

	if trackedByHead && headBlob == currentHash {
		stg.UnstageAdd(path)
		stg.UnstageRemove(path)
	} else {
		blobID, err := r.Store.PutBlob(content)
		if err != nil {
			return fmt.Errorf("add %q: write blob: %w", path, err)
		}
		stg.StageAdd(path, blobID)
		stg.UnstageRemove(path)
	}

	if err := r.Stage.Write(stg); err != nil {
		return fmt.Errorf("add %q: %w", path, err)
	}
	return nil
}

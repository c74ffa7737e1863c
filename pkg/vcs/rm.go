package vcs

import "fmt"

// Remove unstages path if it was only staged for addition, and/or stages it
// for removal (deleting it from the working tree) if HEAD tracks it. If
// neither applies there is nothing to do for this path.
func (r *Repo) Remove(path string) error {
	stg, err := r.Stage.Read()
	if err != nil {
		return fmt.Errorf("rm %q: %w", path, err)
	}
	head, err := r.headCommit()
	if err != nil {
		return fmt.Errorf("rm %q: %w", path, err)
	}

	_, staged := stg.Added[path]
	_, trackedByHead := head.Files[path]

	if !staged && !trackedByHead {
		return userError("No reason to remove the file.")
	}

	if staged {
		stg.UnstageAdd(path)
	}
	if trackedByHead {
		stg.StageRemove(path)
		if err := r.deleteWorkingFile(path); err != nil {
			return fmt.Errorf("rm %q: %w", path, err)
		}
	}

	if err := r.Stage.Write(stg); err != nil {
		return fmt.Errorf("rm %q: %w", path, err)
	}
	return nil
}

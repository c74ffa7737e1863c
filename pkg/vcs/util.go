package vcs

import (
	"os"
	"path/filepath"

	"github.com/sufjanF/miniature-git/pkg/objectstore"
)

func hashOf(content []byte) objectstore.Hash {
	return objectstore.HashBytes(content)
}

// writeWorkingFile writes data to path within the working tree, creating
// parent directories as needed.
func (r *Repo) writeWorkingFile(path string, data []byte) error {
	absPath := filepath.Join(r.RootDir, filepath.FromSlash(path))
	if dir := filepath.Dir(absPath); dir != r.RootDir {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(absPath, data, 0o644)
}

// deleteWorkingFile removes path from the working tree, tolerating its
// absence.
func (r *Repo) deleteWorkingFile(path string) error {
	absPath := filepath.Join(r.RootDir, filepath.FromSlash(path))
	if err := os.Remove(absPath); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// readWorkingFile reads path from the working tree. ok is false if the file
// does not exist (any other error is returned as err).
func (r *Repo) readWorkingFile(path string) (data []byte, ok bool, err error) {
	absPath := filepath.Join(r.RootDir, filepath.FromSlash(path))
	data, err = os.ReadFile(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return data, true, nil
}

// listWorkingFiles walks the working tree and returns every regular file's
// slash-separated path relative to the repo root, skipping the metadata
// directory.
func (r *Repo) listWorkingFiles() ([]string, error) {
	var out []string
	err := filepath.WalkDir(r.RootDir, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, relErr := filepath.Rel(r.RootDir, p)
		if relErr != nil {
			return relErr
		}
		if rel == "." {
			return nil
		}
		if d.IsDir() {
			if rel == MetadataDirName {
				return filepath.SkipDir
			}
			return nil
		}
		out = append(out, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Package refs manages branch pointers and the HEAD symbolic reference.
// Commands run one at a time in a single process, so unlike a
// multi-process VCS this store skips lockfiles and a reflog entirely and
// just reads/writes the branch files directly.
package refs

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sufjanF/miniature-git/pkg/objectstore"
)

// Store manages the branches/ directory and the head file under a
// repository's metadata directory.
type Store struct {
	gotDir string
}

// NewStore creates a Store rooted at the given metadata directory.
func NewStore(gotDir string) *Store {
	return &Store{gotDir: gotDir}
}

func (s *Store) branchPath(name string) string {
	return filepath.Join(s.gotDir, "branches", name)
}

func (s *Store) headPath() string {
	return filepath.Join(s.gotDir, "head")
}

// HeadBranch reads the name of the currently active branch.
func (s *Store) HeadBranch() (string, error) {
	data, err := os.ReadFile(s.headPath())
	if err != nil {
		return "", fmt.Errorf("read head: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// SetHeadBranch points HEAD at the named branch (without requiring the
// branch to already exist (callers create the branch separately).
func (s *Store) SetHeadBranch(name string) error {
	return os.WriteFile(s.headPath(), []byte(name), 0o644)
}

// BranchCommit returns the commit id the named branch points at. ok is
// false if no such branch exists.
func (s *Store) BranchCommit(name string) (objectstore.Hash, bool, error) {
	data, err := os.ReadFile(s.branchPath(name))
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("read branch %q: %w", name, err)
	}
	return objectstore.Hash(strings.TrimSpace(string(data))), true, nil
}

// SetBranch overwrites (or creates) the named branch to point at commit id.
func (s *Store) SetBranch(name string, id objectstore.Hash) error {
	if err := os.MkdirAll(filepath.Dir(s.branchPath(name)), 0o755); err != nil {
		return fmt.Errorf("set branch %q: %w", name, err)
	}
	if err := os.WriteFile(s.branchPath(name), []byte(id), 0o644); err != nil {
		return fmt.Errorf("set branch %q: %w", name, err)
	}
	return nil
}

// CreateBranch creates a new branch pointing at id. It fails if the branch
// already exists.
func (s *Store) CreateBranch(name string, id objectstore.Hash) error {
	if _, exists, err := s.BranchCommit(name); err != nil {
		return err
	} else if exists {
		return fmt.Errorf("create branch %q: already exists", name)
	}
	return s.SetBranch(name, id)
}

// DeleteBranch removes the named branch's ref file.
func (s *Store) DeleteBranch(name string) error {
	if err := os.Remove(s.branchPath(name)); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("delete branch %q: does not exist", name)
		}
		return fmt.Errorf("delete branch %q: %w", name, err)
	}
	return nil
}

// ListBranches returns every branch name, sorted in Unicode code-point
// order.
func (s *Store) ListBranches() ([]string, error) {
	dir := filepath.Join(s.gotDir, "branches")
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("list branches: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

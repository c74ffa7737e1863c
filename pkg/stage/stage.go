// Package stage tracks the pending additions and removals that the next
// commit will realize.
package stage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/sufjanF/miniature-git/pkg/objectstore"
)

// Staging holds the full staging area (index) for a repository. A path may
// appear in Added or Removed but never both.
type Staging struct {
	Added   map[string]objectstore.Hash `json:"added"`
	Removed map[string]bool            `json:"removed"`
}

func newEmpty() *Staging {
	return &Staging{
		Added:   make(map[string]objectstore.Hash),
		Removed: make(map[string]bool),
	}
}

// Store persists the staging area under a repository's metadata directory.
type Store struct {
	path string // e.g. ".mgit/staging_area"
}

// NewStore creates a Store for the staging_area file under gotDir.
func NewStore(gotDir string) *Store {
	return &Store{path: filepath.Join(gotDir, "staging_area")}
}

// Read loads the staging area. If the file does not yet exist, an empty
// Staging is returned.
func (s *Store) Read() (*Staging, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return newEmpty(), nil
		}
		return nil, fmt.Errorf("read staging area: %w", err)
	}
	stg := newEmpty()
	if err := json.Unmarshal(data, stg); err != nil {
		return nil, fmt.Errorf("read staging area: unmarshal: %w", err)
	}
	if stg.Added == nil {
		stg.Added = make(map[string]objectstore.Hash)
	}
	if stg.Removed == nil {
		stg.Removed = make(map[string]bool)
	}
	return stg, nil
}

// Write atomically persists the staging area via a temp-file-then-rename.
func (s *Store) Write(stg *Staging) error {
	data, err := json.MarshalIndent(stg, "", "  ")
	if err != nil {
		return fmt.Errorf("write staging area: marshal: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("write staging area: mkdir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".staging-tmp-*")
	if err != nil {
		return fmt.Errorf("write staging area: tempfile: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write staging area: write: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write staging area: close: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write staging area: rename: %w", err)
	}
	return nil
}

// StageAdd records path as staged for addition with the given blob, and
// clears any pending removal for the same path (a path is Added XOR
// Removed XOR neither).
func (stg *Staging) StageAdd(path string, blob objectstore.Hash) {
	stg.Added[path] = blob
	delete(stg.Removed, path)
}

// StageRemove records path as staged for removal, clearing any pending
// addition.
func (stg *Staging) StageRemove(path string) {
	stg.Removed[path] = true
	delete(stg.Added, path)
}

// UnstageAdd clears a pending addition for path, if any.
func (stg *Staging) UnstageAdd(path string) {
	delete(stg.Added, path)
}

// UnstageRemove clears a pending removal for path, if any.
func (stg *Staging) UnstageRemove(path string) {
	delete(stg.Removed, path)
}

// Snapshot returns copies of both mappings, safe for a caller to inspect or
// retain without aliasing the Staging's own state.
func (stg *Staging) Snapshot() (added map[string]objectstore.Hash, removed map[string]bool) {
	added = make(map[string]objectstore.Hash, len(stg.Added))
	for p, h := range stg.Added {
		added[p] = h
	}
	removed = make(map[string]bool, len(stg.Removed))
	for p := range stg.Removed {
		removed[p] = true
	}
	return added, removed
}

// IsEmpty reports whether there is nothing staged at all.
func (stg *Staging) IsEmpty() bool {
	return len(stg.Added) == 0 && len(stg.Removed) == 0
}

// Clear empties both mappings in place.
func (stg *Staging) Clear() {
	stg.Added = make(map[string]objectstore.Hash)
	stg.Removed = make(map[string]bool)
}

// SortedAdded returns the staged-for-addition paths in Unicode code-point
// order.
func (stg *Staging) SortedAdded() []string {
	return sortedKeys(stg.Added)
}

// SortedRemoved returns the staged-for-removal paths in Unicode code-point
// order.
func (stg *Staging) SortedRemoved() []string {
	out := make([]string, 0, len(stg.Removed))
	for p := range stg.Removed {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

func sortedKeys(m map[string]objectstore.Hash) []string {
	out := make([]string, 0, len(m))
	for p := range m {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

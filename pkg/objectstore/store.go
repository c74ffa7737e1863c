package objectstore

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Store is a content-addressed object store rooted at a metadata directory.
// Blobs live under blobs/<hash>, commits under commits/<hash>; both are
// written atomically via a temp-file-then-rename so a crash never leaves a
// half-written object behind.
type Store struct {
	root string // e.g. ".mgit"
}

// NewStore creates a Store rooted at the given metadata directory.
func NewStore(root string) *Store {
	return &Store{root: root}
}

func (s *Store) blobPath(h Hash) string {
	return filepath.Join(s.root, "blobs", string(h))
}

func (s *Store) commitPath(h Hash) string {
	return filepath.Join(s.root, "commits", string(h))
}

func (s *Store) writeAtomic(dir, name string, data []byte) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close: %w", err)
	}
	if err := os.Rename(tmpName, filepath.Join(dir, name)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("rename: %w", err)
	}
	return nil
}

// HasBlob reports whether a blob with the given hash is stored.
func (s *Store) HasBlob(h Hash) bool {
	_, err := os.Stat(s.blobPath(h))
	return err == nil
}

// PutBlob writes data's bytes (compressed on disk) under its content hash
// and returns that hash. Writing is idempotent: an existing blob is left
// untouched.
func (s *Store) PutBlob(data []byte) (Hash, error) {
	h := HashBytes(data)
	if s.HasBlob(h) {
		return h, nil
	}
	packed, err := compress(data)
	if err != nil {
		return "", fmt.Errorf("put blob %s: compress: %w", h, err)
	}
	if err := s.writeAtomic(filepath.Join(s.root, "blobs"), string(h), packed); err != nil {
		return "", fmt.Errorf("put blob %s: %w", h, err)
	}
	return h, nil
}

// GetBlob reads and decompresses the blob stored under h.
func (s *Store) GetBlob(h Hash) ([]byte, error) {
	packed, err := os.ReadFile(s.blobPath(h))
	if err != nil {
		return nil, fmt.Errorf("get blob %s: %w", h, err)
	}
	data, err := decompress(packed)
	if err != nil {
		return nil, fmt.Errorf("get blob %s: decompress: %w", h, err)
	}
	return data, nil
}

// PutCommit serializes and stores c, returning its content hash.
func (s *Store) PutCommit(c *Commit) (Hash, error) {
	data := MarshalCommit(c)
	h := HashBytes(data)
	if _, err := os.Stat(s.commitPath(h)); err == nil {
		return h, nil
	}
	if err := s.writeAtomic(filepath.Join(s.root, "commits"), string(h), data); err != nil {
		return "", fmt.Errorf("put commit %s: %w", h, err)
	}
	return h, nil
}

// GetCommit reads and deserializes the commit stored under h.
func (s *Store) GetCommit(h Hash) (*Commit, error) {
	data, err := os.ReadFile(s.commitPath(h))
	if err != nil {
		return nil, fmt.Errorf("get commit %s: %w", h, err)
	}
	c, err := UnmarshalCommit(data)
	if err != nil {
		return nil, fmt.Errorf("get commit %s: %w", h, err)
	}
	return c, nil
}

// ListCommitIDs enumerates every stored commit id, in directory-enumeration
// order (unspecified beyond that, matching the reference).
func (s *Store) ListCommitIDs() ([]Hash, error) {
	dir := filepath.Join(s.root, "commits")
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("list commit ids: %w", err)
	}
	ids := make([]Hash, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".tmp-") {
			continue
		}
		ids = append(ids, Hash(e.Name()))
	}
	return ids, nil
}

// ResolvePrefix returns the unique commit id whose name has prefix as a
// case-sensitive leading substring. If several commits share the prefix, the
// first one found in directory-enumeration order wins, mirroring the
// reference's unspecified-but-observable tie-break. ok is false if no
// commit matches.
func (s *Store) ResolvePrefix(prefix string) (id Hash, ok bool, err error) {
	if len(prefix) == 40 {
		if _, statErr := os.Stat(s.commitPath(Hash(prefix))); statErr == nil {
			return Hash(prefix), true, nil
		}
	}
	ids, err := s.ListCommitIDs()
	if err != nil {
		return "", false, err
	}
	for _, id := range ids {
		if strings.HasPrefix(string(id), prefix) {
			return id, true, nil
		}
	}
	return "", false, nil
}

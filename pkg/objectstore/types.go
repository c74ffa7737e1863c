// Package objectstore implements the content-addressed persistence layer:
// blobs and commits keyed by hex SHA-1, plus the serialization that makes
// those hashes reproducible across runs.
package objectstore

import "sort"

// Hash is a 40-character lowercase hex-encoded SHA-1 digest.
type Hash string

// Commit is an immutable snapshot of the tree plus metadata. Unlike a
// git-style tree of nested objects, Files maps repo-relative paths directly
// to blob hashes; there are no intermediate tree objects.
type Commit struct {
	Message      string
	Timestamp    int64 // unix seconds; 0 for the initial commit
	Parent       Hash  // empty for the initial commit
	SecondParent Hash  // non-empty only for merge commits
	Files        map[string]Hash
}

// SortedPaths returns the commit's file paths in Unicode code-point order.
func (c *Commit) SortedPaths() []string {
	paths := make([]string, 0, len(c.Files))
	for p := range c.Files {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// IsMerge reports whether this commit has a second parent.
func (c *Commit) IsMerge() bool {
	return c.SecondParent != ""
}

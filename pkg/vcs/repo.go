// Package vcs implements the persistent object model plus the
// branch-and-merge engine: commit creation, working-tree reconciliation
// (restore/switch/reset), history queries, and the three-way merge engine.
package vcs

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sufjanF/miniature-git/pkg/objectstore"
	"github.com/sufjanF/miniature-git/pkg/refs"
	"github.com/sufjanF/miniature-git/pkg/stage"
)

// MetadataDirName is the hidden directory name that roots a repository's
// metadata area.
const MetadataDirName = ".mgit"

// DefaultBranch is the branch created by Init and checked out by default.
const DefaultBranch = "main"

// Repo is an opened repository handle: the metadata directory path plus the
// object/ref/staging stores built on top of it. commitCache memoizes commit
// reads for the lifetime of a single command invocation (e.g. during merge
// BFS), per the reference's advice to cache within one command.
type Repo struct {
	RootDir string
	GotDir  string
	Store   *objectstore.Store
	Refs    *refs.Store
	Stage   *stage.Store

	commitCache map[objectstore.Hash]*objectstore.Commit
}

func newRepo(root string) *Repo {
	gotDir := filepath.Join(root, MetadataDirName)
	return &Repo{
		RootDir:     root,
		GotDir:      gotDir,
		Store:       objectstore.NewStore(gotDir),
		Refs:        refs.NewStore(gotDir),
		Stage:       stage.NewStore(gotDir),
		commitCache: make(map[objectstore.Hash]*objectstore.Commit),
	}
}

// Init creates a new repository rooted at dir. It fails if a metadata area
// already exists there.
func Init(dir string) (*Repo, error) {
	gotDir := filepath.Join(dir, MetadataDirName)
	if _, err := os.Stat(gotDir); err == nil {
		return nil, userError("A Gitlet version-control system already exists in the current directory.")
	}

	r := newRepo(dir)
	for _, sub := range []string{"blobs", "commits", "branches"} {
		if err := os.MkdirAll(filepath.Join(gotDir, sub), 0o755); err != nil {
			return nil, fmt.Errorf("init: mkdir %s: %w", sub, err)
		}
	}

	initial := &objectstore.Commit{
		Message:   "initial commit",
		Timestamp: 0,
		Files:     map[string]objectstore.Hash{},
	}
	id, err := r.Store.PutCommit(initial)
	if err != nil {
		return nil, fmt.Errorf("init: write initial commit: %w", err)
	}
	if err := r.Refs.CreateBranch(DefaultBranch, id); err != nil {
		return nil, fmt.Errorf("init: create %s branch: %w", DefaultBranch, err)
	}
	if err := r.Refs.SetHeadBranch(DefaultBranch); err != nil {
		return nil, fmt.Errorf("init: set head: %w", err)
	}
	empty, err := r.Stage.Read()
	if err != nil {
		return nil, fmt.Errorf("init: read fresh staging area: %w", err)
	}
	if err := r.Stage.Write(empty); err != nil {
		return nil, fmt.Errorf("init: write staging area: %w", err)
	}
	return r, nil
}

// Open opens the repository rooted at dir. Only dir itself is checked for a
// metadata directory; parent directories are not searched.
func Open(dir string) (*Repo, error) {
	gotDir := filepath.Join(dir, MetadataDirName)
	if info, err := os.Stat(gotDir); err != nil || !info.IsDir() {
		return nil, userError("Not in an initialized Gitlet directory.")
	}
	return newRepo(dir), nil
}

// readCommit fetches a commit, consulting (and populating) the per-command
// cache first.
func (r *Repo) readCommit(id objectstore.Hash) (*objectstore.Commit, error) {
	if c, ok := r.commitCache[id]; ok {
		return c, nil
	}
	c, err := r.Store.GetCommit(id)
	if err != nil {
		return nil, err
	}
	r.commitCache[id] = c
	return c, nil
}

// headCommitID returns the commit id the currently active branch points at.
func (r *Repo) headCommitID() (objectstore.Hash, string, error) {
	branch, err := r.Refs.HeadBranch()
	if err != nil {
		return "", "", fmt.Errorf("read head: %w", err)
	}
	id, ok, err := r.Refs.BranchCommit(branch)
	if err != nil {
		return "", "", err
	}
	if !ok {
		return "", "", fmt.Errorf("head branch %q has no commit", branch)
	}
	return id, branch, nil
}

// headCommit returns the commit the currently active branch points at.
func (r *Repo) headCommit() (*objectstore.Commit, error) {
	id, _, err := r.headCommitID()
	if err != nil {
		return nil, err
	}
	return r.readCommit(id)
}

func nowUnix() int64 {
	return time.Now().Unix()
}

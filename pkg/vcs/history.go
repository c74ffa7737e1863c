package vcs

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sufjanF/miniature-git/pkg/objectstore"
)

// LogEntry is one commit as rendered by Log/GlobalLog, paired with its id.
type LogEntry struct {
	ID     objectstore.Hash
	Commit *objectstore.Commit
}

// Log walks HEAD's first-parent chain, most recent first.
func (r *Repo) Log() ([]LogEntry, error) {
	id, _, err := r.headCommitID()
	if err != nil {
		return nil, fmt.Errorf("log: %w", err)
	}
	var entries []LogEntry
	for id != "" {
		c, err := r.readCommit(id)
		if err != nil {
			return nil, fmt.Errorf("log: %w", err)
		}
		entries = append(entries, LogEntry{ID: id, Commit: c})
		id = c.Parent
	}
	return entries, nil
}

// GlobalLog returns every commit in the object store, in directory
// enumeration order, regardless of reachability from any branch.
func (r *Repo) GlobalLog() ([]LogEntry, error) {
	ids, err := r.Store.ListCommitIDs()
	if err != nil {
		return nil, fmt.Errorf("global-log: %w", err)
	}
	entries := make([]LogEntry, 0, len(ids))
	for _, id := range ids {
		c, err := r.readCommit(id)
		if err != nil {
			return nil, fmt.Errorf("global-log: %w", err)
		}
		entries = append(entries, LogEntry{ID: id, Commit: c})
	}
	return entries, nil
}

// Find returns the ids of every commit whose message equals msg exactly.
func (r *Repo) Find(msg string) ([]objectstore.Hash, error) {
	ids, err := r.Store.ListCommitIDs()
	if err != nil {
		return nil, fmt.Errorf("find: %w", err)
	}
	var matches []objectstore.Hash
	for _, id := range ids {
		c, err := r.readCommit(id)
		if err != nil {
			return nil, fmt.Errorf("find: %w", err)
		}
		if c.Message == msg {
			matches = append(matches, id)
		}
	}
	if len(matches) == 0 {
		return nil, userError("Found no commit with that message.")
	}
	return matches, nil
}

// Status reports the repository's current state across five sections:
// branches, staged files, removed files, tracked-but-modified-unstaged
// files, and untracked files. Each section's entries are sorted by Unicode
// code point.
type Status struct {
	Branches          []string
	Current           string
	Staged            []string
	Removed           []string
	ModifiedNotStaged []string // entries carry a " (modified)" or " (deleted)" suffix
	Untracked         []string
}

func (r *Repo) BuildStatus() (*Status, error) {
	branches, err := r.Refs.ListBranches()
	if err != nil {
		return nil, fmt.Errorf("status: %w", err)
	}
	current, err := r.Refs.HeadBranch()
	if err != nil {
		return nil, fmt.Errorf("status: %w", err)
	}
	head, err := r.headCommit()
	if err != nil {
		return nil, fmt.Errorf("status: %w", err)
	}
	stg, err := r.Stage.Read()
	if err != nil {
		return nil, fmt.Errorf("status: %w", err)
	}

	s := &Status{
		Branches: branches,
		Current:  current,
		Staged:   stg.SortedAdded(),
		Removed:  stg.SortedRemoved(),
	}

	stagedAdded, stagedRemoved := stg.Snapshot()

	tracked := make(map[string]objectstore.Hash, len(head.Files)+len(stagedAdded))
	for p, h := range head.Files {
		tracked[p] = h
	}
	for p, h := range stagedAdded {
		tracked[p] = h
	}

	var modified []string
	for path, wantHash := range tracked {
		data, present, err := r.readWorkingFile(path)
		if err != nil {
			return nil, fmt.Errorf("status: %w", err)
		}
		if !present {
			if !stagedRemoved[path] {
				modified = append(modified, path+" (deleted)")
			}
			continue
		}
		if hashOf(data) != wantHash {
			modified = append(modified, path+" (modified)")
		}
	}
	sort.Strings(modified)
	s.ModifiedNotStaged = modified

	workingPaths, err := r.listWorkingFiles()
	if err != nil {
		return nil, fmt.Errorf("status: %w", err)
	}
	var untracked []string
	for _, path := range workingPaths {
		if _, isTracked := tracked[path]; isTracked {
			continue
		}
		untracked = append(untracked, path)
	}
	sort.Strings(untracked)
	s.Untracked = untracked

	return s, nil
}

// Render formats a Status the way the reference CLI prints it to stdout.
func (s *Status) Render() string {
	var b strings.Builder
	b.WriteString("=== Branches ===\n")
	for _, br := range s.Branches {
		if br == s.Current {
			b.WriteString("*" + br + "\n")
		} else {
			b.WriteString(br + "\n")
		}
	}
	b.WriteString("\n=== Staged Files ===\n")
	for _, p := range s.Staged {
		b.WriteString(p + "\n")
	}
	b.WriteString("\n=== Removed Files ===\n")
	for _, p := range s.Removed {
		b.WriteString(p + "\n")
	}
	b.WriteString("\n=== Modifications Not Staged For Commit ===\n")
	for _, p := range s.ModifiedNotStaged {
		b.WriteString(p + "\n")
	}
	b.WriteString("\n=== Untracked Files ===\n")
	for _, p := range s.Untracked {
		b.WriteString(p + "\n")
	}
	return b.String()
}

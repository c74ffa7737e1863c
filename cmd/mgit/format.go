package main

import (
	"fmt"
	"time"

	"github.com/sufjanF/miniature-git/pkg/objectstore"
	"github.com/sufjanF/miniature-git/pkg/vcs"
)

// formatLogEntry renders one commit the way the reference log/global-log
// commands do: a "===" separator, the commit id, the date in a fixed
// locale-independent layout, an optional "Merge:" line for two-parent
// commits, and the message.
func formatLogEntry(e vcs.LogEntry) string {
	ts := time.Unix(e.Commit.Timestamp, 0).UTC()
	out := fmt.Sprintf("===\ncommit %s\n", e.ID)
	if e.Commit.IsMerge() {
		out += fmt.Sprintf("Merge: %s %s\n", shortHash(e.Commit.Parent), shortHash(e.Commit.SecondParent))
	}
	out += fmt.Sprintf("Date: %s\n%s\n", ts.Format("Mon Jan 2 15:04:05 2006 -0700"), e.Commit.Message)
	return out
}

func shortHash(h objectstore.Hash) string {
	s := string(h)
	if len(s) < 7 {
		return s
	}
	return s[:7]
}

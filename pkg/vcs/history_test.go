package vcs

import (
	"strings"
	"testing"
)

func TestLogFollowsFirstParentChain(t *testing.T) {
	r := mustInit(t)
	writeFile(t, r, "a.txt", "A")
	if err := r.Add("a.txt"); err != nil {
		t.Fatal(err)
	}
	if err := r.Commit("first"); err != nil {
		t.Fatal(err)
	}
	writeFile(t, r, "b.txt", "B")
	if err := r.Add("b.txt"); err != nil {
		t.Fatal(err)
	}
	if err := r.Commit("second"); err != nil {
		t.Fatal(err)
	}

	entries, err := r.Log()
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries (second, first, initial), got %d", len(entries))
	}
	if entries[0].Commit.Message != "second" {
		t.Fatalf("expected newest first, got %q", entries[0].Commit.Message)
	}
	if entries[2].Commit.Message != "initial commit" {
		t.Fatalf("expected oldest last, got %q", entries[2].Commit.Message)
	}
}

func TestGlobalLogIncludesUnreachableCommits(t *testing.T) {
	r := mustInit(t)
	head := mustHeadID(t, r)
	if err := r.Refs.CreateBranch("dev", head); err != nil {
		t.Fatal(err)
	}
	if err := r.Switch("dev"); err != nil {
		t.Fatal(err)
	}
	writeFile(t, r, "a.txt", "A")
	if err := r.Add("a.txt"); err != nil {
		t.Fatal(err)
	}
	if err := r.Commit("on dev"); err != nil {
		t.Fatal(err)
	}
	if err := r.Refs.DeleteBranch("dev"); err != nil {
		t.Fatal(err)
	}

	entries, err := r.GlobalLog()
	if err != nil {
		t.Fatal(err)
	}
	var sawOnDev bool
	for _, e := range entries {
		if e.Commit.Message == "on dev" {
			sawOnDev = true
		}
	}
	if !sawOnDev {
		t.Fatal("expected global-log to surface commit from deleted branch")
	}
}

func TestFindReturnsAllMatchesOrError(t *testing.T) {
	r := mustInit(t)
	matches, err := r.Find("initial commit")
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}

	if _, err := r.Find("does not exist"); err == nil {
		t.Fatal("expected error")
	} else if err.Error() != "Found no commit with that message." {
		t.Fatalf("unexpected message: %v", err)
	}
}

func TestStatusReportsModificationsAndUntracked(t *testing.T) {
	r := mustInit(t)
	writeFile(t, r, "a.txt", "A")
	if err := r.Add("a.txt"); err != nil {
		t.Fatal(err)
	}
	if err := r.Commit("first"); err != nil {
		t.Fatal(err)
	}
	writeFile(t, r, "a.txt", "A-changed")
	writeFile(t, r, "extra.txt", "untracked")

	st, err := r.BuildStatus()
	if err != nil {
		t.Fatal(err)
	}
	if len(st.ModifiedNotStaged) != 1 || st.ModifiedNotStaged[0] != "a.txt (modified)" {
		t.Fatalf("unexpected modifications: %v", st.ModifiedNotStaged)
	}
	if len(st.Untracked) != 1 || st.Untracked[0] != "extra.txt" {
		t.Fatalf("unexpected untracked: %v", st.Untracked)
	}

	rendered := st.Render()
	if !strings.Contains(rendered, "*main") {
		t.Fatal("expected current branch marked with *")
	}
}

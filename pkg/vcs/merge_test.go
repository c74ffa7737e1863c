package vcs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMergeFastForward(t *testing.T) {
	r := mustInit(t)
	base := mustHeadID(t, r)
	if err := r.Refs.CreateBranch("dev", base); err != nil {
		t.Fatal(err)
	}
	if err := r.Switch("dev"); err != nil {
		t.Fatal(err)
	}
	writeFile(t, r, "a.txt", "A")
	if err := r.Add("a.txt"); err != nil {
		t.Fatal(err)
	}
	if err := r.Commit("dev commit 1"); err != nil {
		t.Fatal(err)
	}
	writeFile(t, r, "b.txt", "B")
	if err := r.Add("b.txt"); err != nil {
		t.Fatal(err)
	}
	if err := r.Commit("dev commit 2"); err != nil {
		t.Fatal(err)
	}

	if err := r.Switch("main"); err != nil {
		t.Fatal(err)
	}
	msg, err := r.Merge("dev")
	if err != nil {
		t.Fatal(err)
	}
	if msg != "Current branch fast-forwarded." {
		t.Fatalf("unexpected message %q", msg)
	}
	if _, err := os.Stat(filepath.Join(r.RootDir, "b.txt")); err != nil {
		t.Fatal("expected b.txt present after fast-forward")
	}
}

func TestMergeGivenBranchIsAncestor(t *testing.T) {
	r := mustInit(t)
	base := mustHeadID(t, r)
	if err := r.Refs.CreateBranch("dev", base); err != nil {
		t.Fatal(err)
	}
	writeFile(t, r, "a.txt", "A")
	if err := r.Add("a.txt"); err != nil {
		t.Fatal(err)
	}
	if err := r.Commit("main commit"); err != nil {
		t.Fatal(err)
	}

	msg, err := r.Merge("dev")
	if err != nil {
		t.Fatal(err)
	}
	if msg != "Given branch is an ancestor of the current branch." {
		t.Fatalf("unexpected message %q", msg)
	}
}

func TestMergeRejectsWithUncommittedChanges(t *testing.T) {
	r := mustInit(t)
	base := mustHeadID(t, r)
	if err := r.Refs.CreateBranch("dev", base); err != nil {
		t.Fatal(err)
	}
	writeFile(t, r, "a.txt", "A")
	if err := r.Add("a.txt"); err != nil {
		t.Fatal(err)
	}
	if _, err := r.Merge("dev"); err == nil {
		t.Fatal("expected error")
	} else if err.Error() != "You have uncommitted changes." {
		t.Fatalf("unexpected message: %v", err)
	}
}

func TestMergeRejectsSelfMerge(t *testing.T) {
	r := mustInit(t)
	if _, err := r.Merge("main"); err == nil {
		t.Fatal("expected error")
	} else if err.Error() != "Cannot merge a branch with itself." {
		t.Fatalf("unexpected message: %v", err)
	}
}

func TestMergeRejectsUnknownBranch(t *testing.T) {
	r := mustInit(t)
	if _, err := r.Merge("ghost"); err == nil {
		t.Fatal("expected error")
	} else if err.Error() != "A branch with that name does not exist." {
		t.Fatalf("unexpected message: %v", err)
	}
}

// TestMergeThreeWayClean exercises scenario 5: split has f=X, current
// modifies unrelated g=Y, other modifies f=Z.
func TestMergeThreeWayClean(t *testing.T) {
	r := mustInit(t)
	writeFile(t, r, "f.txt", "X")
	if err := r.Add("f.txt"); err != nil {
		t.Fatal(err)
	}
	if err := r.Commit("split"); err != nil {
		t.Fatal(err)
	}
	splitID := mustHeadID(t, r)
	if err := r.Refs.CreateBranch("dev", splitID); err != nil {
		t.Fatal(err)
	}

	writeFile(t, r, "g.txt", "Y")
	if err := r.Add("g.txt"); err != nil {
		t.Fatal(err)
	}
	if err := r.Commit("current change"); err != nil {
		t.Fatal(err)
	}

	if err := r.Switch("dev"); err != nil {
		t.Fatal(err)
	}
	writeFile(t, r, "f.txt", "Z")
	if err := r.Add("f.txt"); err != nil {
		t.Fatal(err)
	}
	if err := r.Commit("other change"); err != nil {
		t.Fatal(err)
	}

	if err := r.Switch("main"); err != nil {
		t.Fatal(err)
	}
	msg, err := r.Merge("dev")
	if err != nil {
		t.Fatal(err)
	}
	if msg != "" {
		t.Fatalf("expected clean merge with no message, got %q", msg)
	}

	fData, err := os.ReadFile(filepath.Join(r.RootDir, "f.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if string(fData) != "Z" {
		t.Fatalf("expected f.txt = Z, got %q", fData)
	}
	gData, err := os.ReadFile(filepath.Join(r.RootDir, "g.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if string(gData) != "Y" {
		t.Fatalf("expected g.txt = Y, got %q", gData)
	}

	head, err := r.headCommit()
	if err != nil {
		t.Fatal(err)
	}
	if !head.IsMerge() {
		t.Fatal("expected merge commit with two parents")
	}
}

// TestMergeConflict exercises scenario 6: split f=X, current f=A, other f=B.
func TestMergeConflict(t *testing.T) {
	r := mustInit(t)
	writeFile(t, r, "f.txt", "X")
	if err := r.Add("f.txt"); err != nil {
		t.Fatal(err)
	}
	if err := r.Commit("split"); err != nil {
		t.Fatal(err)
	}
	splitID := mustHeadID(t, r)
	if err := r.Refs.CreateBranch("dev", splitID); err != nil {
		t.Fatal(err)
	}

	writeFile(t, r, "f.txt", "A")
	if err := r.Add("f.txt"); err != nil {
		t.Fatal(err)
	}
	if err := r.Commit("current change"); err != nil {
		t.Fatal(err)
	}

	if err := r.Switch("dev"); err != nil {
		t.Fatal(err)
	}
	writeFile(t, r, "f.txt", "B")
	if err := r.Add("f.txt"); err != nil {
		t.Fatal(err)
	}
	if err := r.Commit("other change"); err != nil {
		t.Fatal(err)
	}

	if err := r.Switch("main"); err != nil {
		t.Fatal(err)
	}
	msg, err := r.Merge("dev")
	if err != nil {
		t.Fatal(err)
	}
	if msg != "Encountered a merge conflict." {
		t.Fatalf("unexpected message %q", msg)
	}

	data, err := os.ReadFile(filepath.Join(r.RootDir, "f.txt"))
	if err != nil {
		t.Fatal(err)
	}
	want := "<<<<<<< HEAD\nA=======\nB>>>>>>>\n"
	if string(data) != want {
		t.Fatalf("got %q, want %q", data, want)
	}

	head, err := r.headCommit()
	if err != nil {
		t.Fatal(err)
	}
	if !head.IsMerge() {
		t.Fatal("expected merge commit")
	}
	if _, ok := head.Files["f.txt"]; !ok {
		t.Fatal("expected conflict blob staged into merge commit")
	}
}

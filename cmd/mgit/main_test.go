package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// run executes the mgit command tree against dir's working directory and
// returns combined stdout.
func run(t *testing.T, dir string, args ...string) string {
	t.Helper()
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(cwd)

	var buf bytes.Buffer
	root := newRootCmd()
	root.SetOut(&buf)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		t.Fatalf("execute %v: %v", args, err)
	}
	return buf.String()
}

func TestCLIInitAddCommitStatus(t *testing.T) {
	dir := t.TempDir()
	run(t, dir, "init")

	if err := os.WriteFile(filepath.Join(dir, "hello.txt"), []byte("hi\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	run(t, dir, "add", "hello.txt")
	run(t, dir, "commit", "added hello")

	status := run(t, dir, "status")
	if !strings.Contains(status, "=== Branches ===") {
		t.Fatalf("unexpected status output: %q", status)
	}
	if !strings.Contains(status, "*main") {
		t.Fatalf("expected current branch marker: %q", status)
	}
}

func TestCLIIncorrectOperands(t *testing.T) {
	dir := t.TempDir()
	run(t, dir, "init")
	out := run(t, dir, "add")
	if strings.TrimSpace(out) != "Incorrect operands." {
		t.Fatalf("got %q", out)
	}
}

func TestCLIInitTwiceFails(t *testing.T) {
	dir := t.TempDir()
	run(t, dir, "init")
	out := run(t, dir, "init")
	if strings.TrimSpace(out) != "A Gitlet version-control system already exists in the current directory." {
		t.Fatalf("got %q", out)
	}
}

package gitrepo

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func TestExtractFiles(t *testing.T) {
	diff := `diff --git a/src/Controller/UserController.php b/src/Controller/UserController.php
--- a/src/Controller/UserController.php
+++ b/src/Controller/UserController.php
@@ -1,3 +1,4 @@
+use App\Entity\User;
diff --git a/templates/user.html.twig b/templates/user.html.twig
--- a/templates/user.html.twig
+++ b/templates/user.html.twig
@@ -5,3 +5,4 @@
+{{ user.name }}
`
	files := ExtractFiles(diff)
	if len(files) != 2 {
		t.Fatalf("got %d files, want 2", len(files))
	}
	if files[0] != "src/Controller/UserController.php" {
		t.Errorf("files[0] = %q", files[0])
	}
	if files[1] != "templates/user.html.twig" {
		t.Errorf("files[1] = %q", files[1])
	}
}

func TestExtractFiles_Dedup(t *testing.T) {
	diff := `+++ b/main.php
+++ b/main.php
`
	files := ExtractFiles(diff)
	if len(files) != 1 {
		t.Errorf("got %d files, want 1 (should dedup)", len(files))
	}
}

func TestFilterExcluded(t *testing.T) {
	diff := `diff --git a/src/Service/Mailer.php b/src/Service/Mailer.php
--- a/src/Service/Mailer.php
+++ b/src/Service/Mailer.php
@@ -1,3 +1,4 @@
+// changed
diff --git a/vendor/lib.php b/vendor/lib.php
--- a/vendor/lib.php
+++ b/vendor/lib.php
@@ -1,3 +1,4 @@
+// vendored
`
	result := filterExcluded(diff, []string{"vendor/**"})
	if strings.Contains(result, "vendor/lib.php") {
		t.Error("vendor/lib.php should be excluded")
	}
	if !strings.Contains(result, "src/Service/Mailer.php") {
		t.Error("src/Service/Mailer.php should be kept")
	}
}

func TestMatchesAny(t *testing.T) {
	tests := []struct {
		path     string
		patterns []string
		want     bool
	}{
		{"vendor/lib.php", []string{"vendor/**"}, true},
		{"src/main.php", []string{"vendor/**"}, false},
		{"deep/path/file.min.js", []string{"**/*.min.js"}, true},
		{"config.yaml", []string{"*.yaml"}, true},
		{"src/main.php", nil, false},
	}
	for _, tt := range tests {
		if got := MatchesAny(tt.path, tt.patterns); got != tt.want {
			t.Errorf("MatchesAny(%q, %v) = %v, want %v", tt.path, tt.patterns, got, tt.want)
		}
	}
}

func TestSplitDiffSections(t *testing.T) {
	diff := "diff --git a/a.php b/a.php\n+line\ndiff --git a/b.php b/b.php\n+line\n"
	sections := splitDiffSections(diff)
	if len(sections) != 2 {
		t.Fatalf("got %d sections, want 2", len(sections))
	}
	if !strings.HasPrefix(sections[1], "diff --git a/b.php") {
		t.Errorf("second section = %q", sections[1])
	}
}

func TestRefNotFoundError_Message(t *testing.T) {
	err := &RefNotFoundError{Ref: "feature/nope"}
	if !strings.Contains(err.Error(), "feature/nope") {
		t.Errorf("error message %q should name the ref", err.Error())
	}
}

// setupComparisonRepo creates a temp repo with a main branch and a feature
// branch that adds a controller file, then chdirs into it.
func setupComparisonRepo(t *testing.T) string {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}
	dir := t.TempDir()

	run := func(args ...string) {
		t.Helper()
		cmd := exec.Command(args[0], args[1:]...)
		cmd.Dir = dir
		cmd.Env = append(os.Environ(),
			"GIT_AUTHOR_NAME=test",
			"GIT_AUTHOR_EMAIL=test@test.com",
			"GIT_COMMITTER_NAME=test",
			"GIT_COMMITTER_EMAIL=test@test.com",
		)
		out, err := cmd.CombinedOutput()
		if err != nil {
			t.Fatalf("command %v failed: %v\n%s", args, err, out)
		}
	}

	run("git", "init")
	run("git", "checkout", "-b", "main")

	os.MkdirAll(filepath.Join(dir, "src"), 0o755)
	os.WriteFile(filepath.Join(dir, "src", "index.php"), []byte("<?php\n"), 0o644)
	run("git", "add", "-A")
	run("git", "commit", "-m", "init")

	run("git", "checkout", "-b", "feature/users")
	os.MkdirAll(filepath.Join(dir, "src", "Controller"), 0o755)
	os.WriteFile(filepath.Join(dir, "src", "Controller", "UserController.php"),
		[]byte("<?php\n\nclass UserController {}\n"), 0o644)
	run("git", "add", "-A")
	run("git", "commit", "-m", "add user controller")

	origDir, _ := os.Getwd()
	os.Chdir(dir)
	t.Cleanup(func() { os.Chdir(origDir) })

	return dir
}

func TestResolveRef(t *testing.T) {
	setupComparisonRepo(t)

	sha, err := ResolveRef("main")
	if err != nil {
		t.Fatalf("ResolveRef(main) error: %v", err)
	}
	if len(sha) != 40 {
		t.Errorf("sha = %q, want 40-char SHA", sha)
	}

	_, err = ResolveRef("no-such-branch")
	if err == nil {
		t.Fatal("ResolveRef should fail for a missing ref")
	}
	var refErr *RefNotFoundError
	if !errors.As(err, &refErr) {
		t.Errorf("error type = %T, want *RefNotFoundError", err)
	}
}

func TestListChangedFiles(t *testing.T) {
	setupComparisonRepo(t)

	files, err := ListChangedFiles("main", "feature/users", DiffOptions{})
	if err != nil {
		t.Fatalf("ListChangedFiles error: %v", err)
	}
	if len(files) != 1 {
		t.Fatalf("got %d files, want 1: %v", len(files), files)
	}
	if files[0] != "src/Controller/UserController.php" {
		t.Errorf("files[0] = %q", files[0])
	}
}

func TestRenderDiff_SameRef(t *testing.T) {
	setupComparisonRepo(t)

	diff, err := RenderDiff("main", "main", DiffOptions{})
	if err != nil {
		t.Fatalf("RenderDiff error: %v", err)
	}
	if strings.TrimSpace(diff) != "" {
		t.Errorf("diff of a ref against itself should be empty, got %q", diff)
	}
}

func TestRenderDiff_Truncation(t *testing.T) {
	setupComparisonRepo(t)

	diff, err := RenderDiff("main", "feature/users", DiffOptions{MaxDiffBytes: 50})
	if err != nil {
		t.Fatalf("RenderDiff error: %v", err)
	}
	if !strings.Contains(diff, "truncated at max-diff-bytes limit") {
		t.Error("truncated diff should carry the truncation marker")
	}
}

func TestCompare(t *testing.T) {
	setupComparisonRepo(t)

	cmp, err := Compare("main", "feature/users", DiffOptions{})
	if err != nil {
		t.Fatalf("Compare error: %v", err)
	}
	if cmp.BaseRef != "main" || cmp.HeadRef != "feature/users" {
		t.Errorf("refs = %q..%q", cmp.BaseRef, cmp.HeadRef)
	}
	if len(cmp.Files) != 1 {
		t.Fatalf("got %d changed files, want 1", len(cmp.Files))
	}
	if !strings.Contains(cmp.Diff, "UserController") {
		t.Error("diff should contain the changed file content")
	}
	if cmp.Repo.Branch != "feature/users" {
		t.Errorf("branch = %q, want feature/users", cmp.Repo.Branch)
	}
}

func TestCompare_FilesMatchFilteredDiff(t *testing.T) {
	dir := setupComparisonRepo(t)

	run := func(args ...string) {
		t.Helper()
		cmd := exec.Command(args[0], args[1:]...)
		cmd.Dir = dir
		cmd.Env = append(os.Environ(),
			"GIT_AUTHOR_NAME=test",
			"GIT_AUTHOR_EMAIL=test@test.com",
			"GIT_COMMITTER_NAME=test",
			"GIT_COMMITTER_EMAIL=test@test.com",
		)
		out, err := cmd.CombinedOutput()
		if err != nil {
			t.Fatalf("command %v failed: %v\n%s", args, err, out)
		}
	}

	os.MkdirAll(filepath.Join(dir, "vendor"), 0o755)
	os.WriteFile(filepath.Join(dir, "vendor", "autoload.php"), []byte("<?php\n"), 0o644)
	run("git", "add", "-A")
	run("git", "commit", "-m", "add vendored file")

	cmp, err := Compare("main", "feature/users", DiffOptions{Exclude: []string{"vendor/**"}})
	if err != nil {
		t.Fatalf("Compare error: %v", err)
	}
	if strings.Contains(cmp.Diff, "vendor/autoload.php") {
		t.Error("excluded path should not appear in the diff")
	}
	for _, f := range cmp.Files {
		if f == "vendor/autoload.php" {
			t.Error("excluded path should not appear in the file listing")
		}
	}
	// The listing is derived from the rendered diff, so every listed path
	// must appear in it.
	for _, f := range cmp.Files {
		if !strings.Contains(cmp.Diff, "+++ b/"+f) {
			t.Errorf("listed path %q missing from the diff", f)
		}
	}
	if len(cmp.Files) != 1 || cmp.Files[0] != "src/Controller/UserController.php" {
		t.Errorf("Files = %v, want only the controller", cmp.Files)
	}
}

func TestCompare_BadRef(t *testing.T) {
	setupComparisonRepo(t)

	_, err := Compare("main", "no-such-branch", DiffOptions{})
	if err == nil {
		t.Fatal("Compare should fail for a missing head ref")
	}
}

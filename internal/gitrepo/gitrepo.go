package gitrepo

import (
	"fmt"
	"os/exec"
	"strings"
)

// DiffOptions controls how the comparison diff is gathered.
type DiffOptions struct {
	ContextLines int
	MaxDiffBytes int
	Exclude      []string
}

// RepoMeta contains git repository metadata.
type RepoMeta struct {
	Root   string
	Head   string
	Branch string
}

// Comparison holds everything gathered for a base..head comparison.
type Comparison struct {
	BaseRef string
	HeadRef string
	Diff    string
	Files   []string
	Repo    RepoMeta
}

// RefNotFoundError indicates a supplied ref does not resolve.
type RefNotFoundError struct {
	Ref string
	Err error
}

func (e *RefNotFoundError) Error() string {
	return fmt.Sprintf("ref not found: %s", e.Ref)
}

func (e *RefNotFoundError) Unwrap() error { return e.Err }

// ComparisonError indicates the diff between two refs could not be computed.
type ComparisonError struct {
	Base string
	Head string
	Err  error
}

func (e *ComparisonError) Error() string {
	return fmt.Sprintf("comparing %s...%s: %v", e.Base, e.Head, e.Err)
}

func (e *ComparisonError) Unwrap() error { return e.Err }

// Meta collects repository metadata from git.
func Meta() (RepoMeta, error) {
	root, err := gitOutput("rev-parse", "--show-toplevel")
	if err != nil {
		return RepoMeta{}, fmt.Errorf("not a git repository: %w", err)
	}
	head, err := gitOutput("rev-parse", "HEAD")
	if err != nil {
		head = "" // new repo with no commits
	}
	branch, err := gitOutput("rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		branch = ""
	}
	return RepoMeta{
		Root:   strings.TrimSpace(root),
		Head:   strings.TrimSpace(head),
		Branch: strings.TrimSpace(branch),
	}, nil
}

// ResolveRef verifies that a ref exists and returns its commit SHA.
func ResolveRef(name string) (string, error) {
	out, err := gitOutput("rev-parse", "--verify", "--quiet", name+"^{commit}")
	if err != nil {
		return "", &RefNotFoundError{Ref: name, Err: err}
	}
	return strings.TrimSpace(out), nil
}

// ListChangedFiles returns the paths changed between the merge-base of
// base/head and head's tip, in git's natural diff order.
func ListChangedFiles(base, head string, opts DiffOptions) ([]string, error) {
	out, err := gitOutput("diff", "--name-only", base+"..."+head)
	if err != nil {
		return nil, &ComparisonError{Base: base, Head: head, Err: err}
	}
	var files []string
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if len(opts.Exclude) > 0 && MatchesAny(line, opts.Exclude) {
			continue
		}
		files = append(files, line)
	}
	return files, nil
}

// RenderDiff returns the unified diff text between the merge-base of
// base/head and head's tip. An empty result means no changes.
func RenderDiff(base, head string, opts DiffOptions) (string, error) {
	args := []string{"diff"}
	if opts.ContextLines > 0 {
		args = append(args, fmt.Sprintf("-U%d", opts.ContextLines))
	}
	args = append(args, base+"..."+head)
	diff, err := gitOutput(args...)
	if err != nil {
		return "", &ComparisonError{Base: base, Head: head, Err: err}
	}

	// Filter excludes before truncating so excluded files don't consume the byte budget
	if len(opts.Exclude) > 0 {
		diff = filterExcluded(diff, opts.Exclude)
	}

	if opts.MaxDiffBytes > 0 && len(diff) > opts.MaxDiffBytes {
		diff = diff[:opts.MaxDiffBytes] + "\n... (diff truncated at max-diff-bytes limit)\n"
	}
	return diff, nil
}

// Compare resolves both refs and gathers the diff, changed file list, and
// repository metadata for a base..head comparison.
func Compare(base, head string, opts DiffOptions) (Comparison, error) {
	if _, err := ResolveRef(base); err != nil {
		return Comparison{}, err
	}
	if _, err := ResolveRef(head); err != nil {
		return Comparison{}, err
	}

	diff, err := RenderDiff(base, head, opts)
	if err != nil {
		return Comparison{}, err
	}

	// Derive the listing from the rendered diff rather than a second
	// git invocation, so the listing always matches the embedded diff
	// (same exclusions, same truncation).
	files := ExtractFiles(diff)

	meta, err := Meta()
	if err != nil {
		meta = RepoMeta{}
	}

	return Comparison{
		BaseRef: base,
		HeadRef: head,
		Diff:    diff,
		Files:   files,
		Repo:    meta,
	}, nil
}

func filterExcluded(diff string, excludes []string) string {
	sections := splitDiffSections(diff)
	var kept []string
	for _, section := range sections {
		path := extractPathFromSection(section)
		if path == "" || !MatchesAny(path, excludes) {
			kept = append(kept, section)
		}
	}
	return strings.Join(kept, "")
}

func splitDiffSections(diff string) []string {
	var sections []string
	lines := strings.Split(diff, "\n")
	var current strings.Builder
	for _, line := range lines {
		if strings.HasPrefix(line, "diff --git") && current.Len() > 0 {
			sections = append(sections, current.String())
			current.Reset()
		}
		current.WriteString(line)
		current.WriteString("\n")
	}
	if current.Len() > 0 {
		sections = append(sections, current.String())
	}
	return sections
}

func extractPathFromSection(section string) string {
	for _, line := range strings.Split(section, "\n") {
		if strings.HasPrefix(line, "+++ b/") {
			return strings.TrimPrefix(line, "+++ b/")
		}
	}
	return ""
}

// ExtractFiles pulls the changed file paths out of a unified diff,
// deduplicated, in diff order.
func ExtractFiles(diff string) []string {
	var files []string
	seen := make(map[string]bool)
	for _, line := range strings.Split(diff, "\n") {
		if strings.HasPrefix(line, "+++ b/") {
			f := strings.TrimPrefix(line, "+++ b/")
			if !seen[f] {
				seen[f] = true
				files = append(files, f)
			}
		}
	}
	return files
}

func gitOutput(args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	out, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return string(out), fmt.Errorf("%s: %s", err, string(exitErr.Stderr))
		}
		return "", err
	}
	return string(out), nil
}

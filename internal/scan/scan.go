package scan

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// maxFileBytes is the per-file size limit for content keyword checks.
const maxFileBytes = 1 << 20 // 1MB

// Pattern describes one metric: files matching Glob under the scanned
// roots, optionally restricted to files whose content contains Keyword.
type Pattern struct {
	Metric  string
	Glob    string
	Keyword string
}

// Statistics maps metric names to file counts.
type Statistics map[string]int

// DefaultRoots returns the directories scanned when no override is given.
func DefaultRoots() []string {
	return []string{"src", "templates", "tests", "config", "migrations"}
}

// DefaultPatterns returns the build-time metric set.
func DefaultPatterns() []Pattern {
	return []Pattern{
		{Metric: "TotalSourceFiles", Glob: "*.php"},
		{Metric: "TemplateFiles", Glob: "*.twig"},
		{Metric: "TestFiles", Glob: "*Test.php"},
		{Metric: "EntityFiles", Glob: "*.php", Keyword: "#[ORM\\Entity"},
		{Metric: "LegacyQueryFiles", Glob: "*.php", Keyword: "mysql_query("},
	}
}

// Scan counts files under the given roots for each pattern. Missing roots
// and unreadable files contribute zero; the scan never fails. Every metric
// is present in the result, zero-valued when nothing matched.
func Scan(roots []string, patterns []Pattern) Statistics {
	stats := make(Statistics, len(patterns))
	for _, p := range patterns {
		stats[p.Metric] = 0
	}

	// Overlapping or repeated roots must not double-count a file.
	seen := make(map[string]bool)

	for _, root := range roots {
		info, err := os.Stat(root)
		if err != nil || !info.IsDir() {
			continue // missing roots degrade to zero
		}
		filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil || d.IsDir() {
				return nil
			}
			key := path
			if abs, err := filepath.Abs(path); err == nil {
				key = abs
			}
			if seen[key] {
				return nil
			}
			seen[key] = true
			for i := range patterns {
				if fileMatches(path, patterns[i]) {
					stats[patterns[i].Metric]++
				}
			}
			return nil
		})
	}

	return stats
}

func fileMatches(path string, p Pattern) bool {
	matched, err := filepath.Match(p.Glob, filepath.Base(path))
	if err != nil || !matched {
		return false
	}
	if p.Keyword == "" {
		return true
	}
	info, err := os.Stat(path)
	if err != nil || info.Size() > maxFileBytes {
		return false
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return false // unreadable files count as zero
	}
	return strings.Contains(string(data), p.Keyword)
}

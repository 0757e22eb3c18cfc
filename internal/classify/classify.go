package classify

import "strings"

// Category is a fixed label used to bucket changed files by naming
// convention.
type Category string

const (
	CategoryController Category = "Controller"
	CategoryEntity     Category = "Entity"
	CategoryRepository Category = "Repository"
	CategoryService    Category = "Service"
	CategoryForm       Category = "Form"
	CategoryCommand    Category = "Command"
	CategoryMigration  Category = "Migration"
	CategoryTemplate   Category = "Template"
	CategoryTest       Category = "Test"
	CategoryConfig     Category = "Config"
	CategoryFrontend   Category = "Frontend"
)

// rule is a predicate bound to a category. A path matches when it contains
// the substring or ends with one of the suffixes. Substring tests are
// case-sensitive.
type rule struct {
	category Category
	substr   string
	suffixes []string
}

// rules is the build-time category set, in rendering order. Predicates
// deliberately overlap: a path containing both "Controller" and "Test"
// counts toward both categories.
var rules = []rule{
	{category: CategoryController, substr: "Controller"},
	{category: CategoryEntity, substr: "Entity"},
	{category: CategoryRepository, substr: "Repository"},
	{category: CategoryService, substr: "Service"},
	{category: CategoryForm, substr: "Form"},
	{category: CategoryCommand, substr: "Command"},
	{category: CategoryMigration, substr: "migrations/"},
	{category: CategoryTemplate, suffixes: []string{".twig"}},
	{category: CategoryTest, substr: "Test"},
	{category: CategoryConfig, suffixes: []string{".yaml", ".yml", ".env", ".ini"}},
	{category: CategoryFrontend, suffixes: []string{".js", ".ts", ".css", ".scss"}},
}

// Classification maps every category to the number of matching paths.
// Counts are not a partition and may sum to more than the number of paths.
type Classification map[Category]int

// Categories returns all categories in their fixed rendering order.
func Categories() []Category {
	cats := make([]Category, len(rules))
	for i, r := range rules {
		cats[i] = r.category
	}
	return cats
}

// Classify buckets the given paths by category. The result always holds a
// count for every category; empty input yields all zeros. Order of paths
// does not affect the counts.
func Classify(paths []string) Classification {
	counts := make(Classification, len(rules))
	for _, r := range rules {
		counts[r.category] = 0
	}
	for _, path := range paths {
		for _, r := range rules {
			if matches(path, r) {
				counts[r.category]++
			}
		}
	}
	return counts
}

func matches(path string, r rule) bool {
	if r.substr != "" && strings.Contains(path, r.substr) {
		return true
	}
	for _, suffix := range r.suffixes {
		if strings.HasSuffix(path, suffix) {
			return true
		}
	}
	return false
}

package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/precis-cli/precis/internal/classify"
	"github.com/precis-cli/precis/internal/scan"
)

// NotApplicable is rendered for ratios with a zero denominator.
const NotApplicable = "not applicable"

// Section is one named block of rendered report text.
type Section struct {
	Name string
	Body string
}

// Report is an ordered sequence of rendered sections, immutable once built.
type Report struct {
	Sections []Section
}

// Text joins all sections into a single markdown document.
func (r *Report) Text() string {
	var b strings.Builder
	for _, s := range r.Sections {
		fmt.Fprintf(&b, "## %s\n\n", s.Name)
		b.WriteString(s.Body)
		if !strings.HasSuffix(s.Body, "\n") {
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// Percent returns floor(part*100/total) as a string, or NotApplicable when
// total is zero.
func Percent(part, total int) string {
	if total == 0 {
		return NotApplicable
	}
	return fmt.Sprintf("%d%%", part*100/total)
}

// Render builds the report from a changed file set, its classification, and
// the project scan statistics. Section order is fixed; the statistics
// section is omitted when stats is empty. Pure text assembly, no I/O.
func Render(changed []string, cls classify.Classification, stats scan.Statistics) *Report {
	r := &Report{}
	r.Sections = append(r.Sections, summarySection(changed, stats))
	r.Sections = append(r.Sections, categorySection(cls))
	if len(stats) > 0 {
		r.Sections = append(r.Sections, statsSection(stats))
	}
	r.Sections = append(r.Sections, listingSection(changed))
	return r
}

func summarySection(changed []string, stats scan.Statistics) Section {
	var b strings.Builder
	fmt.Fprintf(&b, "Changed files: %d\n", len(changed))
	// The numerator counts every changed file, not just source files, so
	// the ratio can exceed 100% on template-heavy branches.
	fmt.Fprintf(&b, "Changed files relative to project source files: %s\n",
		Percent(len(changed), stats["TotalSourceFiles"]))
	return Section{Name: "Summary", Body: b.String()}
}

func categorySection(cls classify.Classification) Section {
	var b strings.Builder
	b.WriteString("| Category | Files |\n")
	b.WriteString("|----------|-------|\n")
	for _, cat := range classify.Categories() {
		fmt.Fprintf(&b, "| %s | %d |\n", cat, cls[cat])
	}
	return Section{Name: "Changed File Categories", Body: b.String()}
}

func statsSection(stats scan.Statistics) Section {
	metrics := make([]string, 0, len(stats))
	for m := range stats {
		metrics = append(metrics, m)
	}
	sort.Strings(metrics)

	var b strings.Builder
	b.WriteString("| Metric | Count |\n")
	b.WriteString("|--------|-------|\n")
	for _, m := range metrics {
		fmt.Fprintf(&b, "| %s | %d |\n", m, stats[m])
	}
	return Section{Name: "Project Statistics", Body: b.String()}
}

func listingSection(changed []string) Section {
	if len(changed) == 0 {
		return Section{Name: "Changed Files", Body: "(none)\n"}
	}
	var b strings.Builder
	for _, f := range changed {
		fmt.Fprintf(&b, "- %s\n", f)
	}
	return Section{Name: "Changed Files", Body: b.String()}
}

package prompt

import (
	"fmt"
	"strings"

	"github.com/precis-cli/precis/internal/report"
)

// Meta identifies the comparison a prompt was assembled from. It carries no
// timestamps so reruns against unchanged refs stay byte-identical.
type Meta struct {
	BaseRef  string
	HeadRef  string
	RepoRoot string
	Branch   string
}

// Assemble concatenates the final prompt document. Order is fixed: metadata
// header, review instructions, report sections, raw diff, closing
// checklist. Assembly itself cannot fail.
func Assemble(meta Meta, rep *report.Report, diffText, instructions string) string {
	var b strings.Builder

	b.WriteString("# Code Review Request\n\n")
	fmt.Fprintf(&b, "Comparing `%s` against `%s`", meta.HeadRef, meta.BaseRef)
	if meta.RepoRoot != "" {
		fmt.Fprintf(&b, " in `%s`", meta.RepoRoot)
	}
	b.WriteString("\n\n")

	b.WriteString("## Review Instructions\n\n")
	b.WriteString(instructions)
	b.WriteString("\n\n")

	b.WriteString(rep.Text())
	b.WriteString("\n\n")

	b.WriteString("## Diff\n\n")
	b.WriteString("```diff\n")
	b.WriteString(diffText)
	if !strings.HasSuffix(diffText, "\n") {
		b.WriteString("\n")
	}
	b.WriteString("```\n\n")

	b.WriteString(ClosingChecklist())
	b.WriteString("\n")

	return b.String()
}

package output

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/precis-cli/precis/internal/classify"
	"github.com/precis-cli/precis/internal/generate"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("78"))
	faintStyle   = lipgloss.NewStyle().Faint(true)
)

// PrintSummary writes a short styled run summary, intended for stderr so
// it never mixes with prompt output on stdout.
func PrintSummary(w io.Writer, res *generate.Result) {
	if res.Outcome == generate.NoChanges {
		fmt.Fprintln(w, successStyle.Render(
			fmt.Sprintf("No changes between %s and %s.", res.BaseRef, res.HeadRef)))
		return
	}

	fmt.Fprintln(w, headerStyle.Render(
		fmt.Sprintf("Comparing %s against %s", res.HeadRef, res.BaseRef)))
	fmt.Fprintln(w, successStyle.Render(
		fmt.Sprintf("%d changed file(s)", len(res.Changed))))

	for _, cat := range classify.Categories() {
		n := res.Classification[cat]
		if n == 0 {
			continue
		}
		fmt.Fprintln(w, faintStyle.Render(fmt.Sprintf("  %s: %d", cat, n)))
	}
}

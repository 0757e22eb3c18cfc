package output

import (
	"fmt"
	"io"

	"github.com/precis-cli/precis/internal/generate"
)

// MarkdownWriter emits the assembled prompt verbatim. This is the default
// format; the prompt is already markdown.
type MarkdownWriter struct{}

func (m *MarkdownWriter) Write(w io.Writer, res *generate.Result) error {
	_, err := io.WriteString(w, res.Prompt)
	return err
}

// ReportWriter emits only the change report, without instructions or diff.
// Useful for a quick look at what a branch touches.
type ReportWriter struct{}

func (r *ReportWriter) Write(w io.Writer, res *generate.Result) error {
	if res.Report == nil {
		return fmt.Errorf("no report in result")
	}
	_, err := io.WriteString(w, res.Report.Text())
	return err
}

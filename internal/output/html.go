package output

import (
	"fmt"
	"io"

	"github.com/precis-cli/precis/internal/generate"
	"github.com/yuin/goldmark"
)

const htmlHeader = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Code Review Prompt</title>
<style>
body { font-family: sans-serif; max-width: 56rem; margin: 2rem auto; padding: 0 1rem; }
pre { background: #f6f8fa; padding: 1rem; overflow-x: auto; }
table { border-collapse: collapse; }
td, th { border: 1px solid #d0d7de; padding: 0.25rem 0.75rem; }
</style>
</head>
<body>
`

const htmlFooter = `</body>
</html>
`

// HTMLWriter renders the prompt's markdown to a standalone HTML page.
type HTMLWriter struct{}

func (h *HTMLWriter) Write(w io.Writer, res *generate.Result) error {
	if _, err := io.WriteString(w, htmlHeader); err != nil {
		return err
	}
	if err := goldmark.Convert([]byte(res.Prompt), w); err != nil {
		return fmt.Errorf("rendering markdown: %w", err)
	}
	_, err := io.WriteString(w, htmlFooter)
	return err
}

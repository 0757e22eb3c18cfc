package output

import (
	"fmt"
	"io"
	"os"

	"github.com/precis-cli/precis/internal/generate"
)

// Writer writes a generation result in a specific format.
type Writer interface {
	Write(w io.Writer, res *generate.Result) error
}

// GetWriter returns a writer for the specified format.
func GetWriter(format string) (Writer, error) {
	switch format {
	case "markdown":
		return &MarkdownWriter{}, nil
	case "html":
		return &HTMLWriter{}, nil
	case "report":
		return &ReportWriter{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

// WritePrompt writes the result to the specified output (file path or stdout).
func WritePrompt(res *generate.Result, format, outPath string) error {
	writer, err := GetWriter(format)
	if err != nil {
		return err
	}

	var w io.Writer
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		w = f
	} else {
		w = os.Stdout
	}

	return writer.Write(w, res)
}

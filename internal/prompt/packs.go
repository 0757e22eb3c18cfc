package prompt

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Pack is an instruction pack loaded from --pack.
type Pack struct {
	Focus    []string        `json:"focus,omitempty"`
	Required []RequiredCheck `json:"required,omitempty"`
}

// RequiredCheck is a review point that must always be addressed.
type RequiredCheck struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// LoadPack loads an instruction pack from disk. Returns nil Pack and nil
// error if path is empty.
func LoadPack(path string) (*Pack, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading pack file: %w", err)
	}
	var pack Pack
	if err := json.Unmarshal(data, &pack); err != nil {
		return nil, fmt.Errorf("parsing pack file: %w", err)
	}
	return &pack, nil
}

// PackSection returns additional instruction text derived from a pack.
func PackSection(pack *Pack) string {
	if pack == nil {
		return ""
	}

	var b strings.Builder

	if len(pack.Focus) > 0 {
		fmt.Fprintf(&b, "\nFocus areas: %s. Prioritize remarks in these areas.\n",
			strings.Join(pack.Focus, ", "))
	}

	if len(pack.Required) > 0 {
		b.WriteString("\nRequired checks (always evaluate these):\n")
		for _, req := range pack.Required {
			fmt.Fprintf(&b, "- [%s] %s\n", req.ID, req.Text)
		}
	}

	return b.String()
}

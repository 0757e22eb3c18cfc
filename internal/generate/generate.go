package generate

import (
	"fmt"
	"os"

	"github.com/precis-cli/precis/internal/classify"
	"github.com/precis-cli/precis/internal/config"
	"github.com/precis-cli/precis/internal/gitrepo"
	"github.com/precis-cli/precis/internal/prompt"
	"github.com/precis-cli/precis/internal/redact"
	"github.com/precis-cli/precis/internal/report"
	"github.com/precis-cli/precis/internal/scan"
)

// Outcome distinguishes a produced prompt from a comparison with no changes.
type Outcome int

const (
	Success Outcome = iota
	NoChanges
)

// Result holds everything a run produced. When Outcome is NoChanges only
// the ref fields are set.
type Result struct {
	Outcome        Outcome
	BaseRef        string
	HeadRef        string
	Changed        []string
	Classification classify.Classification
	Stats          scan.Statistics
	Report         *report.Report
	Prompt         string
}

// Run executes the pipeline over an already-gathered comparison:
// classify, scan (when enabled), render, redact, assemble. It touches no
// clocks or randomness, so the same comparison and config always yield a
// byte-identical prompt.
func Run(cmp gitrepo.Comparison, cfg config.Config) (*Result, error) {
	res := &Result{
		Outcome: Success,
		BaseRef: cmp.BaseRef,
		HeadRef: cmp.HeadRef,
	}

	if cmp.Diff == "" {
		res.Outcome = NoChanges
		return res, nil
	}

	res.Changed = cmp.Files
	res.Classification = classify.Classify(cmp.Files)

	if cfg.ScanEnabled {
		res.Stats = scan.Scan(scan.DefaultRoots(), scan.DefaultPatterns())
	}

	res.Report = report.Render(res.Changed, res.Classification, res.Stats)

	diffText := cmp.Diff
	if cfg.RedactSecrets {
		diffText = redact.Secrets(diffText)
	}

	instructions, err := loadInstructions(cfg.InstructionsFile)
	if err != nil {
		return nil, err
	}
	pack, err := prompt.LoadPack(cfg.PackFile)
	if err != nil {
		return nil, err
	}
	if section := prompt.PackSection(pack); section != "" {
		instructions += "\n" + section
	}

	meta := prompt.Meta{
		BaseRef:  cmp.BaseRef,
		HeadRef:  cmp.HeadRef,
		RepoRoot: cmp.Repo.Root,
		Branch:   cmp.Repo.Branch,
	}
	res.Prompt = prompt.Assemble(meta, res.Report, diffText, instructions)

	return res, nil
}

// loadInstructions returns the review instruction block, reading from an
// override file when one is configured.
func loadInstructions(path string) (string, error) {
	if path == "" {
		return prompt.DefaultInstructions(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading instructions file: %w", err)
	}
	return string(data), nil
}

package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/precis-cli/precis/internal/config"
	"github.com/precis-cli/precis/internal/generate"
	"github.com/precis-cli/precis/internal/gitrepo"
	"github.com/precis-cli/precis/internal/output"
	"github.com/spf13/cobra"
)

// Shared generation flags
var (
	flagBase         string
	flagOut          string
	flagFormat       string
	flagStdout       bool
	flagCopy         bool
	flagNoScan       bool
	flagExclude      string
	flagContextLines int
	flagMaxDiffBytes int
	flagInstructions string
	flagPack         string
	flagNoRedact     bool
)

func addGenerateFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagBase, "base", "", "Ref to compare against (default: configured base)")
	cmd.Flags().StringVar(&flagOut, "out", "", "Output file path")
	cmd.Flags().StringVar(&flagFormat, "format", "", "Output format (markdown, html, report)")
	cmd.Flags().BoolVar(&flagStdout, "stdout", false, "Write the prompt to stdout instead of a file")
	cmd.Flags().BoolVar(&flagCopy, "copy", false, "Copy the prompt to the clipboard")
	cmd.Flags().BoolVar(&flagNoScan, "no-scan", false, "Skip the project statistics scan")
	cmd.Flags().StringVar(&flagExclude, "exclude", "", "Exclude file path globs (comma-separated)")
	cmd.Flags().IntVar(&flagContextLines, "context-lines", 0, "Number of context lines in diff")
	cmd.Flags().IntVar(&flagMaxDiffBytes, "max-diff-bytes", 0, "Maximum diff size in bytes")
	cmd.Flags().StringVar(&flagInstructions, "instructions", "", "File with custom review instructions")
	cmd.Flags().StringVar(&flagPack, "pack", "", "JSON instruction pack with focus areas and required checks")
	cmd.Flags().BoolVar(&flagNoRedact, "no-redact", false, "Disable secret redaction (use with caution)")
}

func buildOverrides() map[string]string {
	m := make(map[string]string)
	if flagBase != "" {
		m["baseRef"] = flagBase
	}
	if flagOut != "" {
		m["outPath"] = flagOut
	}
	if flagFormat != "" {
		m["format"] = flagFormat
	}
	if flagContextLines > 0 {
		m["contextLines"] = fmt.Sprintf("%d", flagContextLines)
	}
	if flagMaxDiffBytes > 0 {
		m["maxDiffBytes"] = fmt.Sprintf("%d", flagMaxDiffBytes)
	}
	if flagInstructions != "" {
		m["instructionsFile"] = flagInstructions
	}
	if flagPack != "" {
		m["packFile"] = flagPack
	}
	return m
}

func loadGenerateConfig() (config.Config, error) {
	cfg, err := config.Load(buildOverrides())
	if err != nil {
		return config.Config{}, err
	}
	if flagNoScan {
		cfg.ScanEnabled = false
	}
	if flagNoRedact {
		cfg.RedactSecrets = false
		fmt.Fprintln(os.Stderr, "WARNING: secret redaction is disabled")
	}
	if flagExclude != "" {
		cfg.Exclude = append(cfg.Exclude, splitComma(flagExclude)...)
	}
	return cfg, nil
}

func splitComma(s string) []string {
	parts := strings.Split(s, ",")
	var result []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}

func buildDiffOpts(cfg config.Config) gitrepo.DiffOptions {
	return gitrepo.DiffOptions{
		ContextLines: cfg.ContextLines,
		MaxDiffBytes: cfg.MaxDiffBytes,
		Exclude:      cfg.Exclude,
	}
}

// runGenerate gathers the comparison and runs the pipeline, mapping errors
// to exit codes. Returns nil on any handled failure; exitCode carries the
// outcome.
func runGenerate(head string, cfg config.Config) *generate.Result {
	cmp, err := gitrepo.Compare(cfg.BaseRef, head, buildDiffOpts(cfg))
	if err != nil {
		var notFound *gitrepo.RefNotFoundError
		if errors.As(err, &notFound) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitUsageError
			return nil
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitCode = ExitRuntimeError
		return nil
	}

	res, err := generate.Run(cmp, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitCode = ExitRuntimeError
		return nil
	}
	return res
}

func writeResult(res *generate.Result, cfg config.Config) bool {
	outPath := cfg.OutPath
	if flagStdout {
		outPath = ""
	}
	if err := output.WritePrompt(res, cfg.Format, outPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		exitCode = ExitRuntimeError
		return false
	}
	if flagCopy {
		if err := clipboard.WriteAll(res.Prompt); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not copy to clipboard: %v\n", err)
		}
	}
	if outPath != "" {
		fmt.Fprintf(os.Stderr, "Prompt written to %s\n", outPath)
	}
	return true
}

var generateCmd = &cobra.Command{
	Use:   "generate <head>",
	Short: "Generate a review prompt for the changes a ref introduces",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadGenerateConfig()
		if err != nil {
			return err
		}
		res := runGenerate(args[0], cfg)
		if res == nil {
			return nil
		}
		output.PrintSummary(os.Stderr, res)
		if res.Outcome == generate.NoChanges {
			return nil
		}
		writeResult(res, cfg)
		return nil
	},
}

func init() {
	addGenerateFlags(generateCmd)
}

package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/precis-cli/precis/internal/backends"
	"github.com/precis-cli/precis/internal/generate"
	"github.com/precis-cli/precis/internal/output"
	"github.com/spf13/cobra"
)

var (
	flagProvider  string
	flagModel     string
	flagMaxTokens int
)

var reviewCmd = &cobra.Command{
	Use:   "review <head>",
	Short: "Generate a review prompt and submit it to the configured backend",
	Long: "Generate a review prompt for the changes a ref introduces, write the\n" +
		"prompt artifact, and submit it to the configured AI backend. The artifact\n" +
		"is kept even when submission fails, so it can be resubmitted by hand.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadGenerateConfig()
		if err != nil {
			return err
		}
		if flagProvider != "" {
			cfg.Provider = flagProvider
		}
		if flagModel != "" {
			cfg.Model = flagModel
		}

		res := runGenerate(args[0], cfg)
		if res == nil {
			return nil
		}
		output.PrintSummary(os.Stderr, res)
		if res.Outcome == generate.NoChanges {
			return nil
		}

		// The artifact lands on disk before any network call, so a failed
		// submission still leaves something to resubmit.
		if !writeResult(res, cfg) {
			return nil
		}

		backend, err := backends.New(cfg.Provider, cfg.Model)
		if err != nil {
			if backends.IsAuthError(err) {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				exitCode = ExitAuthError
				return nil
			}
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitUsageError
			return nil
		}

		resp, err := backend.SubmitPrompt(context.Background(), backends.Request{
			Prompt:    res.Prompt,
			MaxTokens: flagMaxTokens,
		})
		if err != nil {
			if backends.IsAuthError(err) {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				exitCode = ExitAuthError
				return nil
			}
			fmt.Fprintf(os.Stderr, "Error: %v\nThe prompt artifact was kept; resubmit it when the backend recovers.\n", err)
			exitCode = ExitRuntimeError
			return nil
		}

		fmt.Fprintln(os.Stdout, resp.ReviewText)
		if resp.TokensUsed > 0 {
			fmt.Fprintf(os.Stderr, "(%s, %d tokens)\n", backend.Name(), resp.TokensUsed)
		}
		return nil
	},
}

func init() {
	addGenerateFlags(reviewCmd)
	reviewCmd.Flags().StringVar(&flagProvider, "provider", "", "AI backend (claude, gpt, copilot, placeholder)")
	reviewCmd.Flags().StringVar(&flagModel, "model", "", "Model name")
	reviewCmd.Flags().IntVar(&flagMaxTokens, "max-tokens", 0, "Maximum response tokens")
}

package cli

import (
	"fmt"
	"os"

	mcp "github.com/mark3labs/mcp-go/server"
	"github.com/precis-cli/precis/internal/config"
	"github.com/precis-cli/precis/internal/mcpserver"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve prompt generation over MCP (stdio transport)",
	Long: "Run precis as a Model Context Protocol server on stdio, exposing the\n" +
		"generate_review_prompt and change_report tools to agent frontends.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(nil)
		if err != nil {
			return err
		}

		s := mcpserver.New(cfg)
		if err := mcp.ServeStdio(s); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitRuntimeError
		}
		return nil
	},
}

package mcpserver

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/precis-cli/precis/internal/config"
)

// Version is stamped at build time.
var Version = "dev"

// New builds the precis MCP server with its tools registered. The server
// speaks stdio; the caller serves it with server.ServeStdio.
func New(cfg config.Config) *server.MCPServer {
	s := server.NewMCPServer(
		"precis",
		Version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
	)

	generateTool := NewGenerateTool(cfg)
	s.AddTool(generateTool.Definition(), generateTool.Handle)

	reportTool := NewReportTool(cfg)
	s.AddTool(reportTool.Definition(), reportTool.Handle)

	return s
}

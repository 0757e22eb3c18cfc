package mcpserver

import (
	"context"
	"fmt"
	"strconv"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/precis-cli/precis/internal/config"
	"github.com/precis-cli/precis/internal/generate"
	"github.com/precis-cli/precis/internal/gitrepo"
)

// GenerateTool handles the generate_review_prompt MCP tool.
type GenerateTool struct {
	cfg config.Config
}

// NewGenerateTool creates a GenerateTool.
func NewGenerateTool(cfg config.Config) *GenerateTool {
	return &GenerateTool{cfg: cfg}
}

// Definition returns the MCP tool definition for generate_review_prompt.
func (t *GenerateTool) Definition() mcp.Tool {
	return mcp.NewTool("generate_review_prompt",
		mcp.WithDescription(
			"Assemble an AI code-review prompt for the changes between two git refs "+
				"in the current repository. The prompt bundles review instructions, a "+
				"change report, and the unified diff.",
		),
		mcp.WithString("head",
			mcp.Required(),
			mcp.Description("Branch, tag, or commit whose changes should be reviewed"),
		),
		mcp.WithString("base",
			mcp.Description("Ref to compare against (default: configured base, usually origin/main)"),
		),
		mcp.WithString("scan",
			mcp.Description("Set to 'false' to skip the project statistics scan"),
		),
	)
}

// Handle processes the generate_review_prompt tool call.
func (t *GenerateTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	head := req.GetString("head", "")
	if head == "" {
		return mcp.NewToolResultError("'head' is required"), nil
	}
	base := req.GetString("base", t.cfg.BaseRef)

	cfg := t.cfg
	if v := req.GetString("scan", ""); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return mcp.NewToolResultError("'scan' must be true or false"), nil
		}
		cfg.ScanEnabled = b
	}

	res, err := runPipeline(base, head, cfg)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if res.Outcome == generate.NoChanges {
		return mcp.NewToolResultText(fmt.Sprintf("No changes between %s and %s.", base, head)), nil
	}
	return mcp.NewToolResultText(res.Prompt), nil
}

// ReportTool handles the change_report MCP tool.
type ReportTool struct {
	cfg config.Config
}

// NewReportTool creates a ReportTool.
func NewReportTool(cfg config.Config) *ReportTool {
	return &ReportTool{cfg: cfg}
}

// Definition returns the MCP tool definition for change_report.
func (t *ReportTool) Definition() mcp.Tool {
	return mcp.NewTool("change_report",
		mcp.WithDescription(
			"Summarize the changes between two git refs: file counts, category "+
				"breakdown, project statistics, and the changed-file listing. No diff.",
		),
		mcp.WithString("head",
			mcp.Required(),
			mcp.Description("Branch, tag, or commit whose changes should be summarized"),
		),
		mcp.WithString("base",
			mcp.Description("Ref to compare against (default: configured base, usually origin/main)"),
		),
	)
}

// Handle processes the change_report tool call.
func (t *ReportTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	head := req.GetString("head", "")
	if head == "" {
		return mcp.NewToolResultError("'head' is required"), nil
	}
	base := req.GetString("base", t.cfg.BaseRef)

	res, err := runPipeline(base, head, t.cfg)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if res.Outcome == generate.NoChanges {
		return mcp.NewToolResultText(fmt.Sprintf("No changes between %s and %s.", base, head)), nil
	}
	return mcp.NewToolResultText(res.Report.Text()), nil
}

func runPipeline(base, head string, cfg config.Config) (*generate.Result, error) {
	cmp, err := gitrepo.Compare(base, head, gitrepo.DiffOptions{
		ContextLines: cfg.ContextLines,
		MaxDiffBytes: cfg.MaxDiffBytes,
		Exclude:      cfg.Exclude,
	})
	if err != nil {
		return nil, err
	}
	return generate.Run(cmp, cfg)
}

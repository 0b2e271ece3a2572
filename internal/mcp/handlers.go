package mcp

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/hpungsan/gitjournal/internal/config"
	"github.com/hpungsan/gitjournal/internal/errors"
	"github.com/hpungsan/gitjournal/internal/ops"
)

// Tool definitions

var ensureToolDef = mcp.NewTool("journal_ensure",
	mcp.WithDescription("Create the git journal for the current branch if it does not exist yet. Idempotent: an existing journal is never overwritten."),
)

var updateToolDef = mcp.NewTool("journal_update",
	mcp.WithDescription("Refresh the current branch's journal metadata (git user, last updated, branch, HEAD) and append a dated log entry unless one for today exists. Narrative sections are preserved."),
)

var statusToolDef = mcp.NewTool("journal_status",
	mcp.WithDescription("Report the repository state the journal records: branch, normalized branch, HEAD, working tree summary, diff stat, and whether a journal exists for the branch. Read-only."),
)

var showToolDef = mcp.NewTool("journal_show",
	mcp.WithDescription("Return the current branch's journal content."),
	mcp.WithBoolean("html",
		mcp.Description("Render the journal markdown to HTML"),
	),
)

var listToolDef = mcp.NewTool("journal_list",
	mcp.WithDescription("List all journal folders in the repository with date, branch, and whether the journal file exists."),
)

// Handlers holds dependencies for MCP tool handlers.
type Handlers struct {
	git ops.GitClient
	cfg *config.Config
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(git ops.GitClient, cfg *config.Config) *Handlers {
	return &Handlers{git: git, cfg: cfg}
}

// ShowRequest represents the arguments for journal_show.
type ShowRequest struct {
	HTML bool `json:"html,omitempty"`
}

// HandleEnsure handles the journal_ensure tool call.
func (h *Handlers) HandleEnsure(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	output, err := ops.Ensure(h.git, h.cfg)
	if err != nil {
		return errorResult(err), nil
	}
	return jsonResult(output)
}

// HandleUpdate handles the journal_update tool call.
func (h *Handlers) HandleUpdate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	output, err := ops.Update(h.git, h.cfg)
	if err != nil {
		return errorResult(err), nil
	}
	return jsonResult(output)
}

// HandleStatus handles the journal_status tool call.
func (h *Handlers) HandleStatus(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	output, err := ops.Status(h.git, h.cfg)
	if err != nil {
		return errorResult(err), nil
	}
	return jsonResult(output)
}

// HandleShow handles the journal_show tool call.
func (h *Handlers) HandleShow(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[ShowRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	output, err := ops.Show(h.git, h.cfg, ops.ShowInput{HTML: input.HTML})
	if err != nil {
		return errorResult(err), nil
	}
	return jsonResult(output)
}

// HandleList handles the journal_list tool call.
func (h *Handlers) HandleList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	output, err := ops.List(h.git, h.cfg)
	if err != nil {
		return errorResult(err), nil
	}
	return jsonResult(output)
}

// errorResult formats an error as a tool result payload.
func errorResult(err error) *mcp.CallToolResult {
	var payload map[string]any

	if jErr, ok := err.(*errors.JournalError); ok {
		errorObj := map[string]any{
			"code":    jErr.Code,
			"message": jErr.Message,
			"status":  jErr.Status,
		}
		// Only include details for non-internal errors to avoid leaking
		// file paths from unexpected failures
		if jErr.Code != errors.ErrInternal && jErr.Details != nil {
			errorObj["details"] = jErr.Details
		}
		payload = map[string]any{"error": errorObj}
	} else {
		payload = map[string]any{
			"error": map[string]any{
				"code":    "INTERNAL",
				"message": "an internal error occurred",
				"status":  500,
			},
		}
	}

	content, _ := json.Marshal(payload)
	result := mcp.NewToolResultText(string(content))
	result.IsError = true
	return result
}

// jsonResult marshals a successful operation output as a tool result.
func jsonResult(data any) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultJSON(data)
}

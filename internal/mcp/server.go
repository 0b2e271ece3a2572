// Package mcp exposes the journal operations as MCP tools over stdio, so
// coding agents can keep branch journals without shelling out to the CLI.
package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/hpungsan/gitjournal/internal/config"
	"github.com/hpungsan/gitjournal/internal/ops"
)

// toolEntry pairs a tool definition with a handler factory.
type toolEntry struct {
	def     mcp.Tool
	handler func(*Handlers) server.ToolHandlerFunc
}

// toolRegistry maps tool names to their definitions and handler factories.
var toolRegistry = map[string]toolEntry{
	"journal_ensure": {
		def:     ensureToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleEnsure },
	},
	"journal_update": {
		def:     updateToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleUpdate },
	},
	"journal_status": {
		def:     statusToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleStatus },
	},
	"journal_show": {
		def:     showToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleShow },
	},
	"journal_list": {
		def:     listToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleList },
	},
}

// AllToolNames returns a list of all tool names.
func AllToolNames() []string {
	names := make([]string, 0, len(toolRegistry))
	for name := range toolRegistry {
		names = append(names, name)
	}
	return names
}

// NewServer creates a new MCP server with the journal tools registered.
func NewServer(git ops.GitClient, cfg *config.Config, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"gitjournal",
		version,
		server.WithToolCapabilities(true),
	)

	h := NewHandlers(git, cfg)
	for _, entry := range toolRegistry {
		s.AddTool(entry.def, entry.handler(h))
	}

	return s
}

// Run starts the MCP server using stdio transport.
func Run(git ops.GitClient, cfg *config.Config, version string) error {
	s := NewServer(git, cfg, version)
	return server.ServeStdio(s)
}

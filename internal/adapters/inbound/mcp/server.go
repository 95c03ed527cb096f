// Package mcp exposes bill validation and encoding over the Model Context
// Protocol so AI coding assistants can check invoicing data in place.
package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewQRBillMCPServer creates a new MCP server with all qrbill tools and
// resources registered.
func NewQRBillMCPServer() *server.MCPServer {
	s := server.NewMCPServer(
		"qrbill",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s)
	registerResources(s)

	return s
}

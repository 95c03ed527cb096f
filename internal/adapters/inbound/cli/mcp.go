package cli

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	mcpadapter "github.com/swissqr/qrbill/internal/adapters/inbound/mcp"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the qrbill MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd())
	return cmd
}

func newMCPServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the qrbill MCP server (stdio)",
		Long:  "Start the qrbill MCP server using stdio transport, exposing bill validation, payload encoding and reference checks to AI coding assistants.",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := mcpadapter.NewQRBillMCPServer()
			return server.ServeStdio(s)
		},
	}
}

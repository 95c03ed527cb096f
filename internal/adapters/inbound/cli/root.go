// Package cli wires the command-line surface: validate, payload, generate
// and the MCP server, all working from YAML bill definitions.
package cli

import "github.com/spf13/cobra"

var (
	version = "dev"
	commit  = "none"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "qrbill",
		Short:         "Validate and render Swiss QR-bills",
		Long:          "qrbill validates Swiss QR-bill data, encodes the QR payload and renders the payment slip as PDF or SVG with millimeter-exact layout.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newValidateCmd())
	cmd.AddCommand(newPayloadCmd())
	cmd.AddCommand(newGenerateCmd())
	cmd.AddCommand(newMCPCmd())
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}

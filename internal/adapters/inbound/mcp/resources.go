package mcp

import (
	"context"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// payloadGrammar documents the positional payload format served as a
// reference resource, so assistants can reason about field positions
// without guessing.
const payloadGrammar = `Swiss QR-bill payload, one field per CRLF-separated line:

 1  SPC                frame type
 2  0200               version
 3  1                  coding type (Latin)
 4  IBAN               creditor account, no spaces
 5-11                  creditor address block
12-18                  ultimate creditor block (reserved, empty)
19  amount             two decimals, empty if open
20  currency           CHF or EUR
21-27                  debtor address block (empty lines if unknown)
28  reference type     QRR, SCOR or NON
29  reference          QR or ISO 11649 reference, empty for NON
30  message            unstructured message
31  EPD                trailer
32  billing info       SWICO //S1 string, may be empty
33-34                  alternative procedure lines, only if present

Address block, seven lines: type tag (S structured, K combined), name,
street or line 1, house number or line 2, postal code, town, country.
`

// registerResources registers all qrbill MCP resources on the given
// server.
func registerResources(s *server.MCPServer) {
	s.AddResource(
		mcplib.NewResource(
			"qrbill://payload-grammar",
			"Payload Grammar",
			mcplib.WithResourceDescription("Field-by-field reference of the QR payload format"),
			mcplib.WithMIMEType("text/plain"),
		),
		handleGrammarResource(),
	)
}

func handleGrammarResource() server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      "qrbill://payload-grammar",
				MIMEType: "text/plain",
				Text:     payloadGrammar,
			},
		}, nil
	}
}

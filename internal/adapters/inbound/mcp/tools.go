package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/swissqr/qrbill/internal/adapters/outbound/billfile"
	"github.com/swissqr/qrbill/internal/adapters/outbound/qrgen"
	"github.com/swissqr/qrbill/internal/application"
	"github.com/swissqr/qrbill/internal/domain"
	"github.com/swissqr/qrbill/internal/domain/checksum"
	"github.com/swissqr/qrbill/internal/domain/swico"
)

// registerTools registers all qrbill MCP tools on the given server.
func registerTools(s *server.MCPServer) {
	// 1. qrbill_validate
	s.AddTool(
		mcplib.NewTool("qrbill_validate",
			mcplib.WithDescription("Validate a QR-bill definition (YAML) and return every violation as JSON"),
			mcplib.WithString("bill_yaml",
				mcplib.Required(),
				mcplib.Description("Bill definition in the qrbill YAML format"),
			),
		),
		handleValidate(),
	)

	// 2. qrbill_payload
	s.AddTool(
		mcplib.NewTool("qrbill_payload",
			mcplib.WithDescription("Encode a valid QR-bill definition (YAML) into the exact payload text of the QR symbol"),
			mcplib.WithString("bill_yaml",
				mcplib.Required(),
				mcplib.Description("Bill definition in the qrbill YAML format"),
			),
		),
		handlePayload(),
	)

	// 3. qrbill_reference_check
	s.AddTool(
		mcplib.NewTool("qrbill_reference_check",
			mcplib.WithDescription("Check the checksum of an IBAN, a QR reference or an ISO 11649 creditor reference"),
			mcplib.WithString("value",
				mcplib.Required(),
				mcplib.Description("The value to check, spaces allowed"),
			),
			mcplib.WithString("kind",
				mcplib.Required(),
				mcplib.Description("One of: iban, qrr, scor"),
			),
		),
		handleReferenceCheck(),
	)

	// 4. qrbill_swico_parse
	s.AddTool(
		mcplib.NewTool("qrbill_swico_parse",
			mcplib.WithDescription("Parse a SWICO //S1 billing information string into its structured fields"),
			mcplib.WithString("billing_information",
				mcplib.Required(),
				mcplib.Description("The //S1 string, as carried in the payload"),
			),
		),
		handleSwicoParse(),
	)
}

func newService() *application.BillService {
	return application.NewBillService(qrgen.New())
}

func handleValidate() server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		billYAML, err := request.RequireString("bill_yaml")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		bill, err := billfile.Parse([]byte(billYAML))
		if err != nil {
			return errorResult(fmt.Sprintf("parsing bill: %v", err)), nil
		}
		return jsonResult(newService().Validate(bill))
	}
}

func handlePayload() server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		billYAML, err := request.RequireString("bill_yaml")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		bill, err := billfile.Parse([]byte(billYAML))
		if err != nil {
			return errorResult(fmt.Sprintf("parsing bill: %v", err)), nil
		}

		payload, err := newService().EncodePayload(bill)
		if err != nil {
			var invalid *domain.InvalidBillError
			if errors.As(err, &invalid) {
				data, merr := json.MarshalIndent(invalid.Result, "", "  ")
				if merr != nil {
					return errorResult(merr.Error()), nil
				}
				return errorResult("bill is invalid:\n" + string(data)), nil
			}
			return errorResult(err.Error()), nil
		}
		return textResult(payload), nil
	}
}

type referenceCheckResult struct {
	Valid      bool   `json:"valid"`
	Normalized string `json:"normalized"`
	Message    string `json:"message,omitempty"`
}

func handleReferenceCheck() server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		value, err := request.RequireString("value")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		kind, err := request.RequireString("kind")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		var normalized string
		var checkErr error
		switch strings.ToLower(kind) {
		case "iban":
			normalized = domain.Account(value).Electronic()
			checkErr = checksum.ValidateIBAN(normalized)
		case "qrr":
			normalized = domain.QRReference(value).Electronic()
			checkErr = checksum.ValidateESR(normalized)
		case "scor":
			normalized = domain.CreditorReference(value).Electronic()
			checkErr = checksum.ValidateCreditorReference(normalized)
		default:
			return errorResult(fmt.Sprintf("unknown kind %q (want iban, qrr or scor)", kind)), nil
		}

		result := referenceCheckResult{Valid: checkErr == nil, Normalized: normalized}
		if checkErr != nil {
			result.Message = checkErr.Error()
		}
		return jsonResult(result)
	}
}

func handleSwicoParse() server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		raw, err := request.RequireString("billing_information")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		details, err := swico.Parse(raw)
		if err != nil {
			return errorResult(fmt.Sprintf("parsing billing information: %v", err)), nil
		}
		return jsonResult(details)
	}
}

// jsonResult marshals v and wraps it as a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// textResult returns a plain text content result.
func textResult(text string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(text)},
	}
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}

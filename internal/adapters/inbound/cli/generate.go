package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/swissqr/qrbill/internal/adapters/outbound/billfile"
	"github.com/swissqr/qrbill/internal/adapters/outbound/pdfrender"
	"github.com/swissqr/qrbill/internal/adapters/outbound/qrgen"
	"github.com/swissqr/qrbill/internal/adapters/outbound/svgrender"
	"github.com/swissqr/qrbill/internal/adapters/outbound/tui"
	"github.com/swissqr/qrbill/internal/application"
	"github.com/swissqr/qrbill/internal/domain"
	"github.com/swissqr/qrbill/internal/domain/layout"
)

func newGenerateCmd() *cobra.Command {
	var (
		output      string
		format      string
		fullPage    bool
		topLine     bool
		paymentLine bool
	)

	cmd := &cobra.Command{
		Use:   "generate <bill.yaml>",
		Short: "Render a bill as a payment slip",
		Long:  "Validate the bill, encode its QR payload and render the full payment slip. The output format follows the file extension unless --format is given.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bill, err := billfile.Load(args[0])
			if err != nil {
				return err
			}

			if format == "" {
				format = strings.TrimPrefix(filepath.Ext(output), ".")
				if format == "" {
					format = "pdf"
				}
			}
			if output == "" {
				base := strings.TrimSuffix(args[0], filepath.Ext(args[0]))
				output = base + "." + format
			}

			renderer, err := newRenderer(format, fullPage)
			if err != nil {
				return err
			}

			svc := application.NewBillService(qrgen.New())
			opts := layout.Options{TopLine: topLine, PaymentLine: paymentLine}

			out, err := svc.Render(bill, opts, renderer)
			if err != nil {
				var invalid *domain.InvalidBillError
				if errors.As(err, &invalid) {
					fmt.Fprint(cmd.OutOrStdout(), tui.RenderValidationReport(args[0], invalid.Result))
				}
				return err
			}

			if err := os.WriteFile(output, out, 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", output, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d bytes)\n", output, len(out))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (defaults to the bill file name with the format extension)")
	cmd.Flags().StringVar(&format, "format", "", "Output format: pdf or svg (default derived from --output, else pdf)")
	cmd.Flags().BoolVar(&fullPage, "full-page", false, "Render the slip at the bottom of an A4 page")
	cmd.Flags().BoolVar(&topLine, "top-line", false, "Draw the dashed cutting line along the top edge")
	cmd.Flags().BoolVar(&paymentLine, "payment-line", true, "Draw the dashed separator between receipt and payment part")

	return cmd
}

func newRenderer(format string, fullPage bool) (layout.Renderer, error) {
	switch strings.ToLower(format) {
	case "pdf":
		if fullPage {
			return pdfrender.NewFullPage(), nil
		}
		return pdfrender.New(), nil
	case "svg":
		if fullPage {
			return svgrender.NewFullPage(), nil
		}
		return svgrender.New(), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (want pdf or svg)", format)
	}
}

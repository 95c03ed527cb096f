package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/swissqr/qrbill/internal/adapters/outbound/billfile"
	"github.com/swissqr/qrbill/internal/adapters/outbound/qrgen"
	"github.com/swissqr/qrbill/internal/adapters/outbound/tui"
	"github.com/swissqr/qrbill/internal/application"
)

func newValidateCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "validate <bill.yaml>",
		Short: "Validate a bill definition",
		Long:  "Check every field of a bill definition, including IBAN and reference checksums, and report all violations at once.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bill, err := billfile.Load(args[0])
			if err != nil {
				return err
			}

			svc := application.NewBillService(qrgen.New())
			result := svc.Validate(bill)

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(result); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderValidationReport(args[0], result))
			}

			if !result.OK() {
				return fmt.Errorf("%d violation(s) found", len(result.Violations))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}

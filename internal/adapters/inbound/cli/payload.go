package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/swissqr/qrbill/internal/adapters/outbound/billfile"
	"github.com/swissqr/qrbill/internal/adapters/outbound/qrgen"
	"github.com/swissqr/qrbill/internal/adapters/outbound/tui"
	"github.com/swissqr/qrbill/internal/application"
	"github.com/swissqr/qrbill/internal/domain"
)

func newPayloadCmd() *cobra.Command {
	var pretty bool

	cmd := &cobra.Command{
		Use:   "payload <bill.yaml>",
		Short: "Print the QR payload of a bill",
		Long:  "Validate the bill and print the exact text carried by the QR symbol, one payload field per line.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bill, err := billfile.Load(args[0])
			if err != nil {
				return err
			}

			svc := application.NewBillService(qrgen.New())
			payload, err := svc.EncodePayload(bill)
			if err != nil {
				var invalid *domain.InvalidBillError
				if errors.As(err, &invalid) {
					fmt.Fprint(cmd.OutOrStdout(), tui.RenderValidationReport(args[0], invalid.Result))
				}
				return err
			}

			if pretty {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderPayload(payload))
			} else {
				fmt.Fprint(cmd.OutOrStdout(), payload)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&pretty, "pretty", false, "Show numbered payload lines")

	return cmd
}

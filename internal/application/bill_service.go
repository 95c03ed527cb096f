// Package application orchestrates the bill pipeline:
// validate -> encode payload -> generate QR matrix -> lay out -> render.
// Validation happens exactly once at the gate; the later stages trust it.
package application

import (
	"fmt"

	"github.com/swissqr/qrbill/internal/domain"
	"github.com/swissqr/qrbill/internal/domain/encoding"
	"github.com/swissqr/qrbill/internal/domain/layout"
	"github.com/swissqr/qrbill/internal/domain/validation"
)

// BillService runs the pipeline for one bill at a time. It is safe for
// concurrent use when its generator is.
type BillService struct {
	generator domain.QRGenerator
}

func NewBillService(generator domain.QRGenerator) *BillService {
	return &BillService{generator: generator}
}

// Validate checks a bill and returns every violation found. It never
// returns an error; an invalid bill is a result, not a failure.
func (s *BillService) Validate(b domain.Bill) domain.ValidationResult {
	return validation.Validate(b)
}

// EncodePayload validates the bill and, if it is clean, returns the exact
// payload string the QR symbol carries. An invalid bill yields an
// *domain.InvalidBillError wrapping the full validation result.
func (s *BillService) EncodePayload(b domain.Bill) (string, error) {
	if result := validation.Validate(b); !result.OK() {
		return "", &domain.InvalidBillError{Result: result}
	}
	return encoding.Encode(b), nil
}

// BuildPlan validates the bill, produces its QR matrix and lays out the
// full slip as a renderer-independent drawing plan.
func (s *BillService) BuildPlan(b domain.Bill, opts layout.Options) (*layout.Plan, error) {
	payload, err := s.EncodePayload(b)
	if err != nil {
		return nil, err
	}

	matrix, err := s.generator.Generate(payload, domain.ECLevelMedium)
	if err != nil {
		return nil, fmt.Errorf("generating QR symbol: %w", err)
	}

	plan, err := layout.Build(b, matrix, opts)
	if err != nil {
		return nil, fmt.Errorf("laying out slip: %w", err)
	}
	return plan, nil
}

// Render runs the full pipeline and hands the plan to the given renderer.
func (s *BillService) Render(b domain.Bill, opts layout.Options, r layout.Renderer) ([]byte, error) {
	plan, err := s.BuildPlan(b, opts)
	if err != nil {
		return nil, err
	}

	out, err := r.Render(plan)
	if err != nil {
		return nil, fmt.Errorf("rendering slip: %w", err)
	}
	return out, nil
}

// Package qrgen produces QR symbol matrices using the skip2/go-qrcode
// encoder.
package qrgen

import (
	"fmt"
	"strings"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/swissqr/qrbill/internal/domain"
)

// Generator implements domain.QRGenerator. The zero value is ready to use.
type Generator struct{}

func New() *Generator { return &Generator{} }

// Generate encodes the payload into a module matrix. The quiet zone is
// stripped; the slip layout provides its own white margin around the
// symbol.
func (g *Generator) Generate(payload string, level domain.ECLevel) (domain.QRMatrix, error) {
	code, err := qrcode.New(payload, recoveryLevel(level))
	if err != nil {
		if strings.Contains(err.Error(), "too long") {
			return nil, fmt.Errorf("%w: %d bytes", domain.ErrPayloadTooLong, len(payload))
		}
		return nil, fmt.Errorf("encoding QR symbol: %w", err)
	}
	code.DisableBorder = true

	bitmap := code.Bitmap()
	matrix := make(domain.QRMatrix, len(bitmap))
	for i, row := range bitmap {
		matrix[i] = append([]bool(nil), row...)
	}
	return matrix, nil
}

func recoveryLevel(level domain.ECLevel) qrcode.RecoveryLevel {
	switch level {
	case domain.ECLevelLow:
		return qrcode.Low
	case domain.ECLevelQuartile:
		return qrcode.High
	case domain.ECLevelHigh:
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

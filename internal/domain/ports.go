package domain

// ECLevel is the QR symbol error-correction level. The standard mandates
// level M for QR-bills; the port keeps it a parameter so tests can exercise
// other levels.
type ECLevel int

const (
	ECLevelLow ECLevel = iota
	ECLevelMedium
	ECLevelQuartile
	ECLevelHigh
)

// QRMatrix is a square boolean module matrix; true is a dark module.
type QRMatrix [][]bool

// Size returns the matrix side length.
func (m QRMatrix) Size() int { return len(m) }

// QRGenerator produces the module matrix for an encoded payload. Payload
// overflow must surface as an error wrapping ErrPayloadTooLong, never as a
// truncated symbol.
type QRGenerator interface {
	Generate(payload string, level ECLevel) (QRMatrix, error)
}

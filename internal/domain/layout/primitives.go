// Package layout turns a validated bill and its QR matrix into a
// millimeter-precise drawing plan. The plan is a flat list of primitives
// that any renderer can replay; all positioning decisions happen here so
// PDF and SVG output line up to the millimeter.
package layout

import "github.com/swissqr/qrbill/internal/domain"

// Anchor selects the horizontal reference point of a text run.
type Anchor int

const (
	AnchorStart Anchor = iota
	AnchorEnd
)

// Primitive is one drawing instruction. The set is closed; renderers
// type-switch over it.
type Primitive interface {
	sealedPrimitive()
}

// TextRun is a single line of text. X and Y are in millimeters from the
// slip's top-left corner; Y is the baseline.
type TextRun struct {
	Text   string
	X, Y   float64
	SizePt float64
	Bold   bool
	Anchor Anchor
}

// Line is a straight stroke. Dashed lines mark the cutting edges.
type Line struct {
	X1, Y1  float64
	X2, Y2  float64
	WidthMM float64
	Dashed  bool
}

// QRCode places the Swiss QR symbol. Size is the edge length in
// millimeters; the matrix is rendered without a quiet zone because the
// surrounding white space of the slip provides it.
type QRCode struct {
	X, Y   float64
	SizeMM float64
	Matrix domain.QRMatrix
}

// SwissCross overlays the cross emblem centered on the QR symbol.
type SwissCross struct {
	X, Y   float64
	SizeMM float64
}

// Scissors is the cut marker on a perforation line. Vertical scissors sit
// on the receipt/payment separator, horizontal ones on the top edge.
type Scissors struct {
	X, Y     float64
	Vertical bool
}

func (TextRun) sealedPrimitive()    {}
func (Line) sealedPrimitive()       {}
func (QRCode) sealedPrimitive()     {}
func (SwissCross) sealedPrimitive() {}
func (Scissors) sealedPrimitive()   {}

// Plan is the finished drawing: the slip extent plus its primitives in
// paint order.
type Plan struct {
	WidthMM    float64
	HeightMM   float64
	Primitives []Primitive
}

// Renderer turns a plan into an output document.
type Renderer interface {
	Render(plan *Plan) ([]byte, error)
}

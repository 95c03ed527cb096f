// Package pdfrender replays a layout plan into a PDF document with gofpdf.
package pdfrender

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/swissqr/qrbill/internal/domain/layout"
)

const fontFamily = "Helvetica"

// Renderer draws the slip either on a page of its own size or at the
// bottom of an A4 page.
type Renderer struct {
	fullPage bool
}

func New() *Renderer { return &Renderer{} }

// NewFullPage places the slip at the bottom of an A4 portrait page, as on
// a printed invoice letter.
func NewFullPage() *Renderer { return &Renderer{fullPage: true} }

// Render implements layout.Renderer.
func (r *Renderer) Render(plan *layout.Plan) ([]byte, error) {
	size := gofpdf.SizeType{Wd: plan.WidthMM, Ht: plan.HeightMM}
	offsetY := 0.0
	if r.fullPage {
		size = gofpdf.SizeType{Wd: layout.A4WidthMM, Ht: layout.A4HeightMM}
		offsetY = layout.A4HeightMM - plan.HeightMM
	}

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "mm",
		Size:    size,
	})
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	for _, prim := range plan.Primitives {
		switch p := prim.(type) {
		case layout.TextRun:
			r.text(pdf, tr, p, offsetY)
		case layout.Line:
			r.line(pdf, p, offsetY)
		case layout.QRCode:
			r.qrCode(pdf, p, offsetY)
		case layout.SwissCross:
			r.swissCross(pdf, p, offsetY)
		case layout.Scissors:
			// The dashed line already marks the cutting edge; PDF output
			// carries no scissors glyph.
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("writing PDF: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) text(pdf *gofpdf.Fpdf, tr func(string) string, p layout.TextRun, offsetY float64) {
	style := ""
	if p.Bold {
		style = "B"
	}
	pdf.SetFont(fontFamily, style, p.SizePt)
	pdf.SetTextColor(0, 0, 0)

	x := p.X
	if p.Anchor == layout.AnchorEnd {
		x -= pdf.GetStringWidth(tr(p.Text))
	}
	pdf.Text(x, p.Y+offsetY, tr(p.Text))
}

func (r *Renderer) line(pdf *gofpdf.Fpdf, p layout.Line, offsetY float64) {
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(p.WidthMM)
	if p.Dashed {
		pdf.SetDashPattern([]float64{1, 1}, 0)
	} else {
		pdf.SetDashPattern([]float64{}, 0)
	}
	pdf.Line(p.X1, p.Y1+offsetY, p.X2, p.Y2+offsetY)
	pdf.SetDashPattern([]float64{}, 0)
}

// qrCode paints the symbol module by module. Modules are filled slightly
// oversize to avoid hairline gaps between adjacent dark modules at some
// raster resolutions.
func (r *Renderer) qrCode(pdf *gofpdf.Fpdf, p layout.QRCode, offsetY float64) {
	n := p.Matrix.Size()
	if n == 0 {
		return
	}
	module := p.SizeMM / float64(n)
	bleed := module * 0.02

	pdf.SetFillColor(0, 0, 0)
	for row, cells := range p.Matrix {
		for col, dark := range cells {
			if !dark {
				continue
			}
			pdf.Rect(
				p.X+float64(col)*module,
				p.Y+float64(row)*module+offsetY,
				module+bleed,
				module+bleed,
				"F",
			)
		}
	}
}

// swissCross draws the emblem in its 19.8-unit design space scaled onto
// the symbol center: black field, white cross bars, white outline.
func (r *Renderer) swissCross(pdf *gofpdf.Fpdf, p layout.SwissCross, offsetY float64) {
	f := p.SizeMM / 19.8
	x := func(u float64) float64 { return p.X + u*f }
	y := func(u float64) float64 { return p.Y + u*f + offsetY }

	pdf.SetFillColor(0, 0, 0)
	pdf.Rect(x(0.7), y(0.7), 18.4*f, 18.4*f, "F")

	pdf.SetFillColor(255, 255, 255)
	pdf.Rect(x(8.3), y(4.0), 3.3*f, 11.0*f, "F")
	pdf.Rect(x(4.4), y(7.9), 11.0*f, 3.3*f, "F")

	pdf.SetDrawColor(255, 255, 255)
	pdf.SetLineWidth(1.4357 * f)
	pdf.Rect(x(0.7), y(0.7), 18.4*f, 18.4*f, "D")
}

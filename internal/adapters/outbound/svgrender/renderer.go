// Package svgrender replays a layout plan into an SVG document. The
// document uses user units; millimeter coordinates from the plan are
// scaled on the way in so the printed size is exact.
package svgrender

import (
	"fmt"
	"strings"

	"github.com/swissqr/qrbill/internal/domain/layout"
)

// mmToUU converts millimeters to SVG user units at 90 dpi.
const mmToUU = 3.543307

const fontFamily = "Helvetica, Arial, sans-serif"

// Renderer emits the slip as standalone SVG, optionally framed in a full
// A4 page with the slip at the bottom.
type Renderer struct {
	fullPage bool
}

func New() *Renderer { return &Renderer{} }

func NewFullPage() *Renderer { return &Renderer{fullPage: true} }

// Render implements layout.Renderer.
func (r *Renderer) Render(plan *layout.Plan) ([]byte, error) {
	widthMM, heightMM := plan.WidthMM, plan.HeightMM
	offsetY := 0.0
	if r.fullPage {
		widthMM, heightMM = layout.A4WidthMM, layout.A4HeightMM
		offsetY = layout.A4HeightMM - plan.HeightMM
	}

	var b strings.Builder
	fmt.Fprintf(&b,
		`<svg xmlns="http://www.w3.org/2000/svg" width="%gmm" height="%gmm" viewBox="0 0 %s %s">`+"\n",
		widthMM, heightMM, uu(widthMM), uu(heightMM))
	fmt.Fprintf(&b, `<rect x="0" y="0" width="100%%" height="100%%" fill="white"/>`+"\n")

	for _, prim := range plan.Primitives {
		switch p := prim.(type) {
		case layout.TextRun:
			r.text(&b, p, offsetY)
		case layout.Line:
			r.line(&b, p, offsetY)
		case layout.QRCode:
			r.qrCode(&b, p, offsetY)
		case layout.SwissCross:
			r.swissCross(&b, p, offsetY)
		case layout.Scissors:
			r.scissors(&b, p, offsetY)
		}
	}

	b.WriteString("</svg>\n")
	return []byte(b.String()), nil
}

// uu formats a millimeter length as user units.
func uu(mm float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.3f", mm*mmToUU), "0"), ".")
}

func (r *Renderer) text(b *strings.Builder, p layout.TextRun, offsetY float64) {
	weight := "normal"
	if p.Bold {
		weight = "bold"
	}
	anchor := ""
	if p.Anchor == layout.AnchorEnd {
		anchor = ` text-anchor="end"`
	}
	fmt.Fprintf(b,
		`<text x="%s" y="%s" font-family="%s" font-size="%s" font-weight="%s"%s>%s</text>`+"\n",
		uu(p.X), uu(p.Y+offsetY), fontFamily,
		uu(p.SizePt*layout.PtToMM), weight, anchor, escape(p.Text))
}

func (r *Renderer) line(b *strings.Builder, p layout.Line, offsetY float64) {
	dash := ""
	if p.Dashed {
		dash = ` stroke-dasharray="2 2"`
	}
	fmt.Fprintf(b,
		`<line x1="%s" y1="%s" x2="%s" y2="%s" stroke="black" stroke-width="%s" stroke-linecap="square"%s/>`+"\n",
		uu(p.X1), uu(p.Y1+offsetY), uu(p.X2), uu(p.Y2+offsetY), uu(p.WidthMM), dash)
}

func (r *Renderer) qrCode(b *strings.Builder, p layout.QRCode, offsetY float64) {
	n := p.Matrix.Size()
	if n == 0 {
		return
	}
	module := p.SizeMM / float64(n)
	b.WriteString(`<g fill="black">` + "\n")
	for row, cells := range p.Matrix {
		for col, dark := range cells {
			if !dark {
				continue
			}
			fmt.Fprintf(b, `<rect x="%s" y="%s" width="%s" height="%s"/>`+"\n",
				uu(p.X+float64(col)*module),
				uu(p.Y+float64(row)*module+offsetY),
				uu(module), uu(module))
		}
	}
	b.WriteString("</g>\n")
}

// swissCross draws the emblem in its 19.8-unit design space, translated
// and scaled onto the plan position.
func (r *Renderer) swissCross(b *strings.Builder, p layout.SwissCross, offsetY float64) {
	scale := p.SizeMM * mmToUU / 19.8
	fmt.Fprintf(b, `<g transform="translate(%s, %s) scale(%g)">`+"\n",
		uu(p.X), uu(p.Y+offsetY), scale)
	b.WriteString(`<polygon points="18.3,0.7 1.6,0.7 0.7,0.7 0.7,1.6 0.7,18.3 0.7,19.1 1.6,19.1 18.3,19.1 19.1,19.1 19.1,18.3 19.1,1.6 19.1,0.7" fill="black"/>` + "\n")
	b.WriteString(`<rect x="8.3" y="4" width="3.3" height="11" fill="white"/>` + "\n")
	b.WriteString(`<rect x="4.4" y="7.9" width="11" height="3.3" fill="white"/>` + "\n")
	b.WriteString(`<polygon points="0.7,1.6 0.7,18.3 0.7,19.1 1.6,19.1 18.3,19.1 19.1,19.1 19.1,18.3 19.1,1.6 19.1,0.7 18.3,0.7 1.6,0.7 0.7,0.7" fill="none" stroke="white" stroke-width="1.4357"/>` + "\n")
	b.WriteString("</g>\n")
}

func (r *Renderer) scissors(b *strings.Builder, p layout.Scissors, offsetY float64) {
	rotate := ""
	if p.Vertical {
		rotate = " rotate(90)"
	}
	fmt.Fprintf(b,
		`<path d="%s" fill="black" transform="translate(%s, %s) scale(1.9)%s"/>`+"\n",
		scissorsPath, uu(p.X), uu(p.Y+offsetY), rotate)
}

func escape(s string) string {
	replacer := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	return replacer.Replace(s)
}

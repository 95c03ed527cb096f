package layout

import (
	"fmt"

	"github.com/swissqr/qrbill/internal/domain"
)

// sectionGapMM is the vertical gap inserted before every heading after
// the first within a section column.
const sectionGapMM = 1.5

// Options controls the optional decorations around the slip itself.
type Options struct {
	// TopLine draws a dashed cutting line with scissors along the top edge,
	// for slips printed at the bottom of a letter page.
	TopLine bool
	// PaymentLine draws the dashed separator between receipt and payment
	// part. Off for pre-perforated paper.
	PaymentLine bool
}

// Build lays out the full slip for a validated bill. The bill MUST have
// passed validation; Build assumes that precondition. The returned plan is
// deterministic: identical inputs produce identical primitive lists.
//
// Text that cannot fit its fixed slot at the mandated wrapping width is an
// error, never a silent truncation.
func Build(b domain.Bill, matrix domain.QRMatrix, opts Options) (*Plan, error) {
	if matrix == nil {
		return nil, fmt.Errorf("nil QR matrix")
	}
	e := &engine{
		labels: LabelsFor(b.Language),
		plan: &Plan{
			WidthMM:  SlipWidthMM,
			HeightMM: SlipHeightMM,
		},
	}

	e.separators(opts)
	if err := e.receiptPart(b); err != nil {
		return nil, err
	}
	if err := e.paymentPart(b, matrix); err != nil {
		return nil, err
	}
	return e.plan, nil
}

type engine struct {
	labels Labels
	plan   *Plan
}

func (e *engine) add(p Primitive) { e.plan.Primitives = append(e.plan.Primitives, p) }

func (e *engine) separators(opts Options) {
	if opts.TopLine {
		e.add(Line{X1: 0, Y1: 0, X2: SlipWidthMM, Y2: 0, WidthMM: separatorWidth, Dashed: true})
		e.add(Scissors{X: SlipWidthMM / 2, Y: 0})
	}
	if opts.PaymentLine {
		e.add(Line{X1: ReceiptWidthMM, Y1: 0, X2: ReceiptWidthMM, Y2: SlipHeightMM, WidthMM: separatorWidth, Dashed: true})
		e.add(Scissors{X: ReceiptWidthMM, Y: 40, Vertical: true})
	}
}

// cursor walks one column of text top to bottom. All text in one column
// shares the column's left edge.
type cursor struct {
	e     *engine
	x, y  float64
	lines int
}

func (c *cursor) heading(f Font, text string) {
	c.y += f.AdvanceMM()
	c.e.add(TextRun{Text: text, X: c.x, Y: c.y, SizePt: f.SizePt, Bold: true})
	c.lines++
}

func (c *cursor) value(f Font, text string) {
	c.y += f.AdvanceMM()
	c.e.add(TextRun{Text: text, X: c.x, Y: c.y, SizePt: f.SizePt})
	c.lines++
}

func (c *cursor) gap() { c.y += sectionGapMM }

func (e *engine) receiptPart(b domain.Bill) error {
	d := receipt

	title := cursor{e: e, x: d.title.x, y: d.title.y}
	title.heading(d.font.title, e.labels.Receipt)

	c := cursor{e: e, x: d.information.x, y: d.information.y}
	c.heading(d.font.heading, e.labels.PayableTo)
	c.value(d.font.value, b.Account.Format())
	for _, line := range partyLines(b.Creditor, d.maxCharsLine) {
		c.value(d.font.value, line)
	}
	if b.Reference.Kind != domain.ReferenceNone && b.Reference.Kind != "" {
		c.gap()
		c.heading(d.font.heading, e.labels.Reference)
		c.value(d.font.value, b.Reference.Display())
	}
	c.gap()
	if b.Debtor != nil {
		c.heading(d.font.heading, e.labels.PayableBy)
		for _, line := range partyLines(*b.Debtor, d.maxCharsLine) {
			c.value(d.font.value, line)
		}
	} else {
		c.heading(d.font.heading, e.labels.PayableByExtended)
		e.cornerMarks(c.x, c.y+1, d.blankPayable.x, d.blankPayable.y)
	}
	if c.y > d.amount.y {
		return &domain.RenderOverflowError{
			Section:  "receipt information",
			Lines:    c.lines,
			MaxLines: int((d.amount.y - d.information.y) / d.font.value.AdvanceMM()),
		}
	}

	e.amountSection(b, d)

	// Acceptance point heading, right aligned on the receipt.
	e.add(TextRun{
		Text:   e.labels.AcceptancePoint,
		X:      acceptanceEndX,
		Y:      acceptanceY + acceptanceFont.AdvanceMM(),
		SizePt: acceptanceFont.SizePt,
		Bold:   true,
		Anchor: AnchorEnd,
	})
	return nil
}

func (e *engine) paymentPart(b domain.Bill, matrix domain.QRMatrix) error {
	d := payment

	title := cursor{e: e, x: d.title.x, y: d.title.y}
	title.heading(d.font.title, e.labels.PaymentPart)

	e.add(QRCode{X: QRLeftMM, Y: QRTopMM, SizeMM: QRSizeMM, Matrix: matrix})
	e.add(SwissCross{
		X:      QRLeftMM + (QRSizeMM-SwissCrossMM)/2,
		Y:      QRTopMM + (QRSizeMM-SwissCrossMM)/2,
		SizeMM: SwissCrossMM,
	})

	e.amountSection(b, d)

	if err := e.informationColumn(b, d); err != nil {
		return err
	}

	// Alternative procedures along the bottom edge of the payment part.
	c := cursor{e: e, x: d.title.x, y: furtherInfoY}
	for _, proc := range b.AlternativeProcedures {
		c.value(furtherInfoFont, proc)
	}
	if b.DueDate != nil {
		c.value(furtherInfoFont, fmt.Sprintf("%s %s",
			e.labels.PayableByDate, b.DueDate.Format("02.01.2006")))
	}
	if c.y > SlipHeightMM {
		return &domain.RenderOverflowError{
			Section:  "further information",
			Lines:    c.lines,
			MaxLines: int((SlipHeightMM - furtherInfoY) / furtherInfoFont.AdvanceMM()),
		}
	}
	return nil
}

func (e *engine) informationColumn(b domain.Bill, d part) error {
	c := cursor{e: e, x: d.information.x, y: d.information.y}
	c.heading(d.font.heading, e.labels.PayableTo)
	c.value(d.font.value, b.Account.Format())
	for _, line := range partyLines(b.Creditor, d.maxCharsLine) {
		c.value(d.font.value, line)
	}
	if b.Reference.Kind != domain.ReferenceNone && b.Reference.Kind != "" {
		c.gap()
		c.heading(d.font.heading, e.labels.Reference)
		c.value(d.font.value, b.Reference.Display())
	}
	if b.Message != "" || b.BillingInformation != "" {
		c.gap()
		c.heading(d.font.heading, e.labels.AdditionalInformation)
		for _, line := range Wrap(b.Message, d.maxCharsLine) {
			c.value(d.font.value, line)
		}
		for _, line := range Wrap(b.BillingInformation, d.maxCharsLine) {
			c.value(d.font.value, line)
		}
	}
	c.gap()
	if b.Debtor != nil {
		c.heading(d.font.heading, e.labels.PayableBy)
		for _, line := range partyLines(*b.Debtor, d.maxCharsLine) {
			c.value(d.font.value, line)
		}
	} else {
		c.heading(d.font.heading, e.labels.PayableByExtended)
		e.cornerMarks(c.x, c.y+1, d.blankPayable.x, d.blankPayable.y)
	}
	if c.y > furtherInfoY {
		return &domain.RenderOverflowError{
			Section:  "payment information",
			Lines:    c.lines,
			MaxLines: int((furtherInfoY - d.information.y) / d.font.value.AdvanceMM()),
		}
	}
	return nil
}

// amountSection draws the currency/amount pair of one part. A missing
// amount becomes a blank rectangle for hand-written entry.
func (e *engine) amountSection(b domain.Bill, d part) {
	headingY := d.amount.y + d.font.heading.AdvanceMM()
	valueY := headingY + d.font.amount.AdvanceMM()

	e.add(TextRun{Text: e.labels.Currency, X: d.amount.x, Y: headingY, SizePt: d.font.heading.SizePt, Bold: true})
	e.add(TextRun{Text: string(b.Currency), X: d.amount.x, Y: valueY, SizePt: d.font.amount.SizePt})

	amountX := d.amount.x + 12
	e.add(TextRun{Text: e.labels.Amount, X: amountX, Y: headingY, SizePt: d.font.heading.SizePt, Bold: true})
	if b.Amount != nil {
		e.add(TextRun{Text: b.Amount.Display(), X: amountX, Y: valueY, SizePt: d.font.amount.SizePt})
	} else {
		e.cornerMarks(amountX+10, headingY+1, d.blankAmount.x, d.blankAmount.y)
	}
}

// cornerMarks draws the eight strokes outlining a blank rectangle. Only
// the corners are marked; the rectangle body stays empty for handwriting.
func (e *engine) cornerMarks(x, y, w, h float64) {
	v := cornerMarkVerticalMM
	hz := cornerMarkHorizontalMM
	strokes := []Line{
		{X1: x, Y1: y, X2: x, Y2: y + v},
		{X1: x, Y1: y, X2: x + hz, Y2: y},
		{X1: x, Y1: y + h, X2: x, Y2: y + h - v},
		{X1: x, Y1: y + h, X2: x + hz, Y2: y + h},
		{X1: x + w - hz, Y1: y, X2: x + w, Y2: y},
		{X1: x + w, Y1: y, X2: x + w, Y2: y + v},
		{X1: x + w - hz, Y1: y + h, X2: x + w, Y2: y + h},
		{X1: x + w, Y1: y + h, X2: x + w, Y2: y + h - v},
	}
	for _, s := range strokes {
		s.WidthMM = cornerMarkStrokeMM
		e.add(s)
	}
}

package layout

// Measurements follow the official style guide: the blank-rectangle sizes
// are on page 7, the section grid on page 15.

// PtToMM converts a font size in points to millimeters.
const PtToMM = 0.3527777778

// Slip extents in millimeters. The slip sits at the bottom of an A4 page
// when rendered full page.
const (
	SlipWidthMM    = 210.0
	SlipHeightMM   = 105.0
	ReceiptWidthMM = 62.0
	A4WidthMM      = 210.0
	A4HeightMM     = 297.0
)

// QR symbol placement on the payment part.
const (
	QRLeftMM       = 67.0
	QRTopMM        = 17.0
	QRSizeMM       = 46.0
	SwissCrossMM   = 7.0
	separatorWidth = 0.26
)

// Section x positions.
const (
	receiptX       = 5.0  // receipt sections
	paymentX       = 67.0 // payment sections except the information column
	informationX   = 118.0
	acceptanceEndX = 57.0 // right edge of the acceptance point heading
)

// Line-wrap widths for address and information paragraphs.
const (
	MaxCharsReceiptLine = 38
	MaxCharsPaymentLine = 72
)

// Font pairs a size with its line spacing, both in points.
type Font struct {
	SizePt    float64
	SpacingPt float64
}

// AdvanceMM is the baseline-to-baseline distance in millimeters.
func (f Font) AdvanceMM() float64 { return f.SpacingPt * PtToMM }

type fonts struct {
	title   Font
	heading Font
	value   Font
	amount  Font
}

type xy struct{ x, y float64 }

// part bundles the section grid, the fonts and the blank-rectangle sizes
// of one half of the slip.
type part struct {
	title       xy
	information xy
	amount      xy

	font fonts

	// Blank rectangles printed when the debtor or the amount is unknown.
	blankPayable xy
	blankAmount  xy

	maxCharsLine int
}

var receipt = part{
	title:       xy{receiptX, 5},
	information: xy{receiptX, 12},
	amount:      xy{receiptX, 68},

	// 6 pt bold headings, 8 pt values, 11 pt bold title.
	font: fonts{
		title:   Font{11, 11},
		heading: Font{6, 9},
		value:   Font{8, 9},
		amount:  Font{8, 11},
	},

	blankPayable: xy{52, 20},
	blankAmount:  xy{30, 10},

	maxCharsLine: MaxCharsReceiptLine,
}

var payment = part{
	title:       xy{paymentX, 5},
	information: xy{informationX, 5},
	amount:      xy{paymentX, 68},

	// 8 pt bold headings, 10 pt values, 11 pt bold title.
	font: fonts{
		title:   Font{11, 11},
		heading: Font{8, 11},
		value:   Font{10, 11},
		amount:  Font{10, 13},
	},

	blankPayable: xy{65, 25},
	blankAmount:  xy{40, 15},

	maxCharsLine: MaxCharsPaymentLine,
}

// Receipt-only acceptance point section and payment-only extras.
var (
	acceptanceY    = 82.0
	acceptanceFont = Font{6, 8}

	furtherInfoY    = 90.0
	furtherInfoFont = Font{7, 8}
)

// Corner-mark stroke geometry of the blank rectangles.
const (
	cornerMarkVerticalMM   = 2.0
	cornerMarkHorizontalMM = 3.0
	cornerMarkStrokeMM     = 0.75 * PtToMM
)

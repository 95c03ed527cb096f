// Package encoding serializes a validated bill into the exact line-oriented
// payload the QR symbol carries. The grammar leaves the encoder zero
// discretion: field order, empty placeholder lines and the CRLF separator
// are fixed by the standard, so downstream parsers can address fields by
// position.
package encoding

import (
	"strings"

	"github.com/swissqr/qrbill/internal/domain"
)

// Fixed payload literals of the supported standard revision. A future
// revision would be a sibling encoder, not a flag threaded through here.
const (
	FrameType = "SPC"
	Version   = "0200"
	// CodingLatin selects the Latin character set; it is the only coding
	// type the standard defines.
	CodingLatin = "1"
	Trailer     = "EPD"
)

// addressFieldCount is the fixed width of every address block.
const addressFieldCount = 7

// Encode produces the payload for a bill. The bill MUST have passed
// validation; Encode assumes that precondition instead of re-validating
// (the application service enforces the gate). Output is deterministic:
// equal bills encode to equal bytes.
func Encode(b domain.Bill) string {
	lines := make([]string, 0, 34)
	lines = append(lines, FrameType, Version, CodingLatin)
	lines = append(lines, b.Account.Electronic())
	lines = append(lines, partyFields(&b.Creditor)...)
	// Ultimate creditor: reserved by the standard, always empty.
	lines = append(lines, emptyAddress()...)
	if b.Amount != nil {
		lines = append(lines, b.Amount.String())
	} else {
		lines = append(lines, "")
	}
	lines = append(lines, string(b.Currency))
	lines = append(lines, partyFields(b.Debtor)...)
	kind := b.Reference.Kind
	if kind == "" {
		kind = domain.ReferenceNone
	}
	lines = append(lines, string(kind), b.Reference.Electronic())
	lines = append(lines, b.Message)
	lines = append(lines, Trailer)
	lines = append(lines, b.BillingInformation)
	lines = append(lines, b.AlternativeProcedures...)
	return strings.Join(lines, "\r\n")
}

// partyFields returns the seven payload lines of an address block: kind
// tag, name, two address lines, postal code, town, country. A nil party
// yields seven empty lines to preserve field positions.
func partyFields(p *domain.Party) []string {
	if p == nil {
		return emptyAddress()
	}
	switch a := p.Address.(type) {
	case domain.StructuredAddress:
		return []string{"S", p.Name, a.Street, a.HouseNumber, a.PostalCode, a.Town, a.Country}
	case domain.CombinedAddress:
		return []string{"K", p.Name, a.Line1, a.Line2, "", "", a.Country}
	default:
		return emptyAddress()
	}
}

func emptyAddress() []string {
	return make([]string, addressFieldCount)
}

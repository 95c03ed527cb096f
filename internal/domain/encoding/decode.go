package encoding

import (
	"fmt"
	"strings"
)

// minPayloadLines is the line count up to and including the trailer.
const minPayloadLines = 31

// AddressBlock is the raw seven-field address slice of a decoded payload.
type AddressBlock struct {
	Kind       string
	Name       string
	Line1      string
	Line2      string
	PostalCode string
	Town       string
	Country    string
}

// Empty reports whether every field of the block is blank.
func (a AddressBlock) Empty() bool {
	return a == AddressBlock{}
}

// Payload holds the fields of a decoded QR payload in payload order. Values
// are kept verbatim; callers wanting semantic checks run the decoded bill
// through validation.
type Payload struct {
	FrameType             string
	Version               string
	Coding                string
	Account               string
	Creditor              AddressBlock
	UltimateCreditor      AddressBlock
	Amount                string
	Currency              string
	Debtor                AddressBlock
	ReferenceKind         string
	Reference             string
	Message               string
	Trailer               string
	BillingInformation    string
	AlternativeProcedures []string
}

// Decode parses a payload string back into its positional fields. It
// accepts both CRLF and bare LF separators and rejects payloads whose
// frame markers do not match the supported revision.
func Decode(s string) (*Payload, error) {
	lines := strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
	if len(lines) < minPayloadLines {
		return nil, fmt.Errorf("payload has %d lines, need at least %d", len(lines), minPayloadLines)
	}
	p := &Payload{
		FrameType:        lines[0],
		Version:          lines[1],
		Coding:           lines[2],
		Account:          lines[3],
		Creditor:         addressBlock(lines[4:11]),
		UltimateCreditor: addressBlock(lines[11:18]),
		Amount:           lines[18],
		Currency:         lines[19],
		Debtor:           addressBlock(lines[20:27]),
		ReferenceKind:    lines[27],
		Reference:        lines[28],
		Message:          lines[29],
		Trailer:          lines[30],
	}
	if p.FrameType != FrameType {
		return nil, fmt.Errorf("unexpected frame type %q", p.FrameType)
	}
	if p.Version != Version {
		return nil, fmt.Errorf("unsupported version %q", p.Version)
	}
	if p.Coding != CodingLatin {
		return nil, fmt.Errorf("unsupported coding type %q", p.Coding)
	}
	if p.Trailer != Trailer {
		return nil, fmt.Errorf("missing trailer, got %q", p.Trailer)
	}
	rest := lines[31:]
	if len(rest) > 0 {
		p.BillingInformation = rest[0]
		rest = rest[1:]
	}
	if len(rest) > 0 {
		p.AlternativeProcedures = append([]string(nil), rest...)
	}
	return p, nil
}

func addressBlock(lines []string) AddressBlock {
	return AddressBlock{
		Kind:       lines[0],
		Name:       lines[1],
		Line1:      lines[2],
		Line2:      lines[3],
		PostalCode: lines[4],
		Town:       lines[5],
		Country:    lines[6],
	}
}

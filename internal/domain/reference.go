package domain

import "strings"

// ReferenceKind is the payload tag of a payment reference.
type ReferenceKind string

const (
	// ReferenceNone means no reference; legal with an ordinary IBAN only.
	ReferenceNone ReferenceKind = "NON"
	// ReferenceQR is the 27-digit QR reference (ESR heritage); mandatory
	// with a QR-IBAN and illegal otherwise.
	ReferenceQR ReferenceKind = "QRR"
	// ReferenceCreditor is the ISO 11649 creditor reference ("RF..."),
	// legal with an ordinary IBAN only.
	ReferenceCreditor ReferenceKind = "SCOR"
)

// QRReferenceLength is the full length of a QR reference including its
// check digit.
const QRReferenceLength = 27

// Reference is a tagged payment reference. The zero value is ReferenceNone.
type Reference struct {
	Kind  ReferenceKind
	Value string
}

// NoReference returns the explicit "no reference" variant.
func NoReference() Reference { return Reference{Kind: ReferenceNone} }

// QRReference wraps a QR (ESR) reference string.
func QRReference(value string) Reference {
	return Reference{Kind: ReferenceQR, Value: value}
}

// CreditorReference wraps an ISO 11649 reference string.
func CreditorReference(value string) Reference {
	return Reference{Kind: ReferenceCreditor, Value: value}
}

// Electronic returns the reference without spaces or separators, as it
// appears in the payload.
func (r Reference) Electronic() string {
	if r.Kind == ReferenceNone || r.Kind == "" {
		return ""
	}
	v := strings.ToUpper(r.Value)
	for _, sep := range []string{" ", "-", ".", ",", "/", ":"} {
		v = strings.ReplaceAll(v, sep, "")
	}
	return v
}

// Display returns the human-readable grouping: QR references are padded to
// 27 digits and grouped 2-5-5-5-5-5, creditor references in blocks of four.
func (r Reference) Display() string {
	switch r.Kind {
	case ReferenceQR:
		v := r.Electronic()
		if len(v) < QRReferenceLength {
			v = strings.Repeat("0", QRReferenceLength-len(v)) + v
		}
		return v[:2] + " " + groupString(v[2:], 5)
	case ReferenceCreditor:
		return groupString(r.Electronic(), 4)
	default:
		return ""
	}
}

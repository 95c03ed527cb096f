package domain

import "strings"

// QR-IBANs carry an institution identifier (IID, digits 5-9 of the IBAN)
// in a reserved range. The IID decides which reference kinds are legal.
const (
	QRIIDStart = 30000
	QRIIDEnd   = 31999
)

// Account is an IBAN. The zero value is empty; shape and checksum are the
// validator's job, not the constructor's, so that all problems of a bill
// can be reported together.
type Account string

// Electronic returns the IBAN without spaces, upper-cased.
func (a Account) Electronic() string {
	return strings.ToUpper(strings.ReplaceAll(string(a), " ", ""))
}

// IsQRIBAN reports whether the institution identifier falls in the reserved
// QR-IID range. Malformed accounts report false.
func (a Account) IsQRIBAN() bool {
	e := a.Electronic()
	if len(e) < 9 {
		return false
	}
	iid := 0
	for _, r := range e[4:9] {
		if r < '0' || r > '9' {
			return false
		}
		iid = iid*10 + int(r-'0')
	}
	return iid >= QRIIDStart && iid <= QRIIDEnd
}

// Format returns the IBAN in the human-readable form, grouped in blocks of
// four characters.
func (a Account) Format() string {
	return groupString(a.Electronic(), 4)
}

// groupString splits s into space-separated groups of n characters.
func groupString(s string, n int) string {
	if n <= 0 || s == "" {
		return s
	}
	var b strings.Builder
	for i, r := range s {
		if i > 0 && i%n == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

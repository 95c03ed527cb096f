// Package checksum implements the check-digit algorithms of the Swiss
// payment standards: the mod-97 family shared by IBAN and ISO 11649
// creditor references, and the recursive mod-10 check of QR (ESR)
// references. All functions are pure and free of shared state.
package checksum

import (
	"errors"
	"fmt"
)

// ErrMalformed reports input that is not even syntactically a candidate
// (wrong length, illegal characters). It is distinct from ErrChecksum so
// callers can present "not a valid IBAN format" separately from "IBAN
// checksum failed".
var ErrMalformed = errors.New("malformed input")

// ErrChecksum reports a well-formed value whose check digits do not verify.
var ErrChecksum = errors.New("checksum mismatch")

// Mod97 reduces an alphanumeric string modulo 97, mapping letters A-Z to
// the two-digit values 10-35 as ISO 7064 prescribes. The reduction is
// incremental, so arbitrarily long inputs never overflow.
func Mod97(s string) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("%w: empty string", ErrMalformed)
	}
	r := 0
	for _, c := range s {
		switch {
		case c >= '0' && c <= '9':
			r = (r*10 + int(c-'0')) % 97
		case c >= 'A' && c <= 'Z':
			v := int(c-'A') + 10
			r = (r*100 + v) % 97
		default:
			return 0, fmt.Errorf("%w: character %q", ErrMalformed, c)
		}
	}
	return r, nil
}

// ValidateIBAN verifies the check digits of an IBAN in electronic format
// (no spaces, upper case). The country code and check digits are moved to
// the end and the whole string must reduce to 1 modulo 97.
func ValidateIBAN(iban string) error {
	if len(iban) < 5 || len(iban) > 34 {
		return fmt.Errorf("%w: IBAN length %d", ErrMalformed, len(iban))
	}
	for i := 0; i < 2; i++ {
		if iban[i] < 'A' || iban[i] > 'Z' {
			return fmt.Errorf("%w: IBAN country code %q", ErrMalformed, iban[:2])
		}
	}
	for i := 2; i < 4; i++ {
		if iban[i] < '0' || iban[i] > '9' {
			return fmt.Errorf("%w: IBAN check digits %q", ErrMalformed, iban[2:4])
		}
	}
	rem, err := Mod97(iban[4:] + iban[:4])
	if err != nil {
		return err
	}
	if rem != 1 {
		return fmt.Errorf("%w: IBAN %s", ErrChecksum, iban)
	}
	return nil
}

// ValidateCreditorReference verifies an ISO 11649 ("RF") creditor
// reference in electronic format. The scheme is the same mod-97 family as
// the IBAN, with the "RF" prefix and its check digits moved to the end.
func ValidateCreditorReference(ref string) error {
	if len(ref) < 5 || len(ref) > 25 {
		return fmt.Errorf("%w: creditor reference length %d", ErrMalformed, len(ref))
	}
	if ref[:2] != "RF" {
		return fmt.Errorf("%w: creditor reference must start with RF", ErrMalformed)
	}
	rem, err := Mod97(ref[4:] + ref[:4])
	if err != nil {
		return err
	}
	if rem != 1 {
		return fmt.Errorf("%w: creditor reference %s", ErrChecksum, ref)
	}
	return nil
}

// Package swico implements the SWICO S1 syntax for the structured billing
// information string of a QR-bill ("//S1/10/.../11/..."). The string is
// machine-readable data for the bill recipient's accounting software; it
// is encoded in the payload but never printed verbatim on the slip.
package swico

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Prefix introduces an S1 structured billing information string.
const Prefix = "//S1"

// DateFormat is the YYMMDD layout used by the /11/ and /31/ tags.
const DateFormat = "060102"

// Tag numbers of the S1 syntax, in their mandated emission order.
const (
	TagInvoiceRef  = "10"
	TagInvoiceDate = "11"
	TagCustomerRef = "20"
	TagVATNumber   = "30"
	TagVATDate     = "31"
	TagVATDetails  = "32"
	TagVATImport   = "33"
	TagConditions  = "40"
)

// ErrSyntax reports a billing information string that violates the S1
// syntax rules.
var ErrSyntax = errors.New("invalid billing information syntax")

// Details holds the decoded fields of an S1 string. Free-text fields
// (invoice and customer reference) are stored unescaped.
type Details struct {
	InvoiceRef  string `json:"invoice_ref,omitempty"`  // tag 10, free text
	InvoiceDate string `json:"invoice_date,omitempty"` // tag 11, YYMMDD
	CustomerRef string `json:"customer_ref,omitempty"` // tag 20, free text
	VATNumber   string `json:"vat_number,omitempty"`   // tag 30, numeric UID without CHE prefix
	VATDate     string `json:"vat_date,omitempty"`     // tag 31, YYMMDD or YYMMDDYYMMDD
	VATDetails  string `json:"vat_details,omitempty"`  // tag 32, rate or rate:amount list
	VATImport   string `json:"vat_import,omitempty"`   // tag 33, rate:amount list
	Conditions  string `json:"conditions,omitempty"`   // tag 40, discount:days list
}

// Empty reports whether no field is set.
func (d Details) Empty() bool { return d == Details{} }

// String emits the S1 wire form with tags in mandated order, escaping the
// free-text fields. An empty Details emits the empty string.
func (d Details) String() string {
	if d.Empty() {
		return ""
	}
	var b strings.Builder
	b.WriteString(Prefix)
	emit := func(tag, value string, freeText bool) {
		if value == "" {
			return
		}
		if freeText {
			value = escape(value)
		}
		b.WriteByte('/')
		b.WriteString(tag)
		b.WriteByte('/')
		b.WriteString(value)
	}
	emit(TagInvoiceRef, d.InvoiceRef, true)
	emit(TagInvoiceDate, d.InvoiceDate, false)
	emit(TagCustomerRef, d.CustomerRef, true)
	emit(TagVATNumber, d.VATNumber, false)
	emit(TagVATDate, d.VATDate, false)
	emit(TagVATDetails, d.VATDetails, false)
	emit(TagVATImport, d.VATImport, false)
	emit(TagConditions, d.Conditions, false)
	return b.String()
}

// Validate applies the S1 syntax rules to every populated field.
func (d Details) Validate() error {
	if d.InvoiceDate != "" {
		if err := validateDate(d.InvoiceDate, false); err != nil {
			return err
		}
	}
	if d.VATDate != "" {
		if err := validateDate(d.VATDate, true); err != nil {
			return err
		}
	}
	if d.VATNumber != "" {
		if len(d.VATNumber) != 9 {
			return fmt.Errorf("%w: VAT number %q must be 9 digits", ErrSyntax, d.VATNumber)
		}
		for _, c := range d.VATNumber {
			if c < '0' || c > '9' {
				return fmt.Errorf("%w: VAT number %q must be 9 digits", ErrSyntax, d.VATNumber)
			}
		}
	}
	if err := validateGroups(d.VATDetails, false); err != nil {
		return err
	}
	if err := validateGroups(d.VATImport, false); err != nil {
		return err
	}
	if err := validateGroups(d.Conditions, true); err != nil {
		return err
	}
	return nil
}

// validateDate accepts YYMMDD, or YYMMDDYYMMDD when range is allowed.
func validateDate(s string, allowRange bool) error {
	switch len(s) {
	case 6:
		if _, err := time.Parse(DateFormat, s); err != nil {
			return fmt.Errorf("%w: date %q: %v", ErrSyntax, s, err)
		}
	case 12:
		if !allowRange {
			return fmt.Errorf("%w: date %q must be a single YYMMDD", ErrSyntax, s)
		}
		for _, part := range []string{s[:6], s[6:]} {
			if _, err := time.Parse(DateFormat, part); err != nil {
				return fmt.Errorf("%w: date %q: %v", ErrSyntax, s, err)
			}
		}
	default:
		return fmt.Errorf("%w: date %q, expected YYMMDD", ErrSyntax, s)
	}
	return nil
}

// validateGroups checks the "a:b;c:d" grammar of the VAT and condition
// tags. Decimal commas are forbidden; conditions must be discount:days
// pairs with integral days.
func validateGroups(s string, conditions bool) error {
	if s == "" {
		return nil
	}
	if strings.ContainsRune(s, ',') {
		return fmt.Errorf("%w: %q uses a decimal comma, use '.'", ErrSyntax, s)
	}
	for _, group := range strings.Split(s, ";") {
		parts := strings.Split(group, ":")
		for _, p := range parts {
			if _, err := strconv.ParseFloat(p, 64); err != nil {
				return fmt.Errorf("%w: %q is not numeric", ErrSyntax, p)
			}
		}
		if conditions {
			if len(parts) != 2 {
				return fmt.Errorf("%w: condition %q must be discount:days", ErrSyntax, group)
			}
			if _, err := strconv.Atoi(parts[1]); err != nil {
				return fmt.Errorf("%w: condition days %q must be an integer", ErrSyntax, parts[1])
			}
		}
	}
	return nil
}

// escape protects the S1 separator characters in free-text values.
func escape(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, "/", `\/`)
}

// unescape reverses escape.
func unescape(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			i++
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

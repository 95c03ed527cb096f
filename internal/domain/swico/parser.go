package swico

import (
	"fmt"
	"strings"
)

// Parse decodes an S1 billing information string into its fields and
// validates the syntax. The input must start with the //S1 prefix; any
// leading free text belongs in the bill's unstructured message, not here.
func Parse(s string) (Details, error) {
	if !strings.HasPrefix(s, Prefix) {
		return Details{}, fmt.Errorf("%w: missing %s prefix", ErrSyntax, Prefix)
	}
	body := s[len(Prefix):]
	if body == "" {
		return Details{}, nil
	}
	if body[0] != '/' {
		return Details{}, fmt.Errorf("%w: expected '/' after prefix", ErrSyntax)
	}

	tokens, err := splitUnescaped(body[1:])
	if err != nil {
		return Details{}, err
	}
	if len(tokens)%2 != 0 {
		return Details{}, fmt.Errorf("%w: dangling tag", ErrSyntax)
	}

	var d Details
	for i := 0; i < len(tokens); i += 2 {
		tag, value := tokens[i], tokens[i+1]
		switch tag {
		case TagInvoiceRef:
			d.InvoiceRef = unescape(value)
		case TagInvoiceDate:
			d.InvoiceDate = value
		case TagCustomerRef:
			d.CustomerRef = unescape(value)
		case TagVATNumber:
			d.VATNumber = value
		case TagVATDate:
			d.VATDate = value
		case TagVATDetails:
			d.VATDetails = value
		case TagVATImport:
			d.VATImport = value
		case TagConditions:
			d.Conditions = value
		default:
			return Details{}, fmt.Errorf("%w: unknown tag /%s/", ErrSyntax, tag)
		}
	}
	if err := d.Validate(); err != nil {
		return Details{}, err
	}
	return d, nil
}

// splitUnescaped splits on '/' separators, honoring the \/ and \\ escape
// sequences. A trailing lone backslash is a syntax error.
func splitUnescaped(s string) ([]string, error) {
	var tokens []string
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			if i+1 >= len(s) {
				return nil, fmt.Errorf("%w: trailing escape character", ErrSyntax)
			}
			if s[i+1] != '\\' && s[i+1] != '/' {
				return nil, fmt.Errorf("%w: invalid escape %q", ErrSyntax, s[i:i+2])
			}
			b.WriteByte(s[i])
			b.WriteByte(s[i+1])
			i++
		case '/':
			tokens = append(tokens, b.String())
			b.Reset()
		default:
			b.WriteByte(s[i])
		}
	}
	tokens = append(tokens, b.String())
	return tokens, nil
}

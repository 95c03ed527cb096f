package swico

import "time"

// Builder assembles an S1 Details value fluently. Build validates the
// collected fields; nothing is checked before that.
type Builder struct {
	d Details
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder { return &Builder{} }

// InvoiceRef sets the invoice/voucher number (tag 10).
func (b *Builder) InvoiceRef(s string) *Builder {
	b.d.InvoiceRef = s
	return b
}

// InvoiceDate sets the voucher date (tag 11).
func (b *Builder) InvoiceDate(t time.Time) *Builder {
	b.d.InvoiceDate = t.Format(DateFormat)
	return b
}

// CustomerRef sets the customer reference (tag 20).
func (b *Builder) CustomerRef(s string) *Builder {
	b.d.CustomerRef = s
	return b
}

// VATNumber sets the creditor's numeric UID (tag 30).
func (b *Builder) VATNumber(s string) *Builder {
	b.d.VATNumber = s
	return b
}

// VATDate sets the date of the supplied service (tag 31).
func (b *Builder) VATDate(t time.Time) *Builder {
	b.d.VATDate = t.Format(DateFormat)
	return b
}

// VATDateRange sets tag 31 to a start/end range.
func (b *Builder) VATDateRange(start, end time.Time) *Builder {
	b.d.VATDate = start.Format(DateFormat) + end.Format(DateFormat)
	return b
}

// VATDetails sets the rate or rate:amount list (tag 32).
func (b *Builder) VATDetails(s string) *Builder {
	b.d.VATDetails = s
	return b
}

// VATImport sets the import tax rate:amount list (tag 33).
func (b *Builder) VATImport(s string) *Builder {
	b.d.VATImport = s
	return b
}

// Conditions sets the discount:days list (tag 40).
func (b *Builder) Conditions(s string) *Builder {
	b.d.Conditions = s
	return b
}

// Build validates and returns the collected details.
func (b *Builder) Build() (Details, error) {
	if err := b.d.Validate(); err != nil {
		return Details{}, err
	}
	return b.d, nil
}

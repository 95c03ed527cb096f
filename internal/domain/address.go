package domain

// Address is one of the two mutually exclusive address kinds the standard
// permits. The interface is sealed; StructuredAddress and CombinedAddress
// are the only implementations.
type Address interface {
	// CountryCode returns the two-letter ISO 3166-1 country code.
	CountryCode() string

	sealedAddress()
}

// StructuredAddress carries the address split into its individual elements
// (address type "S" in the payload).
type StructuredAddress struct {
	Street      string
	HouseNumber string
	PostalCode  string
	Town        string
	Country     string
}

func (a StructuredAddress) CountryCode() string { return a.Country }
func (a StructuredAddress) sealedAddress()      {}

// CombinedAddress carries the address as two free-text lines (address type
// "K" in the payload). Line2 must hold postal code and town.
type CombinedAddress struct {
	Line1   string
	Line2   string
	Country string
}

func (a CombinedAddress) CountryCode() string { return a.Country }
func (a CombinedAddress) sealedAddress()      {}

package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swissqr/qrbill/internal/domain"
)

func TestAccountElectronic(t *testing.T) {
	a := domain.Account("ch44 3199 9123 0008 8901 2")
	assert.Equal(t, "CH4431999123000889012", a.Electronic())
}

func TestAccountFormat(t *testing.T) {
	a := domain.Account("CH4431999123000889012")
	assert.Equal(t, "CH44 3199 9123 0008 8901 2", a.Format())
}

func TestAccountIsQRIBAN(t *testing.T) {
	tests := []struct {
		account string
		want    bool
	}{
		{"CH4431999123000889012", true},  // IID 31999, top of range
		{"CH4430000123000889012", true},  // IID 30000, bottom of range
		{"CH5800791123000889012", false}, // ordinary IID
		{"CH4432000123000889012", false}, // just above range
		{"CH44", false},                  // too short
		{"CH44ABCDE123000889012", false}, // non-numeric IID
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, domain.Account(tt.account).IsQRIBAN(), tt.account)
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1949.75", "1949.75"},
		{"500", "500.00"},
		{"0.5", "0.50"},
		{"0", "0.00"},
		{"999999999.99", "999999999.99"},
	}
	for _, tt := range tests {
		a, err := domain.ParseAmount(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, a.String(), tt.in)
	}
}

func TestParseAmountRejects(t *testing.T) {
	format := []string{"", ".", ".50", "12.", "12.345", "1,50", "-1", "1e3", "CHF 10"}
	for _, in := range format {
		_, err := domain.ParseAmount(in)
		assert.ErrorIs(t, err, domain.ErrAmountFormat, in)
	}

	_, err := domain.ParseAmount("1000000000.00")
	assert.ErrorIs(t, err, domain.ErrAmountRange)
}

func TestNewAmountRange(t *testing.T) {
	_, err := domain.NewAmount(-1)
	assert.ErrorIs(t, err, domain.ErrAmountRange)

	a, err := domain.NewAmount(domain.MaxAmountRappen)
	require.NoError(t, err)
	assert.Equal(t, "999999999.99", a.String())
}

func TestAmountDisplay(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1949.75", "1 949.75"},
		{"50.00", "50.00"},
		{"999999999.99", "999 999 999.99"},
		{"1000", "1 000.00"},
	}
	for _, tt := range tests {
		a, err := domain.ParseAmount(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, a.Display())
	}
}

func TestReferenceElectronic(t *testing.T) {
	r := domain.QRReference("21 00000 00003 13947 14300 09017")
	assert.Equal(t, "210000000003139471430009017", r.Electronic())

	s := domain.CreditorReference("rf18 5390.0754-7034")
	assert.Equal(t, "RF18539007547034", s.Electronic())

	assert.Empty(t, domain.NoReference().Electronic())
}

func TestReferenceDisplay(t *testing.T) {
	r := domain.QRReference("210000000003139471430009017")
	assert.Equal(t, "21 00000 00003 13947 14300 09017", r.Display())

	short := domain.QRReference("240752371")
	assert.Equal(t, "00 00000 00000 00000 02407 52371", short.Display())

	s := domain.CreditorReference("RF18539007547034")
	assert.Equal(t, "RF18 5390 0754 7034", s.Display())

	assert.Empty(t, domain.NoReference().Display())
}

func TestValidationResultByField(t *testing.T) {
	result := domain.ValidationResult{Violations: []domain.Violation{
		{Field: "account", Rule: domain.RuleRequired},
		{Field: "account", Rule: domain.RuleIBANChecksum},
		{Field: "currency", Rule: domain.RuleCurrency},
	}}

	assert.False(t, result.OK())
	byField := result.ByField()
	assert.Equal(t, []domain.Rule{domain.RuleRequired, domain.RuleIBANChecksum}, byField["account"])
	assert.Equal(t, []domain.Rule{domain.RuleCurrency}, byField["currency"])

	assert.True(t, domain.ValidationResult{}.OK())
	assert.Nil(t, domain.ValidationResult{}.ByField())
}

func TestInvalidBillErrorUnwraps(t *testing.T) {
	err := &domain.InvalidBillError{Result: domain.ValidationResult{
		Violations: []domain.Violation{{Field: "account", Rule: domain.RuleRequired}},
	}}
	assert.ErrorIs(t, err, domain.ErrInvalidBill)
	assert.Contains(t, err.Error(), "1 violation")
}

func TestAddressCountryCode(t *testing.T) {
	var structured domain.Address = domain.StructuredAddress{Country: "CH"}
	var combined domain.Address = domain.CombinedAddress{Country: "LI"}
	assert.Equal(t, "CH", structured.CountryCode())
	assert.Equal(t, "LI", combined.CountryCode())
}

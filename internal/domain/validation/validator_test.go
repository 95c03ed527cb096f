package validation_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swissqr/qrbill/internal/domain"
	"github.com/swissqr/qrbill/internal/domain/validation"
)

func validBill() domain.Bill {
	amount, _ := domain.ParseAmount("1949.75")
	return domain.Bill{
		Amount:  &amount,
		Account: "CH44 3199 9123 0008 8901 2",
		Creditor: domain.Party{
			Name: "Robert Schneider AG",
			Address: domain.StructuredAddress{
				Street:      "Rue du Lac",
				HouseNumber: "1268",
				PostalCode:  "2501",
				Town:        "Biel",
				Country:     "CH",
			},
		},
		Debtor: &domain.Party{
			Name: "Pia-Maria Rutschmann-Schnyder",
			Address: domain.CombinedAddress{
				Line1:   "Grosse Marktgasse 28",
				Line2:   "9400 Rorschach",
				Country: "CH",
			},
		},
		Currency:  domain.CurrencyCHF,
		Reference: domain.QRReference("21 00000 00003 13947 14300 09017"),
		Message:   "Order of 15 June 2020",
		Language:  domain.LanguageEnglish,
	}
}

func rules(t *testing.T, b domain.Bill, field string) []domain.Rule {
	t.Helper()
	return validation.Validate(b).ByField()[field]
}

func TestValidBillHasNoViolations(t *testing.T) {
	result := validation.Validate(validBill())
	assert.True(t, result.OK(), "violations: %+v", result.Violations)
}

func TestMinimalBillIsValid(t *testing.T) {
	b := domain.Bill{
		Account: "CH5800791123000889012",
		Creditor: domain.Party{
			Name: "Test AG",
			Address: domain.StructuredAddress{
				PostalCode: "8000",
				Town:       "Zürich",
				Country:    "CH",
			},
		},
		Currency:  domain.CurrencyEUR,
		Reference: domain.NoReference(),
		Language:  domain.LanguageGerman,
	}
	result := validation.Validate(b)
	assert.True(t, result.OK(), "violations: %+v", result.Violations)
}

func TestAccountRules(t *testing.T) {
	tests := []struct {
		name    string
		account domain.Account
		want    domain.Rule
	}{
		{"missing", "", domain.RuleRequired},
		{"wrong country", "DE89370400440532013000", domain.RuleAccountCountry},
		{"bad checksum", "CH4431999123000889013", domain.RuleIBANChecksum},
		{"not an IBAN", "CHXYZ", domain.RuleAccountFormat},
		{"wrong length for CH", "CH091", domain.RuleAccountFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := validBill()
			b.Account = tt.account
			b.Reference = domain.NoReference()
			assert.Contains(t, rules(t, b, "account"), tt.want)
		})
	}
}

func TestCreditorNameRequired(t *testing.T) {
	b := validBill()
	b.Creditor.Name = ""
	assert.Contains(t, rules(t, b, "creditor.name"), domain.RuleRequired)
}

func TestDebtorIsOptionalButCheckedWhenPresent(t *testing.T) {
	b := validBill()
	b.Debtor = nil
	assert.True(t, validation.Validate(b).OK())

	b = validBill()
	b.Debtor.Address = domain.CombinedAddress{Line1: "Somewhere", Country: "CH"}
	assert.Contains(t, rules(t, b, "debtor.address.line2"), domain.RuleRequired)
}

func TestStructuredAddressRules(t *testing.T) {
	b := validBill()
	b.Creditor.Address = domain.StructuredAddress{
		Street:  strings.Repeat("x", 71),
		Town:    "Biel",
		Country: "ZZ",
	}
	result := validation.Validate(b).ByField()

	assert.Contains(t, result["creditor.address.street"], domain.RuleMaxLength)
	assert.Contains(t, result["creditor.address.postal_code"], domain.RuleRequired)
	assert.Contains(t, result["creditor.address.country"], domain.RuleCountryCode)
}

func TestNameLengthBoundary(t *testing.T) {
	b := validBill()
	b.Creditor.Name = strings.Repeat("x", 70)
	assert.True(t, validation.Validate(b).OK())

	b.Creditor.Name = strings.Repeat("x", 71)
	assert.Contains(t, rules(t, b, "creditor.name"), domain.RuleMaxLength)
}

func TestCharsetViolation(t *testing.T) {
	b := validBill()
	b.Creditor.Name = "Bad € Name"
	assert.Contains(t, rules(t, b, "creditor.name"), domain.RuleCharset)
}

func TestMissingAddress(t *testing.T) {
	b := validBill()
	b.Creditor.Address = nil
	assert.Contains(t, rules(t, b, "creditor.address"), domain.RuleRequired)
}

func TestCurrencyRules(t *testing.T) {
	b := validBill()
	b.Currency = ""
	assert.Contains(t, rules(t, b, "currency"), domain.RuleRequired)

	b.Currency = "USD"
	assert.Contains(t, rules(t, b, "currency"), domain.RuleCurrency)
}

func TestQRIBANRequiresQRReference(t *testing.T) {
	b := validBill() // QR-IBAN with QRR: valid
	require.True(t, validation.Validate(b).OK())

	b.Reference = domain.NoReference()
	assert.Contains(t, rules(t, b, "reference"), domain.RuleQRIBANNeedsQRReference)

	b.Reference = domain.CreditorReference("RF18539007547034")
	assert.Contains(t, rules(t, b, "reference"), domain.RuleQRIBANNeedsQRReference)
}

func TestOrdinaryIBANForbidsQRReference(t *testing.T) {
	b := validBill()
	b.Account = "CH5800791123000889012"
	assert.Contains(t, rules(t, b, "reference"), domain.RuleOrdinaryIBANForbidsQRRef)

	b.Reference = domain.CreditorReference("RF18539007547034")
	assert.True(t, validation.Validate(b).OK())
}

func TestReferenceChecksumRules(t *testing.T) {
	b := validBill()
	b.Reference = domain.QRReference("210000000003139471430009018")
	assert.Contains(t, rules(t, b, "reference"), domain.RuleReferenceChecksum)

	b.Reference = domain.QRReference("not-digits")
	assert.Contains(t, rules(t, b, "reference"), domain.RuleReferenceFormat)

	b.Account = "CH5800791123000889012"
	b.Reference = domain.CreditorReference("RF19539007547034")
	assert.Contains(t, rules(t, b, "reference"), domain.RuleReferenceChecksum)

	b.Reference = domain.Reference{Kind: "ESR", Value: "123"}
	assert.Contains(t, rules(t, b, "reference"), domain.RuleReferenceFormat)
}

func TestJointAdditionalInfoLength(t *testing.T) {
	b := validBill()
	b.Message = strings.Repeat("m", 100)
	b.BillingInformation = "//S1/10/" + strings.Repeat("1", 50)

	result := validation.Validate(b).ByField()
	assert.Contains(t, result["additional_information"], domain.RuleJointInfoLength)
}

func TestBillingInformationSyntaxChecked(t *testing.T) {
	b := validBill()
	b.BillingInformation = "//S1/99/123"
	assert.Contains(t, rules(t, b, "billing_information"), domain.RuleBillingInfoSyntax)

	b.BillingInformation = "//S1/10/10201409/11/190512/30/106017086"
	assert.True(t, validation.Validate(b).OK())
}

func TestAlternativeProcedureRules(t *testing.T) {
	b := validBill()
	b.AlternativeProcedures = []string{"a", "b", "c"}
	assert.Contains(t, rules(t, b, "alternative_procedures"), domain.RuleTooManyAltProcedures)

	b.AlternativeProcedures = []string{strings.Repeat("x", 101)}
	assert.Contains(t, rules(t, b, "alternative_procedures[0]"), domain.RuleMaxLength)

	b.AlternativeProcedures = []string{"Name AV1: UV;UltraPay005;12345"}
	assert.True(t, validation.Validate(b).OK())
}

func TestLanguageRules(t *testing.T) {
	b := validBill()
	b.Language = ""
	assert.Contains(t, rules(t, b, "language"), domain.RuleRequired)

	b.Language = "es"
	assert.Contains(t, rules(t, b, "language"), domain.RuleLanguage)
}

func TestAllViolationsCollectedAtOnce(t *testing.T) {
	b := domain.Bill{}
	result := validation.Validate(b)

	byField := result.ByField()
	assert.Contains(t, byField["account"], domain.RuleRequired)
	assert.Contains(t, byField["creditor.name"], domain.RuleRequired)
	assert.Contains(t, byField["creditor.address"], domain.RuleRequired)
	assert.Contains(t, byField["currency"], domain.RuleRequired)
	assert.Contains(t, byField["language"], domain.RuleRequired)
}

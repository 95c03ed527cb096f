// Package validation applies every rule of the QR-bill standard to a bill
// and reports the complete set of violations. It never short-circuits:
// invoicing integrations need to show the user all problems at once.
package validation

import (
	"errors"
	"fmt"

	"github.com/swissqr/qrbill/internal/domain"
	"github.com/swissqr/qrbill/internal/domain/charset"
	"github.com/swissqr/qrbill/internal/domain/checksum"
	"github.com/swissqr/qrbill/internal/domain/swico"
)

// Validate checks b against every rule and returns the collected result.
// An empty result is the precondition for encoding and layout.
func Validate(b domain.Bill) domain.ValidationResult {
	var c collector
	c.checkAccount(b.Account)
	c.checkParty("creditor", b.Creditor, true)
	if b.Debtor != nil {
		c.checkParty("debtor", *b.Debtor, false)
	}
	c.checkAmount(b.Amount)
	c.checkCurrency(b.Currency)
	c.checkReference(b.Account, b.Reference)
	c.checkAdditionalInfo(b.Message, b.BillingInformation)
	c.checkAlternativeProcedures(b.AlternativeProcedures)
	c.checkLanguage(b.Language)
	return domain.ValidationResult{Violations: c.violations}
}

type collector struct {
	violations []domain.Violation
}

func (c *collector) add(field string, rule domain.Rule, format string, args ...any) {
	c.violations = append(c.violations, domain.Violation{
		Field:   field,
		Rule:    rule,
		Message: fmt.Sprintf(format, args...),
	})
}

func (c *collector) checkAccount(account domain.Account) {
	iban := account.Electronic()
	if iban == "" {
		c.add("account", domain.RuleRequired, "account is required")
		return
	}
	if len(iban) >= 2 && iban[:2] != "CH" && iban[:2] != "LI" {
		c.add("account", domain.RuleAccountCountry, "account country %q must be CH or LI", iban[:2])
	}
	if err := checksum.ValidateIBAN(iban); err != nil {
		switch {
		case errors.Is(err, checksum.ErrChecksum):
			c.add("account", domain.RuleIBANChecksum, "IBAN check digits do not verify")
		default:
			c.add("account", domain.RuleAccountFormat, "not a valid IBAN format: %v", err)
		}
		return
	}
	// CH and LI IBANs are always 21 characters.
	if len(iban) != 21 {
		c.add("account", domain.RuleAccountFormat, "a CH/LI IBAN has 21 characters, got %d", len(iban))
	}
}

func (c *collector) checkParty(field string, p domain.Party, nameRequired bool) {
	if p.Name == "" && nameRequired {
		c.add(field+".name", domain.RuleRequired, "%s name is required", field)
	}
	c.checkText(field+".name", p.Name, domain.MaxNameLength)

	if p.Address == nil {
		c.add(field+".address", domain.RuleRequired, "%s address is required", field)
		return
	}

	switch a := p.Address.(type) {
	case domain.StructuredAddress:
		c.checkText(field+".address.street", a.Street, domain.MaxStreetLength)
		c.checkText(field+".address.house_number", a.HouseNumber, domain.MaxHouseNumberLength)
		if a.PostalCode == "" {
			c.add(field+".address.postal_code", domain.RuleRequired, "postal code is required")
		}
		c.checkText(field+".address.postal_code", a.PostalCode, domain.MaxPostalCodeLength)
		if a.Town == "" {
			c.add(field+".address.town", domain.RuleRequired, "town is required")
		}
		c.checkText(field+".address.town", a.Town, domain.MaxTownLength)
		c.checkCountry(field+".address.country", a.Country)
	case domain.CombinedAddress:
		if a.Line2 == "" {
			c.add(field+".address.line2", domain.RuleRequired, "combined address needs postal code and town on line 2")
		}
		c.checkText(field+".address.line1", a.Line1, domain.MaxNameLength)
		c.checkText(field+".address.line2", a.Line2, domain.MaxNameLength)
		c.checkCountry(field+".address.country", a.Country)
	default:
		c.add(field+".address", domain.RuleAddressKind, "address must be structured or combined")
	}
}

func (c *collector) checkText(field, s string, max int) {
	if n := len([]rune(s)); n > max {
		c.add(field, domain.RuleMaxLength, "%d characters exceed the maximum of %d", n, max)
	}
	if i := charset.FirstInvalid(s); i >= 0 {
		c.add(field, domain.RuleCharset, "character %q is outside the permitted character set", []rune(s[i:])[0])
	}
}

func (c *collector) checkCountry(field, code string) {
	if !validCountry(code) {
		c.add(field, domain.RuleCountryCode, "%q is not a two-letter ISO country code", code)
	}
}

func (c *collector) checkAmount(a *domain.Amount) {
	if a == nil {
		return
	}
	// The Amount constructors already enforce the range; this guards any
	// future construction path.
	if a.Rappen() < 0 || a.Rappen() > domain.MaxAmountRappen {
		c.add("amount", domain.RuleAmountRange, "amount must be between 0.00 and 999999999.99")
	}
}

func (c *collector) checkCurrency(cur domain.Currency) {
	if cur == "" {
		c.add("currency", domain.RuleRequired, "currency is required")
		return
	}
	for _, v := range domain.ValidCurrencies {
		if cur == v {
			return
		}
	}
	c.add("currency", domain.RuleCurrency, "currency %q is not CHF or EUR", cur)
}

func (c *collector) checkReference(account domain.Account, ref domain.Reference) {
	qrIBAN := account.IsQRIBAN()
	switch ref.Kind {
	case domain.ReferenceNone, "":
		if qrIBAN {
			c.add("reference", domain.RuleQRIBANNeedsQRReference,
				"a QR-IBAN requires a QR reference")
		}
	case domain.ReferenceQR:
		if !qrIBAN {
			c.add("reference", domain.RuleOrdinaryIBANForbidsQRRef,
				"a QR reference requires a QR-IBAN")
		}
		if err := checksum.ValidateESR(ref.Electronic()); err != nil {
			switch {
			case errors.Is(err, checksum.ErrChecksum):
				c.add("reference", domain.RuleReferenceChecksum, "QR reference check digit does not verify")
			default:
				c.add("reference", domain.RuleReferenceFormat, "not a valid QR reference: %v", err)
			}
		}
	case domain.ReferenceCreditor:
		if qrIBAN {
			c.add("reference", domain.RuleQRIBANNeedsQRReference,
				"a QR-IBAN requires a QR reference, not a creditor reference")
		}
		if err := checksum.ValidateCreditorReference(ref.Electronic()); err != nil {
			switch {
			case errors.Is(err, checksum.ErrChecksum):
				c.add("reference", domain.RuleReferenceChecksum, "creditor reference check digits do not verify")
			default:
				c.add("reference", domain.RuleReferenceFormat, "not a valid creditor reference: %v", err)
			}
		}
	default:
		c.add("reference", domain.RuleReferenceFormat, "unknown reference kind %q", ref.Kind)
	}
}

func (c *collector) checkAdditionalInfo(message, billingInfo string) {
	c.checkText("message", message, domain.MaxAdditionalInfoLength)
	c.checkText("billing_information", billingInfo, domain.MaxAdditionalInfoLength)
	joint := len([]rune(message)) + len([]rune(billingInfo))
	if joint > domain.MaxAdditionalInfoLength {
		c.add("additional_information", domain.RuleJointInfoLength,
			"message and billing information together are %d characters, maximum is %d",
			joint, domain.MaxAdditionalInfoLength)
	}
	if billingInfo != "" {
		if _, err := swico.Parse(billingInfo); err != nil {
			c.add("billing_information", domain.RuleBillingInfoSyntax, "%v", err)
		}
	}
}

func (c *collector) checkAlternativeProcedures(procs []string) {
	if len(procs) > domain.MaxAlternativeProcedures {
		c.add("alternative_procedures", domain.RuleTooManyAltProcedures,
			"at most %d alternative procedures are allowed", domain.MaxAlternativeProcedures)
	}
	for i, p := range procs {
		c.checkText(fmt.Sprintf("alternative_procedures[%d]", i), p, domain.MaxAlternativeProcedureLength)
	}
}

func (c *collector) checkLanguage(lang domain.Language) {
	if lang == "" {
		c.add("language", domain.RuleRequired, "language is required")
		return
	}
	for _, v := range domain.ValidLanguages {
		if lang == v {
			return
		}
	}
	c.add("language", domain.RuleLanguage, "language %q is not one of de, fr, it, en", lang)
}

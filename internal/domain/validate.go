package domain

// Rule identifies a single validation rule. Rules are stable identifiers,
// suitable for machine consumption by invoicing integrations.
type Rule string

const (
	// Structural rules.
	RuleRequired       Rule = "required"
	RuleAddressKind    Rule = "address_kind"
	RuleLanguage       Rule = "language"
	RuleCurrency       Rule = "currency"
	RuleCountryCode    Rule = "country_code"
	RuleAccountCountry Rule = "account_country"
	RuleAccountFormat  Rule = "account_format"

	// Length and charset rules.
	RuleMaxLength   Rule = "max_length"
	RuleCharset     Rule = "charset"
	RuleAmountRange Rule = "amount_range"

	// Cross-field rules.
	RuleQRIBANNeedsQRReference   Rule = "qr_iban_requires_qr_reference"
	RuleOrdinaryIBANForbidsQRRef Rule = "ordinary_iban_forbids_qr_reference"
	RuleTooManyAltProcedures     Rule = "too_many_alternative_procedures"
	RuleJointInfoLength          Rule = "joint_additional_info_length"

	// Checksum rules.
	RuleIBANChecksum      Rule = "iban_checksum"
	RuleReferenceFormat   Rule = "reference_format"
	RuleReferenceChecksum Rule = "reference_checksum"
	RuleBillingInfoSyntax Rule = "billing_info_syntax"
)

// Violation is one broken rule on one field.
type Violation struct {
	Field   string `json:"field"`
	Rule    Rule   `json:"rule"`
	Message string `json:"message"`
}

// ValidationResult collects every violation found on a bill. An empty
// result means the bill is valid and may be encoded and laid out.
type ValidationResult struct {
	Violations []Violation `json:"violations"`
}

// OK reports whether no rule was violated.
func (r ValidationResult) OK() bool { return len(r.Violations) == 0 }

// ByField groups the violated rules per field identifier, preserving the
// rule order within each field.
func (r ValidationResult) ByField() map[string][]Rule {
	if len(r.Violations) == 0 {
		return nil
	}
	m := make(map[string][]Rule)
	for _, v := range r.Violations {
		m[v.Field] = append(m[v.Field], v.Rule)
	}
	return m
}

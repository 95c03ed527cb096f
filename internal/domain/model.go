package domain

import "time"

// Language selects the label translation used on the printed slip.
// It never changes the payload grammar.
type Language string

const (
	LanguageGerman  Language = "de"
	LanguageFrench  Language = "fr"
	LanguageItalian Language = "it"
	LanguageEnglish Language = "en"
)

// ValidLanguages enumerates all supported slip languages.
var ValidLanguages = []Language{
	LanguageGerman, LanguageFrench, LanguageItalian, LanguageEnglish,
}

// Currency is the payment currency. The standard permits exactly two.
type Currency string

const (
	CurrencyCHF Currency = "CHF"
	CurrencyEUR Currency = "EUR"
)

// ValidCurrencies enumerates all permitted currencies.
var ValidCurrencies = []Currency{CurrencyCHF, CurrencyEUR}

// Party is a creditor or debtor: a name plus one of the two address kinds.
type Party struct {
	Name    string
	Address Address
}

// Bill aggregates everything needed to produce a QR-bill. It is built once
// by the caller and treated as immutable by the validator, the encoder and
// the layout engine.
type Bill struct {
	Account  Account
	Creditor Party
	Debtor   *Party
	Amount   *Amount
	Currency Currency

	Reference Reference

	// Message is the unstructured message to the bill recipient.
	Message string
	// BillingInformation is the structured (SWICO //S1) string. Message and
	// BillingInformation together may not exceed 140 characters.
	BillingInformation string

	// DueDate is shown on the payment part only; it is not encoded in the
	// payload.
	DueDate *time.Time

	// AlternativeProcedures holds at most two scheme parameter strings of at
	// most 100 characters each.
	AlternativeProcedures []string

	Language Language
}

const (
	// MaxNameLength bounds party names and combined address lines.
	MaxNameLength = 70
	// MaxStreetLength bounds the structured street field.
	MaxStreetLength = 70
	// MaxHouseNumberLength bounds the structured house number field.
	MaxHouseNumberLength = 16
	// MaxPostalCodeLength bounds the structured postal code field.
	MaxPostalCodeLength = 16
	// MaxTownLength bounds the structured town field.
	MaxTownLength = 35
	// MaxAdditionalInfoLength is the joint cap on the unstructured message
	// and the structured billing information.
	MaxAdditionalInfoLength = 140
	// MaxAlternativeProcedures is the number of alternative scheme lines.
	MaxAlternativeProcedures = 2
	// MaxAlternativeProcedureLength bounds each alternative scheme line.
	MaxAlternativeProcedureLength = 100
)

package layout

import "github.com/swissqr/qrbill/internal/domain"

// Labels is the full set of printed headings in one language.
type Labels struct {
	PaymentPart           string
	Receipt               string
	PayableTo             string
	Reference             string
	AdditionalInformation string
	Currency              string
	Amount                string
	AcceptancePoint       string
	PayableBy             string
	PayableByExtended     string
	PayableByDate         string
}

// Heading translations from Annex D of the standard.
var labelTranslations = map[domain.Language]Labels{
	domain.LanguageEnglish: {
		PaymentPart:           "Payment part",
		Receipt:               "Receipt",
		PayableTo:             "Account / Payable to",
		Reference:             "Reference",
		AdditionalInformation: "Additional information",
		Currency:              "Currency",
		Amount:                "Amount",
		AcceptancePoint:       "Acceptance point",
		PayableBy:             "Payable by",
		PayableByExtended:     "Payable by (name/address)",
		PayableByDate:         "Payable by",
	},
	domain.LanguageGerman: {
		PaymentPart:           "Zahlteil",
		Receipt:               "Empfangsschein",
		PayableTo:             "Konto / Zahlbar an",
		Reference:             "Referenz",
		AdditionalInformation: "Zusätzliche Informationen",
		Currency:              "Währung",
		Amount:                "Betrag",
		AcceptancePoint:       "Annahmestelle",
		PayableBy:             "Zahlbar durch",
		PayableByExtended:     "Zahlbar durch (Name/Adresse)",
		PayableByDate:         "Zahlbar bis",
	},
	domain.LanguageFrench: {
		PaymentPart:           "Section paiement",
		Receipt:               "Récépissé",
		PayableTo:             "Compte / Payable à",
		Reference:             "Référence",
		AdditionalInformation: "Informations supplémentaires",
		Currency:              "Monnaie",
		Amount:                "Montant",
		AcceptancePoint:       "Point de dépôt",
		PayableBy:             "Payable par",
		PayableByExtended:     "Payable par (nom/adresse)",
		PayableByDate:         "Payable jusqu’au",
	},
	domain.LanguageItalian: {
		PaymentPart:           "Sezione pagamento",
		Receipt:               "Ricevuta",
		PayableTo:             "Conto / Pagabile a",
		Reference:             "Riferimento",
		AdditionalInformation: "Informazioni supplementari",
		Currency:              "Valuta",
		Amount:                "Importo",
		AcceptancePoint:       "Punto di accettazione",
		PayableBy:             "Pagabile da",
		PayableByExtended:     "Pagabile da (nome/indirizzo)",
		PayableByDate:         "Pagabile fino al",
	},
}

// LabelsFor returns the headings for a language, falling back to English
// for the zero value.
func LabelsFor(lang domain.Language) Labels {
	if l, ok := labelTranslations[lang]; ok {
		return l
	}
	return labelTranslations[domain.LanguageEnglish]
}

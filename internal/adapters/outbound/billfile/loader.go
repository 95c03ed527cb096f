// Package billfile reads bill definitions from YAML files, the input
// format of the command-line tool.
package billfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/swissqr/qrbill/internal/domain"
)

// billDoc is the on-disk shape of a bill. Field names follow the printed
// headings rather than the payload grammar.
type billDoc struct {
	Account  string    `yaml:"account"`
	Creditor partyDoc  `yaml:"creditor"`
	Debtor   *partyDoc `yaml:"debtor"`

	Amount   string `yaml:"amount"`
	Currency string `yaml:"currency"`

	Reference struct {
		Type  string `yaml:"type"`
		Value string `yaml:"value"`
	} `yaml:"reference"`

	Message               string   `yaml:"message"`
	BillingInformation    string   `yaml:"billing_information"`
	DueDate               string   `yaml:"due_date"`
	AlternativeProcedures []string `yaml:"alternative_procedures"`
	Language              string   `yaml:"language"`
}

type partyDoc struct {
	Name string `yaml:"name"`

	// Structured form.
	Street      string `yaml:"street"`
	HouseNumber string `yaml:"house_number"`
	PostalCode  string `yaml:"postal_code"`
	Town        string `yaml:"town"`

	// Combined form. A party uses one form or the other, never both.
	Line1 string `yaml:"line1"`
	Line2 string `yaml:"line2"`

	Country string `yaml:"country"`
}

// Load reads a bill definition from path.
func Load(path string) (domain.Bill, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Bill{}, fmt.Errorf("reading bill file: %w", err)
	}
	b, err := Parse(data)
	if err != nil {
		return domain.Bill{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	return b, nil
}

// Parse decodes a YAML bill definition. Unknown keys are errors so typos
// surface instead of silently dropping a field.
func Parse(data []byte) (domain.Bill, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc billDoc
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return domain.Bill{}, fmt.Errorf("empty bill definition")
		}
		return domain.Bill{}, err
	}
	return doc.toBill()
}

func (d billDoc) toBill() (domain.Bill, error) {
	b := domain.Bill{
		Account:               domain.Account(d.Account),
		Currency:              domain.Currency(strings.ToUpper(d.Currency)),
		Message:               d.Message,
		BillingInformation:    d.BillingInformation,
		AlternativeProcedures: d.AlternativeProcedures,
		Language:              domain.Language(strings.ToLower(d.Language)),
	}
	if b.Language == "" {
		b.Language = domain.LanguageEnglish
	}

	b.Creditor = d.Creditor.toParty()
	if d.Debtor != nil {
		debtor := d.Debtor.toParty()
		b.Debtor = &debtor
	}

	if d.Amount != "" {
		amount, err := domain.ParseAmount(d.Amount)
		if err != nil {
			return domain.Bill{}, fmt.Errorf("amount: %w", err)
		}
		b.Amount = &amount
	}

	switch strings.ToUpper(d.Reference.Type) {
	case "", "NON":
		b.Reference = domain.NoReference()
	case "QRR":
		b.Reference = domain.QRReference(d.Reference.Value)
	case "SCOR":
		b.Reference = domain.CreditorReference(d.Reference.Value)
	default:
		return domain.Bill{}, fmt.Errorf("unknown reference type %q", d.Reference.Type)
	}

	if d.DueDate != "" {
		due, err := time.Parse("2006-01-02", d.DueDate)
		if err != nil {
			return domain.Bill{}, fmt.Errorf("due_date: %w", err)
		}
		b.DueDate = &due
	}

	return b, nil
}

func (p partyDoc) toParty() domain.Party {
	party := domain.Party{Name: p.Name}
	if p.Line1 != "" || p.Line2 != "" {
		party.Address = domain.CombinedAddress{
			Line1:   p.Line1,
			Line2:   p.Line2,
			Country: p.Country,
		}
		return party
	}
	party.Address = domain.StructuredAddress{
		Street:      p.Street,
		HouseNumber: p.HouseNumber,
		PostalCode:  p.PostalCode,
		Town:        p.Town,
		Country:     p.Country,
	}
	return party
}

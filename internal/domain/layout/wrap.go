package layout

import (
	"strings"
	"unicode/utf8"

	"github.com/swissqr/qrbill/internal/domain"
)

// Wrap breaks s into lines of at most width characters, preferring word
// boundaries. Words longer than the width are split hard rather than
// allowed to overrun the column.
func Wrap(s string, width int) []string {
	if s == "" {
		return nil
	}
	var lines []string
	var current strings.Builder
	currentLen := 0
	for _, word := range strings.Fields(s) {
		wordLen := utf8.RuneCountInString(word)
		if currentLen > 0 && currentLen+1+wordLen > width {
			lines = append(lines, current.String())
			current.Reset()
			currentLen = 0
		}
		if currentLen > 0 {
			current.WriteByte(' ')
			currentLen++
		}
		for wordLen > width-currentLen {
			// Hard split: fill the rest of the line with a word prefix.
			take := width - currentLen
			runes := []rune(word)
			current.WriteString(string(runes[:take]))
			lines = append(lines, current.String())
			current.Reset()
			currentLen = 0
			word = string(runes[take:])
			wordLen -= take
		}
		current.WriteString(word)
		currentLen += wordLen
	}
	if currentLen > 0 {
		lines = append(lines, current.String())
	}
	return lines
}

// partyLines renders a party as its printed address paragraph, one entry
// per already-wrapped line.
func partyLines(p domain.Party, width int) []string {
	raw := []string{p.Name}
	switch a := p.Address.(type) {
	case domain.StructuredAddress:
		street := a.Street
		if a.HouseNumber != "" {
			street = strings.TrimSpace(street + " " + a.HouseNumber)
		}
		if street != "" {
			raw = append(raw, street)
		}
		raw = append(raw, strings.TrimSpace(a.PostalCode+" "+a.Town))
	case domain.CombinedAddress:
		if a.Line1 != "" {
			raw = append(raw, a.Line1)
		}
		raw = append(raw, a.Line2)
	}
	var lines []string
	for _, r := range raw {
		lines = append(lines, Wrap(r, width)...)
	}
	return lines
}

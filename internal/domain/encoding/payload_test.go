package encoding_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swissqr/qrbill/internal/domain"
	"github.com/swissqr/qrbill/internal/domain/encoding"
)

func sampleBill() domain.Bill {
	amount, _ := domain.ParseAmount("1949.75")
	return domain.Bill{
		Amount:  &amount,
		Account: "CH44 3199 9123 0008 8901 2",
		Creditor: domain.Party{
			Name: "Max Muster & Söhne",
			Address: domain.StructuredAddress{
				Street:      "Musterstrasse",
				HouseNumber: "123",
				PostalCode:  "8000",
				Town:        "Seldwyla",
				Country:     "CH",
			},
		},
		Debtor: &domain.Party{
			Name: "Simon Muster",
			Address: domain.CombinedAddress{
				Line1:   "Musterstrasse 1",
				Line2:   "8000 Seldwyla",
				Country: "CH",
			},
		},
		Currency:  domain.CurrencyCHF,
		Reference: domain.QRReference("21 00000 00003 13947 14300 09017"),
		Message:   "Order of 15 June 2020",
		Language:  domain.LanguageEnglish,
	}
}

func TestEncodeFieldPositions(t *testing.T) {
	payload := encoding.Encode(sampleBill())
	lines := strings.Split(payload, "\r\n")
	require.Len(t, lines, 32)

	assert.Equal(t, "SPC", lines[0])
	assert.Equal(t, "0200", lines[1])
	assert.Equal(t, "1", lines[2])
	assert.Equal(t, "CH4431999123000889012", lines[3])

	assert.Equal(t, "S", lines[4])
	assert.Equal(t, "Max Muster & Söhne", lines[5])
	assert.Equal(t, "Musterstrasse", lines[6])
	assert.Equal(t, "123", lines[7])
	assert.Equal(t, "8000", lines[8])
	assert.Equal(t, "Seldwyla", lines[9])
	assert.Equal(t, "CH", lines[10])

	for i := 11; i < 18; i++ {
		assert.Empty(t, lines[i], "ultimate creditor line %d", i)
	}

	assert.Equal(t, "1949.75", lines[18])
	assert.Equal(t, "CHF", lines[19])

	assert.Equal(t, "K", lines[20])
	assert.Equal(t, "Simon Muster", lines[21])
	assert.Equal(t, "Musterstrasse 1", lines[22])
	assert.Equal(t, "8000 Seldwyla", lines[23])
	assert.Empty(t, lines[24])
	assert.Empty(t, lines[25])
	assert.Equal(t, "CH", lines[26])

	assert.Equal(t, "QRR", lines[27])
	assert.Equal(t, "210000000003139471430009017", lines[28])
	assert.Equal(t, "Order of 15 June 2020", lines[29])
	assert.Equal(t, "EPD", lines[30])
	assert.Empty(t, lines[31])
}

func TestEncodeOptionalFields(t *testing.T) {
	b := sampleBill()
	b.Account = "CH58 0079 1123 0008 8901 2"
	b.Reference = domain.NoReference()
	b.Debtor = nil
	b.Amount = nil
	b.BillingInformation = "//S1/10/X.66711/11/200612/30/106017086"
	b.AlternativeProcedures = []string{
		"Name AV1: UV;UltraPay005;12345",
		"Name AV2: XY;XYService;54321",
	}

	lines := strings.Split(encoding.Encode(b), "\r\n")
	require.Len(t, lines, 34)

	assert.Equal(t, "CH5800791123000889012", lines[3])
	for i := 20; i < 27; i++ {
		assert.Empty(t, lines[i], "debtor line %d", i)
	}
	assert.Empty(t, lines[18])
	assert.Equal(t, "NON", lines[27])
	assert.Empty(t, lines[28])
	assert.Equal(t, "//S1/10/X.66711/11/200612/30/106017086", lines[31])
	assert.Equal(t, "Name AV1: UV;UltraPay005;12345", lines[32])
	assert.Equal(t, "Name AV2: XY;XYService;54321", lines[33])
}

func TestEncodeDeterministic(t *testing.T) {
	assert.Equal(t, encoding.Encode(sampleBill()), encoding.Encode(sampleBill()))
}

func TestDecodeRoundTrip(t *testing.T) {
	b := sampleBill()
	b.BillingInformation = "//S1/10/10201409/11/190512"

	p, err := encoding.Decode(encoding.Encode(b))
	require.NoError(t, err)

	assert.Equal(t, "CH4431999123000889012", p.Account)
	assert.Equal(t, "S", p.Creditor.Kind)
	assert.Equal(t, "Max Muster & Söhne", p.Creditor.Name)
	assert.True(t, p.UltimateCreditor.Empty())
	assert.Equal(t, "1949.75", p.Amount)
	assert.Equal(t, "CHF", p.Currency)
	assert.Equal(t, "K", p.Debtor.Kind)
	assert.Equal(t, "QRR", p.ReferenceKind)
	assert.Equal(t, "210000000003139471430009017", p.Reference)
	assert.Equal(t, "//S1/10/10201409/11/190512", p.BillingInformation)
	assert.Empty(t, p.AlternativeProcedures)
}

func TestDecodeRejectsBadFrames(t *testing.T) {
	good := encoding.Encode(sampleBill())

	tests := []struct {
		name    string
		mutate  func(lines []string)
		wantErr string
	}{
		{"frame type", func(l []string) { l[0] = "XXX" }, "frame type"},
		{"version", func(l []string) { l[1] = "0100" }, "version"},
		{"coding", func(l []string) { l[2] = "2" }, "coding"},
		{"trailer", func(l []string) { l[30] = "XXX" }, "trailer"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := strings.Split(good, "\r\n")
			tt.mutate(lines)
			_, err := encoding.Decode(strings.Join(lines, "\r\n"))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	_, err := encoding.Decode("SPC\r\n0200\r\n1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "lines")
}

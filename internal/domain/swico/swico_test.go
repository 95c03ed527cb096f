package swico_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swissqr/qrbill/internal/domain/swico"
)

// Wire strings from the SWICO S1 syntax definition examples.
var wireExamples = []string{
	`//S1/10/10201409/11/190512/20/1400.000-53/30/106017086/31/180508/32/7.7/40/2:10;0:30`,
	`//S1/10/10104/11/180228/30/395856455/31/180226180227/32/3.7:400.19;7.7:553.39;0:14/40/0:30`,
	`//S1/10/4031202511/11/180107/20/61257/30/105493567/32/8:49.82/40/0:30`,
	`//S1/10/X.66711\/8824/11/200712/20/MW-2020-04/30/107978798/32/2.5:117.22/40/3:5;1.5:20;1:40;0:60`,
	`//S1/10/24073734/11/190628/30/105403089/31/190615190630/32/2.5:14.85/40/0:30`,
}

func TestParseWireExamples(t *testing.T) {
	for _, wire := range wireExamples {
		_, err := swico.Parse(wire)
		assert.NoError(t, err, wire)
	}
}

func TestParseFields(t *testing.T) {
	d, err := swico.Parse(wireExamples[0])
	require.NoError(t, err)

	assert.Equal(t, "10201409", d.InvoiceRef)
	assert.Equal(t, "190512", d.InvoiceDate)
	assert.Equal(t, "1400.000-53", d.CustomerRef)
	assert.Equal(t, "106017086", d.VATNumber)
	assert.Equal(t, "180508", d.VATDate)
	assert.Equal(t, "7.7", d.VATDetails)
	assert.Equal(t, "2:10;0:30", d.Conditions)
}

func TestParseUnescapesFreeText(t *testing.T) {
	d, err := swico.Parse(wireExamples[3])
	require.NoError(t, err)
	assert.Equal(t, "X.66711/8824", d.InvoiceRef)
}

func TestStringRoundTrip(t *testing.T) {
	for _, wire := range wireExamples {
		d, err := swico.Parse(wire)
		require.NoError(t, err, wire)
		assert.Equal(t, wire, d.String(), wire)
	}
}

func TestEmptyDetails(t *testing.T) {
	assert.True(t, swico.Details{}.Empty())
	assert.Empty(t, swico.Details{}.String())

	d, err := swico.Parse("//S1")
	require.NoError(t, err)
	assert.True(t, d.Empty())
}

func TestParseSyntaxErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"missing prefix", "/10/123"},
		{"wrong prefix", "//S2/10/123"},
		{"dangling tag", "//S1/10"},
		{"unknown tag", "//S1/99/123"},
		{"trailing escape", `//S1/10/abc\`},
		{"invalid escape", `//S1/10/a\x`},
		{"bad invoice date", "//S1/11/20190512"},
		{"date range where single expected", "//S1/11/190512190513"},
		{"bad vat number", "//S1/30/12345"},
		{"decimal comma", "//S1/32/7,7"},
		{"non-numeric group", "//S1/32/abc"},
		{"condition missing days", "//S1/40/2"},
		{"condition fractional days", "//S1/40/2:1.5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := swico.Parse(tt.in)
			assert.ErrorIs(t, err, swico.ErrSyntax)
		})
	}
}

func TestBuilder(t *testing.T) {
	d, err := swico.NewBuilder().
		InvoiceRef("X.66711/8824").
		InvoiceDate(time.Date(2020, 7, 12, 0, 0, 0, 0, time.UTC)).
		CustomerRef("MW-2020-04").
		VATNumber("107978798").
		VATDetails("2.5:117.22").
		Conditions("3:5;1.5:20;1:40;0:60").
		Build()
	require.NoError(t, err)

	assert.Equal(t, wireExamples[3], d.String())
}

func TestBuilderVATDateRange(t *testing.T) {
	d, err := swico.NewBuilder().
		VATDateRange(
			time.Date(2019, 6, 15, 0, 0, 0, 0, time.UTC),
			time.Date(2019, 6, 30, 0, 0, 0, 0, time.UTC),
		).
		Build()
	require.NoError(t, err)
	assert.Equal(t, "190615190630", d.VATDate)
}

func TestBuilderValidates(t *testing.T) {
	_, err := swico.NewBuilder().VATNumber("123").Build()
	assert.ErrorIs(t, err, swico.ErrSyntax)
}

package application_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swissqr/qrbill/internal/application"
	"github.com/swissqr/qrbill/internal/domain"
	"github.com/swissqr/qrbill/internal/domain/layout"
)

type stubGenerator struct {
	payload string
	err     error
}

func (g *stubGenerator) Generate(payload string, level domain.ECLevel) (domain.QRMatrix, error) {
	g.payload = payload
	if g.err != nil {
		return nil, g.err
	}
	m := make(domain.QRMatrix, 21)
	for i := range m {
		m[i] = make([]bool, 21)
	}
	return m, nil
}

type captureRenderer struct {
	plan *layout.Plan
	out  []byte
	err  error
}

func (r *captureRenderer) Render(plan *layout.Plan) ([]byte, error) {
	r.plan = plan
	return r.out, r.err
}

func validBill() domain.Bill {
	amount, _ := domain.ParseAmount("42.00")
	return domain.Bill{
		Amount:  &amount,
		Account: "CH5800791123000889012",
		Creditor: domain.Party{
			Name: "Robert Schneider AG",
			Address: domain.StructuredAddress{
				Street:     "Rue du Lac",
				PostalCode: "2501",
				Town:       "Biel",
				Country:    "CH",
			},
		},
		Currency:  domain.CurrencyCHF,
		Reference: domain.NoReference(),
		Language:  domain.LanguageEnglish,
	}
}

func TestValidateReportsViolations(t *testing.T) {
	svc := application.NewBillService(&stubGenerator{})

	assert.True(t, svc.Validate(validBill()).OK())

	b := validBill()
	b.Creditor.Name = ""
	result := svc.Validate(b)
	assert.False(t, result.OK())
}

func TestEncodePayloadGatesOnValidation(t *testing.T) {
	svc := application.NewBillService(&stubGenerator{})

	b := validBill()
	b.Currency = "USD"
	_, err := svc.EncodePayload(b)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidBill)
	var invalid *domain.InvalidBillError
	require.ErrorAs(t, err, &invalid)
	assert.NotEmpty(t, invalid.Result.Violations)
}

func TestEncodePayloadProducesFrame(t *testing.T) {
	svc := application.NewBillService(&stubGenerator{})

	payload, err := svc.EncodePayload(validBill())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(payload, "SPC\r\n0200\r\n1\r\n"))
	assert.Contains(t, payload, "\r\nEPD\r\n")
}

func TestBuildPlanPipesPayloadIntoGenerator(t *testing.T) {
	gen := &stubGenerator{}
	svc := application.NewBillService(gen)

	plan, err := svc.BuildPlan(validBill(), layout.Options{})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(gen.payload, "SPC\r\n"))
	assert.Equal(t, 210.0, plan.WidthMM)
	assert.Equal(t, 105.0, plan.HeightMM)
	assert.NotEmpty(t, plan.Primitives)
}

func TestBuildPlanWrapsGeneratorError(t *testing.T) {
	boom := errors.New("symbol capacity exceeded")
	svc := application.NewBillService(&stubGenerator{err: boom})

	_, err := svc.BuildPlan(validBill(), layout.Options{})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "generating QR symbol")
}

func TestRenderHandsPlanToRenderer(t *testing.T) {
	svc := application.NewBillService(&stubGenerator{})
	renderer := &captureRenderer{out: []byte("document")}

	out, err := svc.Render(validBill(), layout.Options{PaymentLine: true}, renderer)
	require.NoError(t, err)
	assert.Equal(t, []byte("document"), out)
	require.NotNil(t, renderer.plan)
	assert.Equal(t, 105.0, renderer.plan.HeightMM)
}

func TestRenderWrapsRendererError(t *testing.T) {
	svc := application.NewBillService(&stubGenerator{})
	renderer := &captureRenderer{err: errors.New("disk full")}

	_, err := svc.Render(validBill(), layout.Options{}, renderer)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rendering slip")
}

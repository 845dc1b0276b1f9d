package pricing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sixtyseconds/showcase/pkg/pricing"
)

func TestFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		base   pricing.Price
		cur    pricing.Currency
		period pricing.BillingPeriod
		want   string
	}{
		{"GBP monthly", 399, pricing.GBP, pricing.Monthly, "£399"},
		{"GBP annual is ten months", 399, pricing.GBP, pricing.Annual, "£3,990"},
		{"USD monthly converts and rounds", 999, pricing.USD, pricing.Monthly, "$1,269"},
		{"USD annual", 999, pricing.USD, pricing.Annual, "$12,687"},
		{"EUR monthly", 999, pricing.EUR, pricing.Monthly, "€1,169"},
		{"EUR annual groups thousands", 1699, pricing.EUR, pricing.Annual, "€19,878"},
		{"quote on request ignores currency", pricing.PriceOnRequest, pricing.USD, pricing.Monthly, "POA"},
		{"quote on request ignores period", pricing.PriceOnRequest, pricing.GBP, pricing.Annual, "POA"},
		{"unknown currency falls back to GBP", 399, pricing.Currency("CHF"), pricing.Monthly, "£399"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, pricing.Format(tt.base, tt.cur, tt.period))
		})
	}
}

func TestCurrency_Valid(t *testing.T) {
	t.Parallel()

	assert.True(t, pricing.GBP.Valid())
	assert.True(t, pricing.USD.Valid())
	assert.True(t, pricing.EUR.Valid())
	assert.False(t, pricing.Currency("CHF").Valid())
	assert.False(t, pricing.Currency("").Valid())
}

func TestSymbol(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "£", pricing.Symbol(pricing.GBP))
	assert.Equal(t, "$", pricing.Symbol(pricing.USD))
	assert.Equal(t, "€", pricing.Symbol(pricing.EUR))
	assert.Equal(t, "£", pricing.Symbol(pricing.Currency("JPY")))
}

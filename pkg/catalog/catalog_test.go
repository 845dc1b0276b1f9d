package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sixtyseconds/showcase/pkg/catalog"
	"github.com/sixtyseconds/showcase/pkg/pricing"
)

func TestLoad_EmbeddedCatalog(t *testing.T) {
	t.Parallel()

	c, err := catalog.Load()
	require.NoError(t, err)

	assert.Len(t, c.Challenges, 4)
	assert.Len(t, c.Plans, 3)
	assert.NotEmpty(t, c.Audiences)

	for _, ch := range c.Challenges {
		assert.True(t, c.HasChallenge(ch.ID))
		sols := c.SolutionsFor(ch)
		require.NotEmpty(t, sols, "challenge %s", ch.ID)
		for _, s := range sols {
			assert.NotEmpty(t, s.Title)
			assert.NotEmpty(t, s.Features)
		}
	}
}

func TestLoad_PlanPrices(t *testing.T) {
	t.Parallel()

	c, err := catalog.Load()
	require.NoError(t, err)

	byName := make(map[string]catalog.PricingPlan, len(c.Plans))
	for _, p := range c.Plans {
		byName[p.Name] = p
	}

	assert.Equal(t, pricing.Price(399), byName["Self Managed"].BasePrice())
	assert.Equal(t, pricing.Price(999), byName["Growth"].BasePrice())
	assert.Equal(t, pricing.Price(1699), byName["Scale"].BasePrice())
	assert.True(t, byName["Growth"].Popular)
	assert.True(t, byName["Scale"].Custom)
}

func TestChallenge_Lookup(t *testing.T) {
	t.Parallel()

	c, err := catalog.Load()
	require.NoError(t, err)

	ch, err := c.Challenge("outreach")
	require.NoError(t, err)
	assert.Equal(t, "Multi Channel Outreach", ch.Title)

	_, err = c.Challenge("nope")
	assert.ErrorIs(t, err, catalog.ErrUnknownChallenge)
}

func TestParse_POAPrice(t *testing.T) {
	t.Parallel()

	src := []byte(`
challenges:
  - id: a
    title: A
    solutions: [s]
solutions:
  - id: s
    title: S
    features:
      - title: F
        description: D
plans:
  - name: Enterprise
    price: POA
    features:
      - name: Everything
        included: true
`)
	c, err := catalog.Parse(src)
	require.NoError(t, err)
	assert.Equal(t, pricing.PriceOnRequest, c.Plans[0].BasePrice())
}

func TestParse_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
	}{
		{
			"unknown solution reference",
			`
challenges:
  - id: a
    title: A
    solutions: [missing]
solutions:
  - id: s
    title: S
plans:
  - name: P
    price: 1
`,
		},
		{
			"duplicate challenge id",
			`
challenges:
  - id: a
    title: A
    solutions: [s]
  - id: a
    title: B
    solutions: [s]
solutions:
  - id: s
    title: S
plans:
  - name: P
    price: 1
`,
		},
		{
			"negative price",
			`
challenges:
  - id: a
    title: A
    solutions: [s]
solutions:
  - id: s
    title: S
plans:
  - name: P
    price: -5
`,
		},
		{
			"no plans",
			`
challenges:
  - id: a
    title: A
    solutions: [s]
solutions:
  - id: s
    title: S
`,
		},
		{"not yaml", `{{{`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := catalog.Parse([]byte(tt.src))
			assert.ErrorIs(t, err, catalog.ErrInvalidCatalog)
		})
	}
}

package catalog

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/sixtyseconds/showcase/pkg/pricing"
)

//go:embed catalog.yaml
var embedded []byte

// Feature is a single capability listed on a solution page.
type Feature struct {
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
}

// Challenge is a customer problem category shown as a selectable card.
type Challenge struct {
	ID          string   `yaml:"id" json:"id"`
	Title       string   `yaml:"title" json:"title"`
	Description string   `yaml:"description" json:"description"`
	Subtext     string   `yaml:"subtext" json:"subtext"`
	Solutions   []string `yaml:"solutions" json:"solutions"`
}

// Solution is a set of product features addressing a challenge.
type Solution struct {
	ID            string    `yaml:"id" json:"id"`
	Title         string    `yaml:"title" json:"title"`
	Subtitle      string    `yaml:"subtitle" json:"subtitle"`
	Description   string    `yaml:"description" json:"description"`
	Features      []Feature `yaml:"features" json:"features"`
	CTA           string    `yaml:"cta" json:"cta,omitempty"`
	Demo          string    `yaml:"demo" json:"demo,omitempty"`
	Integration   string    `yaml:"integration" json:"integration,omitempty"`
	Compatibility string    `yaml:"compatibility" json:"compatibility,omitempty"`
}

// PlanFeature is a feature-inclusion entry on a pricing plan.
type PlanFeature struct {
	Name     string `yaml:"name" json:"name"`
	Tooltip  string `yaml:"tooltip" json:"tooltip,omitempty"`
	Included bool   `yaml:"included" json:"included"`
}

// PricingPlan is one column of the pricing table. Price is the monthly base
// amount in GBP, or the quote-on-request sentinel.
type PricingPlan struct {
	Name        string        `yaml:"name" json:"name"`
	Price       planPrice     `yaml:"price" json:"-"`
	Description string        `yaml:"description" json:"description"`
	Popular     bool          `yaml:"popular" json:"popular,omitempty"`
	Custom      bool          `yaml:"custom" json:"custom,omitempty"`
	Features    []PlanFeature `yaml:"features" json:"features"`
}

// BasePrice returns the plan's base price.
func (p PricingPlan) BasePrice() pricing.Price {
	return pricing.Price(p.Price)
}

// planPrice decodes either an integer amount or the POA token.
type planPrice pricing.Price

func (p *planPrice) UnmarshalYAML(value *yaml.Node) error {
	if value.Value == pricing.POAToken {
		*p = planPrice(pricing.PriceOnRequest)
		return nil
	}
	var n int
	if err := value.Decode(&n); err != nil {
		return fmt.Errorf("plan price must be an integer or %q: %w", pricing.POAToken, err)
	}
	if n < 0 {
		return fmt.Errorf("plan price must not be negative, got %d", n)
	}
	*p = planPrice(n)
	return nil
}

// AudienceColor is one entry of the colour cycle the rotating audience
// words are rendered with.
type AudienceColor struct {
	Color  string `yaml:"color" json:"color"`
	Shadow string `yaml:"shadow" json:"shadow"`
}

// Catalog is the parsed, validated content set.
type Catalog struct {
	Challenges     []Challenge     `yaml:"challenges"`
	Plans          []PricingPlan   `yaml:"plans"`
	Audiences      []string        `yaml:"audiences"`
	AudienceColors []AudienceColor `yaml:"audience_colors"`

	solutions     []Solution
	solutionIndex map[string]int
	challengeIdx  map[string]int
}

// Load parses and validates the embedded catalog.
func Load() (*Catalog, error) {
	return Parse(embedded)
}

// MustLoad is Load that panics on failure. The embedded catalog is part of
// the build, so a failure here is a programming error.
func MustLoad() *Catalog {
	c, err := Load()
	if err != nil {
		panic(err)
	}
	return c
}

// Parse parses and validates catalog YAML.
func Parse(data []byte) (*Catalog, error) {
	var raw struct {
		Challenges     []Challenge     `yaml:"challenges"`
		Solutions      []Solution      `yaml:"solutions"`
		Plans          []PricingPlan   `yaml:"plans"`
		Audiences      []string        `yaml:"audiences"`
		AudienceColors []AudienceColor `yaml:"audience_colors"`
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCatalog, err)
	}

	c := &Catalog{
		Challenges:     raw.Challenges,
		Plans:          raw.Plans,
		Audiences:      raw.Audiences,
		AudienceColors: raw.AudienceColors,
		solutions:      raw.Solutions,
		solutionIndex:  make(map[string]int, len(raw.Solutions)),
		challengeIdx:   make(map[string]int, len(raw.Challenges)),
	}

	for i, s := range c.solutions {
		if s.ID == "" {
			return nil, fmt.Errorf("%w: solution %d has no id", ErrInvalidCatalog, i)
		}
		if _, dup := c.solutionIndex[s.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate solution id %q", ErrInvalidCatalog, s.ID)
		}
		c.solutionIndex[s.ID] = i
	}

	for i, ch := range c.Challenges {
		if ch.ID == "" {
			return nil, fmt.Errorf("%w: challenge %d has no id", ErrInvalidCatalog, i)
		}
		if _, dup := c.challengeIdx[ch.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate challenge id %q", ErrInvalidCatalog, ch.ID)
		}
		if len(ch.Solutions) == 0 {
			return nil, fmt.Errorf("%w: challenge %q has no solutions", ErrInvalidCatalog, ch.ID)
		}
		for _, sid := range ch.Solutions {
			if _, ok := c.solutionIndex[sid]; !ok {
				return nil, fmt.Errorf("%w: challenge %q references unknown solution %q", ErrInvalidCatalog, ch.ID, sid)
			}
		}
		c.challengeIdx[ch.ID] = i
	}

	if len(c.Challenges) == 0 {
		return nil, fmt.Errorf("%w: no challenges defined", ErrInvalidCatalog)
	}
	if len(c.Plans) == 0 {
		return nil, fmt.Errorf("%w: no pricing plans defined", ErrInvalidCatalog)
	}

	return c, nil
}

// Challenge looks up a challenge by id.
func (c *Catalog) Challenge(id string) (Challenge, error) {
	i, ok := c.challengeIdx[id]
	if !ok {
		return Challenge{}, fmt.Errorf("%w: %q", ErrUnknownChallenge, id)
	}
	return c.Challenges[i], nil
}

// HasChallenge reports whether a challenge id exists.
func (c *Catalog) HasChallenge(id string) bool {
	_, ok := c.challengeIdx[id]
	return ok
}

// SolutionsFor returns the solutions a challenge links to, in catalog order.
func (c *Catalog) SolutionsFor(ch Challenge) []Solution {
	out := make([]Solution, 0, len(ch.Solutions))
	for _, sid := range ch.Solutions {
		if i, ok := c.solutionIndex[sid]; ok {
			out = append(out, c.solutions[i])
		}
	}
	return out
}

// Solution looks up a solution by id.
func (c *Catalog) Solution(id string) (Solution, bool) {
	i, ok := c.solutionIndex[id]
	if !ok {
		return Solution{}, false
	}
	return c.solutions[i], true
}

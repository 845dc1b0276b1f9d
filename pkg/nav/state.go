package nav

import "github.com/sixtyseconds/showcase/pkg/pricing"

// Mode is the current display mode.
type Mode string

const (
	// ModeChallenges shows the challenge card grid.
	ModeChallenges Mode = "challenges"
	// ModeSolution shows the detail view for one challenge's solutions.
	ModeSolution Mode = "solution"
	// ModePricing shows the pricing table.
	ModePricing Mode = "pricing"
)

// State is the view-selection state for one browsing session. It is an
// explicit record passed through the view layer; Resolve produces the next
// state from the current URL and the prior state.
//
// Invariants: Mode == ModeSolution implies Challenge resolves in the
// catalog; Mode == ModePricing implies PricingVisible.
type State struct {
	Mode           Mode                  `json:"mode"`
	Challenge      string                `json:"challenge,omitempty"`
	Currency       pricing.Currency      `json:"currency"`
	PricingVisible bool                  `json:"pricingVisible"`
	Billing        pricing.BillingPeriod `json:"billing"`
}

// NewState is the state of a fresh session before the first URL resolve.
func NewState() State {
	return State{
		Mode:     ModeChallenges,
		Currency: pricing.DefaultCurrency,
		Billing:  pricing.Monthly,
	}
}

package nav

import (
	"fmt"

	"github.com/sixtyseconds/showcase/pkg/pricing"
)

// Intent helpers translate user actions into target URLs. Actual history
// manipulation belongs to the host navigation mechanism; these only decide
// where to go.

// SelectChallenge returns the URL for a challenge card click.
func (r *Router) SelectChallenge(s State, id string) (string, error) {
	if !r.catalog.HasChallenge(id) {
		return "", fmt.Errorf("%w: %q", ErrChallengeNotFound, id)
	}
	s.Mode = ModeSolution
	s.Challenge = id
	return r.BuildURL(s), nil
}

// ViewPricing returns the URL for the pricing call-to-action.
func (r *Router) ViewPricing(s State) string {
	s.Mode = ModePricing
	return r.BuildURL(s)
}

// SwitchCurrency rebuilds the current view's URL under the new currency
// prefix, keeping the selected challenge or pricing view in place.
func (r *Router) SwitchCurrency(s State, c pricing.Currency) string {
	if c.Valid() {
		s.Currency = c
	}
	return r.BuildURL(s)
}

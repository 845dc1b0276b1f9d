package nav

import (
	"fmt"
	"strings"

	"github.com/sixtyseconds/showcase/pkg/catalog"
	"github.com/sixtyseconds/showcase/pkg/pricing"
)

// Currency prefix segments used in shareable URLs.
const (
	PrefixUK = "UK"
	PrefixUS = "US"
	PrefixEU = "EU"
)

var prefixToCurrency = map[string]pricing.Currency{
	PrefixUK: pricing.GBP,
	PrefixUS: pricing.USD,
	PrefixEU: pricing.EUR,
}

var currencyToPrefix = map[pricing.Currency]string{
	pricing.GBP: PrefixUK,
	pricing.USD: PrefixUS,
	pricing.EUR: PrefixEU,
}

const (
	segmentSolutions = "solutions"
	segmentPricing   = "pricing"
)

// Router resolves paths against a challenge catalog.
type Router struct {
	catalog *catalog.Catalog
}

// NewRouter returns a Router backed by the given catalog.
func NewRouter(c *catalog.Catalog) *Router {
	return &Router{catalog: c}
}

// Resolve derives the next state from a URL path and the prior state.
//
// Rules, in order: a path ending in the pricing segment selects the pricing
// view; a path containing a solutions segment selects that challenge's
// detail view; anything else selects the challenge grid. A recognised
// currency prefix switches currency; an unrecognised one is ignored and the
// prior currency stays in effect.
//
// An unknown challenge id returns the prior state unchanged together with
// ErrChallengeNotFound; the caller should redirect to HomePath of the prior
// state's currency.
func (r *Router) Resolve(path string, prior State) (State, error) {
	next := prior

	segments := splitPath(path)
	if len(segments) > 0 {
		if cur, ok := prefixToCurrency[segments[0]]; ok {
			next.Currency = cur
			segments = segments[1:]
		}
	}

	if len(segments) > 0 && segments[len(segments)-1] == segmentPricing {
		next.Mode = ModePricing
		next.PricingVisible = true
		return next, nil
	}

	if id, ok := challengeSegment(segments); ok {
		if !r.catalog.HasChallenge(id) {
			return prior, fmt.Errorf("%w: %q", ErrChallengeNotFound, id)
		}
		next.Mode = ModeSolution
		next.Challenge = id
		next.PricingVisible = false
		return next, nil
	}

	next.Mode = ModeChallenges
	next.Challenge = ""
	next.PricingVisible = false
	return next, nil
}

// BuildURL reconstructs the canonical path for a state. The currency prefix
// is always included, making the path a fixed point of Resolve for the
// mode, challenge and currency it encodes.
func (r *Router) BuildURL(s State) string {
	seg, ok := currencyToPrefix[s.Currency]
	if !ok {
		seg = currencyToPrefix[pricing.DefaultCurrency]
	}
	prefix := "/" + seg

	switch s.Mode {
	case ModePricing:
		return prefix + "/" + segmentPricing
	case ModeSolution:
		return prefix + "/" + segmentSolutions + "/" + s.Challenge
	default:
		return prefix
	}
}

// HomePath returns the challenge-grid path for a currency. Used as the
// redirect target when a path cannot be resolved.
func (r *Router) HomePath(c pricing.Currency) string {
	if prefix, ok := currencyToPrefix[c]; ok {
		return "/" + prefix
	}
	return "/"
}

// splitPath returns the non-empty path segments.
func splitPath(path string) []string {
	var segments []string
	for _, seg := range strings.Split(strings.Trim(path, "/"), "/") {
		if seg != "" {
			segments = append(segments, seg)
		}
	}
	return segments
}

// challengeSegment extracts the id following a solutions segment.
func challengeSegment(segments []string) (string, bool) {
	for i, seg := range segments {
		if seg == segmentSolutions && i+1 < len(segments) {
			return segments[i+1], true
		}
	}
	return "", false
}

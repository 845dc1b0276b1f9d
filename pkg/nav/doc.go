// Package nav maps URL paths to view state and back.
//
// The site has three views (challenge grid, solution detail, pricing table)
// addressed by `/`, `/solutions/{id}` and `/pricing`, each optionally behind
// a two-letter currency prefix (`/UK`, `/US`, `/EU`). Resolve derives the
// next NavigationState from a path and the prior state; BuildURL is its
// inverse and always emits the currency prefix, so resolving a built URL
// reproduces the mode, challenge and currency it encodes.
//
// Unrecognised currency prefixes are treated as absent, not as errors. An
// unknown challenge id is recoverable: Resolve returns ErrChallengeNotFound
// and the caller redirects to the currency-appropriate root.
package nav

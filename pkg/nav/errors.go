package nav

import "errors"

// ErrChallengeNotFound is returned when a solutions path names a challenge
// that is not in the catalog. Recoverable: redirect to the currency root.
var ErrChallengeNotFound = errors.New("challenge not found")

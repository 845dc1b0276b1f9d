// Package catalog holds the immutable marketing content: the challenge
// cards, the solutions they link to, the pricing plans and the rotating
// audience word list.
//
// The data ships as embedded YAML and is parsed once at startup. Load
// validates cross-references (every challenge must point at known
// solutions) so broken content fails the process at boot rather than
// rendering an empty view.
//
// All copy is authored in British English; pkg/localize rewrites it per
// visitor locale at render time.
package catalog

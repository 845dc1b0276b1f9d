// Package localize adapts display copy to the visitor's locale.
//
// Catalog copy is written in British English. When the selected currency is
// USD a fixed table of British→American word pairs is applied (case
// preserved); for every other currency the text passes through unchanged.
// The transform is deterministic and idempotent: no replacement output
// contains a replacement input.
package localize

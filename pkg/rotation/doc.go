// Package rotation cycles the audience words shown in the hero copy.
//
// A Rotor shuffles its word list once at construction, waits an initial
// delay after Start, then advances on a fixed interval until the context is
// cancelled or Stop is called. Two word slots are exposed: the secondary
// slot runs a fixed offset ahead of the primary so adjacent sentences never
// show the same word.
//
// Rotation is presentation only; Stop exists to avoid ticking for an
// unmounted view, not for data integrity.
package rotation

// Package ctf computes the contrast transfer function of an objective lens
// system.
//
// A CTF owns its grid, energy and aberration-coefficient state and caches
// every derived array against the exact set of parameters it depends on, so
// mutating one parameter invalidates only the arrays that read it. The
// final transfer function is the unit-modulus aberration phase factor,
// conditionally damped by an aperture mask, a chromatic (temporal) envelope
// and a partial-coherence (spatial) envelope.
package ctf

// Package detect implements an annular (ring) detector for diffraction
// intensity patterns.
//
// The detector collects scattered intensity between an inner and outer
// semiangle, optionally with raised-cosine softened edges, and reports the
// collected fraction of the total intensity per wavefield.
package detect

// Package grid provides the real-space sampling bookkeeping shared by the
// transfer-function and detector components.
//
// A Grid describes a two-dimensional field by its lateral extent [Å], grid
// point counts and sampling [Å]; any two of the three determine the third.
// From the reciprocal-space sampling and an electron wavelength it derives
// per-pixel scattering semiangles.
package grid

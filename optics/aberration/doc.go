// Package aberration models lens aberrations as a polar expansion of the
// phase error up to fifth order.
//
// The coefficient set follows the Cnm/phinm parametrization of Kirkland,
// Advanced Computing in Electron Microscopy (2nd ed.), Eq. 2.22. A Params
// value always carries all 25 symbols; common optical names (defocus, Cs,
// astigmatism, coma) resolve to their canonical symbols, with defocus
// defined as -C10.
//
// The kernel functions at the bottom of the package are pure: they map
// scattering-angle arrays, a wavelength and a coefficient set to phase
// errors, complex phase factors, aperture masks and damping envelopes.
package aberration

// Package energy tracks the electron beam energy and its derived
// relativistic wavelength.
//
// Energies are given in electron volts and wavelengths in Ångström. An
// Energy value starts undefined; wavelength-dependent computations must
// check Defined before use.
package energy

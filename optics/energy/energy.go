package energy

import "math"

const (
	// hc is the product of the Planck constant and the speed of light in eV·Å.
	hc = 12398.419843320026

	// restEnergy is the electron rest energy m0*c^2 in eV.
	restEnergy = 510998.9499961642
)

// Wavelength returns the relativistic electron wavelength in Ångström for an
// acceleration energy in eV.
func Wavelength(energyEV float64) (float64, error) {
	if energyEV <= 0 {
		return 0, ErrEnergyUndefined
	}

	return hc / math.Sqrt(energyEV*(2*restEnergy+energyEV)), nil
}

// Energy holds the beam energy state of an optical component.
//
// The zero value is undefined; Set establishes a value.
type Energy struct {
	ev float64
}

// New returns an Energy, optionally initialized to energyEV when positive.
func New(energyEV float64) *Energy {
	e := &Energy{}
	if energyEV > 0 {
		e.ev = energyEV
	}

	return e
}

// Set updates the beam energy in eV.
func (e *Energy) Set(energyEV float64) {
	e.ev = energyEV
}

// EV returns the beam energy in eV, or 0 when undefined.
func (e *Energy) EV() float64 {
	return e.ev
}

// Defined reports whether the energy has been set to a usable value.
func (e *Energy) Defined() error {
	if e.ev <= 0 {
		return ErrEnergyUndefined
	}

	return nil
}

// Wavelength returns the relativistic wavelength in Ångström.
func (e *Energy) Wavelength() (float64, error) {
	return Wavelength(e.ev)
}

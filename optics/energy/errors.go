package energy

import "errors"

// ErrEnergyUndefined reports a wavelength-dependent computation attempted
// before the beam energy was set.
var ErrEnergyUndefined = errors.New("energy: beam energy not defined")

package ctf

import (
	"math"

	"github.com/cwbudde/algo-optics/internal/memo"
	"github.com/cwbudde/algo-optics/optics/aberration"
	"github.com/cwbudde/algo-optics/optics/energy"
	"github.com/cwbudde/algo-optics/optics/fourier"
	"github.com/cwbudde/algo-optics/optics/grid"
	"github.com/cwbudde/algo-optics/optics/waves"
)

// CTF is a contrast transfer function engine.
//
// It is not safe for concurrent use; callers needing shared access must
// serialize externally. Arrays returned by the getters are cached and must
// be treated as read-only.
type CTF struct {
	grid   *grid.Grid
	energy *energy.Energy
	params *aberration.Params

	cutoff        float64
	rolloff       float64
	focalSpread   float64
	angularSpread float64

	alphaSlot      memo.Slot[[]float64]
	phiSlot        memo.Slot[[]float64]
	apertureSlot   memo.Slot[[]float64]
	temporalSlot   memo.Slot[[]float64]
	spatialSlot    memo.Slot[[]float64]
	aberrationSlot memo.Slot[[]complex128]
	arraySlot      memo.Slot[[]complex128]
}

// New returns a CTF with the given options applied. Unknown coefficient
// symbols passed via WithParameters surface as an error.
func New(opts ...Option) (*CTF, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	var gridOpts []grid.Option
	if cfg.extent[0] > 0 {
		gridOpts = append(gridOpts, grid.WithExtent(cfg.extent[0], cfg.extent[1]))
	}
	if cfg.gpts[0] > 0 {
		gridOpts = append(gridOpts, grid.WithGpts(cfg.gpts[0], cfg.gpts[1]))
	}
	if cfg.sampling[0] > 0 {
		gridOpts = append(gridOpts, grid.WithSampling(cfg.sampling[0], cfg.sampling[1]))
	}

	c := &CTF{
		grid:          grid.New(gridOpts...),
		energy:        energy.New(cfg.energyEV),
		params:        aberration.NewParams(),
		cutoff:        cfg.cutoff,
		rolloff:       cfg.rolloff,
		focalSpread:   cfg.focalSpread,
		angularSpread: cfg.angularSpread,
	}

	if cfg.parameters != nil {
		if err := c.SetParameters(cfg.parameters); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// Cutoff returns the aperture cutoff semiangle in radians.
func (c *CTF) Cutoff() float64 { return c.cutoff }

// SetCutoff updates the aperture cutoff semiangle in radians.
func (c *CTF) SetCutoff(cutoff float64) { c.cutoff = cutoff }

// Rolloff returns the aperture rolloff fraction.
func (c *CTF) Rolloff() float64 { return c.rolloff }

// SetRolloff updates the aperture rolloff fraction.
func (c *CTF) SetRolloff(rolloff float64) { c.rolloff = rolloff }

// FocalSpread returns the focal spread in Ångström.
func (c *CTF) FocalSpread() float64 { return c.focalSpread }

// SetFocalSpread updates the focal spread in Ångström.
func (c *CTF) SetFocalSpread(spread float64) { c.focalSpread = spread }

// AngularSpread returns the source angular spread in radians.
func (c *CTF) AngularSpread() float64 { return c.angularSpread }

// SetAngularSpread updates the source angular spread in radians.
func (c *CTF) SetAngularSpread(spread float64) { c.angularSpread = spread }

// EnergyEV returns the beam energy in eV, or 0 when undefined.
func (c *CTF) EnergyEV() float64 { return c.energy.EV() }

// SetEnergy updates the beam energy in eV.
func (c *CTF) SetEnergy(energyEV float64) { c.energy.Set(energyEV) }

// Extent returns the lateral extent in Ångström.
func (c *CTF) Extent() [2]float64 { return c.grid.Extent() }

// SetExtent updates the lateral extent in Ångström.
func (c *CTF) SetExtent(x, y float64) { c.grid.SetExtent(x, y) }

// Gpts returns the grid point counts.
func (c *CTF) Gpts() [2]int { return c.grid.Gpts() }

// SetGpts updates the grid point counts.
func (c *CTF) SetGpts(nx, ny int) { c.grid.SetGpts(nx, ny) }

// Sampling returns the real-space sampling in Ångström.
func (c *CTF) Sampling() [2]float64 { return c.grid.Sampling() }

// SetSampling updates the real-space sampling in Ångström.
func (c *CTF) SetSampling(dx, dy float64) { c.grid.SetSampling(dx, dy) }

// Parameters returns the aberration coefficient store.
func (c *CTF) Parameters() *aberration.Params { return c.params }

// Set stores an aberration coefficient by symbol or alias.
func (c *CTF) Set(symbol string, value float64) error {
	return c.params.Set(symbol, value)
}

// Get returns an aberration coefficient by symbol or alias.
func (c *CTF) Get(symbol string) (float64, error) {
	return c.params.Get(symbol)
}

// SetParameters applies coefficients by symbol or alias, stopping at the
// first unknown symbol.
func (c *CTF) SetParameters(parameters map[string]float64) error {
	return c.params.SetAll(parameters)
}

// Defocus returns the defocus, the negated C10 coefficient.
func (c *CTF) Defocus() float64 { return c.params.Defocus() }

// SetDefocus updates the defocus.
func (c *CTF) SetDefocus(value float64) {
	_ = c.params.Set("defocus", value) // defocus is a known alias
}

// baseDeps appends the grid and energy dependency keys shared by every
// derived array.
func (c *CTF) baseDeps(dst []float64) []float64 {
	extent := c.grid.Extent()
	gpts := c.grid.Gpts()
	sampling := c.grid.Sampling()

	return append(dst,
		extent[0], extent[1],
		float64(gpts[0]), float64(gpts[1]),
		sampling[0], sampling[1],
		c.energy.EV())
}

// checkDefined verifies the grid and energy preconditions and returns the
// wavelength.
func (c *CTF) checkDefined() (float64, error) {
	if err := c.grid.Defined(); err != nil {
		return 0, err
	}

	if err := c.energy.Defined(); err != nil {
		return 0, err
	}

	return c.energy.Wavelength()
}

// Alpha returns the per-pixel scattering semiangle magnitude in radians.
func (c *CTF) Alpha() ([]float64, error) {
	return c.alphaSlot.Get(c.baseDeps(nil), func() ([]float64, error) {
		wavelength, err := c.checkDefined()
		if err != nil {
			return nil, err
		}

		return c.grid.SemiangleGrid(wavelength)
	})
}

// Phi returns the per-pixel azimuthal angle in radians.
func (c *CTF) Phi() ([]float64, error) {
	return c.phiSlot.Get(c.baseDeps(nil), func() ([]float64, error) {
		wavelength, err := c.checkDefined()
		if err != nil {
			return nil, err
		}

		return c.grid.AzimuthGrid(wavelength)
	})
}

// Aperture returns the aperture factor array.
func (c *CTF) Aperture() ([]float64, error) {
	deps := append(c.baseDeps(nil), c.cutoff, c.rolloff)

	return c.apertureSlot.Get(deps, func() ([]float64, error) {
		alpha, err := c.Alpha()
		if err != nil {
			return nil, err
		}

		return aberration.Aperture(alpha, c.cutoff, c.rolloff), nil
	})
}

// TemporalEnvelope returns the chromatic damping envelope array.
func (c *CTF) TemporalEnvelope() ([]float64, error) {
	deps := append(c.baseDeps(nil), c.focalSpread)

	return c.temporalSlot.Get(deps, func() ([]float64, error) {
		alpha, err := c.Alpha()
		if err != nil {
			return nil, err
		}

		wavelength, err := c.energy.Wavelength()
		if err != nil {
			return nil, err
		}

		return aberration.TemporalEnvelope(alpha, wavelength, c.focalSpread), nil
	})
}

// SpatialEnvelope returns the partial-coherence damping envelope array.
func (c *CTF) SpatialEnvelope() ([]float64, error) {
	deps := append(c.baseDeps(nil), c.angularSpread)
	deps = c.params.Snapshot(deps)

	return c.spatialSlot.Get(deps, func() ([]float64, error) {
		alpha, err := c.Alpha()
		if err != nil {
			return nil, err
		}

		phi, err := c.Phi()
		if err != nil {
			return nil, err
		}

		wavelength, err := c.energy.Wavelength()
		if err != nil {
			return nil, err
		}

		return aberration.SpatialEnvelope(alpha, phi, wavelength, c.angularSpread, c.params), nil
	})
}

// Aberrations returns the unit-modulus aberration phase factor array.
func (c *CTF) Aberrations() ([]complex128, error) {
	deps := c.params.Snapshot(c.baseDeps(nil))

	return c.aberrationSlot.Get(deps, func() ([]complex128, error) {
		alpha, err := c.Alpha()
		if err != nil {
			return nil, err
		}

		phi, err := c.Phi()
		if err != nil {
			return nil, err
		}

		wavelength, err := c.energy.Wavelength()
		if err != nil {
			return nil, err
		}

		return aberration.PolarPhaseFactor(alpha, phi, wavelength, c.params), nil
	})
}

// Array returns the composed transfer function with a leading singleton
// batch axis.
//
// The aberration phase factor is damped by the aperture only for a finite
// cutoff, and by the temporal and spatial envelopes only for positive
// spreads, in that order.
func (c *CTF) Array() ([][]complex128, error) {
	deps := append(c.baseDeps(nil), c.cutoff, c.rolloff, c.focalSpread, c.angularSpread)
	deps = c.params.Snapshot(deps)

	array, err := c.arraySlot.Get(deps, func() ([]complex128, error) {
		aberrations, err := c.Aberrations()
		if err != nil {
			return nil, err
		}

		out := append([]complex128(nil), aberrations...)

		if !math.IsInf(c.cutoff, 1) {
			aperture, err := c.Aperture()
			if err != nil {
				return nil, err
			}

			mulReal(out, aperture)
		}

		if c.focalSpread > 0 {
			temporal, err := c.TemporalEnvelope()
			if err != nil {
				return nil, err
			}

			mulReal(out, temporal)
		}

		if c.angularSpread > 0 {
			spatial, err := c.SpatialEnvelope()
			if err != nil {
				return nil, err
			}

			mulReal(out, spatial)
		}

		return out, nil
	})
	if err != nil {
		return nil, err
	}

	return [][]complex128{array}, nil
}

// Build returns the transfer function as a wave batch with the
// zero-frequency component shifted to the grid center.
func (c *CTF) Build() (*waves.Batch, error) {
	batch, err := c.Array()
	if err != nil {
		return nil, err
	}

	gpts := c.grid.Gpts()
	shifted := make([][]complex128, len(batch))

	for i, slice := range batch {
		dst := make([]complex128, len(slice))
		if err := fourier.Shift2D(dst, slice, gpts[0], gpts[1]); err != nil {
			return nil, err
		}

		shifted[i] = dst
	}

	return waves.New(shifted, gpts, c.grid.Extent(), c.energy.EV())
}

func mulReal(dst []complex128, factor []float64) {
	for i := range dst {
		dst[i] *= complex(factor[i], 0)
	}
}

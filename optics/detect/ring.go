package detect

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-optics/internal/memo"
	"github.com/cwbudde/algo-optics/optics/energy"
	"github.com/cwbudde/algo-optics/optics/fourier"
	"github.com/cwbudde/algo-optics/optics/grid"
)

// Wave is the wavefield contract consumed by Detect: a batch of flat
// row-major 2D complex arrays with grid and energy metadata.
type Wave interface {
	Arrays() [][]complex128
	Gpts() [2]int
	Extent() [2]float64
	EnergyEV() float64
}

// RingDetector measures the intensity fraction scattered into an annular
// angular range.
//
// It is not safe for concurrent use. Detect resynchronizes the detector's
// own grid and energy to the incoming wave before computing.
type RingDetector struct {
	grid   *grid.Grid
	energy *energy.Energy

	inner   float64
	outer   float64
	rolloff float64

	efficiencySlot memo.Slot[[]float64]
}

// Option configures a RingDetector.
type Option func(*RingDetector)

// WithRolloff sets the absolute edge rolloff width in radians. Zero gives
// hard edges.
func WithRolloff(rolloff float64) Option {
	return func(d *RingDetector) {
		if rolloff >= 0 {
			d.rolloff = rolloff
		}
	}
}

// WithEnergy sets the beam energy in eV.
func WithEnergy(energyEV float64) Option {
	return func(d *RingDetector) {
		d.energy.Set(energyEV)
	}
}

// WithExtent sets the lateral extent in Ångström.
func WithExtent(x, y float64) Option {
	return func(d *RingDetector) {
		d.grid.SetExtent(x, y)
	}
}

// WithGpts sets the grid point counts.
func WithGpts(nx, ny int) Option {
	return func(d *RingDetector) {
		d.grid.SetGpts(nx, ny)
	}
}

// WithSampling sets the real-space sampling in Ångström.
func WithSampling(dx, dy float64) Option {
	return func(d *RingDetector) {
		d.grid.SetSampling(dx, dy)
	}
}

// New returns a RingDetector collecting between the inner and outer
// semiangles in radians. The outer angle may be unbounded.
func New(inner, outer float64, opts ...Option) (*RingDetector, error) {
	if inner < 0 || outer < inner {
		return nil, fmt.Errorf("%w: inner %g, outer %g", ErrInvalidRange, inner, outer)
	}

	d := &RingDetector{
		grid:   grid.New(),
		energy: energy.New(0),
		inner:  inner,
		outer:  outer,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(d)
		}
	}

	return d, nil
}

// Inner returns the inner collection semiangle in radians.
func (d *RingDetector) Inner() float64 { return d.inner }

// SetInner updates the inner collection semiangle in radians.
func (d *RingDetector) SetInner(inner float64) { d.inner = inner }

// Outer returns the outer collection semiangle in radians.
func (d *RingDetector) Outer() float64 { return d.outer }

// SetOuter updates the outer collection semiangle in radians.
func (d *RingDetector) SetOuter(outer float64) { d.outer = outer }

// Rolloff returns the edge rolloff width in radians.
func (d *RingDetector) Rolloff() float64 { return d.rolloff }

// SetRolloff updates the edge rolloff width in radians.
func (d *RingDetector) SetRolloff(rolloff float64) { d.rolloff = rolloff }

// Efficiency returns the per-pixel collection efficiency as a flat
// row-major array. The result is cached and must be treated as read-only.
//
// With zero rolloff the efficiency is 1 inside [inner, outer] and 0
// elsewhere. With positive rolloff each edge carries an independent
// raised-cosine ramp of that width and the two factors multiply.
func (d *RingDetector) Efficiency() ([]float64, error) {
	extent := d.grid.Extent()
	gpts := d.grid.Gpts()
	sampling := d.grid.Sampling()
	deps := []float64{
		extent[0], extent[1],
		float64(gpts[0]), float64(gpts[1]),
		sampling[0], sampling[1],
		d.energy.EV(),
		d.inner, d.outer, d.rolloff,
	}

	return d.efficiencySlot.Get(deps, func() ([]float64, error) {
		if err := d.grid.Defined(); err != nil {
			return nil, err
		}

		if err := d.energy.Defined(); err != nil {
			return nil, err
		}

		wavelength, err := d.energy.Wavelength()
		if err != nil {
			return nil, err
		}

		alpha, err := d.grid.SemiangleGrid(wavelength)
		if err != nil {
			return nil, err
		}

		out := make([]float64, len(alpha))

		if d.rolloff > 0 {
			for i, a := range alpha {
				outer := 1.0
				switch {
				case a >= d.outer+d.rolloff:
					outer = 0
				case a > d.outer:
					outer = 0.5 * (1 + math.Cos(math.Pi*(a-d.outer)/d.rolloff))
				}

				inner := 1.0
				switch {
				case a <= d.inner-d.rolloff:
					inner = 0
				case a < d.inner:
					inner = 0.5 * (1 + math.Cos(math.Pi*(d.inner-a)/d.rolloff))
				}

				out[i] = inner * outer
			}

			return out, nil
		}

		for i, a := range alpha {
			if a >= d.inner && a <= d.outer {
				out[i] = 1
			}
		}

		return out, nil
	})
}

// Detect returns the efficiency-weighted detected intensity fraction for
// each batch element of the wave.
//
// The detector grid and energy are resynchronized to the wave first. The
// intensity is the squared magnitude of the 2D DFT of each wavefield.
func (d *RingDetector) Detect(wave Wave) ([]float64, error) {
	d.grid.Match(wave.Gpts(), wave.Extent())
	d.energy.Set(wave.EnergyEV())

	efficiency, err := d.Efficiency()
	if err != nil {
		return nil, err
	}

	gpts := d.grid.Gpts()
	n := gpts[0] * gpts[1]

	spectrum := make([]complex128, n)
	re := make([]float64, n)
	im := make([]float64, n)
	intensity := make([]float64, n)

	arrays := wave.Arrays()
	out := make([]float64, len(arrays))

	for k, slice := range arrays {
		if len(slice) != n {
			return nil, fmt.Errorf("detect: batch element %d has length %d, want %d", k, len(slice), n)
		}

		if err := fourier.Forward2D(spectrum, slice, gpts[0], gpts[1]); err != nil {
			return nil, err
		}

		for i, c := range spectrum {
			re[i] = real(c)
			im[i] = imag(c)
		}

		vecmath.Power(intensity, re, im)

		total := 0.0
		for _, v := range intensity {
			total += v
		}

		if total == 0 {
			return nil, fmt.Errorf("%w: batch element %d", ErrZeroIntensity, k)
		}

		vecmath.MulBlockInPlace(intensity, efficiency)

		detected := 0.0
		for _, v := range intensity {
			detected += v
		}

		out[k] = detected / total
	}

	return out, nil
}

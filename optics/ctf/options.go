package ctf

import "math"

type config struct {
	cutoff        float64
	rolloff       float64
	focalSpread   float64
	angularSpread float64
	energyEV      float64
	extent        [2]float64
	gpts          [2]int
	sampling      [2]float64
	parameters    map[string]float64
}

func defaultConfig() config {
	return config{cutoff: math.Inf(1)}
}

// Option configures a CTF.
type Option func(*config)

// WithCutoff sets the aperture cutoff semiangle in radians. The default is
// unbounded, which disables the aperture factor entirely.
func WithCutoff(cutoff float64) Option {
	return func(c *config) {
		if cutoff >= 0 {
			c.cutoff = cutoff
		}
	}
}

// WithRolloff sets the aperture rolloff as a fraction of the cutoff.
// Zero gives a hard cutoff, one the softest edge. Values outside [0,1] are
// accepted and simply widen or narrow the ramp.
func WithRolloff(rolloff float64) Option {
	return func(c *config) {
		if rolloff >= 0 {
			c.rolloff = rolloff
		}
	}
}

// WithFocalSpread sets the focal spread in Ångström driving the temporal
// envelope.
func WithFocalSpread(spread float64) Option {
	return func(c *config) {
		if spread >= 0 {
			c.focalSpread = spread
		}
	}
}

// WithAngularSpread sets the source angular spread in radians driving the
// spatial envelope.
func WithAngularSpread(spread float64) Option {
	return func(c *config) {
		if spread >= 0 {
			c.angularSpread = spread
		}
	}
}

// WithEnergy sets the beam energy in eV.
func WithEnergy(energyEV float64) Option {
	return func(c *config) {
		if energyEV > 0 {
			c.energyEV = energyEV
		}
	}
}

// WithExtent sets the lateral extent in Ångström.
func WithExtent(x, y float64) Option {
	return func(c *config) {
		if x > 0 && y > 0 {
			c.extent = [2]float64{x, y}
		}
	}
}

// WithGpts sets the grid point counts.
func WithGpts(nx, ny int) Option {
	return func(c *config) {
		if nx > 0 && ny > 0 {
			c.gpts = [2]int{nx, ny}
		}
	}
}

// WithSampling sets the real-space sampling in Ångström.
func WithSampling(dx, dy float64) Option {
	return func(c *config) {
		if dx > 0 && dy > 0 {
			c.sampling = [2]float64{dx, dy}
		}
	}
}

// WithParameters sets aberration coefficients by symbol or alias. Unknown
// symbols surface as an error from New.
func WithParameters(parameters map[string]float64) Option {
	return func(c *config) {
		if c.parameters == nil {
			c.parameters = make(map[string]float64, len(parameters))
		}
		for symbol, value := range parameters {
			c.parameters[symbol] = value
		}
	}
}

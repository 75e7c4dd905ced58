package grid

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Grid holds the lateral sampling state of a two-dimensional field.
//
// Extent, gpts and sampling are linked by extent = gpts * sampling per axis.
// Setting any two determines the third; setting all three lets extent and
// gpts win and rederives sampling.
type Grid struct {
	extent   [2]float64
	gpts     [2]int
	sampling [2]float64
}

// Option configures a Grid.
type Option func(*Grid)

// WithExtent sets the lateral extent in Ångström.
func WithExtent(x, y float64) Option {
	return func(g *Grid) {
		if x > 0 && y > 0 {
			g.extent = [2]float64{x, y}
		}
	}
}

// WithGpts sets the grid point counts.
func WithGpts(nx, ny int) Option {
	return func(g *Grid) {
		if nx > 0 && ny > 0 {
			g.gpts = [2]int{nx, ny}
		}
	}
}

// WithSampling sets the real-space sampling in Ångström.
func WithSampling(dx, dy float64) Option {
	return func(g *Grid) {
		if dx > 0 && dy > 0 {
			g.sampling = [2]float64{dx, dy}
		}
	}
}

// New returns a Grid with the given options applied and any derivable
// quantity filled in.
func New(opts ...Option) *Grid {
	g := &Grid{}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}

	g.consolidate()

	return g
}

// consolidate derives the missing quantity from the two that are set.
// Extent and gpts take precedence when all three are present.
func (g *Grid) consolidate() {
	switch {
	case g.extent[0] > 0 && g.gpts[0] > 0:
		g.sampling = [2]float64{
			g.extent[0] / float64(g.gpts[0]),
			g.extent[1] / float64(g.gpts[1]),
		}
	case g.extent[0] > 0 && g.sampling[0] > 0:
		g.gpts = [2]int{
			int(math.Round(g.extent[0] / g.sampling[0])),
			int(math.Round(g.extent[1] / g.sampling[1])),
		}
		g.sampling = [2]float64{
			g.extent[0] / float64(g.gpts[0]),
			g.extent[1] / float64(g.gpts[1]),
		}
	case g.gpts[0] > 0 && g.sampling[0] > 0:
		g.extent = [2]float64{
			float64(g.gpts[0]) * g.sampling[0],
			float64(g.gpts[1]) * g.sampling[1],
		}
	}
}

// SetExtent updates the extent, rederiving sampling when gpts is known.
func (g *Grid) SetExtent(x, y float64) {
	if x <= 0 || y <= 0 {
		return
	}

	g.extent = [2]float64{x, y}
	if g.gpts[0] > 0 {
		g.sampling = [2]float64{x / float64(g.gpts[0]), y / float64(g.gpts[1])}
	} else {
		g.consolidate()
	}
}

// SetGpts updates the grid point counts, rederiving sampling when extent is
// known.
func (g *Grid) SetGpts(nx, ny int) {
	if nx <= 0 || ny <= 0 {
		return
	}

	g.gpts = [2]int{nx, ny}
	if g.extent[0] > 0 {
		g.sampling = [2]float64{g.extent[0] / float64(nx), g.extent[1] / float64(ny)}
	} else {
		g.consolidate()
	}
}

// SetSampling updates the sampling, rederiving extent when gpts is known.
func (g *Grid) SetSampling(dx, dy float64) {
	if dx <= 0 || dy <= 0 {
		return
	}

	g.sampling = [2]float64{dx, dy}
	if g.gpts[0] > 0 {
		g.extent = [2]float64{float64(g.gpts[0]) * dx, float64(g.gpts[1]) * dy}
	} else {
		g.consolidate()
	}
}

// Match resynchronizes this grid to the given gpts and extent.
func (g *Grid) Match(gpts [2]int, extent [2]float64) {
	if gpts[0] <= 0 || gpts[1] <= 0 || extent[0] <= 0 || extent[1] <= 0 {
		return
	}

	g.gpts = gpts
	g.extent = extent
	g.sampling = [2]float64{
		extent[0] / float64(gpts[0]),
		extent[1] / float64(gpts[1]),
	}
}

// Extent returns the lateral extent in Ångström.
func (g *Grid) Extent() [2]float64 { return g.extent }

// Gpts returns the grid point counts.
func (g *Grid) Gpts() [2]int { return g.gpts }

// Sampling returns the real-space sampling in Ångström.
func (g *Grid) Sampling() [2]float64 { return g.sampling }

// Defined reports whether the grid is fully determined.
func (g *Grid) Defined() error {
	if g.gpts[0] <= 0 || g.gpts[1] <= 0 || g.sampling[0] <= 0 || g.sampling[1] <= 0 {
		return ErrGridUndefined
	}

	return nil
}

// fftFrequencies returns the DFT sample frequencies for n points with the
// given spacing, in standard order (non-negative frequencies first).
func fftFrequencies(n int, spacing float64) []float64 {
	out := make([]float64, n)
	step := 1 / (float64(n) * spacing)

	half := (n - 1) / 2
	for i := 0; i <= half; i++ {
		out[i] = float64(i) * step
	}

	for i := half + 1; i < n; i++ {
		out[i] = float64(i-n) * step
	}

	return out
}

// Semiangles returns the per-axis scattering semiangles in radians for the
// given electron wavelength in Ångström.
func (g *Grid) Semiangles(wavelength float64) (alphaX, alphaY []float64, err error) {
	if err := g.Defined(); err != nil {
		return nil, nil, err
	}

	alphaX = fftFrequencies(g.gpts[0], g.sampling[0])
	alphaY = fftFrequencies(g.gpts[1], g.sampling[1])

	for i := range alphaX {
		alphaX[i] *= wavelength
	}

	for i := range alphaY {
		alphaY[i] *= wavelength
	}

	return alphaX, alphaY, nil
}

// SemiangleGrid returns the per-pixel scattering semiangle magnitude
// sqrt(alpha_x^2 + alpha_y^2) as a flat row-major gpts[0]*gpts[1] slice.
func (g *Grid) SemiangleGrid(wavelength float64) ([]float64, error) {
	alphaX, alphaY, err := g.Semiangles(wavelength)
	if err != nil {
		return nil, err
	}

	nx, ny := g.gpts[0], g.gpts[1]
	ax := make([]float64, nx*ny)
	ay := make([]float64, nx*ny)

	for i := 0; i < nx; i++ {
		row := i * ny
		for j := 0; j < ny; j++ {
			ax[row+j] = alphaX[i]
			ay[row+j] = alphaY[j]
		}
	}

	out := make([]float64, nx*ny)
	vecmath.Magnitude(out, ax, ay)

	return out, nil
}

// AzimuthGrid returns the per-pixel azimuthal angle atan2(alpha_x, alpha_y)
// as a flat row-major gpts[0]*gpts[1] slice.
func (g *Grid) AzimuthGrid(wavelength float64) ([]float64, error) {
	alphaX, alphaY, err := g.Semiangles(wavelength)
	if err != nil {
		return nil, err
	}

	nx, ny := g.gpts[0], g.gpts[1]
	out := make([]float64, nx*ny)

	for i := 0; i < nx; i++ {
		row := i * ny
		for j := 0; j < ny; j++ {
			out[row+j] = math.Atan2(alphaX[i], alphaY[j])
		}
	}

	return out, nil
}

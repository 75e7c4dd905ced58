package waves

import "fmt"

// Batch is an immutable batch of flat row-major 2D complex wavefields on a
// common grid.
type Batch struct {
	data   [][]complex128
	gpts   [2]int
	extent [2]float64
	energy float64
}

// New returns a Batch. Every batch element must have length gpts[0]*gpts[1].
func New(data [][]complex128, gpts [2]int, extent [2]float64, energyEV float64) (*Batch, error) {
	if gpts[0] <= 0 || gpts[1] <= 0 {
		return nil, fmt.Errorf("waves: invalid grid shape %dx%d", gpts[0], gpts[1])
	}

	n := gpts[0] * gpts[1]
	for i, slice := range data {
		if len(slice) != n {
			return nil, fmt.Errorf("waves: batch element %d has length %d, want %d", i, len(slice), n)
		}
	}

	return &Batch{data: data, gpts: gpts, extent: extent, energy: energyEV}, nil
}

// Arrays returns the batch elements as flat row-major slices.
func (b *Batch) Arrays() [][]complex128 { return b.data }

// Gpts returns the grid point counts per element.
func (b *Batch) Gpts() [2]int { return b.gpts }

// Extent returns the lateral extent in Ångström.
func (b *Batch) Extent() [2]float64 { return b.extent }

// EnergyEV returns the beam energy in eV.
func (b *Batch) EnergyEV() float64 { return b.energy }

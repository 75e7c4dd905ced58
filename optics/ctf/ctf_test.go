package ctf

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-optics/optics/energy"
	"github.com/cwbudde/algo-optics/optics/grid"
)

func newTestCTF(t *testing.T, opts ...Option) *CTF {
	t.Helper()

	base := []Option{
		WithGpts(64, 64),
		WithExtent(10, 10),
		WithEnergy(300000),
	}

	c, err := New(append(base, opts...)...)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	return c
}

func TestPreconditions(t *testing.T) {
	t.Run("grid undefined", func(t *testing.T) {
		c, err := New(WithEnergy(300000))
		if err != nil {
			t.Fatalf("New failed: %v", err)
		}

		if _, err := c.Array(); !errors.Is(err, grid.ErrGridUndefined) {
			t.Fatalf("Array error = %v, want ErrGridUndefined", err)
		}
	})

	t.Run("energy undefined", func(t *testing.T) {
		c, err := New(WithGpts(64, 64), WithExtent(10, 10))
		if err != nil {
			t.Fatalf("New failed: %v", err)
		}

		if _, err := c.Array(); !errors.Is(err, energy.ErrEnergyUndefined) {
			t.Fatalf("Array error = %v, want ErrEnergyUndefined", err)
		}

		// Setting the energy afterwards repairs the engine.
		c.SetEnergy(300000)
		if _, err := c.Array(); err != nil {
			t.Fatalf("Array after SetEnergy failed: %v", err)
		}
	})
}

func TestNewRejectsUnknownSymbol(t *testing.T) {
	if _, err := New(WithParameters(map[string]float64{"C11": 1})); err == nil {
		t.Fatal("expected error for unknown coefficient symbol")
	}
}

func TestArrayHardApertureNoAberrations(t *testing.T) {
	const cutoff = 0.02

	c := newTestCTF(t, WithCutoff(cutoff))

	batch, err := c.Array()
	if err != nil {
		t.Fatalf("Array failed: %v", err)
	}

	if len(batch) != 1 {
		t.Fatalf("batch axis length = %d, want 1", len(batch))
	}

	array := batch[0]
	if len(array) != 64*64 {
		t.Fatalf("array length = %d, want 4096", len(array))
	}

	alpha, err := c.Alpha()
	if err != nil {
		t.Fatalf("Alpha failed: %v", err)
	}

	inside := 0
	for i, v := range array {
		want := complex(0, 0)
		if alpha[i] < cutoff {
			want = 1
			inside++
		}
		if v != want {
			t.Fatalf("array[%d] (alpha %v) = %v, want %v", i, alpha[i], v, want)
		}
	}

	if inside == 0 || inside == len(array) {
		t.Fatalf("degenerate aperture: %d of %d pixels inside", inside, len(array))
	}
}

func TestArrayUnboundedCutoffSkipsAperture(t *testing.T) {
	c := newTestCTF(t)

	batch, err := c.Array()
	if err != nil {
		t.Fatalf("Array failed: %v", err)
	}

	for i, v := range batch[0] {
		if v != 1 {
			t.Fatalf("array[%d] = %v, want 1 for an ideal unbounded lens", i, v)
		}
	}
}

func TestArrayTemporalDamping(t *testing.T) {
	c := newTestCTF(t, WithFocalSpread(50))

	batch, err := c.Array()
	if err != nil {
		t.Fatalf("Array failed: %v", err)
	}

	envelope, err := c.TemporalEnvelope()
	if err != nil {
		t.Fatalf("TemporalEnvelope failed: %v", err)
	}

	// With no aberrations and no aperture the modulus equals the envelope.
	for i, v := range batch[0] {
		if math.Abs(cmplx.Abs(v)-envelope[i]) > 1e-12 {
			t.Fatalf("|array[%d]| = %v, want %v", i, cmplx.Abs(v), envelope[i])
		}
	}
}

func TestAberrationCacheInvalidation(t *testing.T) {
	c := newTestCTF(t, WithCutoff(0.02))

	first, err := c.Aberrations()
	if err != nil {
		t.Fatalf("Aberrations failed: %v", err)
	}

	again, err := c.Aberrations()
	if err != nil {
		t.Fatalf("Aberrations failed: %v", err)
	}

	if &first[0] != &again[0] {
		t.Fatal("repeated read recomputed the aberration array")
	}

	apertureBefore, err := c.Aperture()
	if err != nil {
		t.Fatalf("Aperture failed: %v", err)
	}

	// The rolloff contributes to the aperture but not to the aberrations.
	c.SetRolloff(0.5)

	afterRolloff, err := c.Aberrations()
	if err != nil {
		t.Fatalf("Aberrations failed: %v", err)
	}

	if &first[0] != &afterRolloff[0] {
		t.Fatal("rolloff change invalidated the aberration cache")
	}

	apertureAfter, err := c.Aperture()
	if err != nil {
		t.Fatalf("Aperture failed: %v", err)
	}

	if &apertureBefore[0] == &apertureAfter[0] {
		t.Fatal("rolloff change did not invalidate the aperture cache")
	}

	// Any coefficient write invalidates the aberrations.
	if err := c.Set("C12", 30); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	afterCoeff, err := c.Aberrations()
	if err != nil {
		t.Fatalf("Aberrations failed: %v", err)
	}

	if &first[0] == &afterCoeff[0] {
		t.Fatal("coefficient change did not invalidate the aberration cache")
	}
}

func TestGridChangeInvalidatesAlpha(t *testing.T) {
	c := newTestCTF(t)

	first, err := c.Alpha()
	if err != nil {
		t.Fatalf("Alpha failed: %v", err)
	}

	c.SetExtent(20, 20)

	second, err := c.Alpha()
	if err != nil {
		t.Fatalf("Alpha failed: %v", err)
	}

	if &first[0] == &second[0] {
		t.Fatal("extent change did not invalidate the alpha cache")
	}

	// Doubling the extent halves the angular sampling.
	if math.Abs(second[1]-first[1]/2) > 1e-15 {
		t.Fatalf("alpha[1] = %v, want %v", second[1], first[1]/2)
	}
}

func TestDefocusAlias(t *testing.T) {
	c := newTestCTF(t)

	if err := c.Set("defocus", 120); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	c10, err := c.Get("C10")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}

	if c10 != -120 {
		t.Fatalf("C10 = %v, want -120", c10)
	}

	if got := c.Defocus(); got != 120 {
		t.Fatalf("Defocus() = %v, want 120", got)
	}

	c.SetDefocus(80)
	if got := c.Defocus(); got != 80 {
		t.Fatalf("Defocus() after SetDefocus = %v, want 80", got)
	}
}

func TestArrayPureDefocusPhase(t *testing.T) {
	const defocus = 300.0

	c := newTestCTF(t, WithParameters(map[string]float64{"defocus": defocus}))

	batch, err := c.Array()
	if err != nil {
		t.Fatalf("Array failed: %v", err)
	}

	alpha, err := c.Alpha()
	if err != nil {
		t.Fatalf("Alpha failed: %v", err)
	}

	wavelength, err := energy.Wavelength(300000)
	if err != nil {
		t.Fatalf("Wavelength failed: %v", err)
	}

	for i, v := range batch[0] {
		chi := 2 * math.Pi / wavelength * 0.5 * alpha[i] * alpha[i] * (-defocus)
		want := cmplx.Exp(complex(0, -chi))
		if cmplx.Abs(v-want) > 1e-9 {
			t.Fatalf("array[%d] = %v, want %v", i, v, want)
		}
	}
}

func TestBuildCentersZeroFrequency(t *testing.T) {
	c := newTestCTF(t, WithCutoff(0.02))

	built, err := c.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if got := built.Gpts(); got != [2]int{64, 64} {
		t.Fatalf("Gpts = %v, want [64 64]", got)
	}

	if got := built.Extent(); got != [2]float64{10, 10} {
		t.Fatalf("Extent = %v, want [10 10]", got)
	}

	if got := built.EnergyEV(); got != 300000 {
		t.Fatalf("EnergyEV = %v, want 300000", got)
	}

	arrays := built.Arrays()
	if len(arrays) != 1 {
		t.Fatalf("batch size = %d, want 1", len(arrays))
	}

	// The zero-angle pixel sits at the grid center after the shift.
	center := arrays[0][32*64+32]
	if center != 1 {
		t.Fatalf("center pixel = %v, want 1", center)
	}
}

func TestAccessorDelegation(t *testing.T) {
	c := newTestCTF(t, WithCutoff(0.03), WithRolloff(0.1), WithFocalSpread(40), WithAngularSpread(5e-4))

	if c.Cutoff() != 0.03 || c.Rolloff() != 0.1 || c.FocalSpread() != 40 || c.AngularSpread() != 5e-4 {
		t.Fatal("scalar accessors do not round-trip the options")
	}

	if got := c.Gpts(); got != [2]int{64, 64} {
		t.Fatalf("Gpts = %v, want [64 64]", got)
	}

	if got := c.Sampling(); got != [2]float64{10.0 / 64, 10.0 / 64} {
		t.Fatalf("Sampling = %v, want derived 10/64", got)
	}

	if c.EnergyEV() != 300000 {
		t.Fatalf("EnergyEV = %v, want 300000", c.EnergyEV())
	}
}

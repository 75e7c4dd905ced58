package grid

import (
	"errors"
	"math"
	"testing"
)

func TestConsolidation(t *testing.T) {
	t.Run("extent and gpts", func(t *testing.T) {
		g := New(WithExtent(10, 20), WithGpts(64, 128))
		if err := g.Defined(); err != nil {
			t.Fatalf("Defined failed: %v", err)
		}

		s := g.Sampling()
		if s[0] != 10.0/64 || s[1] != 20.0/128 {
			t.Fatalf("sampling = %v, want [0.15625 0.15625]", s)
		}
	})

	t.Run("extent and sampling", func(t *testing.T) {
		g := New(WithExtent(10, 10), WithSampling(0.15625, 0.15625))
		if got := g.Gpts(); got != [2]int{64, 64} {
			t.Fatalf("gpts = %v, want [64 64]", got)
		}
	})

	t.Run("gpts and sampling", func(t *testing.T) {
		g := New(WithGpts(32, 32), WithSampling(0.5, 0.25))
		if got := g.Extent(); got != [2]float64{16, 8} {
			t.Fatalf("extent = %v, want [16 8]", got)
		}
	})
}

func TestUnderdetermined(t *testing.T) {
	cases := map[string]*Grid{
		"empty":         New(),
		"extent only":   New(WithExtent(10, 10)),
		"gpts only":     New(WithGpts(64, 64)),
		"sampling only": New(WithSampling(0.1, 0.1)),
	}

	for name, g := range cases {
		t.Run(name, func(t *testing.T) {
			if err := g.Defined(); !errors.Is(err, ErrGridUndefined) {
				t.Fatalf("Defined() = %v, want ErrGridUndefined", err)
			}

			if _, _, err := g.Semiangles(0.02); !errors.Is(err, ErrGridUndefined) {
				t.Fatalf("Semiangles() = %v, want ErrGridUndefined", err)
			}
		})
	}
}

func TestSettersRederive(t *testing.T) {
	g := New(WithExtent(10, 10), WithGpts(64, 64))

	g.SetExtent(20, 20)
	if s := g.Sampling(); s[0] != 20.0/64 {
		t.Fatalf("sampling after SetExtent = %v, want %v", s[0], 20.0/64)
	}

	g.SetGpts(128, 128)
	if s := g.Sampling(); s[0] != 20.0/128 {
		t.Fatalf("sampling after SetGpts = %v, want %v", s[0], 20.0/128)
	}

	g.SetSampling(0.25, 0.25)
	if e := g.Extent(); e[0] != 32 {
		t.Fatalf("extent after SetSampling = %v, want 32", e[0])
	}
}

func TestMatch(t *testing.T) {
	g := New(WithExtent(10, 10), WithGpts(64, 64))
	g.Match([2]int{32, 16}, [2]float64{8, 4})

	if got := g.Gpts(); got != [2]int{32, 16} {
		t.Fatalf("gpts = %v, want [32 16]", got)
	}

	if s := g.Sampling(); s[0] != 0.25 || s[1] != 0.25 {
		t.Fatalf("sampling = %v, want [0.25 0.25]", s)
	}
}

func TestFFTFrequencies(t *testing.T) {
	got := fftFrequencies(4, 0.5)
	want := []float64{0, 0.5, -1, -0.5}

	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-15 {
			t.Fatalf("fftFrequencies(4, 0.5)[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	got = fftFrequencies(5, 1)
	want = []float64{0, 0.2, 0.4, -0.4, -0.2}

	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-15 {
			t.Fatalf("fftFrequencies(5, 1)[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestSemiangles(t *testing.T) {
	const wavelength = 0.02

	g := New(WithExtent(10, 10), WithGpts(64, 64))

	alphaX, alphaY, err := g.Semiangles(wavelength)
	if err != nil {
		t.Fatalf("Semiangles failed: %v", err)
	}

	if len(alphaX) != 64 || len(alphaY) != 64 {
		t.Fatalf("lengths = %d/%d, want 64/64", len(alphaX), len(alphaY))
	}

	if alphaX[0] != 0 {
		t.Fatalf("alphaX[0] = %v, want 0", alphaX[0])
	}

	// One reciprocal-space step is 1/extent, scaled by the wavelength.
	step := wavelength / 10
	if math.Abs(alphaX[1]-step) > 1e-15 {
		t.Fatalf("alphaX[1] = %v, want %v", alphaX[1], step)
	}

	if alphaX[63] >= 0 {
		t.Fatalf("alphaX[63] = %v, want negative", alphaX[63])
	}
}

func TestSemiangleGrid(t *testing.T) {
	const wavelength = 0.02

	g := New(WithExtent(10, 10), WithGpts(16, 16))

	alpha, err := g.SemiangleGrid(wavelength)
	if err != nil {
		t.Fatalf("SemiangleGrid failed: %v", err)
	}

	if len(alpha) != 256 {
		t.Fatalf("len = %d, want 256", len(alpha))
	}

	if alpha[0] != 0 {
		t.Fatalf("alpha at DC = %v, want 0", alpha[0])
	}

	alphaX, alphaY, err := g.Semiangles(wavelength)
	if err != nil {
		t.Fatalf("Semiangles failed: %v", err)
	}

	for i := 0; i < 16; i++ {
		for j := 0; j < 16; j++ {
			want := math.Hypot(alphaX[i], alphaY[j])
			if math.Abs(alpha[i*16+j]-want) > 1e-12 {
				t.Fatalf("alpha[%d,%d] = %v, want %v", i, j, alpha[i*16+j], want)
			}
		}
	}
}

func TestAzimuthGrid(t *testing.T) {
	const wavelength = 0.02

	g := New(WithExtent(10, 10), WithGpts(16, 16))

	phi, err := g.AzimuthGrid(wavelength)
	if err != nil {
		t.Fatalf("AzimuthGrid failed: %v", err)
	}

	alphaX, alphaY, err := g.Semiangles(wavelength)
	if err != nil {
		t.Fatalf("Semiangles failed: %v", err)
	}

	for i := 0; i < 16; i++ {
		for j := 0; j < 16; j++ {
			want := math.Atan2(alphaX[i], alphaY[j])
			if phi[i*16+j] != want {
				t.Fatalf("phi[%d,%d] = %v, want %v", i, j, phi[i*16+j], want)
			}
		}
	}
}

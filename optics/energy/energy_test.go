package energy

import (
	"errors"
	"math"
	"testing"
)

func TestWavelengthKnownValues(t *testing.T) {
	cases := []struct {
		name string
		ev   float64
		want float64
	}{
		{"80kV", 80000, 0.041757},
		{"100kV", 100000, 0.037014},
		{"200kV", 200000, 0.025079},
		{"300kV", 300000, 0.019687},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Wavelength(tc.ev)
			if err != nil {
				t.Fatalf("Wavelength(%v) failed: %v", tc.ev, err)
			}
			if math.Abs(got-tc.want) > 1e-5 {
				t.Fatalf("Wavelength(%v) = %v, want %v", tc.ev, got, tc.want)
			}
		})
	}
}

func TestWavelengthUndefined(t *testing.T) {
	if _, err := Wavelength(0); !errors.Is(err, ErrEnergyUndefined) {
		t.Fatalf("Wavelength(0) error = %v, want ErrEnergyUndefined", err)
	}

	if _, err := Wavelength(-100); !errors.Is(err, ErrEnergyUndefined) {
		t.Fatalf("Wavelength(-100) error = %v, want ErrEnergyUndefined", err)
	}
}

func TestEnergyState(t *testing.T) {
	e := New(0)
	if err := e.Defined(); !errors.Is(err, ErrEnergyUndefined) {
		t.Fatalf("Defined() on zero value = %v, want ErrEnergyUndefined", err)
	}

	if _, err := e.Wavelength(); !errors.Is(err, ErrEnergyUndefined) {
		t.Fatalf("Wavelength() on zero value = %v, want ErrEnergyUndefined", err)
	}

	e.Set(300000)
	if err := e.Defined(); err != nil {
		t.Fatalf("Defined() after Set failed: %v", err)
	}

	if got := e.EV(); got != 300000 {
		t.Fatalf("EV() = %v, want 300000", got)
	}

	direct, err := Wavelength(300000)
	if err != nil {
		t.Fatalf("Wavelength failed: %v", err)
	}

	viaState, err := e.Wavelength()
	if err != nil {
		t.Fatalf("Energy.Wavelength failed: %v", err)
	}

	if direct != viaState {
		t.Fatalf("wavelength mismatch: %v != %v", direct, viaState)
	}
}

func TestWavelengthDecreasesWithEnergy(t *testing.T) {
	prev := math.Inf(1)
	for _, ev := range []float64{10000, 60000, 120000, 300000, 1000000} {
		got, err := Wavelength(ev)
		if err != nil {
			t.Fatalf("Wavelength(%v) failed: %v", ev, err)
		}
		if got <= 0 || got >= prev {
			t.Fatalf("Wavelength(%v) = %v, want positive and below %v", ev, got, prev)
		}
		prev = got
	}
}

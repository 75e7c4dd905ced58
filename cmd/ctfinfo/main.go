// Command ctfinfo prints the transfer characteristics of an electron
// objective lens.
//
// Usage:
//
//	ctfinfo [flags]
//
// It reports the relativistic wavelength, the Scherzer defocus for the
// given spherical aberration, and a radial table of the contrast transfer
// function along the first grid axis.
//
// Examples:
//
//	ctfinfo -energy 300000 -cutoff 0.02
//	ctfinfo -energy 200000 -cs 1e7 -defocus 500 -rows 24
package main

import (
	"flag"
	"fmt"
	"math"
	"math/cmplx"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-optics/optics/ctf"
	"github.com/cwbudde/algo-optics/optics/energy"
)

func main() {
	energyEV := flag.Float64("energy", 300000, "beam energy in eV")
	cutoff := flag.Float64("cutoff", math.Inf(1), "aperture cutoff semiangle in rad (default unbounded)")
	rolloff := flag.Float64("rolloff", 0, "aperture rolloff as fraction of cutoff")
	defocus := flag.Float64("defocus", 0, "defocus in Å (positive is underfocus)")
	cs := flag.Float64("cs", 0, "spherical aberration C30 in Å")
	focalSpread := flag.Float64("focal-spread", 0, "focal spread in Å")
	angularSpread := flag.Float64("angular-spread", 0, "source angular spread in rad")
	gpts := flag.Int("gpts", 256, "grid points per axis")
	extent := flag.Float64("extent", 20, "lateral extent per axis in Å")
	rows := flag.Int("rows", 16, "number of radial table rows")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: ctfinfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Prints transfer characteristics of an electron objective lens.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	wavelength, err := energy.Wavelength(*energyEV)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	engine, err := ctf.New(
		ctf.WithEnergy(*energyEV),
		ctf.WithCutoff(*cutoff),
		ctf.WithRolloff(*rolloff),
		ctf.WithFocalSpread(*focalSpread),
		ctf.WithAngularSpread(*angularSpread),
		ctf.WithGpts(*gpts, *gpts),
		ctf.WithExtent(*extent, *extent),
		ctf.WithParameters(map[string]float64{
			"defocus": *defocus,
			"Cs":      *cs,
		}),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Energy          %.0f eV\n", *energyEV)
	fmt.Printf("Wavelength      %.6f Å\n", wavelength)

	if *cs > 0 {
		scherzer := math.Sqrt(1.5 * *cs * wavelength)
		fmt.Printf("Scherzer defocus %.1f Å\n", scherzer)
	}

	if err := printRadialTable(engine, *rows); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// printRadialTable samples the transfer function along the positive half of
// the first grid axis.
func printRadialTable(engine *ctf.CTF, rows int) error {
	batch, err := engine.Array()
	if err != nil {
		return err
	}

	alpha, err := engine.Alpha()
	if err != nil {
		return err
	}

	gpts := engine.Gpts()
	array := batch[0]

	half := gpts[0] / 2
	if rows <= 0 || rows > half {
		rows = half
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "alpha [mrad]\tRe\tIm\t|CTF|\n"); err != nil {
		return err
	}

	step := half / rows
	if step == 0 {
		step = 1
	}

	for i := 0; i < half; i += step {
		idx := i * gpts[1]
		v := array[idx]
		if _, err := fmt.Fprintf(tw, "%.3f\t%+.4f\t%+.4f\t%.4f\n",
			alpha[idx]*1e3, real(v), imag(v), cmplx.Abs(v)); err != nil {
			return err
		}
	}

	return tw.Flush()
}

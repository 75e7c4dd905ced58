package fourier

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// Forward2D computes the unnormalized 2D DFT of a flat row-major nx*ny grid
// into dst. dst and src must both have length nx*ny and must not alias.
func Forward2D(dst, src []complex128, nx, ny int) error {
	if nx <= 0 || ny <= 0 {
		return fmt.Errorf("fourier: invalid grid shape %dx%d", nx, ny)
	}

	if len(src) != nx*ny || len(dst) != nx*ny {
		return fmt.Errorf("fourier: buffer length %d/%d does not match %dx%d grid",
			len(dst), len(src), nx, ny)
	}

	rowPlan, err := algofft.NewPlan64(ny)
	if err != nil {
		return fmt.Errorf("fourier: failed to create row FFT plan: %w", err)
	}

	colPlan := rowPlan
	if nx != ny {
		colPlan, err = algofft.NewPlan64(nx)
		if err != nil {
			return fmt.Errorf("fourier: failed to create column FFT plan: %w", err)
		}
	}

	for i := 0; i < nx; i++ {
		row := dst[i*ny : (i+1)*ny]
		if err := rowPlan.Forward(row, src[i*ny:(i+1)*ny]); err != nil {
			return fmt.Errorf("fourier: row FFT failed: %w", err)
		}
	}

	colIn := make([]complex128, nx)
	colOut := make([]complex128, nx)

	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			colIn[i] = dst[i*ny+j]
		}

		if err := colPlan.Forward(colOut, colIn); err != nil {
			return fmt.Errorf("fourier: column FFT failed: %w", err)
		}

		for i := 0; i < nx; i++ {
			dst[i*ny+j] = colOut[i]
		}
	}

	return nil
}

// Shift2D writes the centered-spectrum reordering of a flat row-major nx*ny
// grid into dst, moving the zero-frequency component to (nx/2, ny/2). dst
// and src must not alias.
func Shift2D(dst, src []complex128, nx, ny int) error {
	if nx <= 0 || ny <= 0 {
		return fmt.Errorf("fourier: invalid grid shape %dx%d", nx, ny)
	}

	if len(src) != nx*ny || len(dst) != nx*ny {
		return fmt.Errorf("fourier: buffer length %d/%d does not match %dx%d grid",
			len(dst), len(src), nx, ny)
	}

	for i := 0; i < nx; i++ {
		si := (i + nx/2) % nx
		for j := 0; j < ny; j++ {
			sj := (j + ny/2) % ny
			dst[si*ny+sj] = src[i*ny+j]
		}
	}

	return nil
}

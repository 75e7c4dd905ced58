// Package fourier provides two-dimensional FFT helpers over flat row-major
// complex grids.
//
// The package does not implement FFT itself; it composes one-dimensional
// plans from the algo-fft backend into row-column transforms and provides
// the centered-spectrum shift used to move the zero-frequency component to
// the grid center.
package fourier

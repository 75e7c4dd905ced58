// Package waves holds batches of two-dimensional complex wavefields
// together with the grid and energy metadata needed to consume them.
package waves

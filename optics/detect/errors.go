package detect

import "errors"

var (
	// ErrZeroIntensity reports a detection fraction requested for a
	// wavefield with zero total intensity.
	ErrZeroIntensity = errors.New("detect: total intensity is zero")

	// ErrInvalidRange reports a detector angular range that has no
	// physical reading.
	ErrInvalidRange = errors.New("detect: invalid detector angular range")
)

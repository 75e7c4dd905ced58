package grid

import "errors"

// ErrGridUndefined reports a computation attempted before extent, gpts and
// sampling were determined.
var ErrGridUndefined = errors.New("grid: grid not fully defined")

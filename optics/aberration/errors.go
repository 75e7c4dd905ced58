package aberration

import "errors"

// ErrUnknownSymbol reports a coefficient symbol outside the fixed polar
// symbol set and its alias table.
var ErrUnknownSymbol = errors.New("aberration: unknown coefficient symbol")

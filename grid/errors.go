package grid

import "errors"

// Sentinel errors for grid construction.
var (
	// ErrNonPositiveDim indicates Width or Height was not strictly positive.
	ErrNonPositiveDim = errors.New("grid: width and height must be positive")
)

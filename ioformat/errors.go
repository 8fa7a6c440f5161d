package ioformat

import "errors"

// Sentinel errors for the input file's configuration checks: fatal
// errors detected before routing begins. point.ErrTooFewPins and
// point.ErrDuplicateNetName cover the two net-level checks; the
// remaining ones are specific to the text grammar and grid bounds.
var (
	// ErrNonPositiveDim indicates the header's W or H is not positive.
	ErrNonPositiveDim = errors.New("ioformat: grid dimensions must be positive")

	// ErrNegativePenalty indicates a negative via or wrong-direction penalty.
	ErrNegativePenalty = errors.New("ioformat: penalties must be non-negative")

	// ErrOutOfBounds indicates an obstruction or pin coordinate outside the grid.
	ErrOutOfBounds = errors.New("ioformat: coordinate out of bounds")

	// ErrMalformedLine indicates an "OBS" line with no coordinate triple.
	// Any other non-blank, non-comment line is parsed as a net, so one
	// without at least two triples is reported as point.ErrTooFewPins.
	ErrMalformedLine = errors.New("ioformat: malformed line")

	// ErrMalformedHeader indicates the first line is not four comma-separated integers.
	ErrMalformedHeader = errors.New("ioformat: malformed header line")
)

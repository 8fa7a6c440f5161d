package pathfind

import "errors"

// ErrNegativePenalty indicates a via or wrong-direction penalty below
// zero was supplied to New. Both penalties must be non-negative for the
// search to remain a valid non-negative-weight shortest-path problem.
var ErrNegativePenalty = errors.New("pathfind: penalties must be non-negative")

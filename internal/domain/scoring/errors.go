package scoring

import "errors"

// Sentinel kinds for scoring errors.
var (
	ErrInvalidSigma = errors.New("invalid sigma")
)

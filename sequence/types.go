package sequence

import "errors"

var (
	// ErrBadSize indicates a requested length below the generator's minimum.
	ErrBadSize = errors.New("sequence: invalid size")

	// ErrBadRange indicates the value range cannot satisfy the request
	// (e.g., Negative with lo ≥ 0, or a width that overflows int64).
	ErrBadRange = errors.New("sequence: invalid value range")
)

// Deterministic defaults.
const (
	defaultLo   = -100 // lower bound for Uniform/Negative
	defaultHi   = 100  // upper bound for Uniform
	negativeHi  = -1   // Negative never draws zero
	defaultSeed = int64(1)
	minSize     = 1
)

package builder

import "errors"

var (
	// ErrTooFewVertices indicates a size parameter (n, rows, cols, n1, n2) is
	// smaller than the topology's minimum.
	ErrTooFewVertices = errors.New("builder: parameter too small")

	// ErrInvalidProbability indicates RandomSparse's p lies outside [0,1].
	ErrInvalidProbability = errors.New("builder: probability out of range")

	// ErrNeedRandSource indicates RandomSparse was called with 0 < p < 1 but
	// no seed was supplied via WithSeed.
	ErrNeedRandSource = errors.New("builder: rng is required for 0 < p < 1")
)

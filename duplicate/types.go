package duplicate

import "errors"

var (
	// ErrNotFound indicates the input holds no repeated value.
	ErrNotFound = errors.New("duplicate: no repeated value")

	// ErrValueOutOfRange indicates FindFloyd received a sequence shorter than
	// two elements or a value outside [1, len(nums)-1].
	ErrValueOutOfRange = errors.New("duplicate: value outside [1, len-1]")
)

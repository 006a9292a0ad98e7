package tiling

import "errors"

var (
	// ErrNegativeDepth is returned for a negative expansion depth.
	ErrNegativeDepth = errors.New("tiling: negative depth")
)

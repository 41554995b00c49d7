package net

import "errors"

// Network errors. Decode failures wrap codec.ErrTruncatedStream or
// codec.ErrMalformedStream.
var (
	ErrInvalidInputSize  = errors.New("invalid input size")
	ErrInvalidTargetSize = errors.New("invalid target size")
	ErrInvalidTopology   = errors.New("invalid topology")
	ErrInvalidClipBound  = errors.New("invalid gradient clip bound")
)

package codec

import "errors"

// Decode errors.
var (
	ErrTruncatedStream = errors.New("truncated stream")
	ErrMalformedStream = errors.New("malformed stream")
)

package ratelimit

import "errors"

var (
	ErrInvalidLimit = errors.New("ratelimit: limit needs positive events and window")
	ErrStoreFailed  = errors.New("ratelimit: store unavailable")
)

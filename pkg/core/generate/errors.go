// Package generate orchestrates one slide-data generation call: prompt
// assembly, the upstream completion, and sanitization into a usable object.
package generate

import (
	"errors"
	"fmt"
)

// Kind classifies a generation failure for transport-level mapping.
type Kind string

const (
	KindInvalidDay        Kind = "INVALID_DAY"
	KindRateLimited       Kind = "RATE_LIMITED"
	KindQuotaExceeded     Kind = "QUOTA_EXCEEDED"
	KindUpstreamFailure   Kind = "UPSTREAM_FAILURE"
	KindEmptyResponse     Kind = "EMPTY_RESPONSE"
	KindMalformedResponse Kind = "MALFORMED_RESPONSE"
)

// Error is a classified generation failure. RawContent carries the
// unparseable model output for MALFORMED_RESPONSE so callers can surface it
// for debugging.
type Error struct {
	Kind       Kind
	Message    string
	RawContent string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// AsError unwraps err into a classified generation error.
func AsError(err error) (*Error, bool) {
	var ge *Error
	if errors.As(err, &ge) {
		return ge, true
	}
	return nil, false
}

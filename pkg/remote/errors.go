package remote

import "errors"

// Oracle errors. The Delegate never returns them to callers; it turns every
// failure into a failed Result. They surface when an Oracle is used directly.
var (
	ErrInvalidURL       = errors.New("invalid remote validation URL")
	ErrRequestFailed    = errors.New("remote validation request failed")
	ErrPermanentFailure = errors.New("permanent remote validation failure")
	ErrInvalidResponse  = errors.New("invalid remote validation response")
	ErrTimeout          = errors.New("remote validation timeout")
	ErrCircuitOpen      = errors.New("remote validation circuit breaker is open")
)

// IsTimeout reports whether err means the remote authority did not answer in time.
func IsTimeout(err error) bool {
	return errors.Is(err, ErrTimeout)
}

package scoring

import "github.com/cockroachdb/errors"

// ErrorCode identifies a class of provider failure.
type ErrorCode int

const (
	// ErrCodeProviderUnavailable covers network failures, timeouts and
	// non-success upstream statuses.
	ErrCodeProviderUnavailable ErrorCode = iota + 100

	// ErrCodeProviderResponseMalformed covers unexpected payload shapes.
	ErrCodeProviderResponseMalformed

	// ErrCodeInputInvalid is reserved. No validation rejects any string
	// today, including the empty one.
	ErrCodeInputInvalid
)

// String returns the human-readable representation of the error code.
func (e ErrorCode) String() string {
	switch e {
	case ErrCodeProviderUnavailable:
		return "provider unavailable"
	case ErrCodeProviderResponseMalformed:
		return "provider response malformed"
	case ErrCodeInputInvalid:
		return "input invalid"
	default:
		return "unknown error"
	}
}

func newErrorWithCode(code ErrorCode, msg string) error {
	err := errors.New(msg)
	return errors.WithSecondaryError(err, errors.Newf("code: %d", int(code)))
}

// Sentinel errors returned by provider adapters. The orchestrator never
// surfaces them to the caller; they exist so tests and logs can tell the
// failure classes apart.
var (
	ErrProviderUnavailable       = newErrorWithCode(ErrCodeProviderUnavailable, "scoring: provider unavailable")
	ErrProviderResponseMalformed = newErrorWithCode(ErrCodeProviderResponseMalformed, "scoring: provider response malformed")
	ErrInputInvalid              = newErrorWithCode(ErrCodeInputInvalid, "scoring: input invalid")
)

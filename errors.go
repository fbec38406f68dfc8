package updeto

import (
	"errors"
	"fmt"
)

// Error codes for the lookup error taxonomy.
const (
	ErrorCodeNetwork           = "network"
	ErrorCodeBadServerResponse = "bad_server_response"
	ErrorCodeDecoding          = "decoding"
)

// StatusUnknown is the sentinel status code used when no distinguishable HTTP
// status could be obtained from the server response.
const StatusUnknown = -1

// Error represents a failed store lookup. Exactly one of three disjoint
// classes applies: a transport-level failure (network), a non-success HTTP
// status (bad_server_response, with the status code attached), or a payload
// that could not be decoded (decoding).
type Error struct {
	Code       string
	StatusCode int
	Err        error
}

func (e *Error) Error() string {
	switch e.Code {
	case ErrorCodeBadServerResponse:
		return fmt.Sprintf("bad server response: status %d", e.StatusCode)
	case ErrorCodeDecoding:
		return fmt.Sprintf("failed to decode lookup response: %v", e.Err)
	default:
		return fmt.Sprintf("network error: %v", e.Err)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Retryable reports whether a repeat of the identical request could plausibly
// succeed. Transport failures are always retryable; server responses only for
// 5xx statuses. Decoding failures and the StatusUnknown sentinel are terminal
// (a response that was received but not attributable to the server deserves
// investigation, not a retry).
func (e *Error) Retryable() bool {
	switch e.Code {
	case ErrorCodeNetwork:
		return true
	case ErrorCodeBadServerResponse:
		return e.StatusCode >= 500
	default:
		return false
	}
}

// Error constructors for the three lookup failure classes.

func NewNetworkError(err error) *Error {
	return &Error{
		Code: ErrorCodeNetwork,
		Err:  err,
	}
}

func NewBadServerResponseError(statusCode int) *Error {
	return &Error{
		Code:       ErrorCodeBadServerResponse,
		StatusCode: statusCode,
	}
}

func NewDecodingError(err error) *Error {
	return &Error{
		Code: ErrorCodeDecoding,
		Err:  err,
	}
}

// IsRetryable reports whether err is (or wraps) a retryable lookup Error.
func IsRetryable(err error) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Retryable()
	}
	return false
}

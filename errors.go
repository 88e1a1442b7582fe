package shopapi

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrorType classifies a failed request.
type ErrorType string

const (
	// ErrorTypeNetwork is a transport-level failure (connection refused, DNS, reset).
	ErrorTypeNetwork ErrorType = "Network"
	// ErrorTypeTimeout marks an attempt that exceeded its per-attempt deadline.
	// Timeouts are terminal: the retry loop never follows one.
	ErrorTypeTimeout ErrorType = "Timeout"
	// ErrorTypeCanceled marks a call abandoned because the caller's context ended.
	ErrorTypeCanceled ErrorType = "Canceled"
	// ErrorTypeClient is a 4xx response other than 429.
	ErrorTypeClient ErrorType = "Client"
	// ErrorTypeServer is a 5xx response or an otherwise unclassifiable status.
	ErrorTypeServer ErrorType = "Server"
	// ErrorTypeRateLimited is a 429 response. Retried like a server error.
	ErrorTypeRateLimited ErrorType = "RateLimited"
	// ErrorTypeEncoding is a failure to serialize the request body.
	ErrorTypeEncoding ErrorType = "Encoding"
	// ErrorTypeDecoding is a failure to deserialize a successful response body.
	ErrorTypeDecoding ErrorType = "Decoding"
	// ErrorTypeValidation is an invalid client configuration.
	ErrorTypeValidation ErrorType = "Validation"
)

// Error is the typed failure returned for every terminal outcome. StatusCode
// is zero when no response was received; Body holds the response body when it
// was decodable JSON.
type Error struct {
	Type       ErrorType
	Message    string
	StatusCode int
	Body       json.RawMessage
	Method     string
	URL        string
	Attempt    int
	MaxRetries int
	Cause      error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := fmt.Sprintf("shopapi: %s: %s", e.Type, e.Message)
	if e.StatusCode > 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.StatusCode)
	}
	if e.Attempt > 0 {
		msg = fmt.Sprintf("%s (attempt %d/%d)", msg, e.Attempt+1, e.MaxRetries+1)
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// Is matches two *Error values by type, so callers can write
// errors.Is(err, &shopapi.Error{Type: shopapi.ErrorTypeTimeout}).
func (e *Error) Is(target error) bool {
	if e == nil {
		return false
	}
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Type == t.Type
}

// Transient reports whether retrying might resolve the failure. Timeouts are
// deliberately not transient: a hung attempt is surfaced immediately.
func (e *Error) Transient() bool {
	if e == nil {
		return false
	}
	switch e.Type {
	case ErrorTypeNetwork, ErrorTypeServer, ErrorTypeRateLimited:
		return true
	case ErrorTypeClient:
		return e.StatusCode == 429
	default:
		return false
	}
}

// DecodeBody unmarshals the error response body into v. Returns an error when
// the response carried no decodable JSON body.
func (e *Error) DecodeBody(v any) error {
	if e == nil || len(e.Body) == 0 {
		return errors.New("shopapi: error carries no body")
	}
	return json.Unmarshal(e.Body, v)
}

// IsTransient reports whether err is a failure that retrying might resolve.
func IsTransient(err error) bool {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Transient()
	}
	return false
}

// IsTimeout reports whether err is a per-attempt timeout.
func IsTimeout(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Type == ErrorTypeTimeout
}

// StatusCode returns the HTTP status carried by err, or zero.
func StatusCode(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

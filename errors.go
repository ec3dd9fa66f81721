// Package pagerduty defines typed errors for event API calls.
//
// Every failure surfaces as an *Error carrying an ErrorKind, so callers can
// classify failures with errors.As or Error.Is and apply their own retry
// policy. The library itself never retries, logs, or suppresses an error.
package pagerduty

import "fmt"

// ErrorKind classifies a failed API call. Kinds are string-based for
// debuggability and natural JSON serialization.
type ErrorKind string

const (
	// KindTransport indicates the HTTP request itself failed; no status code
	// was ever produced. Covers connection, DNS, and TLS failures.
	KindTransport ErrorKind = "TRANSPORT_ERROR"

	// KindReadResponse indicates the response stream failed while the body
	// was being collected.
	KindReadResponse ErrorKind = "READ_RESPONSE_ERROR"

	// KindDeserialize indicates the response body did not match the expected
	// shape for its status code.
	KindDeserialize ErrorKind = "DESERIALIZE_ERROR"

	// KindUnexpectedResponse indicates a status code outside the documented
	// API contract (not 200, 400, 403, or 5xx). The offending code is
	// available via Error.StatusCode.
	KindUnexpectedResponse ErrorKind = "UNEXPECTED_API_RESPONSE"
)

// Error is the error type returned by all calls in this package.
type Error struct {
	// Kind classifies the failure.
	Kind ErrorKind

	// StatusCode holds the HTTP status code for KindUnexpectedResponse;
	// zero otherwise.
	StatusCode int

	cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch e.Kind {
	case KindTransport:
		return fmt.Sprintf("pagerduty: http request failed: %v", e.cause)
	case KindReadResponse:
		return fmt.Sprintf("pagerduty: reading response body failed: %v", e.cause)
	case KindDeserialize:
		return fmt.Sprintf("pagerduty: decoding response body failed: %v", e.cause)
	case KindUnexpectedResponse:
		return fmt.Sprintf("pagerduty: unexpected API response status %d", e.StatusCode)
	default:
		return fmt.Sprintf("pagerduty: %s: %v", e.Kind, e.cause)
	}
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.cause
}

// Is reports whether target is an *Error of the same Kind, enabling
// errors.Is checks against kind-only sentinel values such as
// &Error{Kind: KindTransport}.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

func transportError(cause error) *Error {
	return &Error{Kind: KindTransport, cause: cause}
}

func readResponseError(cause error) *Error {
	return &Error{Kind: KindReadResponse, cause: cause}
}

func deserializeError(cause error) *Error {
	return &Error{Kind: KindDeserialize, cause: cause}
}

func unexpectedResponseError(statusCode int) *Error {
	return &Error{Kind: KindUnexpectedResponse, StatusCode: statusCode}
}

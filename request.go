package pagerduty

import (
	"context"
	"net/http"
)

// EventsEndpoint is the fixed URL of the PagerDuty generic events API. All
// event kinds post to this single endpoint.
const EventsEndpoint = "https://events.pagerduty.com/generic/2010-04-15/create_event.json"

// Requestable is the capability set a payload must satisfy to be sendable.
// All event types in this package implement it; callers only need it when
// defining additional request types against compatible endpoints.
type Requestable interface {
	// URL returns the endpoint for this request.
	URL() string

	// Method returns the HTTP method for this request.
	Method() string

	// Headers returns additional request headers. The executor adds the
	// Authorization, User-Agent, and Content-Type headers on top of these.
	Headers() http.Header

	// Body returns the serialized JSON request body.
	Body() ([]byte, error)

	// GetResponse classifies a status code, response headers, and response
	// body into a typed Response. It must be a pure function.
	GetResponse(statusCode int, header http.Header, body []byte) (*Response, error)
}

// apiRequest supplies the Requestable behavior shared by every integration
// API event type: the fixed endpoint, the POST method, no extra headers, and
// the common response classification.
type apiRequest struct{}

// URL implements Requestable.
func (apiRequest) URL() string {
	return EventsEndpoint
}

// Method implements Requestable.
func (apiRequest) Method() string {
	return http.MethodPost
}

// Headers implements Requestable.
func (apiRequest) Headers() http.Header {
	return http.Header{}
}

// GetResponse implements Requestable.
func (apiRequest) GetResponse(statusCode int, header http.Header, body []byte) (*Response, error) {
	return classifyResponse(statusCode, header, body)
}

// Perform sends a single request with a one-off client. It is shorthand for
// NewClient(token, opts...).Do(ctx, req); use a Client directly to reuse
// configuration across calls.
func Perform(ctx context.Context, token AuthToken, req Requestable, opts ...Option) (*Response, error) {
	return NewClient(token, opts...).Do(ctx, req)
}

// Package pagerduty provides the request executor for the events API.
package pagerduty

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
)

// defaultUserAgent identifies this library to the PagerDuty API.
const defaultUserAgent = "pagerduty-go/0.1.0"

// Client sends Requestable payloads to the PagerDuty events API.
//
// A Client binds an AuthToken and transport configuration once so they can be
// reused across calls. It holds no mutable state: every call owns its own
// request/response lifecycle, so a Client is safe for concurrent use by
// multiple goroutines.
type Client struct {
	// token authorizes every request sent through this client.
	token AuthToken

	// httpClient is the caller-owned transport (thread-safe).
	httpClient *http.Client

	// userAgent is sent with every request.
	userAgent string

	// endpoint, when non-empty, overrides each payload's URL.
	endpoint string

	// logger records operation metadata; nil disables logging.
	logger *slog.Logger
}

// NewClient creates a client bound to the given token.
//
// Example usage:
//
//	client := pagerduty.NewClient(token,
//	    pagerduty.WithHTTPClient(&http.Client{Timeout: 10 * time.Second}),
//	    pagerduty.WithLogger(slog.Default()),
//	)
func NewClient(token AuthToken, opts ...Option) *Client {
	options := defaultOptions()
	applyOptions(options, opts)

	return &Client{
		token:      token,
		httpClient: options.httpClient,
		userAgent:  options.userAgent,
		endpoint:   options.endpoint,
		logger:     options.logger,
	}
}

// Do performs exactly one synchronous HTTP call for the given payload and
// classifies the result through the payload's GetResponse.
//
// The call sequence is: build headers (payload headers plus Authorization,
// User-Agent, and Content-Type: application/json), issue the request, read
// the entire response body, classify. There are no retries, no internally
// configured timeouts, and no caching; any failure surfaces immediately as
// an *Error. Cancellation and deadlines are honored through ctx via the
// underlying transport.
func (c *Client) Do(ctx context.Context, req Requestable) (*Response, error) {
	// A body that cannot be encoded is a caller error (for example, an
	// unserializable details value), not one of the call failure kinds.
	body, err := req.Body()
	if err != nil {
		return nil, fmt.Errorf("pagerduty: encoding request body: %w", err)
	}

	url := req.URL()
	if c.endpoint != "" {
		url = c.endpoint
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method(), url, bytes.NewReader(body))
	if err != nil {
		return nil, transportError(err)
	}

	for key, values := range req.Headers() {
		for _, value := range values {
			httpReq.Header.Add(key, value)
		}
	}
	httpReq.Header.Set("Authorization", c.token.HeaderValue())
	httpReq.Header.Set("User-Agent", c.userAgent)
	httpReq.Header.Set("Content-Type", "application/json")

	if c.logger != nil {
		c.logger.DebugContext(ctx, "sending event", "method", req.Method(), "url", url)
	}

	res, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, transportError(err)
	}
	defer res.Body.Close()

	responseBody, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, readResponseError(err)
	}

	if c.logger != nil {
		c.logger.DebugContext(ctx, "received response", "status", res.StatusCode)
	}

	return req.GetResponse(res.StatusCode, res.Header, responseBody)
}

// Trigger sends a TriggerEvent.
func (c *Client) Trigger(ctx context.Context, event *TriggerEvent) (*Response, error) {
	return c.Do(ctx, event)
}

// Resolve sends a resolve IncidentEvent.
func (c *Client) Resolve(ctx context.Context, event *IncidentEvent) (*Response, error) {
	return c.Do(ctx, event)
}

// Acknowledge sends an acknowledge IncidentEvent.
func (c *Client) Acknowledge(ctx context.Context, event *IncidentEvent) (*Response, error) {
	return c.Do(ctx, event)
}

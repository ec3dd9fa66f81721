// Package pagerduty provides functional options for configuring the Client.
package pagerduty

import (
	"log/slog"
	"net/http"
)

// clientOptions holds configuration for a Client.
type clientOptions struct {
	httpClient *http.Client
	userAgent  string
	endpoint   string
	logger     *slog.Logger
}

// Option is a functional option for configuring a Client.
type Option func(*clientOptions)

// WithHTTPClient supplies the *http.Client used for requests. This is where
// callers configure timeouts, proxies, TLS, and connection pooling; the
// library configures none of these itself. If client is nil, the default is
// retained.
func WithHTTPClient(client *http.Client) Option {
	return func(opts *clientOptions) {
		if client != nil {
			opts.httpClient = client
		}
	}
}

// WithUserAgent overrides the User-Agent header sent with each request.
func WithUserAgent(userAgent string) Option {
	return func(opts *clientOptions) {
		if userAgent != "" {
			opts.userAgent = userAgent
		}
	}
}

// WithEndpoint overrides the request URL for every payload sent through the
// client. This is useful for testing against a local HTTP server or routing
// through an API-compatible gateway. If endpoint is empty, each payload's
// own URL is used.
func WithEndpoint(endpoint string) Option {
	return func(opts *clientOptions) {
		opts.endpoint = endpoint
	}
}

// WithLogger configures the client with a logger for operation metadata.
// If logger is nil, logging is disabled.
func WithLogger(logger *slog.Logger) Option {
	return func(opts *clientOptions) {
		opts.logger = logger
	}
}

// defaultOptions returns the default client configuration.
func defaultOptions() *clientOptions {
	return &clientOptions{
		httpClient: &http.Client{},
		userAgent:  defaultUserAgent,
		endpoint:   "", // use each payload's own URL
		logger:     nil,
	}
}

// applyOptions applies the given options in order.
func applyOptions(opts *clientOptions, options []Option) {
	for _, option := range options {
		option(opts)
	}
}

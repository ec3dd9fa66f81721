// Package pagerduty provides a client for the PagerDuty generic events
// (integration) API, featuring typed event payloads, structured response
// classification, and configurable transport.
//
// The package covers the three integration event kinds:
//   - Trigger events report a new or ongoing problem
//   - Acknowledge events mark an incident as being worked on
//   - Resolve events close an incident
//
// Events are routed by a service key and correlated by an incident key; see
// the PagerDuty integration API documentation for the semantics of both.
//
// # Usage
//
//	token := pagerduty.NewAuthToken("my-token")
//	client := pagerduty.NewClient(token)
//
//	event := pagerduty.NewTriggerEvent("service-key", "disk full on db-01").
//		SetIncidentKey("db-01/disk").
//		SetClient("monitord").
//		AddContext(pagerduty.LinkContext{Href: "https://runbook.example.com/disk", Text: "runbook"})
//
//	resp, err := client.Trigger(ctx, event)
//
// # Response codes and retry guidance
//
// Each call performs exactly one HTTP request; the library never retries
// internally. The classified result tells callers which failures are worth
// retrying with their own back-off policy:
//
//	| Result              | Meaning                                    | Retry?              |
//	|---------------------|--------------------------------------------|---------------------|
//	| Success             | Event accepted                             | No                  |
//	| BadRequest          | Payload rejected; see Errors for details   | No                  |
//	| Forbidden           | Rate limited                               | Yes, after back-off |
//	| InternalServerError | PagerDuty-side failure                     | Yes, after back-off |
//	| transport error     | Request never produced a status code       | Yes, after back-off |
//
// # Thread safety
//
// All exported methods are safe for concurrent use by multiple goroutines.
// Event values are built once and never mutated by the client; each call owns
// its own request/response lifecycle. The Client holds only immutable
// configuration plus an *http.Client, which is itself safe for concurrent use.
//
// # Logging
//
// Supply a *slog.Logger via WithLogger to log operation metadata (method,
// URL, status). The token and payload contents are never logged. Logging is
// disabled by default.
package pagerduty

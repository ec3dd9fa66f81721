package pagerduty

import (
	"encoding/json"
	"net/http"
)

// ResponseKind tags the variant of a classified integration API response.
type ResponseKind string

const (
	// ResponseSuccess indicates the event was accepted (HTTP 200).
	ResponseSuccess ResponseKind = "success"

	// ResponseBadRequest indicates the event payload was rejected (HTTP 400).
	ResponseBadRequest ResponseKind = "bad_request"

	// ResponseForbidden indicates the service is being rate limited
	// (HTTP 403). Callers that care about every event should retry after
	// some time, preferably with a back-off.
	ResponseForbidden ResponseKind = "forbidden"

	// ResponseInternalServerError indicates a PagerDuty-side failure
	// (HTTP 5xx). Retrying after some time is appropriate.
	ResponseInternalServerError ResponseKind = "internal_server_error"
)

// Success is the body PagerDuty returns with HTTP 200.
type Success struct {
	// Status is the string "success".
	Status string `json:"status"`

	// Message describes the outcome, typically "Event processed".
	Message string `json:"message"`

	// IncidentKey is the key of the incident affected by the request.
	IncidentKey string `json:"incident_key"`
}

// BadRequest is the body PagerDuty returns with HTTP 400.
type BadRequest struct {
	// Status is the string "invalid event".
	Status string `json:"status"`

	// Message describes the problem.
	Message string `json:"message"`

	// Errors lists specific per-field error messages.
	Errors []string `json:"errors"`
}

// Response is a classified integration API response: exactly one of the four
// documented outcomes. Kind selects the variant; Success and BadRequest are
// non-nil only for their respective kinds. Forbidden and
// InternalServerError responses carry no body payload.
type Response struct {
	Kind ResponseKind

	// Success holds the decoded body when Kind is ResponseSuccess.
	Success *Success

	// BadRequest holds the decoded body when Kind is ResponseBadRequest.
	BadRequest *BadRequest
}

// classifyResponse maps an HTTP status code and response body onto the
// closed Response variant set. It is a pure function with no retry behavior;
// retry-on-403/5xx is the caller's responsibility.
func classifyResponse(statusCode int, _ http.Header, body []byte) (*Response, error) {
	switch {
	case statusCode == http.StatusOK:
		var res Success
		if err := json.Unmarshal(body, &res); err != nil {
			return nil, deserializeError(err)
		}
		return &Response{Kind: ResponseSuccess, Success: &res}, nil

	case statusCode == http.StatusBadRequest:
		var res BadRequest
		if err := json.Unmarshal(body, &res); err != nil {
			return nil, deserializeError(err)
		}
		return &Response{Kind: ResponseBadRequest, BadRequest: &res}, nil

	case statusCode == http.StatusForbidden:
		return &Response{Kind: ResponseForbidden}, nil

	case statusCode >= 500 && statusCode <= 599:
		return &Response{Kind: ResponseInternalServerError}, nil

	default:
		return nil, unexpectedResponseError(statusCode)
	}
}

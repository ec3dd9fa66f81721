package pagerduty

// AuthToken authorizes requests to PagerDuty.
//
// The token value is accepted as-is; no format validation is performed.
// Rejection of an invalid token happens remotely and surfaces as a Forbidden
// or BadRequest response.
//
// Security note: AuthToken redacts its value when formatted with the fmt
// package so tokens cannot leak through log output. Use HeaderValue to obtain
// the transport form.
type AuthToken struct {
	token string
}

// NewAuthToken wraps a raw API token.
func NewAuthToken(token string) AuthToken {
	return AuthToken{token: token}
}

// HeaderValue renders the token as a PagerDuty Authorization header value.
func (t AuthToken) HeaderValue() string {
	return "Token token=" + t.token
}

// String implements fmt.Stringer, redacting the token value.
func (t AuthToken) String() string {
	return "AuthToken(REDACTED)"
}

// GoString implements fmt.GoStringer, redacting the token value.
func (t AuthToken) GoString() string {
	return "pagerduty.AuthToken{token: REDACTED}"
}

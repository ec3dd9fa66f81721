package pagerduty

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyResponse(t *testing.T) {
	t.Run("200 decodes success body", func(t *testing.T) {
		body := `{"status":"success","message":"Event processed","incident_key":"KEY123"}`

		res, err := classifyResponse(200, nil, []byte(body))
		require.NoError(t, err)

		assert.Equal(t, ResponseSuccess, res.Kind)
		require.NotNil(t, res.Success)
		assert.Equal(t, "success", res.Success.Status)
		assert.Equal(t, "Event processed", res.Success.Message)
		assert.Equal(t, "KEY123", res.Success.IncidentKey)
		assert.Nil(t, res.BadRequest)
	})

	t.Run("400 decodes bad request body", func(t *testing.T) {
		body := `{"status":"invalid event","message":"Event object is invalid","errors":["service_key is missing"]}`

		res, err := classifyResponse(400, nil, []byte(body))
		require.NoError(t, err)

		assert.Equal(t, ResponseBadRequest, res.Kind)
		require.NotNil(t, res.BadRequest)
		assert.Equal(t, "invalid event", res.BadRequest.Status)
		assert.Equal(t, "Event object is invalid", res.BadRequest.Message)
		assert.Equal(t, []string{"service_key is missing"}, res.BadRequest.Errors)
		assert.Nil(t, res.Success)
	})

	t.Run("403 ignores body", func(t *testing.T) {
		for _, body := range []string{"", "not even json", `{"anything":"goes"}`} {
			res, err := classifyResponse(403, nil, []byte(body))
			require.NoError(t, err)
			assert.Equal(t, ResponseForbidden, res.Kind)
			assert.Nil(t, res.Success)
			assert.Nil(t, res.BadRequest)
		}
	})

	t.Run("5xx ignores body", func(t *testing.T) {
		for _, statusCode := range []int{500, 502, 503, 599} {
			res, err := classifyResponse(statusCode, nil, []byte("gateway exploded"))
			require.NoError(t, err)
			assert.Equal(t, ResponseInternalServerError, res.Kind)
		}
	})

	t.Run("undocumented status is an error, not a variant", func(t *testing.T) {
		for _, statusCode := range []int{201, 301, 404, 418, 429} {
			res, err := classifyResponse(statusCode, nil, []byte("whatever"))
			assert.Nil(t, res)

			var apiErr *Error
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, KindUnexpectedResponse, apiErr.Kind)
			assert.Equal(t, statusCode, apiErr.StatusCode)
		}
	})

	t.Run("malformed 200 body is a deserialize error", func(t *testing.T) {
		_, err := classifyResponse(200, nil, []byte("not json"))

		assert.True(t, errors.Is(err, &Error{Kind: KindDeserialize}))
	})

	t.Run("empty 200 body is a deserialize error", func(t *testing.T) {
		_, err := classifyResponse(200, nil, nil)

		assert.True(t, errors.Is(err, &Error{Kind: KindDeserialize}))
	})

	t.Run("malformed 400 body is a deserialize error", func(t *testing.T) {
		_, err := classifyResponse(400, nil, []byte("<html>nope</html>"))

		assert.True(t, errors.Is(err, &Error{Kind: KindDeserialize}))
	})

	t.Run("headers are not consulted", func(t *testing.T) {
		header := http.Header{"X-Anything": []string{"ignored"}}
		body := `{"status":"success","message":"Event processed","incident_key":"KEY123"}`

		res, err := classifyResponse(200, header, []byte(body))
		require.NoError(t, err)
		assert.Equal(t, ResponseSuccess, res.Kind)
	})
}

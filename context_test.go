package pagerduty

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// marshalToMap round-trips a value through encoding/json so tests can compare
// JSON content without depending on key order.
func marshalToMap(t *testing.T, v any) map[string]any {
	t.Helper()

	data, err := json.Marshal(v)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	return m
}

func TestImageContextToJSON(t *testing.T) {
	t.Run("minimal", func(t *testing.T) {
		got := marshalToMap(t, ImageContext{Src: "https://www.example.com"})

		assert.Equal(t, map[string]any{
			"type": "image",
			"src":  "https://www.example.com",
		}, got)
	})

	t.Run("with href and alt", func(t *testing.T) {
		got := marshalToMap(t, ImageContext{
			Src:  "https://www.example.com/graph.png",
			Href: "https://www.example.com/dashboard",
			Alt:  "latency graph",
		})

		assert.Equal(t, map[string]any{
			"type": "image",
			"src":  "https://www.example.com/graph.png",
			"href": "https://www.example.com/dashboard",
			"alt":  "latency graph",
		}, got)
	})

	t.Run("never contains link-only fields", func(t *testing.T) {
		got := marshalToMap(t, ImageContext{Src: "https://www.example.com"})
		assert.NotContains(t, got, "text")
	})
}

func TestLinkContextToJSON(t *testing.T) {
	t.Run("minimal", func(t *testing.T) {
		got := marshalToMap(t, LinkContext{Href: "https://www.example.com"})

		assert.Equal(t, map[string]any{
			"type": "link",
			"href": "https://www.example.com",
		}, got)
	})

	t.Run("with text", func(t *testing.T) {
		got := marshalToMap(t, LinkContext{
			Href: "https://www.example.com",
			Text: "a link",
		})

		assert.Equal(t, map[string]any{
			"type": "link",
			"href": "https://www.example.com",
			"text": "a link",
		}, got)
	})

	t.Run("never contains image-only fields", func(t *testing.T) {
		got := marshalToMap(t, LinkContext{Href: "https://www.example.com", Text: "a link"})
		assert.NotContains(t, got, "src")
		assert.NotContains(t, got, "alt")
	})
}

package pagerduty

import "encoding/json"

// Context is an informational asset attached to a trigger event, shown
// alongside the incident in the PagerDuty UI. Exactly two kinds exist:
// ImageContext and LinkContext. Because each kind is its own type carrying
// only its own fields, an inconsistent combination (an image with link text,
// a link with an image source) cannot be represented.
type Context interface {
	isContext()
}

// ImageContext attaches an image to an incident.
type ImageContext struct {
	// Src is the image source URL. Required; must be served via HTTPS.
	Src string

	// Href optionally makes the image a link to this URL.
	Href string

	// Alt is optional alternative text for the image.
	Alt string
}

func (ImageContext) isContext() {}

// MarshalJSON implements json.Marshaler, tagging the object as an image and
// omitting unset optional fields.
func (c ImageContext) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type string `json:"type"`
		Src  string `json:"src"`
		Href string `json:"href,omitempty"`
		Alt  string `json:"alt,omitempty"`
	}{
		Type: "image",
		Src:  c.Src,
		Href: c.Href,
		Alt:  c.Alt,
	})
}

// LinkContext attaches a link to an incident.
type LinkContext struct {
	// Href is the link target. Required.
	Href string

	// Text optionally carries more information about the link.
	Text string
}

func (LinkContext) isContext() {}

// MarshalJSON implements json.Marshaler, tagging the object as a link and
// omitting unset optional fields.
func (c LinkContext) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type string `json:"type"`
		Href string `json:"href"`
		Text string `json:"text,omitempty"`
	}{
		Type: "link",
		Href: c.Href,
		Text: c.Text,
	})
}

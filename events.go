// Package pagerduty defines the integration API event payload types.
//
// A trigger event reports a new or ongoing problem; resolve and acknowledge
// events transition an existing incident, identified by its incident key.
// Payloads are built once via a constructor plus chained setters and are not
// mutated after being sent.
package pagerduty

import "encoding/json"

// TriggerEvent reports a new or ongoing problem.
//
// When PagerDuty receives a trigger event, it either opens a new incident or
// appends a trigger log entry to an existing one, depending on the incident
// key.
type TriggerEvent struct {
	apiRequest

	serviceKey  string
	description string
	incidentKey string
	client      string
	clientURL   string
	details     any
	contexts    []Context
}

// NewTriggerEvent creates a trigger event payload.
//
// serviceKey is the GUID of one of your "Generic API" services, listed on the
// service detail page.
//
// description is a short description of the problem. It is used when
// generating phone calls, SMS messages, and alert emails, and appears in the
// PagerDuty incidents table. The documented maximum length is 1024
// characters; this library does not enforce it, the remote API does.
func NewTriggerEvent(serviceKey, description string) *TriggerEvent {
	return &TriggerEvent{
		serviceKey:  serviceKey,
		description: description,
	}
}

// SetIncidentKey identifies the incident this trigger event applies to.
//
// If there is no open (unresolved) incident with this key, a new one is
// created. If an open incident with a matching key exists, the event is
// appended to that incident's log. The key provides an easy way to de-dup
// problem reports.
func (e *TriggerEvent) SetIncidentKey(incidentKey string) *TriggerEvent {
	e.incidentKey = incidentKey
	return e
}

// SetClient sets the name of the monitoring client triggering this event.
func (e *TriggerEvent) SetClient(client string) *TriggerEvent {
	e.client = client
	return e
}

// SetClientURL sets the URL of the monitoring client triggering this event.
func (e *TriggerEvent) SetClientURL(clientURL string) *TriggerEvent {
	e.clientURL = clientURL
	return e
}

// SetDetails attaches an arbitrary JSON object to include in the incident
// log. Any value encoding/json can encode is accepted; the library performs
// no schema validation. A value the remote API considers malformed (for
// example, a non-object) is rejected remotely as a BadRequest.
func (e *TriggerEvent) SetDetails(details any) *TriggerEvent {
	e.details = details
	return e
}

// AddContext appends a Context to the event. PagerDuty displays contexts as
// an ordered list; the order in which they are added is preserved on the
// wire.
func (e *TriggerEvent) AddContext(c Context) *TriggerEvent {
	e.contexts = append(e.contexts, c)
	return e
}

// MarshalJSON implements json.Marshaler. Unset optional fields are omitted
// entirely (never emitted as null), and the contexts key is omitted when the
// list is empty.
func (e *TriggerEvent) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ServiceKey  string    `json:"service_key"`
		EventType   string    `json:"event_type"`
		Description string    `json:"description"`
		IncidentKey string    `json:"incident_key,omitempty"`
		Client      string    `json:"client,omitempty"`
		ClientURL   string    `json:"client_url,omitempty"`
		Details     any       `json:"details,omitempty"`
		Contexts    []Context `json:"contexts,omitempty"`
	}{
		ServiceKey:  e.serviceKey,
		EventType:   "trigger",
		Description: e.description,
		IncidentKey: e.incidentKey,
		Client:      e.client,
		ClientURL:   e.clientURL,
		Details:     e.details,
		Contexts:    e.contexts,
	})
}

// Body implements Requestable.
func (e *TriggerEvent) Body() ([]byte, error) {
	return json.Marshal(e)
}

// IncidentEvent transitions an existing incident. Resolve and acknowledge
// events share this shape, differing only in their event_type discriminator;
// the discriminator is fixed by the constructor and carried as data.
//
// A resolve event causes the referenced incident to enter the resolved
// state. Once resolved, an incident generates no further notifications, and
// new trigger events with the same incident key open a fresh incident.
//
// An acknowledge event causes the referenced incident to enter the
// acknowledged state, suppressing notifications while someone is working on
// the problem.
type IncidentEvent struct {
	apiRequest

	serviceKey  string
	eventType   string
	incidentKey string
	description string
	details     any
}

// NewResolveEvent creates a resolve event payload.
//
// serviceKey is the GUID of one of your "Generic API" services. incidentKey
// identifies the incident to resolve; it should be the incident_key received
// when the incident was first opened by a trigger event. Resolve events
// referencing resolved or nonexistent incidents are discarded remotely.
func NewResolveEvent(serviceKey, incidentKey string) *IncidentEvent {
	return &IncidentEvent{
		serviceKey:  serviceKey,
		eventType:   "resolve",
		incidentKey: incidentKey,
	}
}

// NewAcknowledgeEvent creates an acknowledge event payload.
//
// serviceKey is the GUID of one of your "Generic API" services. incidentKey
// identifies the incident to acknowledge.
func NewAcknowledgeEvent(serviceKey, incidentKey string) *IncidentEvent {
	return &IncidentEvent{
		serviceKey:  serviceKey,
		eventType:   "acknowledge",
		incidentKey: incidentKey,
	}
}

// SetDescription sets text that will appear in the incident's log associated
// with this event.
func (e *IncidentEvent) SetDescription(description string) *IncidentEvent {
	e.description = description
	return e
}

// SetDetails attaches an arbitrary JSON object to include in the incident
// log. See TriggerEvent.SetDetails for the encoding contract.
func (e *IncidentEvent) SetDetails(details any) *IncidentEvent {
	e.details = details
	return e
}

// MarshalJSON implements json.Marshaler. Unset optional fields are omitted
// entirely, never emitted as null.
func (e *IncidentEvent) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ServiceKey  string `json:"service_key"`
		EventType   string `json:"event_type"`
		IncidentKey string `json:"incident_key"`
		Description string `json:"description,omitempty"`
		Details     any    `json:"details,omitempty"`
	}{
		ServiceKey:  e.serviceKey,
		EventType:   e.eventType,
		IncidentKey: e.incidentKey,
		Description: e.description,
		Details:     e.details,
	})
}

// Body implements Requestable.
func (e *IncidentEvent) Body() ([]byte, error) {
	return json.Marshal(e)
}

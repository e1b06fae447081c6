package logging

import (
	"context"
	"time"
)

type EventType string

const (
	EventCampaignLoad     EventType = "campaign.load"
	EventCampaignValidate EventType = "campaign.validate"
	EventFileParsed       EventType = "file.parsed"
	EventToolRun          EventType = "tool.run"
)

type Severity int

const (
	SeverityDebug Severity = iota
	SeverityInfo
	SeverityWarn
	SeverityError
)

// Event is one structured log record. Component names the subsystem that
// emitted it (loader, validator, cli); Fields carries free-form context.
type Event struct {
	Type      EventType      `json:"type"`
	Time      time.Time      `json:"time"`
	Severity  Severity       `json:"severity"`
	Component string         `json:"component,omitempty"`
	Message   string         `json:"message,omitempty"`
	Fields    map[string]any `json:"fields,omitempty"`
}

// WithField returns a copy of the event carrying one more field.
func (e Event) WithField(key string, value any) Event {
	cloned := cloneEvent(e)
	if cloned.Fields == nil {
		cloned.Fields = make(map[string]any, 1)
	}
	cloned.Fields[key] = value
	return cloned
}

type Publisher interface {
	Publish(ctx context.Context, event Event)
}

type PublisherFunc func(ctx context.Context, event Event)

func (f PublisherFunc) Publish(ctx context.Context, event Event) {
	if f == nil {
		return
	}
	f(ctx, event)
}

type nopPublisher struct{}

func (nopPublisher) Publish(context.Context, Event) {}

func NopPublisher() Publisher {
	return nopPublisher{}
}

type fieldPublisher struct {
	next   Publisher
	fields map[string]any
}

func (p *fieldPublisher) Publish(ctx context.Context, event Event) {
	if p.next == nil {
		return
	}
	if len(p.fields) > 0 {
		event = cloneEvent(event)
		if event.Fields == nil {
			event.Fields = make(map[string]any, len(p.fields))
		}
		for k, v := range p.fields {
			if _, exists := event.Fields[k]; !exists {
				event.Fields[k] = v
			}
		}
	}
	p.next.Publish(ctx, event)
}

func cloneEvent(event Event) Event {
	cloned := event
	if event.Fields != nil {
		copied := make(map[string]any, len(event.Fields))
		for k, v := range event.Fields {
			copied[k] = v
		}
		cloned.Fields = copied
	}
	return cloned
}

// WithFields wraps a publisher so every event carries the given base fields.
// Event-level fields win on collision.
func WithFields(p Publisher, fields map[string]any) Publisher {
	if p == nil {
		return NopPublisher()
	}
	if len(fields) == 0 {
		return p
	}
	copied := make(map[string]any, len(fields))
	for k, v := range fields {
		copied[k] = v
	}
	return &fieldPublisher{next: p, fields: copied}
}

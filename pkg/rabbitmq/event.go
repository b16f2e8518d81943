package rabbitmq

import (
	"encoding/json"
	"fmt"
	"time"
)

// Event names double as routing keys.
const (
	EventDishCreated  = "dish.created"
	EventDishUpdated  = "dish.updated"
	EventOrderCreated = "order.created"
	EventOrderUpdated = "order.updated"
	EventOrderDeleted = "order.deleted"
)

// now is swapped in tests.
var now = time.Now

// Event is the message body published for every change to a dish or order.
type Event struct {
	Name       string          `json:"event"`
	ID         string          `json:"id"`
	OccurredAt time.Time       `json:"occurred_at"`
	Data       json.RawMessage `json:"data,omitempty"`
}

// NewEvent builds an event for the record with the given id. data is encoded as JSON;
// values that cannot be encoded are dropped from the event.
func NewEvent(name, id string, data any) Event {
	event := Event{Name: name, ID: id, OccurredAt: now().UTC()}
	if raw, err := json.Marshal(data); err == nil {
		event.Data = raw
	}
	return event
}

// DecodeEvent parses a message body produced by Publish.
func DecodeEvent(body []byte) (Event, error) {
	var event Event
	if err := json.Unmarshal(body, &event); err != nil {
		return Event{}, fmt.Errorf("failed to decode event: %w", err)
	}
	if event.Name == "" {
		return Event{}, fmt.Errorf("event has no name")
	}
	return event, nil
}

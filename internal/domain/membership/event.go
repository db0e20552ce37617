package membership

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Event is the normalized inbound webhook payload. Senders deliver either a
// JSON object or the same object wrapped in a JSON string; both resolve here,
// at the boundary, and anything unparseable degrades to an empty event rather
// than an error. Webhook senders must not be made to retry payloads we do not
// control.
type Event struct {
	Data EventData `json:"data"`
}

type EventData struct {
	ID OrderID `json:"id"`
}

// OrderID returns the order identifier carried by the event, if any.
func (e Event) OrderID() (int64, bool) {
	return e.Data.ID.value, e.Data.ID.present
}

// OrderID accepts a JSON number or a numeric string. Anything else leaves it
// absent.
type OrderID struct {
	value   int64
	present bool
}

func (id *OrderID) UnmarshalJSON(data []byte) error {
	// Unmarshaling null into an int64 is a no-op that reports success; it
	// must stay absent, not become order 0.
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}

	var n int64
	if err := json.Unmarshal(data, &n); err == nil {
		id.value, id.present = n, true
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64); err == nil {
			id.value, id.present = n, true
		}
	}
	return nil
}

// ParseEvent resolves the string-or-object body ambiguity in one place.
func ParseEvent(body []byte) Event {
	raw := bytes.TrimSpace(body)
	if len(raw) == 0 {
		return Event{}
	}

	// A string body carries the JSON document one encoding level deeper.
	if raw[0] == '"' {
		var inner string
		if err := json.Unmarshal(raw, &inner); err != nil {
			return Event{}
		}
		raw = []byte(inner)
	}

	var event Event
	if err := json.Unmarshal(raw, &event); err != nil {
		return Event{}
	}
	return event
}

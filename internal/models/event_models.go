package models

import (
	"encoding/json"
	"time"
)

// Event is an append-only analytics log entry reported by the client.
// EventData holds an arbitrary JSON payload; it is serialized to text only at
// the storage boundary and never interpreted by the service.
type Event struct {
	ID        int64           `json:"id" db:"id"`
	UserID    *int64          `json:"user_id,omitempty" db:"user_id"`
	EventName string          `json:"event_name" db:"event_name"`
	EventData json.RawMessage `json:"event_data,omitempty" db:"event_data"`
	Timestamp time.Time       `json:"timestamp" db:"timestamp"`
}

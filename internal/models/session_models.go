package models

import "time"

// DefaultSessionType is assigned when a booking omits the session type.
const DefaultSessionType = "personality_development"

// DefaultSessionStatus is the initial status of a newly booked session.
const DefaultSessionStatus = "scheduled"

// Session is a scheduled coaching session tied to a user. Status is a
// free-text field set by the caller; no transition graph is enforced.
type Session struct {
	ID          int64      `json:"id" db:"id"`
	UserID      int64      `json:"user_id" db:"user_id"`
	SessionDate *time.Time `json:"session_date,omitempty" db:"session_date"`
	SessionType string     `json:"session_type" db:"session_type"`
	Status      string     `json:"status" db:"status"`
	Notes       *string    `json:"notes,omitempty" db:"notes"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
}

package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"personality_sessions_backend/internal/models"
)

// EventRepository defines the interface for event-tracking database operations.
// Events are append-only; no update or delete path exists.
type EventRepository interface {
	CreateEvent(executor SQLExecutor, event *models.Event) (int64, error)
}

type eventRepository struct {
	db *sql.DB
}

// NewEventRepository creates a new instance of EventRepository.
func NewEventRepository(db *sql.DB) EventRepository {
	return &eventRepository{db: db}
}

// CreateEvent appends a new event row. EventData is stored as serialized text;
// a missing payload is stored as NULL.
func (r *eventRepository) CreateEvent(executor SQLExecutor, event *models.Event) (int64, error) {
	query := `INSERT INTO events (user_id, event_name, event_data, timestamp)
	          VALUES (?, ?, ?, ?)`

	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	var userID sql.NullInt64
	if event.UserID != nil {
		userID = sql.NullInt64{Int64: *event.UserID, Valid: true}
	}

	var eventData sql.NullString
	if len(event.EventData) > 0 {
		eventData = sql.NullString{String: string(event.EventData), Valid: true}
	}

	result, err := executor.Exec(query, userID, event.EventName, eventData, event.Timestamp)
	if err != nil {
		return 0, fmt.Errorf("%w: creating event %s: %v", ErrDatabaseError, event.EventName, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%w: getting id of created event: %v", ErrDatabaseError, err)
	}
	event.ID = id
	return id, nil
}

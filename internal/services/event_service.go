package services

import (
	"encoding/json"
	"fmt"

	"personality_sessions_backend/internal/models"
	"personality_sessions_backend/internal/repositories"
)

// --- Event DTOs ---

// TrackEventRequest is a client-reported interaction. EventData is any
// JSON-serializable value and is passed through untouched.
type TrackEventRequest struct {
	UserID    *int64          `json:"userId"`
	EventName string          `json:"eventName" binding:"required"`
	EventData json.RawMessage `json:"eventData"`
}

// --- EventService Interface ---
type EventService interface {
	TrackEvent(req TrackEventRequest) (int64, error)
}

// --- eventService Implementation ---
type eventService struct {
	eventRepo repositories.EventRepository
	db        repositories.SQLExecutor
}

// NewEventService creates a new instance of EventService.
func NewEventService(repo repositories.EventRepository, db repositories.SQLExecutor) EventService {
	return &eventService{
		eventRepo: repo,
		db:        db,
	}
}

// TrackEvent appends one event row. No dedup, no batching.
func (s *eventService) TrackEvent(req TrackEventRequest) (int64, error) {
	event := &models.Event{
		UserID:    req.UserID,
		EventName: req.EventName,
		EventData: req.EventData,
	}

	id, err := s.eventRepo.CreateEvent(s.db, event)
	if err != nil {
		return 0, fmt.Errorf("failed to create event in repository: %w", err)
	}
	return id, nil
}

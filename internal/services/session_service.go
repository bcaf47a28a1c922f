package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"personality_sessions_backend/internal/models"
	"personality_sessions_backend/internal/repositories"
)

// --- Custom Service Errors for Session ---
var (
	ErrDateFormat = errors.New("invalid date format")
)

// sessionDateLayouts are the accepted formats for the sessionDate field,
// tried in order.
var sessionDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// --- Session DTOs ---
type CreateSessionRequest struct {
	UserID      int64   `json:"userId" binding:"required"`
	SessionDate *string `json:"sessionDate"`
	SessionType string  `json:"sessionType"`
	Notes       *string `json:"notes"`
}

type UpdateSessionRequest struct {
	Status string  `json:"status" binding:"required"`
	Notes  *string `json:"notes"`
}

// --- SessionService Interface ---
type SessionService interface {
	CreateSession(req CreateSessionRequest) (int64, error)
	GetSessionsForUser(userID int64) ([]models.Session, error)
	UpdateSessionStatus(sessionID int64, req UpdateSessionRequest) error
}

// --- sessionService Implementation ---
type sessionService struct {
	sessionRepo repositories.SessionRepository
	db          repositories.SQLExecutor
}

// NewSessionService creates a new instance of SessionService.
func NewSessionService(repo repositories.SessionRepository, db repositories.SQLExecutor) SessionService {
	return &sessionService{
		sessionRepo: repo,
		db:          db,
	}
}

func parseSessionDate(dateStr *string) (*time.Time, error) {
	if dateStr == nil || strings.TrimSpace(*dateStr) == "" {
		return nil, nil
	}
	for _, layout := range sessionDateLayouts {
		if parsed, err := time.Parse(layout, *dateStr); err == nil {
			return &parsed, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrDateFormat, *dateStr)
}

// CreateSession books a session for the given user id. The user is not
// verified to exist; the session type defaults when omitted.
func (s *sessionService) CreateSession(req CreateSessionRequest) (int64, error) {
	sessionDate, err := parseSessionDate(req.SessionDate)
	if err != nil {
		return 0, err
	}

	session := &models.Session{
		UserID:      req.UserID,
		SessionDate: sessionDate,
		SessionType: req.SessionType,
		Notes:       req.Notes,
	}

	id, err := s.sessionRepo.CreateSession(s.db, session)
	if err != nil {
		return 0, fmt.Errorf("failed to create session in repository: %w", err)
	}
	return id, nil
}

// GetSessionsForUser lists the user's sessions, most recent date first.
func (s *sessionService) GetSessionsForUser(userID int64) ([]models.Session, error) {
	sessions, err := s.sessionRepo.GetSessionsByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get sessions for user: %w", err)
	}
	return sessions, nil
}

// UpdateSessionStatus overwrites the session's status and notes. The status
// is free text; last writer wins.
func (s *sessionService) UpdateSessionStatus(sessionID int64, req UpdateSessionRequest) error {
	if err := s.sessionRepo.UpdateSessionStatus(s.db, sessionID, req.Status, req.Notes); err != nil {
		return fmt.Errorf("failed to update session in repository: %w", err)
	}
	return nil
}

package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"personality_sessions_backend/internal/models"
)

// SessionRepository defines the interface for session-related database operations.
type SessionRepository interface {
	CreateSession(executor SQLExecutor, session *models.Session) (int64, error)
	GetSessionByID(id int64) (*models.Session, error)
	GetSessionsByUserID(userID int64) ([]models.Session, error)
	UpdateSessionStatus(executor SQLExecutor, id int64, status string, notes *string) error
}

type sessionRepository struct {
	db *sql.DB
}

// NewSessionRepository creates a new instance of SessionRepository.
func NewSessionRepository(db *sql.DB) SessionRepository {
	return &sessionRepository{db: db}
}

// CreateSession appends a new session row and returns the generated
// identifier. The referenced user id is not verified to exist beyond the
// foreign key.
func (r *sessionRepository) CreateSession(executor SQLExecutor, session *models.Session) (int64, error) {
	query := `INSERT INTO sessions (user_id, session_date, session_type, status, notes, created_at)
	          VALUES (?, ?, ?, ?, ?, ?)`

	if session.SessionType == "" {
		session.SessionType = models.DefaultSessionType
	}
	if session.Status == "" {
		session.Status = models.DefaultSessionStatus
	}
	if session.CreatedAt.IsZero() {
		session.CreatedAt = time.Now()
	}

	var sessionDate sql.NullTime
	if session.SessionDate != nil && !session.SessionDate.IsZero() {
		sessionDate = sql.NullTime{Time: *session.SessionDate, Valid: true}
	}

	result, err := executor.Exec(query,
		session.UserID, sessionDate, session.SessionType,
		session.Status, session.Notes, session.CreatedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("%w: creating session for user %d: %v", ErrDatabaseError, session.UserID, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%w: getting id of created session: %v", ErrDatabaseError, err)
	}
	session.ID = id
	return id, nil
}

// scanSessionRow scans a single session row.
func scanSessionRow(row scanner) (*models.Session, error) {
	session := &models.Session{}
	var sessionDate sql.NullTime
	var notes sql.NullString

	err := row.Scan(
		&session.ID, &session.UserID, &sessionDate, &session.SessionType,
		&session.Status, &notes, &session.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if sessionDate.Valid {
		session.SessionDate = &sessionDate.Time
	}
	if notes.Valid {
		session.Notes = &notes.String
	}
	return session, nil
}

// GetSessionByID retrieves a session by its identifier.
func (r *sessionRepository) GetSessionByID(id int64) (*models.Session, error) {
	query := `SELECT id, user_id, session_date, session_type, status, notes, created_at
	          FROM sessions WHERE id = ?`

	session, err := scanSessionRow(r.db.QueryRow(query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting session by ID %d: %v", ErrDatabaseError, id, err)
	}
	return session, nil
}

// GetSessionsByUserID retrieves all sessions for a user, most recent
// session date first.
func (r *sessionRepository) GetSessionsByUserID(userID int64) ([]models.Session, error) {
	query := `SELECT id, user_id, session_date, session_type, status, notes, created_at
	          FROM sessions WHERE user_id = ? ORDER BY session_date DESC`

	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: querying sessions for user %d: %v", ErrDatabaseError, userID, err)
	}
	defer rows.Close()

	sessions := []models.Session{}
	for rows.Next() {
		session, err := scanSessionRow(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanning session: %v", ErrDatabaseError, err)
		}
		sessions = append(sessions, *session)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating session rows: %v", ErrDatabaseError, err)
	}
	return sessions, nil
}

// UpdateSessionStatus unconditionally overwrites the status and notes of the
// session. Last writer wins; a missing session is not an error.
func (r *sessionRepository) UpdateSessionStatus(executor SQLExecutor, id int64, status string, notes *string) error {
	query := `UPDATE sessions SET status = ?, notes = ? WHERE id = ?`

	if _, err := executor.Exec(query, status, notes, id); err != nil {
		return fmt.Errorf("%w: updating session ID %d: %v", ErrDatabaseError, id, err)
	}
	return nil
}

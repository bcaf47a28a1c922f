package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"personality_sessions_backend/internal/models"
)

// AnalyticsRepository exposes the read-only aggregation queries behind the
// admin dashboard. Every method is an independent query; callers decide
// whether to run them sequentially or fanned out.
type AnalyticsRepository interface {
	CountUsers() (int64, error)
	CountPaidUsers() (int64, error)
	CountBookedSessions() (int64, error)
	CountRecentUsers(since time.Time) (int64, error)
	CountEventsByType() ([]models.EventTypeCount, error)
	CountUsersByExperience() ([]models.ExperienceCount, error)
	CountUsersByGoals() ([]models.GoalsCount, error)
}

type analyticsRepository struct {
	db *sql.DB
}

// NewAnalyticsRepository creates a new instance of AnalyticsRepository.
func NewAnalyticsRepository(db *sql.DB) AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) countRow(query string, args ...interface{}) (int64, error) {
	var count int64
	if err := r.db.QueryRow(query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: counting rows: %v", ErrDatabaseError, err)
	}
	return count, nil
}

// CountUsers returns the total number of users.
func (r *analyticsRepository) CountUsers() (int64, error) {
	return r.countRow(`SELECT COUNT(*) FROM users`)
}

// CountPaidUsers returns the number of users whose payment completed.
func (r *analyticsRepository) CountPaidUsers() (int64, error) {
	return r.countRow(`SELECT COUNT(*) FROM users WHERE payment_status = 'completed'`)
}

// CountBookedSessions returns the number of users with a booked session.
func (r *analyticsRepository) CountBookedSessions() (int64, error) {
	return r.countRow(`SELECT COUNT(*) FROM users WHERE session_booked = 1`)
}

// CountRecentUsers returns the number of users created at or after since.
func (r *analyticsRepository) CountRecentUsers(since time.Time) (int64, error) {
	return r.countRow(`SELECT COUNT(*) FROM users WHERE created_at >= ?`, since)
}

// CountEventsByType returns event counts grouped by event name.
func (r *analyticsRepository) CountEventsByType() ([]models.EventTypeCount, error) {
	rows, err := r.db.Query(`SELECT event_name, COUNT(*) FROM events GROUP BY event_name`)
	if err != nil {
		return nil, fmt.Errorf("%w: querying events by type: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	counts := []models.EventTypeCount{}
	for rows.Next() {
		var c models.EventTypeCount
		if err := rows.Scan(&c.EventName, &c.Count); err != nil {
			return nil, fmt.Errorf("%w: scanning event count: %v", ErrDatabaseError, err)
		}
		counts = append(counts, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating event count rows: %v", ErrDatabaseError, err)
	}
	return counts, nil
}

// CountUsersByExperience returns user counts grouped by experience level,
// skipping users who never reported one.
func (r *analyticsRepository) CountUsersByExperience() ([]models.ExperienceCount, error) {
	rows, err := r.db.Query(`SELECT experience, COUNT(*) FROM users
	                         WHERE experience IS NOT NULL GROUP BY experience`)
	if err != nil {
		return nil, fmt.Errorf("%w: querying users by experience: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	counts := []models.ExperienceCount{}
	for rows.Next() {
		var c models.ExperienceCount
		if err := rows.Scan(&c.Experience, &c.Count); err != nil {
			return nil, fmt.Errorf("%w: scanning experience count: %v", ErrDatabaseError, err)
		}
		counts = append(counts, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating experience count rows: %v", ErrDatabaseError, err)
	}
	return counts, nil
}

// CountUsersByGoals returns user counts grouped by the stored goals string.
// The string is grouped as-is, not split into individual goals.
func (r *analyticsRepository) CountUsersByGoals() ([]models.GoalsCount, error) {
	rows, err := r.db.Query(`SELECT goals, COUNT(*) FROM users
	                         WHERE goals IS NOT NULL GROUP BY goals`)
	if err != nil {
		return nil, fmt.Errorf("%w: querying users by goals: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	counts := []models.GoalsCount{}
	for rows.Next() {
		var c models.GoalsCount
		if err := rows.Scan(&c.Goals, &c.Count); err != nil {
			return nil, fmt.Errorf("%w: scanning goals count: %v", ErrDatabaseError, err)
		}
		counts = append(counts, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating goals count rows: %v", ErrDatabaseError, err)
	}
	return counts, nil
}

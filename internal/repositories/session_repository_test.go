package repositories_test

import (
	"errors"
	"testing"
	"time"

	"personality_sessions_backend/internal/models"
	"personality_sessions_backend/internal/repositories"
)

func TestSessionRepository_CreateAppliesDefaults(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewSessionRepository(db)

	date := time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC)
	session := &models.Session{UserID: 1, SessionDate: &date}
	id, err := repo.CreateSession(db, session)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if id == 0 {
		t.Fatal("expected non-zero id")
	}

	fetched, err := repo.GetSessionByID(id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if fetched.SessionType != models.DefaultSessionType {
		t.Fatalf("expected default session type, got %q", fetched.SessionType)
	}
	if fetched.Status != models.DefaultSessionStatus {
		t.Fatalf("expected default status, got %q", fetched.Status)
	}
	if fetched.SessionDate == nil || !fetched.SessionDate.Equal(date) {
		t.Fatalf("session date mismatch: got %v, want %v", fetched.SessionDate, date)
	}
}

func TestSessionRepository_GetSessionsByUserID_MostRecentFirst(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewSessionRepository(db)

	early := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	late := time.Date(2026, 9, 20, 9, 0, 0, 0, time.UTC)

	if _, err := repo.CreateSession(db, &models.Session{UserID: 7, SessionDate: &early}); err != nil {
		t.Fatalf("create early: %v", err)
	}
	if _, err := repo.CreateSession(db, &models.Session{UserID: 7, SessionDate: &late}); err != nil {
		t.Fatalf("create late: %v", err)
	}
	// A different user's session must not appear.
	if _, err := repo.CreateSession(db, &models.Session{UserID: 8, SessionDate: &late}); err != nil {
		t.Fatalf("create other: %v", err)
	}

	sessions, err := repo.GetSessionsByUserID(7)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(sessions) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(sessions))
	}
	if !sessions[0].SessionDate.Equal(late) || !sessions[1].SessionDate.Equal(early) {
		t.Fatalf("expected most recent first, got %v then %v", sessions[0].SessionDate, sessions[1].SessionDate)
	}
}

func TestSessionRepository_UpdateSessionStatus(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewSessionRepository(db)

	date := time.Date(2026, 10, 1, 14, 0, 0, 0, time.UTC)
	id, err := repo.CreateSession(db, &models.Session{UserID: 3, SessionDate: &date})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	notes := "rescheduled twice, client asked for evening slot"
	if err := repo.UpdateSessionStatus(db, id, "postponed-indefinitely", &notes); err != nil {
		t.Fatalf("update: %v", err)
	}

	fetched, err := repo.GetSessionByID(id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if fetched.Status != "postponed-indefinitely" {
		t.Fatalf("status not updated verbatim: %q", fetched.Status)
	}
	if fetched.Notes == nil || *fetched.Notes != notes {
		t.Fatalf("notes not updated verbatim: %v", fetched.Notes)
	}
}

func TestSessionRepository_UpdateMissingSessionIsNotAnError(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewSessionRepository(db)

	if err := repo.UpdateSessionStatus(db, 9999, "completed", nil); err != nil {
		t.Fatalf("expected no error for missing session, got %v", err)
	}
}

func TestSessionRepository_GetSessionByID_NotFound(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewSessionRepository(db)

	_, err := repo.GetSessionByID(12345)
	if !errors.Is(err, repositories.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

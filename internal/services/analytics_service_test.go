package services_test

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"personality_sessions_backend/internal/models"
	"personality_sessions_backend/internal/services"
)

// stubAnalyticsRepo lets individual metrics fail independently.
type stubAnalyticsRepo struct {
	usersErr error
}

func (s *stubAnalyticsRepo) CountUsers() (int64, error) {
	if s.usersErr != nil {
		return 0, s.usersErr
	}
	return 5, nil
}
func (s *stubAnalyticsRepo) CountPaidUsers() (int64, error)              { return 2, nil }
func (s *stubAnalyticsRepo) CountBookedSessions() (int64, error)         { return 1, nil }
func (s *stubAnalyticsRepo) CountRecentUsers(_ time.Time) (int64, error) { return 3, nil }
func (s *stubAnalyticsRepo) CountEventsByType() ([]models.EventTypeCount, error) {
	return []models.EventTypeCount{}, nil
}
func (s *stubAnalyticsRepo) CountUsersByExperience() ([]models.ExperienceCount, error) {
	return []models.ExperienceCount{}, nil
}
func (s *stubAnalyticsRepo) CountUsersByGoals() ([]models.GoalsCount, error) {
	return []models.GoalsCount{}, nil
}

var expectedMetricKeys = []string{
	"totalUsers", "paidUsers", "bookedSessions", "recentUsers",
	"eventsByType", "usersByExperience", "usersByGoals",
}

func TestAnalyticsService_AllKeysPresent(t *testing.T) {
	svc := services.NewAnalyticsService(&stubAnalyticsRepo{})

	results := svc.GetAnalytics()
	if len(results) != len(expectedMetricKeys) {
		t.Fatalf("expected %d metrics, got %d: %v", len(expectedMetricKeys), len(results), results)
	}
	for _, key := range expectedMetricKeys {
		if _, ok := results[key]; !ok {
			t.Fatalf("missing metric key %q", key)
		}
	}
	if results["totalUsers"] != int64(5) {
		t.Fatalf("totalUsers: got %v, want 5", results["totalUsers"])
	}
}

func TestAnalyticsService_FailedMetricIsIsolated(t *testing.T) {
	svc := services.NewAnalyticsService(&stubAnalyticsRepo{usersErr: errors.New("disk I/O error")})

	results := svc.GetAnalytics()
	marker, ok := results["totalUsers"].(map[string]string)
	if !ok {
		t.Fatalf("expected error marker for totalUsers, got %T %v", results["totalUsers"], results["totalUsers"])
	}
	if !reflect.DeepEqual(marker, map[string]string{"error": "query failed"}) {
		t.Fatalf("unexpected error marker: %v", marker)
	}

	// Every other metric still reports its value.
	if results["paidUsers"] != int64(2) {
		t.Fatalf("paidUsers: got %v, want 2", results["paidUsers"])
	}
	for _, key := range expectedMetricKeys {
		if _, ok := results[key]; !ok {
			t.Fatalf("missing metric key %q after partial failure", key)
		}
	}
}

package services

import (
	"sync"
	"time"

	"personality_sessions_backend/internal/repositories"
	"personality_sessions_backend/pkg/utils"
)

// recentUserWindow bounds the "recent signups" metric.
const recentUserWindow = 7 * 24 * time.Hour

// queryFailedMarker is what a metric reports when its query errors. The
// aggregate response itself always succeeds.
var queryFailedMarker = map[string]string{"error": "query failed"}

// --- AnalyticsService Interface ---

// AnalyticsService assembles the admin dashboard metrics.
type AnalyticsService interface {
	GetAnalytics() map[string]interface{}
}

// --- analyticsService Implementation ---
type analyticsService struct {
	analyticsRepo repositories.AnalyticsRepository
}

// NewAnalyticsService creates a new instance of AnalyticsService.
func NewAnalyticsService(repo repositories.AnalyticsRepository) AnalyticsService {
	return &analyticsService{analyticsRepo: repo}
}

// GetAnalytics fans out the independent aggregation queries concurrently and
// joins their results into one document keyed by metric name. A failing
// query contributes an error marker under its key instead of failing the
// whole response; the method returns only after every query has completed.
func (s *analyticsService) GetAnalytics() map[string]interface{} {
	since := time.Now().Add(-recentUserWindow)

	metrics := map[string]func() (interface{}, error){
		"totalUsers": func() (interface{}, error) {
			return s.analyticsRepo.CountUsers()
		},
		"paidUsers": func() (interface{}, error) {
			return s.analyticsRepo.CountPaidUsers()
		},
		"bookedSessions": func() (interface{}, error) {
			return s.analyticsRepo.CountBookedSessions()
		},
		"recentUsers": func() (interface{}, error) {
			return s.analyticsRepo.CountRecentUsers(since)
		},
		"eventsByType": func() (interface{}, error) {
			return s.analyticsRepo.CountEventsByType()
		},
		"usersByExperience": func() (interface{}, error) {
			return s.analyticsRepo.CountUsersByExperience()
		},
		"usersByGoals": func() (interface{}, error) {
			return s.analyticsRepo.CountUsersByGoals()
		},
	}

	results := make(map[string]interface{}, len(metrics))
	var mu sync.Mutex
	var wg sync.WaitGroup

	for name, fetch := range metrics {
		wg.Add(1)
		go func(name string, fetch func() (interface{}, error)) {
			defer wg.Done()
			value, err := fetch()

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				utils.LogError(err, "Analytics query failed: "+name)
				results[name] = queryFailedMarker
				return
			}
			results[name] = value
		}(name, fetch)
	}
	wg.Wait()

	return results
}

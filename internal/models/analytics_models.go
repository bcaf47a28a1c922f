package models

// EventTypeCount is one row of the events-grouped-by-name metric.
type EventTypeCount struct {
	EventName string `json:"event_name"`
	Count     int64  `json:"count"`
}

// ExperienceCount is one row of the users-grouped-by-experience metric.
type ExperienceCount struct {
	Experience string `json:"experience"`
	Count      int64  `json:"count"`
}

// GoalsCount is one row of the users-grouped-by-goals metric. Goals is the
// raw delimited string as stored, not the split list.
type GoalsCount struct {
	Goals string `json:"goals"`
	Count int64  `json:"count"`
}

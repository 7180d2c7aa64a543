package models

import "time"

// ProjectStats are the site-wide counters shown in the hero section and
// managed from the statistics console.
type ProjectStats struct {
	CompletedProjects int       `json:"completedProjects"`
	OngoingProjects   int       `json:"ongoingProjects"`
	HappyClients      int       `json:"happyClients"`
	YearsExperience   int       `json:"yearsExperience"`
	UpdatedAt         time.Time `json:"updatedAt,omitempty"`
}

// StatsSnapshot is one historical revision of the project statistics.
type StatsSnapshot struct {
	ID                string    `json:"_id,omitempty"`
	CompletedProjects int       `json:"completedProjects"`
	OngoingProjects   int       `json:"ongoingProjects"`
	HappyClients      int       `json:"happyClients"`
	YearsExperience   int       `json:"yearsExperience"`
	ChangedBy         string    `json:"changedBy,omitempty"`
	RecordedAt        time.Time `json:"recordedAt,omitempty"`
}

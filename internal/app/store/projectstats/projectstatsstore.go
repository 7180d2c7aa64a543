// internal/app/store/projectstats/projectstatsstore.go
package projectstats

import (
	"context"
	"net/http"

	"github.com/kapilraj10/portfolio-web/internal/app/system/api"
	"github.com/kapilraj10/portfolio-web/internal/app/system/resource"
	"github.com/kapilraj10/portfolio-web/internal/domain/models"
)

const basePath = "/api/project-stats"

// Store manages the site-wide counters through the backend.
type Store struct {
	client *api.Client
}

// New creates the project-stats store.
func New(client *api.Client) *Store {
	return &Store{client: client}
}

// Get fetches the current counters. Public, no token; the hero section
// reads the same endpoint.
func (s *Store) Get(ctx context.Context) (models.ProjectStats, error) {
	var stats models.ProjectStats
	err := s.client.Get(ctx, basePath+"/", "", "stats", &stats)
	return stats, err
}

// Update replaces the counters. Negative values are rejected locally.
func (s *Store) Update(ctx context.Context, token string, in models.ProjectStats) (models.ProjectStats, error) {
	for _, v := range []int{in.CompletedProjects, in.OngoingProjects, in.HappyClients, in.YearsExperience} {
		if v < 0 {
			return models.ProjectStats{}, resource.Invalid("Value cannot be negative")
		}
	}
	var stats models.ProjectStats
	err := s.client.Send(ctx, http.MethodPut, basePath+"/", token, in, "stats", &stats)
	return stats, err
}

// Reset restores the backend's default counters. Callers must have
// confirmed the action first.
func (s *Store) Reset(ctx context.Context, token string) (models.ProjectStats, error) {
	var stats models.ProjectStats
	err := s.client.Send(ctx, http.MethodPost, basePath+"/reset", token, nil, "stats", &stats)
	return stats, err
}

// History fetches past counter revisions, newest first.
func (s *Store) History(ctx context.Context, token string) ([]models.StatsSnapshot, error) {
	var history []models.StatsSnapshot
	err := s.client.Get(ctx, basePath+"/history", token, "history", &history)
	return history, err
}

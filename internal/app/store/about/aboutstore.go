// internal/app/store/about/aboutstore.go
package about

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/kapilraj10/portfolio-web/internal/app/system/api"
	"github.com/kapilraj10/portfolio-web/internal/app/system/resource"
	"github.com/kapilraj10/portfolio-web/internal/domain/models"
)

const basePath = "/api/about"

// Store manages the singleton about document through the backend. The
// about section is one aggregate, so this store doesn't follow the
// list/item manager shape; every call returns the updated aggregate.
type Store struct {
	client *api.Client
}

// New creates the about store.
func New(client *api.Client) *Store {
	return &Store{client: client}
}

// Get fetches the about document. Public, no token.
func (s *Store) Get(ctx context.Context) (models.About, error) {
	var about models.About
	err := s.client.Get(ctx, basePath+"/", "", "about", &about)
	return about, err
}

// ProfileInput is the editable profile block.
type ProfileInput struct {
	Name        string            `json:"name"`
	Bio         []string          `json:"bio"`
	Badge       string            `json:"badge"`
	StatusText  string            `json:"statusText"`
	IsAvailable bool              `json:"isAvailable"`
	Stats       models.AboutStats `json:"stats"`
}

// UpdateProfile updates the profile and headline stats.
func (s *Store) UpdateProfile(ctx context.Context, token string, in ProfileInput) (models.About, error) {
	if strings.TrimSpace(in.Name) == "" {
		return models.About{}, resource.Invalid("Name is required.")
	}
	var about models.About
	err := s.client.Send(ctx, http.MethodPut, basePath+"/update", token, in, "about", &about)
	return about, err
}

// AddExpertise appends one expertise card.
func (s *Store) AddExpertise(ctx context.Context, token string, in models.ExpertiseItem) (models.About, error) {
	if strings.TrimSpace(in.Title) == "" {
		return models.About{}, resource.Invalid("Title is required.")
	}
	if strings.TrimSpace(in.Description) == "" {
		return models.About{}, resource.Invalid("Description is required.")
	}
	var about models.About
	err := s.client.Send(ctx, http.MethodPost, basePath+"/expertise", token, in, "about", &about)
	return about, err
}

// DeleteExpertise removes one expertise card by ID.
func (s *Store) DeleteExpertise(ctx context.Context, token, id string) (models.About, error) {
	var about models.About
	err := s.client.Send(ctx, http.MethodDelete, basePath+"/expertise/"+id, token, nil, "about", &about)
	return about, err
}

// AddTechnology appends one technology marquee entry.
func (s *Store) AddTechnology(ctx context.Context, token string, in models.TechnologyItem) (models.About, error) {
	if strings.TrimSpace(in.Name) == "" {
		return models.About{}, resource.Invalid("Name is required.")
	}
	var about models.About
	err := s.client.Send(ctx, http.MethodPost, basePath+"/technology", token, in, "about", &about)
	return about, err
}

// DeleteTechnology removes one technology entry by ID.
func (s *Store) DeleteTechnology(ctx context.Context, token, id string) (models.About, error) {
	var about models.About
	err := s.client.Send(ctx, http.MethodDelete, basePath+"/technology/"+id, token, nil, "about", &about)
	return about, err
}

// UploadProfileImage replaces the profile photo.
func (s *Store) UploadProfileImage(ctx context.Context, token, filename string, file io.Reader) (models.About, error) {
	var about models.About
	err := s.client.Upload(ctx, basePath+"/upload-image", token,
		"image", filename, file, nil, "about", &about)
	return about, err
}

// UploadTechnologyIcon replaces one technology's icon image.
func (s *Store) UploadTechnologyIcon(ctx context.Context, token, techID, filename string, file io.Reader) (models.About, error) {
	var about models.About
	err := s.client.Upload(ctx, basePath+"/technology/"+techID+"/upload-icon", token,
		"icon", filename, file, nil, "about", &about)
	return about, err
}

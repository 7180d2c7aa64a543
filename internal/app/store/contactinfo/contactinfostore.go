// internal/app/store/contactinfo/contactinfostore.go
package contactinfo

import (
	"context"
	"net/http"
	"strings"

	"github.com/kapilraj10/portfolio-web/internal/app/system/api"
	"github.com/kapilraj10/portfolio-web/internal/app/system/inputval"
	"github.com/kapilraj10/portfolio-web/internal/app/system/resource"
	"github.com/kapilraj10/portfolio-web/internal/domain/models"
)

const basePath = "/api/contact-info"

// Store manages the public contact details block through the backend.
type Store struct {
	client *api.Client
}

// New creates the contact-info store.
func New(client *api.Client) *Store {
	return &Store{client: client}
}

// Get fetches the contact details. Public, no token.
func (s *Store) Get(ctx context.Context) (models.ContactInfo, error) {
	var info models.ContactInfo
	err := s.client.Get(ctx, basePath, "", "contactInfo", &info)
	return info, err
}

// Update replaces the contact details.
func (s *Store) Update(ctx context.Context, token string, in models.ContactInfo) (models.ContactInfo, error) {
	if strings.TrimSpace(in.Email) == "" {
		return models.ContactInfo{}, resource.Invalid("Email is required.")
	}
	if !inputval.IsValidEmail(strings.TrimSpace(in.Email)) {
		return models.ContactInfo{}, resource.Invalid("A valid email address is required.")
	}
	if strings.TrimSpace(in.Phone) == "" {
		return models.ContactInfo{}, resource.Invalid("Phone is required.")
	}
	if strings.TrimSpace(in.Location) == "" {
		return models.ContactInfo{}, resource.Invalid("Location is required.")
	}

	var info models.ContactInfo
	err := s.client.Send(ctx, http.MethodPut, basePath, token, in, "contactInfo", &info)
	return info, err
}

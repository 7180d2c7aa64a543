// internal/app/store/project/projectstore.go
package project

import (
	"context"
	"io"
	"strings"

	"github.com/kapilraj10/portfolio-web/internal/app/system/api"
	"github.com/kapilraj10/portfolio-web/internal/app/system/inputval"
	"github.com/kapilraj10/portfolio-web/internal/app/system/resource"
	"github.com/kapilraj10/portfolio-web/internal/domain/models"
)

// Store manages the portfolio projects collection through the backend.
type Store struct {
	*resource.Manager[models.Project]
}

// New creates the project store.
func New(client *api.Client) *Store {
	return &Store{
		Manager: resource.NewManager(client, resource.Config[models.Project]{
			BasePath: "/api/projects",
			ListKey:  "projects",
			ItemKey:  "project",
			Validate: validate,
		}),
	}
}

func validate(in models.Project) error {
	if strings.TrimSpace(in.Title) == "" {
		return resource.Invalid("Title is required.")
	}
	if strings.TrimSpace(in.Description) == "" {
		return resource.Invalid("Description is required.")
	}
	hasTech := false
	for _, tech := range in.Technologies {
		if strings.TrimSpace(tech) != "" {
			hasTech = true
			break
		}
	}
	if !hasTech {
		return resource.Invalid("At least one technology is required.")
	}
	// Links are optional, but a filled-in link must be a real web URL.
	if in.LiveURL != "" && !inputval.IsValidHTTPURL(in.LiveURL) {
		return resource.Invalid("Live URL must start with http:// or https://.")
	}
	if in.GithubURL != "" && !inputval.IsValidHTTPURL(in.GithubURL) {
		return resource.Invalid("GitHub URL must start with http:// or https://.")
	}
	return nil
}

// UploadImage attaches a card image to the project. Size and type are
// validated by the handler before the file reaches the store.
func (s *Store) UploadImage(ctx context.Context, token, id, filename string, file io.Reader) (models.Project, error) {
	var updated models.Project
	err := s.Client().Upload(ctx, s.BasePath()+"/"+id+"/upload-image", token,
		"image", filename, file, nil, "project", &updated)
	return updated, err
}

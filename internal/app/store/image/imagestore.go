// internal/app/store/image/imagestore.go
package image

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/kapilraj10/portfolio-web/internal/app/system/api"
	"github.com/kapilraj10/portfolio-web/internal/app/system/resource"
	"github.com/kapilraj10/portfolio-web/internal/domain/models"
)

const basePath = "/api/images"

// Store manages the media library through the backend.
type Store struct {
	client *api.Client
}

// New creates the image store.
func New(client *api.Client) *Store {
	return &Store{client: client}
}

// ListQuery are the library filters.
type ListQuery struct {
	Category string
	Search   string
	Page     int
}

// Page is one page of assets plus the backend's pagination totals.
type Page struct {
	Images     []models.ImageAsset
	Total      int
	Page       int
	TotalPages int
}

// List fetches one page of the media library.
func (s *Store) List(ctx context.Context, token string, q ListQuery) (Page, error) {
	page := q.Page
	if page < 1 {
		page = 1
	}

	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	params.Set("limit", strconv.Itoa(models.ImagePageSize))
	if q.Category != "" {
		params.Set("category", q.Category)
	}
	if q.Search != "" {
		params.Set("search", q.Search)
	}

	resp, err := s.client.GetRaw(ctx, basePath+"?"+params.Encode(), token)
	if err != nil {
		return Page{}, err
	}

	var images []models.ImageAsset
	if err := resp.Decode("images", &images); err != nil {
		return Page{}, err
	}

	out := Page{
		Images:     images,
		Total:      resp.Int("total"),
		Page:       resp.Int("page"),
		TotalPages: resp.Int("totalPages"),
	}
	if out.Page == 0 {
		out.Page = page
	}
	if out.TotalPages < 1 {
		out.TotalPages = 1
	}
	return out, nil
}

// Stats fetches the library counters.
func (s *Store) Stats(ctx context.Context, token string) (models.ImageStats, error) {
	var stats models.ImageStats
	err := s.client.Get(ctx, basePath+"/stats", token, "stats", &stats)
	return stats, err
}

// UploadInput is the metadata accompanying a new asset.
type UploadInput struct {
	Title       string
	Description string
	Category    string
	Tags        []string
	AltText     string
	Caption     string
	Credit      string
}

// Upload adds an asset to the library. Size and type are validated by the
// handler before the file reaches the store.
func (s *Store) Upload(ctx context.Context, token, filename string, file io.Reader, in UploadInput) (models.ImageAsset, error) {
	if strings.TrimSpace(in.Title) == "" {
		return models.ImageAsset{}, resource.Invalid("Title is required.")
	}
	if !validCategory(in.Category) {
		return models.ImageAsset{}, resource.Invalid("Unknown category.")
	}

	extra := map[string]string{
		"title":    in.Title,
		"category": in.Category,
	}
	if in.Description != "" {
		extra["description"] = in.Description
	}
	if len(in.Tags) > 0 {
		extra["tags"] = strings.Join(in.Tags, ",")
	}
	if in.AltText != "" {
		extra["altText"] = in.AltText
	}
	if in.Caption != "" {
		extra["caption"] = in.Caption
	}
	if in.Credit != "" {
		extra["credit"] = in.Credit
	}

	var asset models.ImageAsset
	err := s.client.Upload(ctx, basePath+"/upload", token, "image", filename, file, extra, "image", &asset)
	return asset, err
}

// Update edits an asset's metadata.
func (s *Store) Update(ctx context.Context, token, id string, in UploadInput) (models.ImageAsset, error) {
	if strings.TrimSpace(in.Title) == "" {
		return models.ImageAsset{}, resource.Invalid("Title is required.")
	}
	if !validCategory(in.Category) {
		return models.ImageAsset{}, resource.Invalid("Unknown category.")
	}

	body := map[string]any{
		"title":       in.Title,
		"description": in.Description,
		"category":    in.Category,
		"tags":        in.Tags,
		"altText":     in.AltText,
		"caption":     in.Caption,
		"credit":      in.Credit,
	}
	var asset models.ImageAsset
	err := s.client.Send(ctx, http.MethodPut, basePath+"/"+id, token, body, "image", &asset)
	return asset, err
}

// Delete removes one asset. Callers must have confirmed the action first.
func (s *Store) Delete(ctx context.Context, token, id string) error {
	return s.client.Send(ctx, http.MethodDelete, basePath+"/"+id, token, nil, "", nil)
}

// BulkDelete removes the selected assets in one call. Callers must have
// confirmed the action first.
func (s *Store) BulkDelete(ctx context.Context, token string, ids []string) error {
	if len(ids) == 0 {
		return resource.Invalid("Select at least one image.")
	}
	return s.client.Send(ctx, http.MethodPost, basePath+"/bulk-delete", token,
		map[string][]string{"ids": ids}, "", nil)
}

func validCategory(category string) bool {
	for _, c := range models.ImageCategories {
		if c == category {
			return true
		}
	}
	return false
}

// internal/app/store/blog/blogstore.go
package blog

import (
	"context"
	"io"
	"net/url"
	"strconv"
	"strings"

	"github.com/kapilraj10/portfolio-web/internal/app/system/api"
	"github.com/kapilraj10/portfolio-web/internal/app/system/resource"
	"github.com/kapilraj10/portfolio-web/internal/domain/models"
)

// Store manages blog posts through the backend.
type Store struct {
	*resource.Manager[models.BlogPost]
}

// New creates the blog store.
func New(client *api.Client) *Store {
	return &Store{
		Manager: resource.NewManager(client, resource.Config[models.BlogPost]{
			BasePath: "/api/blogs",
			ListKey:  "blogs",
			ItemKey:  "blog",
			Validate: validate,
		}),
	}
}

func validate(in models.BlogPost) error {
	required := []struct {
		value, label string
	}{
		{in.Title, "Title"},
		{in.Excerpt, "Excerpt"},
		{in.Slug, "Slug"},
		{in.ProblemStatement, "Problem statement"},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return resource.Invalid(f.label + " is required.")
		}
	}
	hasTech := false
	for _, tech := range in.TechStack {
		if strings.TrimSpace(tech) != "" {
			hasTech = true
			break
		}
	}
	if !hasTech {
		return resource.Invalid("At least one tech stack entry is required.")
	}
	return nil
}

// ListQuery are the public listing filters. All filters combine; changing
// any of them resets Page to 1 in the handler.
type ListQuery struct {
	Search   string
	Tag      string
	Featured bool
	Page     int
}

// Page is one page of published posts plus the pagination totals the
// backend computes.
type Page struct {
	Posts      []models.BlogPost
	Total      int
	Page       int
	TotalPages int
}

// List fetches one page of published posts. Public, no token.
func (s *Store) List(ctx context.Context, q ListQuery) (Page, error) {
	page := q.Page
	if page < 1 {
		page = 1
	}

	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	params.Set("limit", strconv.Itoa(models.BlogPageSize))
	if q.Search != "" {
		params.Set("search", q.Search)
	}
	if q.Tag != "" {
		params.Set("tag", q.Tag)
	}
	if q.Featured {
		params.Set("featured", "true")
	}

	resp, err := s.Client().GetRaw(ctx, s.BasePath()+"?"+params.Encode(), "")
	if err != nil {
		return Page{}, err
	}

	var data struct {
		Blogs      []models.BlogPost `json:"blogs"`
		Total      int               `json:"total"`
		Page       int               `json:"page"`
		TotalPages int               `json:"totalPages"`
	}
	if err := resp.Decode("data", &data); err != nil {
		return Page{}, err
	}

	out := Page{
		Posts:      data.Blogs,
		Total:      data.Total,
		Page:       data.Page,
		TotalPages: data.TotalPages,
	}
	if out.Page == 0 {
		out.Page = page
	}
	if out.TotalPages < 1 {
		out.TotalPages = 1
	}
	return out, nil
}

// GetBySlug fetches one published post for the public detail page.
func (s *Store) GetBySlug(ctx context.Context, slug string) (models.BlogPost, error) {
	var post models.BlogPost
	err := s.Client().Get(ctx, s.BasePath()+"/"+url.PathEscape(slug), "", "blog", &post)
	return post, err
}

// AdminList fetches every post, drafts included, for the console.
func (s *Store) AdminList(ctx context.Context, token string) ([]models.BlogPost, error) {
	var posts []models.BlogPost
	err := s.Client().Get(ctx, s.BasePath()+"/admin/all", token, "blogs", &posts)
	return posts, err
}

// UploadCover attaches a cover image to the post. Size and type are
// validated by the handler before the file reaches the store.
func (s *Store) UploadCover(ctx context.Context, token, id, filename string, file io.Reader) (models.BlogPost, error) {
	var updated models.BlogPost
	err := s.Client().Upload(ctx, s.BasePath()+"/"+id+"/upload-cover", token,
		"coverImage", filename, file, nil, "blog", &updated)
	return updated, err
}

// internal/app/features/blog/blog.go
package blog

import (
	"html/template"
	"net/http"
	"net/url"
	"sort"
	"strconv"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	errorsfeature "github.com/kapilraj10/portfolio-web/internal/app/features/errors"
	blogstore "github.com/kapilraj10/portfolio-web/internal/app/store/blog"
	"github.com/kapilraj10/portfolio-web/internal/app/system/api"
	"github.com/kapilraj10/portfolio-web/internal/app/system/htmlsanitize"
	"github.com/kapilraj10/portfolio-web/internal/app/system/normalize"
	"github.com/kapilraj10/portfolio-web/internal/app/system/viewdata"
	"github.com/kapilraj10/portfolio-web/internal/domain/models"
)

// Handler provides the public blog pages.
type Handler struct {
	blogStore *blogstore.Store
	errLog    *errorsfeature.ErrorLogger
	logger    *zap.Logger
}

// NewHandler creates a new blog Handler.
func NewHandler(blogStore *blogstore.Store, errLog *errorsfeature.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		blogStore: blogStore,
		errLog:    errLog,
		logger:    logger,
	}
}

// pageLink is one entry in the pager.
type pageLink struct {
	Number  int
	URL     string
	Current bool
}

// ListVM is the view model for the blog listing.
type ListVM struct {
	viewdata.BaseVM
	Posts      []models.BlogPost
	Search     string
	Tag        string
	Featured   bool
	Tags       []string
	Pages      []pageLink
	TotalPages int
	LoadError  bool
}

// caseSection is one rendered case-study section.
type caseSection struct {
	Heading string
	Body    template.HTML
}

// DetailVM is the view model for one case study.
type DetailVM struct {
	viewdata.BaseVM
	Post     models.BlogPost
	Sections []caseSection
}

// Routes returns a chi.Router with blog routes mounted.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.list)
	r.Get("/{slug}", h.detail)
	return r
}

// list renders the published posts with search/tag/featured filters. Any
// filter change resets to page 1 (the filter form carries no page field).
func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	q := blogstore.ListQuery{
		Search:   normalize.QueryParam(r.URL.Query().Get("search")),
		Tag:      normalize.QueryParam(r.URL.Query().Get("tag")),
		Featured: r.URL.Query().Get("featured") == "true",
	}
	if page, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil {
		q.Page = page
	}

	vm := ListVM{
		BaseVM:   viewdata.New(r),
		Search:   q.Search,
		Tag:      q.Tag,
		Featured: q.Featured,
	}
	vm.Title = "Blog"

	result, err := h.blogStore.List(r.Context(), q)
	if err != nil {
		h.errLog.Log(r, "failed to list blog posts", err)
		vm.LoadError = true
		templates.Render(w, r, "blog/list", vm)
		return
	}

	vm.Posts = result.Posts
	vm.TotalPages = result.TotalPages
	vm.Tags = tagsOnPage(result.Posts)
	vm.Pages = buildPager(result.Page, result.TotalPages, q)

	templates.Render(w, r, "blog/list", vm)
}

// detail renders one case study with its sections sanitized.
func (h *Handler) detail(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	post, err := h.blogStore.GetBySlug(r.Context(), slug)
	if err != nil {
		if api.IsNotFound(err) {
			http.NotFound(w, r)
			return
		}
		h.errLog.Log(r, "failed to load blog post", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	sections := make([]caseSection, 0, 5)
	add := func(heading, content string) {
		if content == "" {
			return
		}
		sections = append(sections, caseSection{
			Heading: heading,
			Body:    htmlsanitize.PrepareForDisplay(content),
		})
	}
	add("The Problem", post.ProblemStatement)
	add("Architecture", post.Architecture)
	add("Implementation", post.Implementation)
	add("Challenges", post.Challenges)
	add("Learnings", post.Learnings)

	vm := DetailVM{
		BaseVM:   viewdata.New(r),
		Post:     post,
		Sections: sections,
	}
	vm.Title = post.Title
	vm.BackURL = "/blog"

	templates.Render(w, r, "blog/detail", vm)
}

// tagsOnPage returns the sorted set-union of tags across the loaded page.
// Posts on other pages don't contribute; the filter choices follow what's
// visible.
func tagsOnPage(posts []models.BlogPost) []string {
	seen := make(map[string]bool)
	var tags []string
	for _, post := range posts {
		for _, tag := range post.Tags {
			if tag != "" && !seen[tag] {
				seen[tag] = true
				tags = append(tags, tag)
			}
		}
	}
	sort.Strings(tags)
	return tags
}

// buildPager renders numbered links that preserve the active filters.
func buildPager(current, total int, q blogstore.ListQuery) []pageLink {
	if total <= 1 {
		return nil
	}
	links := make([]pageLink, 0, total)
	for n := 1; n <= total; n++ {
		params := url.Values{}
		if q.Search != "" {
			params.Set("search", q.Search)
		}
		if q.Tag != "" {
			params.Set("tag", q.Tag)
		}
		if q.Featured {
			params.Set("featured", "true")
		}
		params.Set("page", strconv.Itoa(n))
		links = append(links, pageLink{
			Number:  n,
			URL:     "/blog?" + params.Encode(),
			Current: n == current,
		})
	}
	return links
}

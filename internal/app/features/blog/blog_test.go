package blog

import (
	"net/http"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	errorsfeature "github.com/kapilraj10/portfolio-web/internal/app/features/errors"
	blogstore "github.com/kapilraj10/portfolio-web/internal/app/store/blog"
	"github.com/kapilraj10/portfolio-web/internal/testutil"
)

func newTestHandler(t *testing.T, backend *testutil.Backend) *Handler {
	t.Helper()
	testutil.MustBootTemplates(t)
	logger := zap.NewNop()
	return NewHandler(blogstore.New(backend.Client()), errorsfeature.NewErrorLogger(logger), logger)
}

func stubListing(backend *testutil.Backend) {
	backend.Stub(http.MethodGet, "/api/blogs", map[string]any{
		"data": map[string]any{
			"blogs": []map[string]any{
				{"title": "Building This Site", "slug": "building-this-site", "excerpt": "How it went.", "tags": []string{"go", "web"}, "readTime": 5, "views": 100},
				{"title": "Another Post", "slug": "another-post", "excerpt": "More words.", "tags": []string{"go", "backend"}, "featured": true},
			},
			"total":      26,
			"page":       1,
			"totalPages": 3,
		},
	})
}

// testRouter serves the feature at the same path prefix routes.go uses.
func testRouter(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Mount("/blog", Routes(h))
	return r
}

func TestListRendersPostsAndPager(t *testing.T) {
	backend := testutil.NewBackend(t)
	stubListing(backend)
	h := newTestHandler(t, backend)

	req := testutil.WithCSRFToken(testutil.NewRequest(http.MethodGet, "/blog"))
	rec := testutil.NewRecorder()
	testRouter(h).ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "Building This Site")
	rec.AssertContains(t, "/blog/building-this-site")
	rec.AssertContains(t, `class="current"`)
	rec.AssertContains(t, "page=3")
}

func TestListTagChoicesComeFromCurrentPage(t *testing.T) {
	backend := testutil.NewBackend(t)
	stubListing(backend)
	h := newTestHandler(t, backend)

	req := testutil.WithCSRFToken(testutil.NewRequest(http.MethodGet, "/blog"))
	rec := testutil.NewRecorder()
	testRouter(h).ServeHTTP(rec, req)

	body := rec.Body.String()
	for _, tag := range []string{"go", "web", "backend"} {
		if !strings.Contains(body, `value="`+tag+`"`) {
			t.Errorf("tag %q missing from filter options", tag)
		}
	}
}

func TestListForwardsFilters(t *testing.T) {
	backend := testutil.NewBackend(t)
	stubListing(backend)
	h := newTestHandler(t, backend)

	req := testutil.WithCSRFToken(testutil.NewRequest(http.MethodGet, "/blog?search=go&tag=web&featured=true&page=2"))
	rec := testutil.NewRecorder()
	testRouter(h).ServeHTTP(rec, req)

	reqs := backend.Requests()
	if len(reqs) != 1 {
		t.Fatalf("backend calls = %d", len(reqs))
	}
	q := reqs[0].Query
	for _, want := range []string{"search=go", "tag=web", "featured=true", "page=2", "limit=12"} {
		if !strings.Contains(q, want) {
			t.Errorf("query %q missing %q", q, want)
		}
	}
}

func TestListEmptyState(t *testing.T) {
	backend := testutil.NewBackend(t)
	backend.Stub(http.MethodGet, "/api/blogs", map[string]any{
		"data": map[string]any{"blogs": []any{}, "total": 0, "page": 1, "totalPages": 0},
	})
	h := newTestHandler(t, backend)

	req := testutil.WithCSRFToken(testutil.NewRequest(http.MethodGet, "/blog?search=nothing"))
	rec := testutil.NewRecorder()
	testRouter(h).ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "No posts match your filters.")
}

func TestListBackendDownShowsNotice(t *testing.T) {
	backend := testutil.NewBackend(t)
	h := newTestHandler(t, backend)

	req := testutil.WithCSRFToken(testutil.NewRequest(http.MethodGet, "/blog"))
	rec := testutil.NewRecorder()
	testRouter(h).ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "unavailable right now")
}

func TestDetailRendersSanitizedSections(t *testing.T) {
	backend := testutil.NewBackend(t)
	backend.Stub(http.MethodGet, "/api/blogs/building-this-site", map[string]any{
		"blog": map[string]any{
			"title":            "Building This Site",
			"slug":             "building-this-site",
			"excerpt":          "How it went.",
			"problemStatement": "<p>Needed a site</p><script>alert('x')</script>",
			"learnings":        "Plain text learning\nwith two lines",
			"techStack":        []string{"Go", "chi"},
			"githubUrl":        "https://github.com/kapilraj10/portfolio-web",
		},
	})
	h := newTestHandler(t, backend)

	req := testutil.WithCSRFToken(testutil.NewRequest(http.MethodGet, "/blog/building-this-site"))
	rec := testutil.NewRecorder()
	testRouter(h).ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "The Problem")
	rec.AssertContains(t, "Needed a site")
	rec.AssertContains(t, "Learnings")
	rec.AssertContains(t, "<br>")

	if strings.Contains(rec.Body.String(), "<script>") {
		t.Error("script tags must be stripped from sections")
	}
	// Empty sections are skipped entirely
	if strings.Contains(rec.Body.String(), "Architecture") {
		t.Error("empty sections should not render headings")
	}
}

func TestDetailNotFound(t *testing.T) {
	backend := testutil.NewBackend(t)
	backend.StubError(http.MethodGet, "/api/blogs/missing", http.StatusNotFound, "Blog post not found")
	h := newTestHandler(t, backend)

	req := testutil.WithCSRFToken(testutil.NewRequest(http.MethodGet, "/blog/missing"))
	rec := testutil.NewRecorder()
	testRouter(h).ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusNotFound)
}

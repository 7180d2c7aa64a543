package blogadmin

import (
	"encoding/json"
	"net/http"
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

func validForm() map[string]string {
	return map[string]string{
		"title":             "Building This Site",
		"excerpt":           "How it went.",
		"problem_statement": "Needed a portfolio.",
		"tech_stack":        "Go\nchi",
		"tags":              "go, web",
		"published":         "on",
	}
}

// testRouter serves the feature at the same path prefix routes.go uses.
func testRouter(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Mount("/admin/blogs", Routes(h))
	return r
}

func TestListShowsDraftsAndPublished(t *testing.T) {
	backend := testutil.NewBackend(t)
	backend.Stub(http.MethodGet, "/api/blogs/admin/all", map[string]any{
		"blogs": []map[string]any{
			{"_id": "b1", "title": "Published Post", "slug": "published-post", "isPublished": true, "views": 42},
			{"_id": "b2", "title": "Draft Post", "slug": "draft-post", "isPublished": false},
		},
	})
	h := newTestHandler(t, backend)

	req := testutil.NewAuthenticatedRequestWithCSRF(http.MethodGet, "/admin/blogs", testutil.AdminUser())
	rec := testutil.NewRecorder()
	testRouter(h).ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "Published Post")
	rec.AssertContains(t, "Draft Post")
	rec.AssertContains(t, "Draft")
	rec.AssertContains(t, "/blog/published-post")
}

func TestCreateDerivesSlugFromTitle(t *testing.T) {
	backend := testutil.NewBackend(t)
	backend.Stub(http.MethodPost, "/api/blogs", map[string]any{
		"blog": map[string]any{"_id": "b1"},
	})
	h := newTestHandler(t, backend)

	form := validForm()
	form["slug"] = ""
	req := testutil.NewFormRequest("/admin/blogs/new", form)
	req = testutil.WithCSRFToken(testutil.WithUser(req, testutil.AdminUser()))
	rec := testutil.NewRecorder()
	testRouter(h).ServeHTTP(rec, req)

	rec.AssertRedirect(t, "/admin/blogs?success=created")

	reqs := backend.Requests()
	if len(reqs) != 1 {
		t.Fatalf("backend calls = %d, want 1", len(reqs))
	}
	var sent struct {
		Slug string `json:"slug"`
	}
	if err := json.Unmarshal(reqs[0].Body, &sent); err != nil {
		t.Fatalf("decode sent body: %v", err)
	}
	if sent.Slug != "building-this-site" {
		t.Errorf("slug = %q, want %q", sent.Slug, "building-this-site")
	}
}

func TestCreateValidationSkipsBackend(t *testing.T) {
	backend := testutil.NewBackend(t)
	h := newTestHandler(t, backend)

	form := validForm()
	form["problem_statement"] = ""
	req := testutil.NewFormRequest("/admin/blogs/new", form)
	req = testutil.WithCSRFToken(testutil.WithUser(req, testutil.AdminUser()))
	rec := testutil.NewRecorder()
	testRouter(h).ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "Problem statement is required.")
	if n := len(backend.Requests()); n != 0 {
		t.Errorf("backend calls = %d, want 0", n)
	}
}

func TestShowEditPrefillsForm(t *testing.T) {
	backend := testutil.NewBackend(t)
	backend.Stub(http.MethodGet, "/api/blogs/b1", map[string]any{
		"blog": map[string]any{
			"_id":              "b1",
			"title":            "Building This Site",
			"slug":             "building-this-site",
			"excerpt":          "How it went.",
			"problemStatement": "Needed a portfolio.",
			"techStack":        []string{"Go", "chi"},
			"tags":             []string{"go", "web"},
			"isPublished":      true,
			"project":          map[string]any{"_id": "p9", "title": "Portfolio"},
		},
	})
	h := newTestHandler(t, backend)

	req := testutil.NewAuthenticatedRequestWithCSRF(http.MethodGet, "/admin/blogs/b1/edit", testutil.AdminUser())
	rec := testutil.NewRecorder()
	testRouter(h).ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, `value="building-this-site"`)
	rec.AssertContains(t, "go, web")
	rec.AssertContains(t, `value="p9"`)
	rec.AssertContains(t, `action="/admin/blogs/b1"`)
}

func TestUpdateRedirects(t *testing.T) {
	backend := testutil.NewBackend(t)
	backend.Stub(http.MethodPut, "/api/blogs/b1", map[string]any{
		"blog": map[string]any{"_id": "b1"},
	})
	h := newTestHandler(t, backend)

	req := testutil.NewFormRequest("/admin/blogs/b1", validForm())
	req = testutil.WithCSRFToken(testutil.WithUser(req, testutil.AdminUser()))
	rec := testutil.NewRecorder()
	testRouter(h).ServeHTTP(rec, req)

	rec.AssertRedirect(t, "/admin/blogs?success=updated")
}

func TestDeleteRedirects(t *testing.T) {
	backend := testutil.NewBackend(t)
	backend.Stub(http.MethodDelete, "/api/blogs/b1", map[string]any{})
	h := newTestHandler(t, backend)

	req := testutil.NewFormRequest("/admin/blogs/b1/delete", nil)
	req = testutil.WithCSRFToken(testutil.WithUser(req, testutil.AdminUser()))
	rec := testutil.NewRecorder()
	testRouter(h).ServeHTTP(rec, req)

	rec.AssertRedirect(t, "/admin/blogs?success=deleted")
}

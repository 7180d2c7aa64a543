package experienceadmin

import (
	"net/http"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	errorsfeature "github.com/kapilraj10/portfolio-web/internal/app/features/errors"
	"github.com/kapilraj10/portfolio-web/internal/app/store/experience"
	"github.com/kapilraj10/portfolio-web/internal/testutil"
)

func newTestHandler(t *testing.T, backend *testutil.Backend) *Handler {
	t.Helper()
	testutil.MustBootTemplates(t)
	logger := zap.NewNop()
	return NewHandler(experience.New(backend.Client()), errorsfeature.NewErrorLogger(logger), logger)
}

func validForm() map[string]string {
	return map[string]string{
		"role":         "Backend Engineer",
		"company":      "Acme",
		"location":     "Kathmandu, Nepal",
		"period":       "Jan 2024 – Present",
		"duration":     "1 yr",
		"description":  "Built services.",
		"achievements": "Shipped the thing\nKept it running",
		"technologies": "Go\nMongoDB",
	}
}

// testRouter serves the feature at the same path prefix routes.go uses.
func testRouter(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Mount("/admin/experiences", Routes(h))
	return r
}

func TestListShowsEntriesAndSuccessMessage(t *testing.T) {
	backend := testutil.NewBackend(t)
	backend.Stub(http.MethodGet, "/api/experiences", map[string]any{
		"experiences": []map[string]any{
			{"_id": "abc123", "role": "Backend Engineer", "company": "Acme", "period": "2024", "location": "Remote"},
		},
	})
	h := newTestHandler(t, backend)

	req := testutil.NewAuthenticatedRequestWithCSRF(http.MethodGet, "/admin/experiences?success=created", testutil.AdminUser())
	rec := testutil.NewRecorder()
	testRouter(h).ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "Backend Engineer")
	rec.AssertContains(t, "Experience created successfully")
	rec.AssertContains(t, "/admin/experiences/abc123/edit")
}

func TestCreateRedirectsAndSendsToken(t *testing.T) {
	backend := testutil.NewBackend(t)
	backend.Stub(http.MethodPost, "/api/experiences", map[string]any{
		"experience": map[string]any{"_id": "new1", "role": "Backend Engineer"},
	})
	h := newTestHandler(t, backend)

	req := testutil.NewFormRequest("/admin/experiences/new", validForm())
	req = testutil.WithCSRFToken(testutil.WithUser(req, testutil.AdminUser()))
	rec := testutil.NewRecorder()
	testRouter(h).ServeHTTP(rec, req)

	rec.AssertRedirect(t, "/admin/experiences?success=created")

	reqs := backend.Requests()
	if len(reqs) != 1 {
		t.Fatalf("backend calls = %d, want 1", len(reqs))
	}
	if reqs[0].Token != "test-bearer-token" {
		t.Errorf("bearer token = %q", reqs[0].Token)
	}
}

func TestCreateFailureMessageIsEscaped(t *testing.T) {
	backend := testutil.NewBackend(t)
	backend.StubError(http.MethodPost, "/api/experiences", http.StatusBadRequest,
		`Company <script>alert("x")</script> already exists`)
	h := newTestHandler(t, backend)

	req := testutil.NewFormRequest("/admin/experiences/new", validForm())
	req = testutil.WithCSRFToken(testutil.WithUser(req, testutil.AdminUser()))
	rec := testutil.NewRecorder()
	testRouter(h).ServeHTTP(rec, req)

	// The backend message is shown verbatim as text, never as markup.
	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "&lt;script&gt;")
	if strings.Contains(rec.Body.String(), "<script>") {
		t.Error("backend failure message rendered as markup")
	}
}

func TestCreateValidationSkipsBackend(t *testing.T) {
	backend := testutil.NewBackend(t)
	h := newTestHandler(t, backend)

	form := validForm()
	form["role"] = ""
	req := testutil.NewFormRequest("/admin/experiences/new", form)
	req = testutil.WithCSRFToken(testutil.WithUser(req, testutil.AdminUser()))
	rec := testutil.NewRecorder()
	testRouter(h).ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "Role is required.")
	// Entered values are echoed back
	rec.AssertContains(t, "Acme")

	if n := len(backend.Requests()); n != 0 {
		t.Errorf("backend calls = %d, want 0", n)
	}
}

func TestCreateBlankAchievementLinesRejected(t *testing.T) {
	backend := testutil.NewBackend(t)
	h := newTestHandler(t, backend)

	form := validForm()
	form["achievements"] = "\n   \n"
	req := testutil.NewFormRequest("/admin/experiences/new", form)
	req = testutil.WithCSRFToken(testutil.WithUser(req, testutil.AdminUser()))
	rec := testutil.NewRecorder()
	testRouter(h).ServeHTTP(rec, req)

	rec.AssertContains(t, "At least one achievement is required.")
	if n := len(backend.Requests()); n != 0 {
		t.Errorf("backend calls = %d, want 0", n)
	}
}

func TestShowEditPrefillsForm(t *testing.T) {
	backend := testutil.NewBackend(t)
	backend.Stub(http.MethodGet, "/api/experiences/abc123", map[string]any{
		"experience": map[string]any{
			"_id":          "abc123",
			"role":         "Backend Engineer",
			"company":      "Acme",
			"location":     "Remote",
			"period":       "2024",
			"duration":     "1 yr",
			"description":  "Built services.",
			"achievements": []string{"Shipped the thing"},
			"technologies": []string{"Go", "MongoDB"},
		},
	})
	h := newTestHandler(t, backend)

	req := testutil.NewAuthenticatedRequestWithCSRF(http.MethodGet, "/admin/experiences/abc123/edit", testutil.AdminUser())
	rec := testutil.NewRecorder()
	testRouter(h).ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, `value="Backend Engineer"`)
	rec.AssertContains(t, "Shipped the thing")
	rec.AssertContains(t, `action="/admin/experiences/abc123"`)
}

func TestUpdateRedirects(t *testing.T) {
	backend := testutil.NewBackend(t)
	backend.Stub(http.MethodPut, "/api/experiences/abc123", map[string]any{
		"experience": map[string]any{"_id": "abc123"},
	})
	h := newTestHandler(t, backend)

	req := testutil.NewFormRequest("/admin/experiences/abc123", validForm())
	req = testutil.WithCSRFToken(testutil.WithUser(req, testutil.AdminUser()))
	rec := testutil.NewRecorder()
	testRouter(h).ServeHTTP(rec, req)

	rec.AssertRedirect(t, "/admin/experiences?success=updated")
}

func TestDeleteRedirects(t *testing.T) {
	backend := testutil.NewBackend(t)
	backend.Stub(http.MethodDelete, "/api/experiences/abc123", map[string]any{})
	h := newTestHandler(t, backend)

	req := testutil.NewFormRequest("/admin/experiences/abc123/delete", nil)
	req = testutil.WithCSRFToken(testutil.WithUser(req, testutil.AdminUser()))
	rec := testutil.NewRecorder()
	testRouter(h).ServeHTTP(rec, req)

	rec.AssertRedirect(t, "/admin/experiences?success=deleted")
}

func TestDeleteFailureRedirectsWithError(t *testing.T) {
	backend := testutil.NewBackend(t)
	backend.StubError(http.MethodDelete, "/api/experiences/abc123", http.StatusInternalServerError, "boom")
	h := newTestHandler(t, backend)

	req := testutil.NewFormRequest("/admin/experiences/abc123/delete", nil)
	req = testutil.WithCSRFToken(testutil.WithUser(req, testutil.AdminUser()))
	rec := testutil.NewRecorder()
	testRouter(h).ServeHTTP(rec, req)

	rec.AssertRedirect(t, "/admin/experiences?error=delete_failed")
}

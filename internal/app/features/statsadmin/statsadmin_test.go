package statsadmin

import (
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	errorsfeature "github.com/kapilraj10/portfolio-web/internal/app/features/errors"
	"github.com/kapilraj10/portfolio-web/internal/app/store/projectstats"
	"github.com/kapilraj10/portfolio-web/internal/testutil"
)

func newTestHandler(t *testing.T, backend *testutil.Backend) *Handler {
	t.Helper()
	testutil.MustBootTemplates(t)
	logger := zap.NewNop()
	return NewHandler(projectstats.New(backend.Client()), errorsfeature.NewErrorLogger(logger), logger)
}

func stubStats(backend *testutil.Backend) {
	backend.Stub(http.MethodGet, "/api/project-stats/", map[string]any{
		"stats": map[string]any{
			"completedProjects": 15,
			"ongoingProjects":   3,
			"happyClients":      20,
			"yearsExperience":   3,
		},
	})
	backend.Stub(http.MethodGet, "/api/project-stats/history", map[string]any{
		"history": []map[string]any{
			{"_id": "h1", "completedProjects": 12, "ongoingProjects": 2, "happyClients": 18, "yearsExperience": 2, "changedBy": "admin@test.com", "recordedAt": "2026-05-01T10:00:00Z"},
		},
	})
}

// testRouter serves the feature at the same path prefix routes.go uses.
func testRouter(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Mount("/admin/stats", Routes(h))
	return r
}

func TestShowRendersCountersAndHistory(t *testing.T) {
	backend := testutil.NewBackend(t)
	stubStats(backend)
	h := newTestHandler(t, backend)

	req := testutil.NewAuthenticatedRequestWithCSRF(http.MethodGet, "/admin/stats?success=updated", testutil.AdminUser())
	rec := testutil.NewRecorder()
	testRouter(h).ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, `value="15"`)
	rec.AssertContains(t, "admin@test.com")
	rec.AssertContains(t, "Statistics updated successfully")
}

func TestShowToleratesHistoryFailure(t *testing.T) {
	backend := testutil.NewBackend(t)
	backend.Stub(http.MethodGet, "/api/project-stats/", map[string]any{
		"stats": map[string]any{"completedProjects": 15},
	})
	backend.StubError(http.MethodGet, "/api/project-stats/history", http.StatusInternalServerError, "boom")
	h := newTestHandler(t, backend)

	req := testutil.NewAuthenticatedRequestWithCSRF(http.MethodGet, "/admin/stats", testutil.AdminUser())
	rec := testutil.NewRecorder()
	testRouter(h).ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, `value="15"`)
}

func TestUpdateRedirects(t *testing.T) {
	backend := testutil.NewBackend(t)
	stubStats(backend)
	backend.Stub(http.MethodPut, "/api/project-stats/", map[string]any{
		"stats": map[string]any{"completedProjects": 16},
	})
	h := newTestHandler(t, backend)

	req := testutil.NewFormRequest("/admin/stats", map[string]string{
		"completed_projects": "16",
		"ongoing_projects":   "3",
		"happy_clients":      "20",
		"years_experience":   "3",
	})
	req = testutil.WithCSRFToken(testutil.WithUser(req, testutil.AdminUser()))
	rec := testutil.NewRecorder()
	testRouter(h).ServeHTTP(rec, req)

	rec.AssertRedirect(t, "/admin/stats?success=updated")
}

func TestUpdateRejectsNegativeValues(t *testing.T) {
	backend := testutil.NewBackend(t)
	stubStats(backend)
	h := newTestHandler(t, backend)

	req := testutil.NewFormRequest("/admin/stats", map[string]string{
		"completed_projects": "-1",
	})
	req = testutil.WithCSRFToken(testutil.WithUser(req, testutil.AdminUser()))
	rec := testutil.NewRecorder()
	testRouter(h).ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "Value cannot be negative")
	if n := backend.CallCount(http.MethodPut, "/api/project-stats/"); n != 0 {
		t.Errorf("update calls = %d, want 0", n)
	}
}

func TestResetRedirects(t *testing.T) {
	backend := testutil.NewBackend(t)
	backend.Stub(http.MethodPost, "/api/project-stats/reset", map[string]any{
		"stats": map[string]any{"completedProjects": 15},
	})
	h := newTestHandler(t, backend)

	req := testutil.NewFormRequest("/admin/stats/reset", nil)
	req = testutil.WithCSRFToken(testutil.WithUser(req, testutil.AdminUser()))
	rec := testutil.NewRecorder()
	testRouter(h).ServeHTTP(rec, req)

	rec.AssertRedirect(t, "/admin/stats?success=reset")
}

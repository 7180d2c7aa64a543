package contact

import (
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	errorsfeature "github.com/kapilraj10/portfolio-web/internal/app/features/errors"
	contactstore "github.com/kapilraj10/portfolio-web/internal/app/store/contact"
	"github.com/kapilraj10/portfolio-web/internal/testutil"
)

func newTestHandler(t *testing.T, backend *testutil.Backend) *Handler {
	t.Helper()
	testutil.MustBootTemplates(t)
	logger := zap.NewNop()
	return NewHandler(contactstore.New(backend.Client()), errorsfeature.NewErrorLogger(logger), logger)
}

// testRouter serves the feature at the same path prefix routes.go uses.
func testRouter(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Mount("/contact", Routes(h))
	return r
}

func TestShowForm(t *testing.T) {
	backend := testutil.NewBackend(t)
	h := newTestHandler(t, backend)

	req := testutil.WithCSRFToken(testutil.NewRequest(http.MethodGet, "/contact"))
	rec := testutil.NewRecorder()
	testRouter(h).ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "Get In Touch")
}

func TestSubmitRedirectsWithSentFlag(t *testing.T) {
	backend := testutil.NewBackend(t)
	backend.Stub(http.MethodPost, "/api/contacts/submit", map[string]any{"message": "Message sent"})
	h := newTestHandler(t, backend)

	req := testutil.WithCSRFToken(testutil.NewFormRequest("/contact", map[string]string{
		"name":    "Visitor",
		"email":   "visitor@example.com",
		"message": "Hello there",
	}))
	rec := testutil.NewRecorder()
	testRouter(h).ServeHTTP(rec, req)

	rec.AssertRedirect(t, "/?sent=1")
	if backend.CallCount(http.MethodPost, "/api/contacts/submit") != 1 {
		t.Error("expected one submit call")
	}
}

func TestSubmitValidationEchoesValues(t *testing.T) {
	backend := testutil.NewBackend(t)
	h := newTestHandler(t, backend)

	req := testutil.WithCSRFToken(testutil.NewFormRequest("/contact", map[string]string{
		"name":    "Visitor",
		"email":   "not-an-email",
		"message": "Hello there",
	}))
	rec := testutil.NewRecorder()
	testRouter(h).ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "valid email")
	rec.AssertContains(t, "Visitor")
	rec.AssertContains(t, "Hello there")

	if len(backend.Requests()) != 0 {
		t.Error("validation failure must not reach the backend")
	}
}

func TestSubmitBackendFailureShowsMessage(t *testing.T) {
	backend := testutil.NewBackend(t)
	backend.StubError(http.MethodPost, "/api/contacts/submit", http.StatusBadGateway, "Mail service unavailable")
	h := newTestHandler(t, backend)

	req := testutil.WithCSRFToken(testutil.NewFormRequest("/contact", map[string]string{
		"name":    "Visitor",
		"email":   "visitor@example.com",
		"message": "Hello there",
	}))
	rec := testutil.NewRecorder()
	testRouter(h).ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "Mail service unavailable")
}

package home

import (
	"net/http"
	"strings"
	"testing"

	"go.uber.org/zap"

	aboutstore "github.com/kapilraj10/portfolio-web/internal/app/store/about"
	contactinfostore "github.com/kapilraj10/portfolio-web/internal/app/store/contactinfo"
	experiencestore "github.com/kapilraj10/portfolio-web/internal/app/store/experience"
	projectstore "github.com/kapilraj10/portfolio-web/internal/app/store/project"
	statsstore "github.com/kapilraj10/portfolio-web/internal/app/store/projectstats"
	"github.com/kapilraj10/portfolio-web/internal/testutil"
)

func newTestHandler(t *testing.T, backend *testutil.Backend) *Handler {
	t.Helper()
	testutil.MustBootTemplates(t)
	client := backend.Client()
	return NewHandler(
		aboutstore.New(client),
		experiencestore.New(client),
		projectstore.New(client),
		statsstore.New(client),
		contactinfostore.New(client),
		zap.NewNop(),
	)
}

func stubAllSections(backend *testutil.Backend) {
	backend.Stub(http.MethodGet, "/api/about/", map[string]any{
		"about": map[string]any{
			"profile": map[string]any{
				"name":   "Kapil Raj KC",
				"badge":  "Full Stack Dev",
				"bio":    []string{"I build web applications."},
				"status": map[string]any{"text": "Available for work", "isAvailable": true},
			},
			"stats": map[string]any{
				"projects":     map[string]any{"value": 50, "label": "Projects"},
				"experience":   map[string]any{"value": 3, "label": "Years"},
				"satisfaction": map[string]any{"value": 100, "label": "Satisfaction"},
			},
			"expertise": []map[string]any{
				{"title": "Frontend", "description": "React apps", "icon": "Zap", "order": 2},
				{"title": "Backend", "description": "APIs", "icon": "Layers", "order": 1},
			},
			"technologies": []map[string]any{
				{"name": "Go", "isActive": true, "order": 1},
				{"name": "Retired", "isActive": false, "order": 2},
			},
		},
	})
	backend.Stub(http.MethodGet, "/api/experiences", map[string]any{
		"experiences": []map[string]any{
			{"role": "Engineer", "company": "Acme", "period": "2022", "duration": "2 yrs", "location": "Kathmandu", "description": "Built stuff."},
		},
	})
	backend.Stub(http.MethodGet, "/api/projects", map[string]any{
		"projects": []map[string]any{
			{"title": "Portfolio", "description": "This site", "technologies": []string{"Go"}},
		},
	})
	backend.Stub(http.MethodGet, "/api/project-stats/", map[string]any{
		"stats": map[string]any{"completedProjects": 42, "ongoingProjects": 2, "happyClients": 30, "yearsExperience": 5},
	})
	backend.Stub(http.MethodGet, "/api/contact-info", map[string]any{
		"contactInfo": map[string]any{"email": "hello@example.com", "phone": "+977 1", "location": "Kathmandu"},
	})
}

func TestIndexRendersAllSections(t *testing.T) {
	backend := testutil.NewBackend(t)
	stubAllSections(backend)
	h := newTestHandler(t, backend)

	req := testutil.WithCSRFToken(testutil.NewRequest(http.MethodGet, "/"))
	rec := testutil.NewRecorder()
	Routes(h).ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "Kapil Raj KC")
	rec.AssertContains(t, "Available for work")
	rec.AssertContains(t, "Engineer")
	rec.AssertContains(t, "Portfolio")
	rec.AssertContains(t, "42+")
	rec.AssertContains(t, "hello@example.com")
}

func TestIndexSortsExpertiseByOrder(t *testing.T) {
	backend := testutil.NewBackend(t)
	stubAllSections(backend)
	h := newTestHandler(t, backend)

	req := testutil.WithCSRFToken(testutil.NewRequest(http.MethodGet, "/"))
	rec := testutil.NewRecorder()
	Routes(h).ServeHTTP(rec, req)

	body := rec.Body.String()
	if strings.Index(body, "Backend") > strings.Index(body, "Frontend") {
		t.Error("expertise should be ordered ascending by order field")
	}
}

func TestIndexFiltersInactiveTechnologies(t *testing.T) {
	backend := testutil.NewBackend(t)
	stubAllSections(backend)
	h := newTestHandler(t, backend)

	req := testutil.WithCSRFToken(testutil.NewRequest(http.MethodGet, "/"))
	rec := testutil.NewRecorder()
	Routes(h).ServeHTTP(rec, req)

	body := rec.Body.String()
	if strings.Contains(body, "Retired") {
		t.Error("inactive technologies should not render")
	}
	// tripled marquee renders the active entry three times
	if strings.Count(body, ">Go<") < 1 && strings.Count(body, "Go") < 3 {
		t.Errorf("expected tripled marquee entries")
	}
}

func TestIndexFallsBackToDefaultsWhenBackendDown(t *testing.T) {
	backend := testutil.NewBackend(t)
	// nothing stubbed: every fetch fails
	h := newTestHandler(t, backend)

	req := testutil.WithCSRFToken(testutil.NewRequest(http.MethodGet, "/"))
	rec := testutil.NewRecorder()
	Routes(h).ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "Kapil Raj KC")
	rec.AssertContains(t, "Available for work")
	rec.AssertContains(t, "kapilmern.dev@gmail.com")
	rec.AssertContains(t, "15+") // default completed projects
}

func TestIndexShowsSentNotice(t *testing.T) {
	backend := testutil.NewBackend(t)
	stubAllSections(backend)
	h := newTestHandler(t, backend)

	req := testutil.WithCSRFToken(testutil.NewRequest(http.MethodGet, "/?sent=1"))
	rec := testutil.NewRecorder()
	Routes(h).ServeHTTP(rec, req)

	rec.AssertContains(t, "Thanks for reaching out")
}

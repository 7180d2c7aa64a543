package contactinfo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/kapilraj10/portfolio-web/internal/app/system/api"
	"github.com/kapilraj10/portfolio-web/internal/app/system/resource"
	"github.com/kapilraj10/portfolio-web/internal/domain/models"
)

func newTestStore(t *testing.T, handler http.HandlerFunc) (*Store, *atomic.Int64) {
	t.Helper()
	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		handler(w, r)
	}))
	t.Cleanup(srv.Close)
	return New(api.New(srv.URL, 5*time.Second, zap.NewNop())), &calls
}

func TestGet(t *testing.T) {
	store, _ := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/contact-info" {
			t.Errorf("path = %q", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"success":true,"contactInfo":{"email":"kapilmern.dev@gmail.com","phone":"+977 9704167805","location":"Kathmandu, Nepal"}}`))
	})

	info, err := store.Get(context.Background())
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if info.Location != "Kathmandu, Nepal" {
		t.Errorf("info = %+v", info)
	}
}

func TestUpdateValidation(t *testing.T) {
	tests := []struct {
		name string
		in   models.ContactInfo
		want string
	}{
		{"missing email", models.ContactInfo{Phone: "1", Location: "x"}, "Email is required."},
		{"invalid email", models.ContactInfo{Email: "nope", Phone: "1", Location: "x"}, "A valid email address is required."},
		{"missing phone", models.ContactInfo{Email: "a@b.com", Location: "x"}, "Phone is required."},
		{"missing location", models.ContactInfo{Email: "a@b.com", Phone: "1"}, "Location is required."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, calls := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {})
			_, err := store.Update(context.Background(), "tok", tt.in)
			if !resource.IsValidation(err) {
				t.Fatalf("want validation error, got %v", err)
			}
			if err.Error() != tt.want {
				t.Errorf("error = %q, want %q", err.Error(), tt.want)
			}
			if calls.Load() != 0 {
				t.Errorf("backend calls = %d, want 0", calls.Load())
			}
		})
	}
}

func TestUpdate(t *testing.T) {
	store, _ := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/api/contact-info" {
			t.Errorf("%s %s", r.Method, r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"success":true,"contactInfo":{"email":"new@example.com","phone":"+1","location":"Remote"}}`))
	})

	info, err := store.Update(context.Background(), "tok",
		models.ContactInfo{Email: "new@example.com", Phone: "+1", Location: "Remote"})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if info.Email != "new@example.com" {
		t.Errorf("info = %+v", info)
	}
}

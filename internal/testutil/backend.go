package testutil

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/kapilraj10/portfolio-web/internal/app/system/api"
)

// Backend is a fake portfolio backend for handler tests. Register
// responses per method+path; every request is recorded for assertions.
type Backend struct {
	t      *testing.T
	server *httptest.Server

	mu       sync.Mutex
	routes   map[string]stubResponse
	requests []RecordedRequest
}

type stubResponse struct {
	status int
	body   any
}

// RecordedRequest is one request the fake backend received. Body holds the
// raw request body for JSON assertions; multipart bodies are kept as-is.
type RecordedRequest struct {
	Method string
	Path   string
	Query  string
	Token  string
	Body   []byte
}

// NewBackend starts a fake backend. It is shut down with the test.
func NewBackend(t *testing.T) *Backend {
	t.Helper()
	b := &Backend{
		t:      t,
		routes: make(map[string]stubResponse),
	}
	b.server = httptest.NewServer(http.HandlerFunc(b.serve))
	t.Cleanup(b.server.Close)
	return b
}

// Client returns an API client pointed at the fake backend.
func (b *Backend) Client() *api.Client {
	return api.New(b.server.URL, 5*time.Second, zap.NewNop())
}

// URL returns the fake backend's origin.
func (b *Backend) URL() string {
	return b.server.URL
}

// Stub registers a success envelope for method+path. The body is merged
// into {"success": true}; pass payload fields like "blogs" or "token".
func (b *Backend) Stub(method, path string, payload map[string]any) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.routes[method+" "+path] = stubResponse{status: http.StatusOK, body: payload}
}

// StubError registers a failure envelope for method+path.
func (b *Backend) StubError(method, path string, status int, message string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.routes[method+" "+path] = stubResponse{
		status: status,
		body:   map[string]any{"__error": message},
	}
}

// Requests returns a copy of everything the backend has received.
func (b *Backend) Requests() []RecordedRequest {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]RecordedRequest, len(b.requests))
	copy(out, b.requests)
	return out
}

// CallCount returns how many requests hit method+path.
func (b *Backend) CallCount(method, path string) int {
	n := 0
	for _, req := range b.Requests() {
		if req.Method == method && req.Path == path {
			n++
		}
	}
	return n
}

func (b *Backend) serve(w http.ResponseWriter, r *http.Request) {
	token := ""
	if authz := r.Header.Get("Authorization"); len(authz) > 7 && authz[:7] == "Bearer " {
		token = authz[7:]
	}
	body, _ := io.ReadAll(r.Body)

	b.mu.Lock()
	b.requests = append(b.requests, RecordedRequest{
		Method: r.Method,
		Path:   r.URL.Path,
		Query:  r.URL.RawQuery,
		Token:  token,
		Body:   body,
	})
	stub, ok := b.routes[r.Method+" "+r.URL.Path]
	b.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": false,
			"message": "not stubbed: " + r.Method + " " + r.URL.Path,
		})
		return
	}

	envelope := map[string]any{"success": true}
	if payload, isMap := stub.body.(map[string]any); isMap {
		if msg, failed := payload["__error"]; failed {
			envelope["success"] = false
			envelope["message"] = msg
		} else {
			for k, v := range payload {
				envelope[k] = v
			}
		}
	}
	w.WriteHeader(stub.status)
	_ = json.NewEncoder(w).Encode(envelope)
}

// Package resource provides the shared CRUD contract every content manager
// in the admin console follows: validate locally before any network call,
// mutate through the backend, and let the caller refetch the full list.
package resource

import (
	"context"
	"errors"
	"net/http"

	"github.com/kapilraj10/portfolio-web/internal/app/system/api"
)

// ValidationError is a local validation failure. No request has been sent
// when one of these is returned.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Invalid builds a ValidationError.
func Invalid(msg string) error {
	return &ValidationError{Message: msg}
}

// IsValidation reports whether err is a local validation failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// FailureMessage picks the message to show for a failed store call: local
// validation messages pass through, backend envelope messages are used when
// present, anything else gets the fallback.
func FailureMessage(err error, fallback string) string {
	if IsValidation(err) {
		return err.Error()
	}
	return api.ErrorMessage(err, fallback)
}

// Config describes one backend collection for a Manager.
type Config[T any] struct {
	// BasePath is the collection endpoint, e.g. "/api/experiences".
	BasePath string
	// ListKey and ItemKey name the envelope payload fields,
	// e.g. "experiences" and "experience".
	ListKey string
	ItemKey string
	// Validate runs before Create and Update. Return a ValidationError to
	// reject the input without touching the network. May be nil.
	Validate func(T) error
}

// Manager implements list/create/update/delete against one backend
// collection. Entity stores embed one and add collection-specific calls
// (uploads, custom endpoints) beside it.
type Manager[T any] struct {
	client *api.Client
	cfg    Config[T]
}

// NewManager creates a Manager over the given backend collection.
func NewManager[T any](client *api.Client, cfg Config[T]) *Manager[T] {
	return &Manager[T]{client: client, cfg: cfg}
}

// List fetches every item in the collection.
func (m *Manager[T]) List(ctx context.Context, token string) ([]T, error) {
	var items []T
	if err := m.client.Get(ctx, m.cfg.BasePath, token, m.cfg.ListKey, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Get fetches one item by ID.
func (m *Manager[T]) Get(ctx context.Context, token, id string) (T, error) {
	var item T
	err := m.client.Get(ctx, m.cfg.BasePath+"/"+id, token, m.cfg.ItemKey, &item)
	return item, err
}

// Create validates the input, then POSTs it to the collection.
func (m *Manager[T]) Create(ctx context.Context, token string, in T) (T, error) {
	var created T
	if err := m.validate(in); err != nil {
		return created, err
	}
	err := m.client.Send(ctx, http.MethodPost, m.cfg.BasePath, token, in, m.cfg.ItemKey, &created)
	return created, err
}

// Update validates the input, then PUTs it to the item endpoint.
func (m *Manager[T]) Update(ctx context.Context, token, id string, in T) (T, error) {
	var updated T
	if err := m.validate(in); err != nil {
		return updated, err
	}
	err := m.client.Send(ctx, http.MethodPut, m.cfg.BasePath+"/"+id, token, in, m.cfg.ItemKey, &updated)
	return updated, err
}

// Delete removes one item. Callers must have confirmed the action first;
// the manager never deletes on its own.
func (m *Manager[T]) Delete(ctx context.Context, token, id string) error {
	return m.client.Send(ctx, http.MethodDelete, m.cfg.BasePath+"/"+id, token, nil, "", nil)
}

// Client exposes the underlying API client for collection-specific calls.
func (m *Manager[T]) Client() *api.Client {
	return m.client
}

// BasePath returns the collection endpoint.
func (m *Manager[T]) BasePath() string {
	return m.cfg.BasePath
}

func (m *Manager[T]) validate(in T) error {
	if m.cfg.Validate == nil {
		return nil
	}
	return m.cfg.Validate(in)
}

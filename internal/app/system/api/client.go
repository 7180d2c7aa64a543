// Package api is the typed HTTP client for the portfolio backend.
//
// Every backend response uses the same envelope:
//
//	{"success": true|false, "message": "...", "<resource>": ...}
//
// The client decodes the envelope, surfaces the backend's message on
// failure, and extracts the named resource payload on success.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const maxResponseBytes = 16 << 20

// Client issues requests against a single configured backend origin.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

// New creates a Client for the given backend origin (e.g. "http://localhost:5000").
func New(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// BaseURL returns the configured backend origin.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// CloseIdleConnections releases pooled connections; called on shutdown.
func (c *Client) CloseIdleConnections() {
	c.http.CloseIdleConnections()
}

// Error is a failed backend call. Message carries the backend's own
// message verbatim when the envelope had one.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend: %s (status %d)", e.Message, e.Status)
	}
	return fmt.Sprintf("backend: request failed (status %d)", e.Status)
}

// IsNotFound reports whether err is a backend 404.
func IsNotFound(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

// IsUnauthorized reports whether err is a backend 401 or 403.
func IsUnauthorized(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) &&
		(apiErr.Status == http.StatusUnauthorized || apiErr.Status == http.StatusForbidden)
}

// ErrorMessage returns the backend's message for err, or fallback when the
// failure carried none (network errors, malformed envelopes).
func ErrorMessage(err error, fallback string) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

// Response is a decoded success envelope. Callers that need more than one
// payload field (e.g. a list plus its page count) read them off here.
type Response struct {
	fields map[string]json.RawMessage
}

// Decode unmarshals the named envelope field into out.
func (r *Response) Decode(key string, out any) error {
	payload, ok := r.fields[key]
	if !ok {
		return fmt.Errorf("response missing %q", key)
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("decode %q payload: %w", key, err)
	}
	return nil
}

// Int returns the named envelope field as an int (0 when absent).
func (r *Response) Int(key string) int {
	var n int
	if payload, ok := r.fields[key]; ok {
		_ = json.Unmarshal(payload, &n)
	}
	return n
}

// Get issues a GET and decodes the payload under key into out.
// Pass an empty token for public endpoints; out may be nil.
func (c *Client) Get(ctx context.Context, path, token, key string, out any) error {
	_, err := c.doDecode(ctx, http.MethodGet, path, token, "", nil, key, out)
	return err
}

// GetRaw issues a GET and returns the whole success envelope.
func (c *Client) GetRaw(ctx context.Context, path, token string) (*Response, error) {
	return c.doDecode(ctx, http.MethodGet, path, token, "", nil, "", nil)
}

// Send issues a JSON request (POST/PUT/PATCH/DELETE) and decodes the
// payload under key into out. body may be nil; out may be nil.
func (c *Client) Send(ctx context.Context, method, path, token string, body any, key string, out any) error {
	var rdr io.Reader
	contentType := ""
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		rdr = bytes.NewReader(buf)
		contentType = "application/json"
	}
	_, err := c.doDecode(ctx, method, path, token, contentType, rdr, key, out)
	return err
}

// SendRaw issues a JSON request and returns the whole success envelope.
// Callers that need more than one payload field use this over Send.
func (c *Client) SendRaw(ctx context.Context, method, path, token string, body any) (*Response, error) {
	var rdr io.Reader
	contentType := ""
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		rdr = bytes.NewReader(buf)
		contentType = "application/json"
	}
	return c.doDecode(ctx, method, path, token, contentType, rdr, "", nil)
}

// Upload issues a multipart POST with one file part plus extra form fields.
func (c *Client) Upload(ctx context.Context, path, token, field, filename string, file io.Reader, extra map[string]string, key string, out any) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile(field, filename)
	if err != nil {
		return fmt.Errorf("create multipart part: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return fmt.Errorf("copy upload body: %w", err)
	}
	for k, v := range extra {
		if err := mw.WriteField(k, v); err != nil {
			return fmt.Errorf("write multipart field %q: %w", k, err)
		}
	}
	if err := mw.Close(); err != nil {
		return fmt.Errorf("finish multipart body: %w", err)
	}

	_, err = c.doDecode(ctx, http.MethodPost, path, token, mw.FormDataContentType(), &buf, key, out)
	return err
}

// doDecode performs the request, validates the envelope, and optionally
// extracts one payload field into out.
func (c *Client) doDecode(ctx context.Context, method, path, token, contentType string, body io.Reader, key string, out any) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("backend request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.String("request_id", requestID),
			zap.Error(err))
		return nil, fmt.Errorf("backend %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read backend response: %w", err)
	}

	var env struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &env); err != nil {
		c.logger.Warn("backend returned malformed envelope",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.String("request_id", requestID))
		return nil, &Error{Status: resp.StatusCode}
	}

	if !env.Success || resp.StatusCode >= http.StatusBadRequest {
		return nil, &Error{Status: resp.StatusCode, Message: env.Message}
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("decode backend response: %w", err)
	}
	res := &Response{fields: fields}

	if key != "" && out != nil {
		if err := res.Decode(key, out); err != nil {
			return nil, err
		}
	}
	return res, nil
}

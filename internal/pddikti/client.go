// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pddikti is a client for the public PDDIKTI API, Indonesia's
// national higher-education database. A Client is a session: Open it,
// defer Close, and issue searches in between.
package pddikti

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/pdiddy/pddikti/internal/httputil"
	"github.com/pdiddy/pddikti/pkg/types"
)

var (
	// ErrEmptyQuery is returned for a blank search term. No request is sent.
	ErrEmptyQuery = errors.New("pddikti: query is empty")

	// ErrClosed is returned by calls on a client after Close.
	ErrClosed = errors.New("pddikti: client is closed")
)

// maxErrorBody bounds how much of a failed response body APIError keeps.
const maxErrorBody = 512

// APIError reports a non-200 response from the API.
type APIError struct {
	Endpoint   string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("pddikti: %s returned HTTP %d", e.Endpoint, e.StatusCode)
	}
	return fmt.Sprintf("pddikti: %s returned HTTP %d: %s", e.Endpoint, e.StatusCode, e.Body)
}

// Client is an open PDDIKTI API session. It is safe for concurrent use.
type Client struct {
	http       *http.Client
	baseURL    string
	origin     string
	userAgent  string
	maxRetries int
	limiter    *rate.Limiter
	log        zerolog.Logger
	closed     atomic.Bool
}

// Option customizes a Client at Open time.
type Option func(*Client)

// WithHTTPClient replaces the HTTP client built from the config. Tests use
// it to point at an httptest server's client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithLogger sets the logger used for request diagnostics. The default
// logger discards everything.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) { c.log = log }
}

// Open validates cfg and returns a ready session. Open does no network I/O.
func Open(cfg types.ClientConfig, opts ...Option) (*Client, error) {
	base := strings.TrimRight(cfg.BaseURL, "/")
	if base == "" {
		return nil, fmt.Errorf("pddikti: base URL is required")
	}
	u, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("pddikti: parsing base URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("pddikti: base URL %q must be http or https", cfg.BaseURL)
	}
	if cfg.Timeout <= 0 {
		return nil, fmt.Errorf("pddikti: timeout must be positive, got %v", cfg.Timeout)
	}

	limit := rate.Inf
	if cfg.RateLimit > 0 {
		limit = rate.Limit(cfg.RateLimit)
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}

	c := &Client{
		http:       &http.Client{Timeout: cfg.Timeout},
		baseURL:    base,
		origin:     strings.TrimRight(cfg.Origin, "/"),
		userAgent:  cfg.UserAgent,
		maxRetries: cfg.MaxRetries,
		limiter:    rate.NewLimiter(limit, burst),
		log:        zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log.Debug().Str("base_url", c.baseURL).Msg("session opened")
	return c, nil
}

// Close ends the session and releases idle connections. It is idempotent.
func (c *Client) Close() error {
	if c.closed.Swap(true) {
		return nil
	}
	c.http.CloseIdleConnections()
	c.log.Debug().Msg("session closed")
	return nil
}

// SearchAll queries every record type (students, lecturers, institutions,
// study programs) for query in a single request.
func (c *Client) SearchAll(ctx context.Context, query string) (types.SearchAllResult, error) {
	var out types.SearchAllResult
	q, err := normalizeQuery(query)
	if err != nil {
		return out, err
	}
	if err := c.get(ctx, searchPath(KindAll, q), &out); err != nil {
		return out, err
	}
	out.Normalize()
	return out, nil
}

// SearchStudents queries student (mahasiswa) records.
func (c *Client) SearchStudents(ctx context.Context, query string) ([]types.Student, error) {
	return searchKind[types.Student](ctx, c, KindStudent, query)
}

// SearchLecturers queries lecturer (dosen) records.
func (c *Client) SearchLecturers(ctx context.Context, query string) ([]types.Lecturer, error) {
	return searchKind[types.Lecturer](ctx, c, KindLecturer, query)
}

// SearchInstitutions queries institution (perguruan tinggi) records.
func (c *Client) SearchInstitutions(ctx context.Context, query string) ([]types.Institution, error) {
	return searchKind[types.Institution](ctx, c, KindInstitution, query)
}

// SearchPrograms queries study program (prodi) records.
func (c *Client) SearchPrograms(ctx context.Context, query string) ([]types.StudyProgram, error) {
	return searchKind[types.StudyProgram](ctx, c, KindProgram, query)
}

// StudentDetail fetches the full record for a student id taken from a
// search hit.
func (c *Client) StudentDetail(ctx context.Context, id string) (types.StudentDetail, error) {
	var out types.StudentDetail
	id = strings.TrimSpace(id)
	if id == "" {
		return out, fmt.Errorf("pddikti: student id is empty")
	}
	err := c.get(ctx, "/detail/mhs/"+url.PathEscape(id), &out)
	return out, err
}

func searchKind[T any](ctx context.Context, c *Client, kind Kind, query string) ([]T, error) {
	q, err := normalizeQuery(query)
	if err != nil {
		return nil, err
	}
	var out []T
	if err := c.get(ctx, searchPath(kind, q), &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

func normalizeQuery(query string) (string, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return "", ErrEmptyQuery
	}
	return q, nil
}

func searchPath(kind Kind, query string) string {
	return "/pencarian/" + kind.segment() + "/" + url.PathEscape(query)
}

// get issues a GET for endpoint and decodes the JSON body into out.
func (c *Client) get(ctx context.Context, endpoint string, out any) error {
	if c.closed.Load() {
		return ErrClosed
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("pddikti: waiting for rate limiter: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint, nil)
	if err != nil {
		return fmt.Errorf("pddikti: creating request: %w", err)
	}
	requestID := uuid.NewString()
	c.setHeaders(req, requestID)

	log := c.log.With().Str("endpoint", endpoint).Str("request_id", requestID).Logger()
	start := time.Now()

	resp, err := httputil.DoWithRetry(log.WithContext(ctx), c.http, req, c.maxRetries)
	if err != nil {
		log.Debug().Err(err).Msg("request failed")
		return fmt.Errorf("pddikti: request %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	log.Debug().
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("response")

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &APIError{
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("pddikti: parsing %s response: %w", endpoint, err)
	}
	return nil
}

func (c *Client) setHeaders(req *http.Request, requestID string) {
	req.Header.Set("Accept", "application/json, text/plain, */*")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if c.origin != "" {
		req.Header.Set("Origin", c.origin)
		req.Header.Set("Referer", c.origin+"/")
	}
	req.Header.Set("X-Request-ID", requestID)
}

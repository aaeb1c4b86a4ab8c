package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/gevp/console/internal/client/models"
	"github.com/gevp/console/internal/client/repositories/metadata"
	"github.com/gevp/console/internal/common"
	"github.com/gevp/console/internal/logging"
	"github.com/google/uuid"
)

var _ Client = (*HTTPClient)(nil)

// HTTPClient talks to the backend over HTTP/JSON.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	tokens     metadata.Repository
	logger     logging.Logger

	mu        sync.Mutex
	token     string
	listeners []func()
}

// Option customizes an HTTPClient.
type Option func(*HTTPClient)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) { c.httpClient = hc }
}

// WithLogger sets the logger used for request tracing.
func WithLogger(l logging.Logger) Option {
	return func(c *HTTPClient) { c.logger = l }
}

// NewHTTPClient returns a client for the API at baseURL. tokens receives the
// persisted copy of the bearer token and may be nil.
func NewHTTPClient(baseURL string, tokens metadata.Repository, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		tokens:     tokens,
		logger:     logging.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Close releases idle connections.
func (c *HTTPClient) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}

// Token returns the currently registered bearer token, or "".
func (c *HTTPClient) Token() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.token
}

// SetAuthToken registers token for subsequent requests and stores a copy
// under common.TokenStorageKey. An empty token clears both. The in-memory
// token is updated even when persisting fails.
func (c *HTTPClient) SetAuthToken(ctx context.Context, token string) error {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()

	if c.tokens == nil {
		return nil
	}
	if token == "" {
		return c.tokens.Delete(ctx, common.TokenStorageKey)
	}
	return c.tokens.Set(ctx, common.TokenStorageKey, []byte(token))
}

// OnSessionInvalid registers fn to be called after every 401 response.
func (c *HTTPClient) OnSessionInvalid(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listeners = append(c.listeners, fn)
}

// invalidateSession drops the token and notifies listeners. It must be called
// without c.mu held since listeners usually call back into SetAuthToken.
func (c *HTTPClient) invalidateSession(ctx context.Context) {
	c.mu.Lock()
	c.token = ""
	listeners := make([]func(), len(c.listeners))
	copy(listeners, c.listeners)
	c.mu.Unlock()

	if c.tokens != nil {
		if err := c.tokens.Delete(ctx, common.TokenStorageKey); err != nil {
			c.logger.Warn(ctx, "failed to purge persisted token", "error", err)
		}
	}

	for _, fn := range listeners {
		fn()
	}
}

type request struct {
	method      string
	path        string
	query       url.Values
	body        io.Reader
	contentType string

	// credentials marks a credential check: its 401 means wrong
	// credentials, not a dead session, and leaves the token alone.
	credentials bool
}

func jsonRequest(method, path string, v any) (request, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return request{}, fmt.Errorf("encode %s %s: %w", method, path, err)
	}
	return request{method: method, path: path, body: bytes.NewReader(b), contentType: "application/json"}, nil
}

// do sends r and decodes a 2xx body into out (when out is non-nil).
func (c *HTTPClient) do(ctx context.Context, r request, out any) error {
	u := c.baseURL + r.path
	if len(r.query) > 0 {
		u += "?" + r.query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, r.method, u, r.body)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", r.method, r.path, err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set(common.RequestIDHeaderName, requestID)
	if r.contentType != "" {
		req.Header.Set("Content-Type", r.contentType)
	}
	if token := c.Token(); token != "" {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug(ctx, "api request failed", "method", r.method, "path", r.path, "request_id", requestID, "error", err)
		return fmt.Errorf("%w: %s %s: %w", ErrUnavailable, r.method, r.path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read %s %s: %w", ErrUnavailable, r.method, r.path, err)
	}

	c.logger.Debug(ctx, "api request", "method", r.method, "path", r.path, "status", resp.StatusCode, "request_id", requestID)

	if resp.StatusCode == http.StatusUnauthorized && !r.credentials {
		c.invalidateSession(ctx)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(resp.StatusCode, body)
	}

	if out == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: %s %s: %w", ErrDecode, r.method, r.path, err)
	}
	return nil
}

func (c *HTTPClient) Health(ctx context.Context) (models.HealthStatus, error) {
	var out models.HealthStatus
	err := c.do(ctx, request{method: http.MethodGet, path: "/health"}, &out)
	return out, err
}

// Login exchanges credentials for a bearer token (POST /token, form encoded)
// and registers the token on success. A rejected login keeps the current
// token and does not notify OnSessionInvalid listeners.
func (c *HTTPClient) Login(ctx context.Context, email, password string) (models.TokenResponse, error) {
	form := url.Values{}
	form.Set("username", email)
	form.Set("password", password)

	var out models.TokenResponse
	err := c.do(ctx, request{
		method:      http.MethodPost,
		path:        "/token",
		body:        strings.NewReader(form.Encode()),
		contentType: "application/x-www-form-urlencoded",
		credentials: true,
	}, &out)
	if err != nil {
		return models.TokenResponse{}, err
	}
	if out.AccessToken == "" {
		return models.TokenResponse{}, fmt.Errorf("%w: POST /token: empty access token", ErrDecode)
	}

	if err := c.SetAuthToken(ctx, out.AccessToken); err != nil {
		c.logger.Warn(ctx, "failed to persist token", "error", err)
	}
	return out, nil
}

// Register creates an inactive account. An empty role is sent as EDITOR.
func (c *HTTPClient) Register(ctx context.Context, r models.Registration) (models.MessageResponse, error) {
	if r.Role == "" {
		r.Role = models.RoleEditor
	}
	req, err := jsonRequest(http.MethodPost, "/register", r)
	if err != nil {
		return models.MessageResponse{}, err
	}
	var out models.MessageResponse
	err = c.do(ctx, req, &out)
	return out, err
}

func (c *HTTPClient) CurrentUser(ctx context.Context) (models.User, error) {
	var out models.User
	err := c.do(ctx, request{method: http.MethodGet, path: "/me"}, &out)
	return out, err
}

func (c *HTTPClient) ListCountries(ctx context.Context) ([]models.Country, error) {
	var out []models.Country
	err := c.do(ctx, request{method: http.MethodGet, path: "/countries"}, &out)
	return out, err
}

func (c *HTTPClient) ListCountryProducts(ctx context.Context, countryID string) ([]models.Product, error) {
	var out []models.Product
	err := c.do(ctx, request{method: http.MethodGet, path: "/countries/" + url.PathEscape(countryID) + "/products"}, &out)
	return out, err
}

// ListProducts lists products, optionally filtered server-side by a name
// substring and an exact category. Empty arguments are omitted.
func (c *HTTPClient) ListProducts(ctx context.Context, search, category string) ([]models.Product, error) {
	q := url.Values{}
	if search != "" {
		q.Set("search", search)
	}
	if category != "" {
		q.Set("category", category)
	}

	var out []models.Product
	err := c.do(ctx, request{method: http.MethodGet, path: "/products", query: q}, &out)
	return out, err
}

func (c *HTTPClient) CreateProduct(ctx context.Context, in models.ProductInput) (models.Product, error) {
	req, err := jsonRequest(http.MethodPost, "/products", in)
	if err != nil {
		return models.Product{}, err
	}
	var out models.Product
	err = c.do(ctx, req, &out)
	return out, err
}

func (c *HTTPClient) UpdateProduct(ctx context.Context, id string, in models.ProductInput) (models.Product, error) {
	req, err := jsonRequest(http.MethodPut, "/products/"+url.PathEscape(id), in)
	if err != nil {
		return models.Product{}, err
	}
	var out models.Product
	err = c.do(ctx, req, &out)
	return out, err
}

func (c *HTTPClient) DeleteProduct(ctx context.Context, id string) (models.MessageResponse, error) {
	var out models.MessageResponse
	err := c.do(ctx, request{method: http.MethodDelete, path: "/products/" + url.PathEscape(id)}, &out)
	return out, err
}

// ListExporters lists exporters, restricted to countryID when non-empty.
func (c *HTTPClient) ListExporters(ctx context.Context, countryID string) ([]models.Exporter, error) {
	q := url.Values{}
	if countryID != "" {
		q.Set("country_id", countryID)
	}

	var out []models.Exporter
	err := c.do(ctx, request{method: http.MethodGet, path: "/exporters", query: q}, &out)
	return out, err
}

func (c *HTTPClient) CreateExporter(ctx context.Context, in models.ExporterInput) (models.Exporter, error) {
	req, err := jsonRequest(http.MethodPost, "/exporters", in)
	if err != nil {
		return models.Exporter{}, err
	}
	var out models.Exporter
	err = c.do(ctx, req, &out)
	return out, err
}

func (c *HTTPClient) ListUsers(ctx context.Context) ([]models.User, error) {
	var out []models.User
	err := c.do(ctx, request{method: http.MethodGet, path: "/admin/users"}, &out)
	return out, err
}

func (c *HTTPClient) ActivateUser(ctx context.Context, id string) (models.MessageResponse, error) {
	var out models.MessageResponse
	err := c.do(ctx, request{method: http.MethodPatch, path: "/admin/users/" + url.PathEscape(id) + "/activate"}, &out)
	return out, err
}

func (c *HTTPClient) ListAuditLogs(ctx context.Context) ([]models.AuditLogEntry, error) {
	var out []models.AuditLogEntry
	err := c.do(ctx, request{method: http.MethodGet, path: "/admin/audit-logs"}, &out)
	return out, err
}

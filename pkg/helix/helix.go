// Package helix implements a typed client for the Twitch Helix API.
//
// Each endpoint is described by a request value carrying its resource path,
// required OAuth scopes, and query or body parameters. The generic Get and
// Post functions build the request URI, dispatch it with bearer credentials,
// and decode the response into a typed Envelope. Pagination is pull-based:
// the caller decides when to fetch the next page.
package helix

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/streamforge/helixmod/internal/metrics"
)

const (
	// DefaultBaseURL is the Helix API origin all request paths are joined to.
	DefaultBaseURL = "https://api.twitch.tv/helix"

	defaultHTTPTimeout = 30 * time.Second
)

// TokenProvider supplies the bearer credential attached to every request.
type TokenProvider interface {
	Token(ctx context.Context) (string, error)
}

// ScopeSource is optionally implemented by a TokenProvider that knows which
// OAuth scopes its credential carries. The client consults it before dispatch
// when scope enforcement is enabled.
type ScopeSource interface {
	TokenScopes(ctx context.Context) ([]Scope, error)
}

// Client executes typed Helix requests. It holds no per-request state and is
// safe for concurrent use.
type Client struct {
	clientID      string
	tokens        TokenProvider
	baseURL       string
	httpClient    *http.Client
	mode          DecodeMode
	limiter       *RateLimiter
	enforceScopes bool
	logger        *slog.Logger
}

// Option configures the Client.
type Option func(*Client)

// WithBaseURL overrides the default Helix API origin.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(u, "/")
	}
}

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithDecodeMode selects strict or lenient response decoding. The mode
// applies uniformly to every endpoint executed through this client.
func WithDecodeMode(m DecodeMode) Option {
	return func(c *Client) {
		c.mode = m
	}
}

// WithRateLimiter injects a rate limiter that paces requests against the
// Helix points budget. When set, every dispatch goes through Wait() first.
func WithRateLimiter(r *RateLimiter) Option {
	return func(c *Client) {
		c.limiter = r
	}
}

// WithScopeEnforcement makes the client verify, before dispatch, that the
// credential's scopes cover the scopes a request requires. The check only
// runs when the TokenProvider also implements ScopeSource.
func WithScopeEnforcement() Option {
	return func(c *Client) {
		c.enforceScopes = true
	}
}

// WithLogger sets the logger for request-level debug logging.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

// NewClient creates a Helix client. The client ID is sent as the Client-Id
// header on every request, as Helix requires alongside the bearer token.
func NewClient(clientID string, tokens TokenProvider, opts ...Option) *Client {
	c := &Client{
		clientID:   clientID,
		tokens:     tokens,
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{Timeout: defaultHTTPTimeout},
		mode:       DecodeLenient,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// RequestURI returns the fully qualified URI a request dispatches to:
// origin + "/" + path, followed by the encoded query when any parameter is
// present. The query preserves field declaration order, so the result is
// reproducible byte for byte.
func (c *Client) RequestURI(req RequestGet) string {
	u := c.baseURL + "/" + req.Path()
	query := req.Query()
	if q := query.Encode(); q != "" {
		u += "?" + q
	}
	return u
}

// Get executes a GET request and decodes the response into an Envelope of T.
func Get[T any](ctx context.Context, c *Client, req RequestGet) (*Envelope[T], error) {
	return do[T](ctx, c, req, http.MethodGet, c.RequestURI(req), nil)
}

// Post executes a POST request whose body is the given records wrapped in a
// {"data": [...]} object, and decodes the response into an Envelope of T.
func Post[B, T any](ctx context.Context, c *Client, req RequestPost, records []B) (*Envelope[T], error) {
	body, err := marshalBody(records)
	if err != nil {
		return nil, err
	}
	return do[T](ctx, c, req, http.MethodPost, c.RequestURI(req), body)
}

// postBody is the wire shape of every mutating Helix request body.
type postBody[B any] struct {
	Data []B `json:"data"`
}

func marshalBody[B any](records []B) ([]byte, error) {
	body, err := json.Marshal(postBody[B]{Data: records})
	if err != nil {
		return nil, &SerializationError{Err: err}
	}
	return body, nil
}

func do[T any](ctx context.Context, c *Client, req Request, method, uri string, body []byte) (*Envelope[T], error) {
	if err := c.checkScopes(ctx, req); err != nil {
		return nil, err
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limit: %w", err)
		}
		metrics.RateLimitWaits.Inc()
	}

	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("getting auth token: %w", err)
	}

	var bodyReader io.Reader
	if body != nil {
		bodyReader = strings.NewReader(string(body))
	} else {
		bodyReader = http.NoBody
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, uri, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("creating HTTP request: %w", err)
	}

	httpReq.Header.Set("Authorization", "Bearer "+token)
	httpReq.Header.Set("Client-Id", c.clientID)
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("executing %s %s: %w", method, req.Path(), err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	metrics.APICallsTotal.WithLabelValues(req.Path(), strconv.Itoa(resp.StatusCode)).Inc()
	metrics.RequestDuration.WithLabelValues(req.Path()).Observe(time.Since(start).Seconds())

	if c.limiter != nil {
		c.limiter.UpdateFromHeaders(resp.Header)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, newAPIError(resp.StatusCode, respBody)
	}

	env, err := DecodeEnvelope[T](respBody, c.mode)
	if err != nil {
		metrics.DecodeFailuresTotal.WithLabelValues(req.Path()).Inc()
		return nil, err
	}

	c.logger.Debug("helix request",
		"method", method,
		"endpoint", req.Path(),
		"status", resp.StatusCode,
		"records", len(env.Data),
		"cursor", env.Pagination.Cursor != "",
	)

	return env, nil
}

func (c *Client) checkScopes(ctx context.Context, req Request) error {
	if !c.enforceScopes {
		return nil
	}
	src, ok := c.tokens.(ScopeSource)
	if !ok {
		// Credential scopes are not discoverable; the check falls back to
		// the platform's own enforcement.
		return nil
	}
	granted, err := src.TokenScopes(ctx)
	if err != nil {
		return fmt.Errorf("getting token scopes: %w", err)
	}
	if missing := MissingScopes(granted, req.Scopes()); len(missing) > 0 {
		return &ScopeError{Endpoint: req.Path(), Missing: missing}
	}
	return nil
}

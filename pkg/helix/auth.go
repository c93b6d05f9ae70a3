package helix

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/streamforge/helixmod/internal/metrics"
)

const (
	// DefaultTokenURL is the Twitch OAuth2 token endpoint.
	DefaultTokenURL = "https://id.twitch.tv/oauth2/token" //nolint:gosec // not a credential

	refreshBuffer = 60 * time.Second
)

// AppTokenProvider implements TokenProvider using the Twitch OAuth2 client
// credentials flow. It caches tokens and refreshes automatically when
// expired or within 60 seconds of expiry. Thread-safe via mutex.
type AppTokenProvider struct {
	clientID     string
	clientSecret string
	tokenURL     string
	client       *http.Client
	scopes       []Scope

	mu      sync.Mutex
	token   string
	expiry  time.Time
	nowFunc func() time.Time // for testing
}

// AppTokenOption configures the AppTokenProvider.
type AppTokenOption func(*AppTokenProvider)

// WithTokenURL overrides the default Twitch token endpoint.
func WithTokenURL(u string) AppTokenOption {
	return func(p *AppTokenProvider) {
		p.tokenURL = u
	}
}

// WithTokenHTTPClient overrides the default HTTP client.
func WithTokenHTTPClient(c *http.Client) AppTokenOption {
	return func(p *AppTokenProvider) {
		p.client = c
	}
}

// WithTokenScopes sets the scopes requested with each token.
func WithTokenScopes(scopes ...Scope) AppTokenOption {
	return func(p *AppTokenProvider) {
		p.scopes = scopes
	}
}

// WithNowFunc overrides the time function for testing.
func WithNowFunc(f func() time.Time) AppTokenOption {
	return func(p *AppTokenProvider) {
		p.nowFunc = f
	}
}

// NewAppTokenProvider creates a Twitch OAuth2 app token provider.
func NewAppTokenProvider(clientID, clientSecret string, opts ...AppTokenOption) *AppTokenProvider {
	p := &AppTokenProvider{
		clientID:     clientID,
		clientSecret: clientSecret,
		tokenURL:     DefaultTokenURL,
		client:       &http.Client{Timeout: 10 * time.Second},
		nowFunc:      time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
	TokenType   string `json:"token_type"`
}

type tokenErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// Token returns a valid OAuth2 access token, refreshing if necessary.
func (p *AppTokenProvider) Token(ctx context.Context) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.token != "" && p.nowFunc().Before(p.expiry.Add(-refreshBuffer)) {
		return p.token, nil
	}

	return p.refreshLocked(ctx)
}

// TokenScopes returns the scopes the provider requests with each token.
func (p *AppTokenProvider) TokenScopes(_ context.Context) ([]Scope, error) {
	return p.scopes, nil
}

func (p *AppTokenProvider) refreshLocked(ctx context.Context) (string, error) {
	form := url.Values{
		"client_id":     {p.clientID},
		"client_secret": {p.clientSecret},
		"grant_type":    {"client_credentials"},
	}
	if len(p.scopes) > 0 {
		names := make([]string, len(p.scopes))
		for i, s := range p.scopes {
			names[i] = string(s)
		}
		form.Set("scope", strings.Join(names, " "))
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		p.tokenURL,
		strings.NewReader(form.Encode()),
	)
	if err != nil {
		return "", fmt.Errorf("creating token request: %w", err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("executing token request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading token response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp tokenErrorResponse
		_ = json.Unmarshal(body, &errResp) //nolint:errcheck // best-effort error parsing
		return "", fmt.Errorf(
			"token request failed (status %d): %s",
			resp.StatusCode,
			errResp.Message,
		)
	}

	var tokenResp tokenResponse
	if err := json.Unmarshal(body, &tokenResp); err != nil {
		return "", fmt.Errorf("parsing token response: %w", err)
	}

	p.token = tokenResp.AccessToken
	p.expiry = p.nowFunc().Add(time.Duration(tokenResp.ExpiresIn) * time.Second)
	metrics.TokenRefreshesTotal.Inc()

	return p.token, nil
}

// StaticTokenProvider is a TokenProvider for a fixed user access token and
// its granted scope set. It never refreshes.
type StaticTokenProvider struct {
	token  string
	scopes []Scope
}

// NewStaticTokenProvider wraps an existing access token.
func NewStaticTokenProvider(token string, scopes ...Scope) *StaticTokenProvider {
	return &StaticTokenProvider{token: token, scopes: scopes}
}

// Token returns the wrapped access token.
func (p *StaticTokenProvider) Token(_ context.Context) (string, error) {
	if p.token == "" {
		return "", fmt.Errorf("no access token configured")
	}
	return p.token, nil
}

// TokenScopes returns the scopes the token was declared with.
func (p *StaticTokenProvider) TokenScopes(_ context.Context) ([]Scope, error) {
	return p.scopes, nil
}

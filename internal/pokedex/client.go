package pokedex

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// CatalogFetcher defines the read operations dex needs from the Pokédex API.
// This interface is implemented by *Client and can be used for testing.
type CatalogFetcher interface {
	FetchPokemon(ctx context.Context) ([]Pokemon, error)
	FetchTypes(ctx context.Context) ([]Type, error)
}

// Ensure Client implements CatalogFetcher at compile time.
var _ CatalogFetcher = (*Client)(nil)

// Client talks to the Pokédex HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	// DefaultBaseURL is the public API the catalog is served from.
	DefaultBaseURL   = "https://pokedex-api.3rgo.tech"
	defaultUserAgent = "dex/0.1"

	pokemonPath = "/api/pokemon"
	typesPath   = "/api/types"
)

// Option customises a Client.
type Option func(*Client)

// WithTimeout bounds every request. Zero disables the timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d >= 0 {
			c.http.Timeout = d
		}
	}
}

// NewClient builds a Client for the API rooted at baseURL.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	c := &Client{
		baseURL:   base,
		http:      &http.Client{},
		userAgent: defaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the normalized API root.
func (c *Client) BaseURL() string {
	if c == nil || c.baseURL == nil {
		return ""
	}
	return c.baseURL.String()
}

// FetchPokemon retrieves the full entity collection.
func (c *Client) FetchPokemon(ctx context.Context) ([]Pokemon, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload PokemonListResponse
	if err := c.do(ctx, http.MethodGet, pokemonPath, &payload); err != nil {
		return nil, err
	}
	return payload.Data, nil
}

// FetchTypes retrieves the full type tag collection.
func (c *Client) FetchTypes(ctx context.Context) ([]Type, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload TypeListResponse
	if err := c.do(ctx, http.MethodGet, typesPath, &payload); err != nil {
		return nil, err
	}
	return payload.Data, nil
}

func (c *Client) do(ctx context.Context, method, path string, dest any) error {
	reqURL := c.baseURL.ResolveReference(&url.URL{Path: path})
	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if id := RequestID(ctx); id != "" {
		req.Header.Set("X-Request-ID", id)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("api %s returned status %d", path, resp.StatusCode)
	}
	if dest == nil {
		return nil
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

type requestIDKey struct{}

// WithRequestID tags outgoing requests made with ctx with an X-Request-ID header.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestID returns the id stored by WithRequestID, if any.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = DefaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api url %q: %w", raw, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse api url %q: missing host", raw)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}

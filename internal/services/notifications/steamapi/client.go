// Package steamapi implements the enrichment lookups against the public
// Steam web API and storefront endpoints.
package steamapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/louisbranch/steamwatch/internal/platform/timeouts"
)

const (
	// DefaultStoreBaseURL is the public storefront.
	DefaultStoreBaseURL = "https://store.steampowered.com"
	// DefaultWebAPIBaseURL is the public web API.
	DefaultWebAPIBaseURL = "https://api.steampowered.com"

	maxErrorBody = 512
)

var (
	// ErrNotFound is returned when the upstream reports no data for a lookup.
	ErrNotFound = errors.New("steamapi: not found")
	// ErrNoAPIKey is returned by lookups that need a web API key.
	ErrNoAPIKey = errors.New("steamapi: web api key is not configured")
)

// HTTPError is a non-2xx upstream response.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("steamapi: upstream returned %d", e.StatusCode)
	}
	return fmt.Sprintf("steamapi: upstream returned %d: %s", e.StatusCode, e.Message)
}

// Config holds client endpoints and credentials.
type Config struct {
	APIKey        string
	StoreBaseURL  string
	WebAPIBaseURL string
	HTTPClient    *http.Client
}

// Client performs the storefront and web API lookups.
type Client struct {
	apiKey     string
	storeBase  string
	webAPIBase string
	http       *http.Client
	noRedirect *http.Client
}

// New builds a Client. Empty base URLs default to the public endpoints.
func New(cfg Config) *Client {
	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: timeouts.HTTPRequest}
	}
	noRedirect := *client
	noRedirect.CheckRedirect = func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	}

	return &Client{
		apiKey:     strings.TrimSpace(cfg.APIKey),
		storeBase:  baseURL(cfg.StoreBaseURL, DefaultStoreBaseURL),
		webAPIBase: baseURL(cfg.WebAPIBaseURL, DefaultWebAPIBaseURL),
		http:       client,
		noRedirect: &noRedirect,
	}
}

func baseURL(raw, fallback string) string {
	raw = strings.TrimRight(strings.TrimSpace(raw), "/")
	if raw == "" {
		return fallback
	}
	return raw
}

// getJSON issues a GET and decodes a 2xx JSON body into out.
func (c *Client) getJSON(ctx context.Context, endpoint string, query url.Values, out any) error {
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request %s: %w", req.URL.Path, err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return err
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", req.URL.Path, err)
	}
	return nil
}

func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	return &HTTPError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(body))}
}

package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"dinogen-tracker/internal/core/domain"
	"dinogen-tracker/internal/metrics"
)

const (
	DefaultBaseURL = "https://dinogen-account-us.wilkingames.net/api"
	DefaultTimeout = 10 * time.Second
)

type Client struct {
	httpClient *http.Client
	baseURL    string
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: NewMetricsRoundTripper(http.DefaultTransport),
		},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// NewTestClient creates a client with custom base URL for testing.
func NewTestClient(baseURL string) *Client {
	return NewClient(baseURL, DefaultTimeout)
}

// NewClientWithHTTP uses hc as is; the caller owns its timeout and transport.
func NewClientWithHTTP(baseURL string, hc *http.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{httpClient: hc, baseURL: strings.TrimRight(baseURL, "/")}
}

func (c *Client) GetPlayer(ctx context.Context, username string) (*PlayerResponse, error) {
	var data PlayerResponse
	if err := c.getAndDecode(ctx, c.endpoint("getPlayer", url.Values{"username": {username}}), &data); err != nil {
		return nil, fmt.Errorf("fetch player: %w", err)
	}
	return &data, nil
}

func (c *Client) IsBanned(ctx context.Context, username string) (*BanResponse, error) {
	var data BanResponse
	if err := c.getAndDecode(ctx, c.endpoint("isBanned", url.Values{"username": {username}}), &data); err != nil {
		return nil, fmt.Errorf("fetch ban status: %w", err)
	}
	return &data, nil
}

func (c *Client) GetLeaderboard(ctx context.Context, id string) ([]LeaderboardEntry, error) {
	var data []LeaderboardEntry
	if err := c.getAndDecode(ctx, c.endpoint("getLeaderboard", url.Values{"id": {id}}), &data); err != nil {
		return nil, fmt.Errorf("fetch leaderboard: %w", err)
	}
	return data, nil
}

// GetConnectedPlayers returns the raw connected-player list; only its length
// is meaningful to callers.
func (c *Client) GetConnectedPlayers(ctx context.Context) ([]json.RawMessage, error) {
	var data []json.RawMessage
	if err := c.getAndDecode(ctx, c.endpoint("getConnectedPlayers", nil), &data); err != nil {
		return nil, fmt.Errorf("fetch connected players: %w", err)
	}
	return data, nil
}

func (c *Client) endpoint(path string, query url.Values) string {
	u := c.baseURL + "/" + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

func (c *Client) getAndDecode(ctx context.Context, url string, dest interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w: create request: %v", domain.ErrNetwork, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrNetwork, err)
	}
	defer resp.Body.Close()

	// The service answers lookups of unknown names with a JSON body on an
	// error status, so the body is decoded whatever the status.
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		if resp.StatusCode >= http.StatusBadRequest {
			return fmt.Errorf("%w: unexpected status code: %d", domain.ErrNetwork, resp.StatusCode)
		}
		return fmt.Errorf("%w: decode response: %v", domain.ErrDecode, err)
	}

	if resp.StatusCode != http.StatusOK {
		slog.Debug("Decoded body of non-200 response", "url", url, "status", resp.StatusCode)
	}
	return nil
}

// -- Middleware --

type MetricsRoundTripper struct {
	Proxied http.RoundTripper
}

func NewMetricsRoundTripper(proxied http.RoundTripper) *MetricsRoundTripper {
	if proxied == nil {
		proxied = http.DefaultTransport
	}
	return &MetricsRoundTripper{Proxied: proxied}
}

func (mrt *MetricsRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := mrt.Proxied.RoundTrip(req)
	duration := time.Since(start).Seconds()

	status := "error"
	if err == nil {
		status = fmt.Sprintf("%d", resp.StatusCode)
	}

	endpoint := endpointLabel(req.URL.Path)

	metrics.DinogenRequestDuration.WithLabelValues(endpoint, status).Observe(duration)
	metrics.DinogenRequests.WithLabelValues(endpoint, status).Inc()

	return resp, err
}

func endpointLabel(path string) string {
	switch {
	case strings.HasSuffix(path, "/getPlayer"):
		return "player"
	case strings.HasSuffix(path, "/isBanned"):
		return "ban"
	case strings.HasSuffix(path, "/getLeaderboard"):
		return "leaderboard"
	case strings.HasSuffix(path, "/getConnectedPlayers"):
		return "connected"
	default:
		return "unknown"
	}
}

// Package dinogen reads player profiles, leaderboards, ban status and the
// connected-player count from the Dinogen Online account service.
//
// Every call is an independent snapshot of the remote state; call again to
// observe changes. A Client is safe for concurrent use.
package dinogen

import (
	"context"
	"net/http"
	"time"

	adapter "dinogen-tracker/internal/adapters/dinogen"
	"dinogen-tracker/internal/adapters/dinogen/api"
	"dinogen-tracker/internal/core/domain"
	"dinogen-tracker/internal/core/services/lookup"
)

type (
	PlayerProfile       = domain.PlayerProfile
	ClassStats          = domain.ClassStats
	LeaderboardSnapshot = domain.LeaderboardSnapshot
	LeaderboardEntry    = domain.LeaderboardEntry
	Category            = domain.Category
	ErrorKind           = domain.ErrorKind
)

const (
	CategoryXP                  = domain.CategoryXP
	CategoryKills               = domain.CategoryKills
	CategorySurvivalDino        = domain.CategorySurvivalDino
	CategorySurvivalMilitia     = domain.CategorySurvivalMilitia
	CategorySurvivalChaos       = domain.CategorySurvivalChaos
	CategorySurvivalChicken     = domain.CategorySurvivalChicken
	CategorySurvivalZombie      = domain.CategorySurvivalZombie
	CategorySurvivalPandemonium = domain.CategorySurvivalPandemonium

	DefaultBaseURL = api.DefaultBaseURL
	DefaultTimeout = api.DefaultTimeout
)

var (
	ErrNetwork         = domain.ErrNetwork
	ErrDecode          = domain.ErrDecode
	ErrPlayerNotFound  = domain.ErrPlayerNotFound
	ErrIndexOutOfRange = domain.ErrIndexOutOfRange
	ErrInvalidArgument = domain.ErrInvalidArgument
)

// KindOf maps an error returned by this package to its ErrorKind.
func KindOf(err error) ErrorKind { return domain.KindOf(err) }

type options struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
}

type Option func(*options)

func WithBaseURL(u string) Option {
	return func(o *options) { o.baseURL = u }
}

// WithTimeout bounds each HTTP request. Ignored when WithHTTPClient is used.
func WithTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}

func WithHTTPClient(hc *http.Client) Option {
	return func(o *options) { o.httpClient = hc }
}

type Client struct {
	svc *lookup.Service
}

func New(opts ...Option) *Client {
	o := options{baseURL: DefaultBaseURL, timeout: DefaultTimeout}
	for _, opt := range opts {
		opt(&o)
	}

	var c *api.Client
	if o.httpClient != nil {
		c = api.NewClientWithHTTP(o.baseURL, o.httpClient)
	} else {
		c = api.NewClient(o.baseURL, o.timeout)
	}

	return &Client{svc: lookup.NewService(adapter.NewAdapter(c))}
}

// FetchPlayer returns the player's profile including ban status. It makes
// two requests and fails with ErrPlayerNotFound for unknown names.
func (c *Client) FetchPlayer(ctx context.Context, username string) (*PlayerProfile, error) {
	return c.svc.FetchPlayer(ctx, username)
}

// FetchLeaderboard does not check category against the known set. It fails
// with ErrIndexOutOfRange when the service returns fewer than ten entries.
func (c *Client) FetchLeaderboard(ctx context.Context, category Category) (*LeaderboardSnapshot, error) {
	return c.svc.FetchLeaderboard(ctx, category)
}

// ResolveEntry fetches the profile behind rank (1 is the top entry, 10 the
// last addressable one).
func (c *Client) ResolveEntry(ctx context.Context, snap *LeaderboardSnapshot, rank int) (*PlayerProfile, error) {
	return c.svc.ResolveEntry(ctx, snap, rank)
}

func (c *Client) FetchConnectedPlayerCount(ctx context.Context) (int, error) {
	return c.svc.FetchConnectedPlayerCount(ctx)
}

func (c *Client) IsPlayerBanned(ctx context.Context, username string) (bool, error) {
	return c.svc.IsPlayerBanned(ctx, username)
}

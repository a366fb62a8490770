package lookup

import (
	"context"
	"sync"

	"dinogen-tracker/internal/core/domain"
)

type MockFetcher struct {
	PlayerDataFunc  func(ctx context.Context, username string) (*domain.PlayerProfile, error)
	BanFlagFunc     func(ctx context.Context, username string) (bool, error)
	LeaderboardFunc func(ctx context.Context, category domain.Category) ([]domain.LeaderboardEntry, error)
	ConnectedFunc   func(ctx context.Context) (int, error)

	mu    sync.Mutex
	calls []string
}

func (m *MockFetcher) record(call string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, call)
}

func (m *MockFetcher) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}

func (m *MockFetcher) FetchPlayerData(ctx context.Context, username string) (*domain.PlayerProfile, error) {
	m.record("player:" + username)
	if m.PlayerDataFunc != nil {
		return m.PlayerDataFunc(ctx, username)
	}
	return &domain.PlayerProfile{Username: username}, nil
}

func (m *MockFetcher) FetchBanFlag(ctx context.Context, username string) (bool, error) {
	m.record("ban:" + username)
	if m.BanFlagFunc != nil {
		return m.BanFlagFunc(ctx, username)
	}
	return false, nil
}

func (m *MockFetcher) FetchLeaderboardEntries(ctx context.Context, category domain.Category) ([]domain.LeaderboardEntry, error) {
	m.record("leaderboard:" + string(category))
	if m.LeaderboardFunc != nil {
		return m.LeaderboardFunc(ctx, category)
	}
	return nil, nil
}

func (m *MockFetcher) FetchConnectedPlayers(ctx context.Context) (int, error) {
	m.record("connected")
	if m.ConnectedFunc != nil {
		return m.ConnectedFunc(ctx)
	}
	return 0, nil
}

// knownPlayers returns a PlayerDataFunc that only knows the given names.
func knownPlayers(names ...string) func(ctx context.Context, username string) (*domain.PlayerProfile, error) {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return func(ctx context.Context, username string) (*domain.PlayerProfile, error) {
		if !set[username] {
			return nil, nil
		}
		return &domain.PlayerProfile{Username: username}, nil
	}
}

func tenEntries() []domain.LeaderboardEntry {
	names := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"}
	scores := []float64{100, 90, 80, 70, 60, 50, 40, 30, 20, 1}
	entries := make([]domain.LeaderboardEntry, len(names))
	for i := range names {
		entries[i] = domain.LeaderboardEntry{Username: names[i], Score: scores[i]}
	}
	return entries
}

package lookup

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"dinogen-tracker/internal/core/domain"
	"dinogen-tracker/internal/core/ports"
)

// Service answers player, leaderboard and server queries. It keeps no state
// between calls and is safe for concurrent use.
type Service struct {
	fetcher ports.DinogenFetcher
	now     func() time.Time
}

func NewService(fetcher ports.DinogenFetcher) *Service {
	return &Service{
		fetcher: fetcher,
		now:     time.Now,
	}
}

// FetchPlayer issues the player lookup and then one ban-status request.
func (s *Service) FetchPlayer(ctx context.Context, username string) (*domain.PlayerProfile, error) {
	profile, err := s.fetcher.FetchPlayerData(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("fetch player %q: %w", username, err)
	}
	if profile == nil {
		return nil, fmt.Errorf("fetch player %q: %w", username, domain.ErrPlayerNotFound)
	}

	// The player is known to exist, so the ban flag alone settles IsBanned.
	banned, err := s.fetcher.FetchBanFlag(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("fetch ban status %q: %w", username, err)
	}
	profile.IsBanned = banned

	slog.Debug("Fetched player", "username", username, "banned", banned)
	return profile, nil
}

func (s *Service) FetchLeaderboard(ctx context.Context, category domain.Category) (*domain.LeaderboardSnapshot, error) {
	entries, err := s.fetcher.FetchLeaderboardEntries(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("fetch leaderboard %q: %w", category, err)
	}

	snap, err := domain.NewLeaderboardSnapshot(category, entries, s.now())
	if err != nil {
		return nil, fmt.Errorf("fetch leaderboard %q: %w", category, err)
	}

	slog.Debug("Fetched leaderboard", "category", category, "entries", len(entries))
	return snap, nil
}

// ResolveEntry fetches the full profile of the entry at the 1-based rank.
func (s *Service) ResolveEntry(ctx context.Context, snap *domain.LeaderboardSnapshot, rank int) (*domain.PlayerProfile, error) {
	if snap == nil {
		return nil, fmt.Errorf("%w: nil leaderboard snapshot", domain.ErrInvalidArgument)
	}
	entry, err := snap.Rank(rank)
	if err != nil {
		return nil, err
	}
	return s.FetchPlayer(ctx, entry.Username)
}

func (s *Service) FetchConnectedPlayerCount(ctx context.Context) (int, error) {
	count, err := s.fetcher.FetchConnectedPlayers(ctx)
	if err != nil {
		return 0, fmt.Errorf("fetch connected players: %w", err)
	}
	return count, nil
}

// IsPlayerBanned trusts a positive ban flag outright. A negative flag is also
// what the service reports for unknown names, so existence is checked with a
// player lookup before answering false.
func (s *Service) IsPlayerBanned(ctx context.Context, username string) (bool, error) {
	banned, err := s.fetcher.FetchBanFlag(ctx, username)
	if err != nil {
		return false, fmt.Errorf("fetch ban status %q: %w", username, err)
	}
	if banned {
		return true, nil
	}

	profile, err := s.fetcher.FetchPlayerData(ctx, username)
	if err != nil {
		return false, fmt.Errorf("fetch player %q: %w", username, err)
	}
	if profile == nil {
		return false, fmt.Errorf("fetch player %q: %w", username, domain.ErrPlayerNotFound)
	}
	return false, nil
}

package ports

import (
	"context"

	"dinogen-tracker/internal/core/domain"
)

// DinogenFetcher performs exactly one remote request per call.
type DinogenFetcher interface {
	// FetchPlayerData returns nil data and no error when the player does not exist.
	FetchPlayerData(ctx context.Context, username string) (*domain.PlayerProfile, error)
	FetchBanFlag(ctx context.Context, username string) (bool, error)
	FetchLeaderboardEntries(ctx context.Context, category domain.Category) ([]domain.LeaderboardEntry, error)
	FetchConnectedPlayers(ctx context.Context) (int, error)
}

type SnapshotRepository interface {
	RecordLeaderboard(ctx context.Context, snap *domain.LeaderboardSnapshot) error
	TopScoreHistory(ctx context.Context, category domain.Category, limit int) ([]domain.TopScoreRecord, error)
	Close()
}

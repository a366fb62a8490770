package postgres

import (
	"context"
	"fmt"

	"dinogen-tracker/internal/core/domain"
	"dinogen-tracker/internal/metrics"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SnapshotStore archives the top of each leaderboard the bot has displayed.
// It is history only; live queries never read from it.
type SnapshotStore struct {
	pool *pgxpool.Pool
	q    *Queries
}

func NewSnapshotStore(ctx context.Context, connString string) (*SnapshotStore, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	store := &SnapshotStore{
		pool: pool,
		q:    NewQueries(pool),
	}

	if err := store.EnsureSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return store, nil
}

func (s *SnapshotStore) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

func (s *SnapshotStore) EnsureSchema(ctx context.Context) error {
	if err := s.q.CreateSchema(ctx); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

func (s *SnapshotStore) RecordLeaderboard(ctx context.Context, snap *domain.LeaderboardSnapshot) error {
	if snap == nil || len(snap.Entries) == 0 {
		return fmt.Errorf("record leaderboard: %w: empty snapshot", domain.ErrInvalidArgument)
	}

	top := snap.Entries[0]
	err := s.q.InsertSnapshot(ctx, InsertSnapshotParams{
		ID:          uuid.New().String(),
		Category:    string(snap.Category),
		TopUsername: top.Username,
		TopScore:    top.Score,
		FetchedAt:   snap.FetchedAt,
	})
	if err != nil {
		return fmt.Errorf("record leaderboard: %w", err)
	}

	metrics.SnapshotsArchived.Inc()
	return nil
}

func (s *SnapshotStore) TopScoreHistory(ctx context.Context, category domain.Category, limit int) ([]domain.TopScoreRecord, error) {
	rows, err := s.q.ListSnapshots(ctx, string(category), int32(limit))
	if err != nil {
		return nil, fmt.Errorf("top score history: %w", err)
	}

	result := make([]domain.TopScoreRecord, 0, len(rows))
	for _, row := range rows {
		result = append(result, domain.TopScoreRecord{
			ID:          row.ID,
			Category:    domain.Category(row.Category),
			TopUsername: row.TopUsername,
			TopScore:    row.TopScore,
			FetchedAt:   row.FetchedAt,
		})
	}
	return result, nil
}

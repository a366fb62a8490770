package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, arguments ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, arguments ...interface{}) pgx.Row
}

type Queries struct {
	db DBTX
}

func NewQueries(db DBTX) *Queries {
	return &Queries{db: db}
}

const createSnapshotsTable = `
CREATE TABLE IF NOT EXISTS leaderboard_snapshots (
	id           uuid PRIMARY KEY,
	category     text NOT NULL,
	top_username text NOT NULL,
	top_score    double precision NOT NULL,
	fetched_at   timestamptz NOT NULL
)
`

const createSnapshotsIndex = `
CREATE INDEX IF NOT EXISTS leaderboard_snapshots_category_fetched_at
	ON leaderboard_snapshots (category, fetched_at DESC);
`

func (q *Queries) CreateSchema(ctx context.Context) error {
	if _, err := q.db.Exec(ctx, createSnapshotsTable); err != nil {
		return err
	}
	_, err := q.db.Exec(ctx, createSnapshotsIndex)
	return err
}

const insertSnapshot = `
INSERT INTO leaderboard_snapshots (id, category, top_username, top_score, fetched_at)
VALUES ($1, $2, $3, $4, $5)
`

type InsertSnapshotParams struct {
	ID          string
	Category    string
	TopUsername string
	TopScore    float64
	FetchedAt   time.Time
}

func (q *Queries) InsertSnapshot(ctx context.Context, arg InsertSnapshotParams) error {
	_, err := q.db.Exec(ctx, insertSnapshot,
		arg.ID,
		arg.Category,
		arg.TopUsername,
		arg.TopScore,
		arg.FetchedAt,
	)
	return err
}

const listSnapshots = `
SELECT id::text, category, top_username, top_score, fetched_at
FROM leaderboard_snapshots
WHERE category = $1
ORDER BY fetched_at DESC
LIMIT $2
`

type SnapshotRow struct {
	ID          string
	Category    string
	TopUsername string
	TopScore    float64
	FetchedAt   time.Time
}

func (q *Queries) ListSnapshots(ctx context.Context, category string, limit int32) ([]SnapshotRow, error) {
	rows, err := q.db.Query(ctx, listSnapshots, category, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []SnapshotRow
	for rows.Next() {
		var i SnapshotRow
		if err := rows.Scan(
			&i.ID,
			&i.Category,
			&i.TopUsername,
			&i.TopScore,
			&i.FetchedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/neuryx/romanurdu/internal/db"
)

// Queries are written inline against the pool; the schema is applied on
// connect so a fresh database works without a migration step.
const schemaSQL = `
CREATE TABLE IF NOT EXISTS transcripts (
    id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
    source TEXT NOT NULL,
    roman TEXT NOT NULL,
    language TEXT NOT NULL DEFAULT '',
    duration_seconds DOUBLE PRECISION NOT NULL DEFAULT 0,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_transcripts_created_at ON transcripts (created_at);
CREATE INDEX IF NOT EXISTS idx_transcripts_language ON transcripts (language);
`

// Repository implements db.Repository using PostgreSQL via pgx.
type Repository struct {
	pool *pgxpool.Pool
}

// New connects to PostgreSQL and ensures the transcript schema exists.
func New(ctx context.Context, databaseURL string) (*Repository, error) {
	pool, err := db.NewPool(ctx, databaseURL)
	if err != nil {
		return nil, err
	}

	if _, err := pool.Exec(ctx, schemaSQL); err != nil {
		pool.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}

	return &Repository{pool: pool}, nil
}

func (r *Repository) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

func (r *Repository) Close() error {
	r.pool.Close()
	return nil
}

// PoolStats exposes connection pool statistics for the metrics
// exporter.
func (r *Repository) PoolStats() *pgxpool.Stat {
	return r.pool.Stat()
}

func (r *Repository) CreateTranscript(ctx context.Context, arg db.CreateTranscriptParams) (db.Transcript, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO transcripts (source, roman, language, duration_seconds)
		VALUES ($1, $2, $3, $4)
		RETURNING id, source, roman, language, duration_seconds, created_at
	`, arg.Source, arg.Roman, arg.Language, arg.DurationSeconds)

	return scanTranscript(row)
}

func (r *Repository) GetTranscript(ctx context.Context, id int64) (db.Transcript, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, source, roman, language, duration_seconds, created_at
		FROM transcripts
		WHERE id = $1
	`, id)

	return scanTranscript(row)
}

func (r *Repository) ListTranscripts(ctx context.Context, arg db.ListTranscriptsParams) ([]db.Transcript, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, source, roman, language, duration_seconds, created_at
		FROM transcripts
		WHERE ($1 = '' OR language = $1)
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`, arg.Language, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transcripts []db.Transcript
	for rows.Next() {
		t, err := scanTranscript(rows)
		if err != nil {
			return nil, err
		}
		transcripts = append(transcripts, t)
	}
	return transcripts, rows.Err()
}

func (r *Repository) CountTranscripts(ctx context.Context, language string) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM transcripts WHERE ($1 = '' OR language = $1)
	`, language).Scan(&count)
	return count, err
}

func (r *Repository) DeleteTranscript(ctx context.Context, id int64) (int64, error) {
	tag, err := r.pool.Exec(ctx, `
		DELETE FROM transcripts WHERE id = $1
	`, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *Repository) DeleteTranscriptsBefore(ctx context.Context, before time.Time) (int64, error) {
	tag, err := r.pool.Exec(ctx, `
		DELETE FROM transcripts WHERE created_at < $1
	`, before)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func scanTranscript(row pgx.Row) (db.Transcript, error) {
	var t db.Transcript
	err := row.Scan(&t.ID, &t.Source, &t.Roman, &t.Language, &t.DurationSeconds, &t.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return db.Transcript{}, db.ErrNoRows
	}
	if err != nil {
		return db.Transcript{}, err
	}
	return t, nil
}

package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/neuryx/romanurdu/internal/db"
	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

// Repository implements db.Repository using SQLite. This is the
// default store for local single-user installs.
type Repository struct {
	db *sql.DB
}

// New opens (or creates) the SQLite database at dbPath.
func New(ctx context.Context, dbPath string) (*Repository, error) {
	// Strip sqlite:// prefix if present
	dbPath = strings.TrimPrefix(dbPath, "sqlite://")

	isNew := false
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		isNew = true
	}

	sqliteDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening SQLite database: %w", err)
	}

	// WAL keeps list requests readable while a transcript is being saved
	if _, err := sqliteDB.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		sqliteDB.Close()
		return nil, fmt.Errorf("setting WAL mode: %w", err)
	}

	if _, err := sqliteDB.ExecContext(ctx, "PRAGMA foreign_keys=ON"); err != nil {
		sqliteDB.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	repo := &Repository{db: sqliteDB}

	if isNew {
		if _, err := sqliteDB.ExecContext(ctx, schemaSQL); err != nil {
			sqliteDB.Close()
			return nil, fmt.Errorf("initializing schema: %w", err)
		}
		slog.Info("created new SQLite database", "path", dbPath)
	}

	return repo, nil
}

func (r *Repository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func (r *Repository) Close() error {
	return r.db.Close()
}

func (r *Repository) CreateTranscript(ctx context.Context, arg db.CreateTranscriptParams) (db.Transcript, error) {
	result, err := r.db.ExecContext(ctx, `
		INSERT INTO transcripts (source, roman, language, duration_seconds)
		VALUES (?, ?, ?, ?)
	`, arg.Source, arg.Roman, arg.Language, arg.DurationSeconds)
	if err != nil {
		return db.Transcript{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return db.Transcript{}, err
	}

	return r.GetTranscript(ctx, id)
}

func (r *Repository) GetTranscript(ctx context.Context, id int64) (db.Transcript, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, source, roman, language, duration_seconds, created_at
		FROM transcripts
		WHERE id = ?
	`, id)

	return scanTranscript(row)
}

func (r *Repository) ListTranscripts(ctx context.Context, arg db.ListTranscriptsParams) ([]db.Transcript, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, source, roman, language, duration_seconds, created_at
		FROM transcripts
		WHERE (? = '' OR language = ?)
		ORDER BY created_at DESC, id DESC
		LIMIT ? OFFSET ?
	`, arg.Language, arg.Language, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanTranscripts(rows)
}

func (r *Repository) CountTranscripts(ctx context.Context, language string) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM transcripts WHERE (? = '' OR language = ?)
	`, language, language).Scan(&count)
	return count, err
}

func (r *Repository) DeleteTranscript(ctx context.Context, id int64) (int64, error) {
	result, err := r.db.ExecContext(ctx, `
		DELETE FROM transcripts WHERE id = ?
	`, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *Repository) DeleteTranscriptsBefore(ctx context.Context, before time.Time) (int64, error) {
	result, err := r.db.ExecContext(ctx, `
		DELETE FROM transcripts WHERE created_at < ?
	`, before.UTC().Format(time.RFC3339))
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// Helper functions

func scanTranscript(row *sql.Row) (db.Transcript, error) {
	var t db.Transcript
	var createdAtStr string
	err := row.Scan(&t.ID, &t.Source, &t.Roman, &t.Language, &t.DurationSeconds, &createdAtStr)
	if err == sql.ErrNoRows {
		return db.Transcript{}, db.ErrNoRows
	}
	if err != nil {
		return db.Transcript{}, err
	}
	t.CreatedAt, _ = time.Parse(time.RFC3339, createdAtStr)
	return t, nil
}

func scanTranscripts(rows *sql.Rows) ([]db.Transcript, error) {
	var transcripts []db.Transcript
	for rows.Next() {
		var t db.Transcript
		var createdAtStr string
		if err := rows.Scan(&t.ID, &t.Source, &t.Roman, &t.Language, &t.DurationSeconds, &createdAtStr); err != nil {
			return nil, err
		}
		t.CreatedAt, _ = time.Parse(time.RFC3339, createdAtStr)
		transcripts = append(transcripts, t)
	}
	return transcripts, rows.Err()
}

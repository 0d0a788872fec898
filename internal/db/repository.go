package db

import (
	"context"
	"time"
)

// Transcript is one saved transcription session: the mixed-script text
// the recognizer produced, the romanization served to the frontend, the
// recognizer's language hint, and the clip length.
type Transcript struct {
	ID              int64
	Source          string
	Roman           string
	Language        string
	DurationSeconds float64
	CreatedAt       time.Time
}

type CreateTranscriptParams struct {
	Source          string
	Roman           string
	Language        string
	DurationSeconds float64
}

type ListTranscriptsParams struct {
	Language string // empty matches all languages
	Limit    int32
	Offset   int32
}

// Repository defines the interface for transcript persistence.
type Repository interface {
	CreateTranscript(ctx context.Context, arg CreateTranscriptParams) (Transcript, error)
	GetTranscript(ctx context.Context, id int64) (Transcript, error)
	ListTranscripts(ctx context.Context, arg ListTranscriptsParams) ([]Transcript, error)
	CountTranscripts(ctx context.Context, language string) (int64, error)
	DeleteTranscript(ctx context.Context, id int64) (int64, error)

	// Retention
	DeleteTranscriptsBefore(ctx context.Context, before time.Time) (int64, error)

	// Lifecycle
	Ping(ctx context.Context) error
	Close() error
}

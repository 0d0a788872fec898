package web

import (
	"log/slog"
	"net/http"

	"github.com/neuryx/romanurdu/internal/db"
	"github.com/neuryx/romanurdu/internal/web/handlers"
	"github.com/neuryx/romanurdu/internal/web/middleware"
)

// maxTextBody caps romanize and transcript payloads. A minute of speech is
// a few hundred bytes of Urdu; 64 KiB leaves plenty of headroom.
const maxTextBody = 64 << 10

type Router struct {
	repo   db.Repository
	log    *slog.Logger
	apiKey string
}

func NewRouter(repo db.Repository, log *slog.Logger, apiKey string) *Router {
	return &Router{
		repo:   repo,
		log:    log,
		apiKey: apiKey,
	}
}

func (r *Router) Handler() http.Handler {
	mux := http.NewServeMux()

	romanizeHandler := handlers.NewRomanizeHandler(r.log)
	transcriptHandler := handlers.NewTranscriptHandler(r.repo, r.log)

	rateLimiter := middleware.NewRateLimiter(60, 60)

	mux.Handle("POST /api/v1/romanize",
		middleware.Chain(
			http.HandlerFunc(romanizeHandler.Romanize),
			middleware.PrometheusMetrics(),
			middleware.RequestLogger(r.log),
			middleware.RateLimit(rateLimiter),
			middleware.MaxBodyBytes(maxTextBody),
		),
	)

	mux.Handle("POST /api/v1/transcripts",
		middleware.Chain(
			http.HandlerFunc(transcriptHandler.Create),
			middleware.PrometheusMetrics(),
			middleware.RequestLogger(r.log),
			middleware.RateLimit(rateLimiter),
			middleware.MaxBodyBytes(maxTextBody),
		),
	)

	mux.Handle("GET /api/v1/transcripts",
		middleware.Chain(
			http.HandlerFunc(transcriptHandler.List),
			middleware.PrometheusMetrics(),
			middleware.RequestLogger(r.log),
			middleware.CacheControl("public, s-maxage=5, max-age=0"),
		),
	)

	mux.Handle("GET /api/v1/transcripts/{id}",
		middleware.Chain(
			http.HandlerFunc(transcriptHandler.Get),
			middleware.PrometheusMetrics(),
			middleware.RequestLogger(r.log),
			middleware.CacheControl("public, s-maxage=5, max-age=0"),
		),
	)

	mux.Handle("DELETE /api/v1/transcripts/{id}",
		middleware.Chain(
			http.HandlerFunc(transcriptHandler.Delete),
			middleware.PrometheusMetrics(),
			middleware.RequestLogger(r.log),
			middleware.APIKeyAuth(r.apiKey),
			middleware.RateLimit(rateLimiter),
		),
	)

	return middleware.CORS(mux)
}

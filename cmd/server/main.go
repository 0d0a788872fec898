package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/neuryx/romanurdu/internal/db"
	"github.com/neuryx/romanurdu/internal/db/postgres"
	"github.com/neuryx/romanurdu/internal/db/sqlite"
	"github.com/neuryx/romanurdu/internal/envsetup"
	"github.com/neuryx/romanurdu/internal/health"
	"github.com/neuryx/romanurdu/internal/logger"
	"github.com/neuryx/romanurdu/internal/metrics"
	"github.com/neuryx/romanurdu/internal/web"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
	"golang.org/x/sync/errgroup"
)

func main() {
	if err := mainE(); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
	slog.Info("exiting without error")
}

func mainE() error {
	// First interactive run: no .env and no environment config.
	if envsetup.NeedsSetup() && os.Getenv("DATABASE_URL") == "" {
		done, err := envsetup.Run()
		if err != nil {
			return fmt.Errorf("running setup wizard: %w", err)
		}
		if !done {
			return errors.New("setup aborted")
		}
	}

	_ = godotenv.Load()

	fs_ := ff.NewFlagSet("romanurdu-server")

	var (
		port          = fs_.Int64Long("api-port", 8080, "HTTP API port")
		opsPort       = fs_.Int64Long("ops-port", 9090, "Health and metrics port")
		databaseURL   = fs_.StringLong("database-url", "", "SQLite path or postgres:// connection URL")
		adminAPIKey   = fs_.StringLong("admin-api-key", "", "API key required to delete transcripts")
		retentionDays = fs_.Int64Long("retention-days", 30, "Purge transcripts older than this many days (0 keeps forever)")
	)

	if err := ff.Parse(fs_, os.Args[1:], ff.WithEnvVars()); err != nil {
		fmt.Printf("%s\n", ffhelp.Flags(fs_))
		return fmt.Errorf("parsing flags: %w", err)
	}

	if *databaseURL == "" {
		return errors.New("database-url is required")
	}

	log := logger.New()

	ctx, cancel := context.WithCancelCause(context.Background())

	var repo db.Repository
	if strings.HasPrefix(*databaseURL, "postgres://") || strings.HasPrefix(*databaseURL, "postgresql://") {
		pg, err := postgres.New(ctx, *databaseURL)
		if err != nil {
			return fmt.Errorf("creating PostgreSQL connection: %w", err)
		}
		repo = pg
		log.InfoContext(ctx, "connected to PostgreSQL database")

		// Periodically export pgxpool stats as Prometheus gauges
		go func() {
			ticker := time.NewTicker(15 * time.Second)
			defer ticker.Stop()
			for {
				select {
				case <-ticker.C:
					s := pg.PoolStats()
					metrics.DBPoolTotalConns.Set(float64(s.TotalConns()))
					metrics.DBPoolIdleConns.Set(float64(s.IdleConns()))
					metrics.DBPoolAcquiredConns.Set(float64(s.AcquiredConns()))
					metrics.DBPoolMaxConns.Set(float64(s.MaxConns()))
				case <-ctx.Done():
					return
				}
			}
		}()
	} else {
		sq, err := sqlite.New(ctx, *databaseURL)
		if err != nil {
			return fmt.Errorf("opening SQLite database: %w", err)
		}
		repo = sq
	}
	defer repo.Close()

	if *retentionDays > 0 {
		go runRetention(ctx, repo, log, int(*retentionDays))
	}

	apiServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", *port),
		Handler:           web.NewRouter(repo, log, *adminAPIKey).Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	opsServer := health.New(int(*opsPort), repo.Ping)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		log.InfoContext(ctx, "received signal, shutting down gracefully", "signal", sig)
		cancel(errors.New("signal received"))

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := apiServer.Shutdown(shutdownCtx); err != nil {
			log.ErrorContext(ctx, "api server shutdown error", "error", err)
		}
		if err := opsServer.Shutdown(shutdownCtx); err != nil {
			log.ErrorContext(ctx, "ops server shutdown error", "error", err)
		}
	}()

	var eg errgroup.Group
	eg.Go(func() error {
		log.InfoContext(ctx, "starting api server", "port", *port)
		if err := apiServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("api server: %w", err)
		}
		return nil
	})
	eg.Go(func() error {
		log.InfoContext(ctx, "starting ops server", "port", *opsPort)
		return opsServer.Start()
	})

	return eg.Wait()
}

// runRetention purges transcripts past the retention window, once at
// startup and then daily.
func runRetention(ctx context.Context, repo db.Repository, log *slog.Logger, days int) {
	purge := func() {
		cutoff := time.Now().AddDate(0, 0, -days)
		n, err := repo.DeleteTranscriptsBefore(ctx, cutoff)
		if err != nil {
			log.ErrorContext(ctx, "purging old transcripts", "error", err)
			return
		}
		if n > 0 {
			metrics.TranscriptsPurged.Add(float64(n))
			log.InfoContext(ctx, "purged old transcripts", "count", n, "cutoff", cutoff)
		}
	}

	purge()

	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			purge()
		case <-ctx.Done():
			return
		}
	}
}

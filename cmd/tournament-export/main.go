package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"tournamentExport/internal/config"
	"tournamentExport/internal/exporter"
	"tournamentExport/internal/http-server/handlers/band/createBands"
	"tournamentExport/internal/http-server/handlers/band/getBands"
	"tournamentExport/internal/http-server/handlers/export/previewExport"
	"tournamentExport/internal/http-server/handlers/export/runExport"
	"tournamentExport/internal/http-server/middleware/mwlogger"
	"tournamentExport/internal/lib/api/response"
	"tournamentExport/internal/lib/logger"
	"tournamentExport/internal/lib/logger/sl"
	"tournamentExport/internal/lib/tracing"
	"tournamentExport/internal/storage"
	"tournamentExport/internal/storage/postgres"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.MustLoad()

	log := logger.Setup(cfg.Env, os.Stdout)

	log.Info("Starting tournament export", slog.String("env", cfg.Env), slog.String("report", cfg.Report.Kind))
	log.Debug("Debug messages are enabled")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.Tracing.Enabled {
		shutdownTracing, err := tracing.Init(cfg.Tracing.ServiceName, cfg.Tracing.Output)
		if err != nil {
			log.Error("failed to init tracing", sl.Err(err))
			os.Exit(1)
		}
		defer func() {
			if err := shutdownTracing(context.Background()); err != nil {
				log.Error("failed to flush traces", sl.Err(err))
			}
		}()
	}

	if cfg.Database.MigrateOnStart {
		version, err := postgres.Migrate(cfg.Database.URL())
		if err != nil {
			log.Error("failed to migrate database", sl.Err(err))
			os.Exit(1)
		}
		log.Info("database migrated", slog.Uint64("version", uint64(version)))
	}

	db, err := postgres.InitDB(&cfg.Database)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	sink, err := storage.NewReportSink(ctx, cfg.Report)
	if err != nil {
		log.Error("failed to init report sink", sl.Err(err))
		_ = db.Close()
		os.Exit(1)
	}

	svc := exporter.New(log, db, sink, cfg.Report.Layout.Placement())

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, response.OK())
	})

	router.Route("/api", func(r chi.Router) {
		r.Post("/export", runExport.New(log, svc))
		r.Get("/export/preview", previewExport.New(log, svc))
		r.Get("/bands", getBands.New(log, svc))
		r.Post("/bands", createBands.New(log, db))
	})

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	if cfg.Export.Interval > 0 {
		log.Info("periodic export enabled", slog.Duration("interval", cfg.Export.Interval))

		go func() {
			ticker := time.NewTicker(cfg.Export.Interval)
			defer ticker.Stop()

			for {
				select {
				case <-ticker.C:
					// Run logs its own failures.
					_, _ = svc.Run(ctx)
				case <-ctx.Done():
					return
				}
			}
		}()
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err = srv.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")

	if err = db.Close(); err != nil {
		log.Error("failed to close postgres connection", sl.Err(err))
	}

	log.Info("postgres connection closed")
}

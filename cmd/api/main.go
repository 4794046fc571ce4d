// Package main is the entry point for the Pocket Ranger API server.
// Its sole responsibility is wiring dependencies together and starting the server.
// No business logic belongs here.
package main

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/factor317/Pocket-Ranger-sub000/internal/config"
	"github.com/factor317/Pocket-Ranger-sub000/internal/corpus"
	"github.com/factor317/Pocket-Ranger-sub000/internal/handler"
	"github.com/factor317/Pocket-Ranger-sub000/internal/hint"
	"github.com/factor317/Pocket-Ranger-sub000/internal/middleware"
	"github.com/factor317/Pocket-Ranger-sub000/internal/resolver"
	"github.com/factor317/Pocket-Ranger-sub000/internal/service"
)

// maxBodyBytes caps request bodies. The only POST endpoint carries short
// free text, so 1 MiB is generous.
const maxBodyBytes = 1 << 20

func main() {
	// --- Config -----------------------------------------------------------
	// A local .env is a development convenience; absence is not an error.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		// Use the default logger before the real one is configured.
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	// log/slog is the stdlib structured logger introduced in Go 1.21.
	// JSON handler writes machine-readable output suitable for log aggregators.
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// --- Corpus -----------------------------------------------------------
	// The corpus loads exactly once; a broken corpus prevents serving
	// rather than degrading to an empty one.
	var corpusFS fs.FS = corpus.Embedded()
	if cfg.CorpusDir != "" {
		corpusFS = os.DirFS(cfg.CorpusDir)
	}
	store, err := corpus.Load(corpusFS)
	if err != nil {
		slog.Error("failed to load adventure corpus", "error", err)
		os.Exit(1)
	}
	slog.Info("adventure corpus loaded", "adventures", store.Len(), "embedded", cfg.CorpusDir == "")

	// --- Hint provider ----------------------------------------------------
	var hints hint.Provider
	if cfg.HintURL != "" {
		client := hint.NewClient(cfg.HintURL, cfg.HintTimeout)
		if !client.Available(context.Background()) {
			// Advisory dependency: log and continue, never block startup.
			slog.Warn("hint provider not reachable at startup", "url", cfg.HintURL)
		}
		hints = client
	}

	// --- Services and handlers -------------------------------------------
	res := resolver.New(store, resolver.DefaultRules)
	planner := service.NewPlannerService(store, res, hints, logger)
	srv := handler.NewServer(planner, logger)

	// --- Router -----------------------------------------------------------
	// Middleware is applied in order: RequestID → RealIP → Logger → Recoverer
	// → CORS → body size cap.
	// RequestID generates a unique trace ID per request.
	// RealIP sets r.RemoteAddr from X-Forwarded-For / X-Real-IP (safe behind a proxy).
	// SlogLogger writes one structured JSON log line per request.
	// Recoverer catches panics and returns HTTP 500 instead of crashing.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(maxBodyBytes))

	srv.Register(r)

	// --- HTTP Server ------------------------------------------------------
	// Explicit timeouts prevent slowloris and resource exhaustion attacks.
	httpSrv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown: wait for OS signal, then give in-flight requests
	// up to 15 seconds to complete before forcefully closing.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "addr", httpSrv.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

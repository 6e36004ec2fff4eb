// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package main is the entry point for the DraftDeck API server.
// It loads configuration, connects to services, sets up routing, and starts
// the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"draftdeck/internal/ai"
	"draftdeck/internal/cache"
	"draftdeck/internal/config"
	"draftdeck/internal/database"
	"draftdeck/internal/generate"
	"draftdeck/internal/handlers"
	"draftdeck/internal/images"
	"draftdeck/internal/middleware"
	"draftdeck/internal/router"
	"draftdeck/internal/session"
	"draftdeck/internal/storage"
	"draftdeck/internal/store"
)

func main() {
	// Structured logger for the whole process.
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
	)

	// Connect to PostgreSQL.
	db, err := database.Connect(cfg.DSN())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Run pending migrations.
	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Seed development data (no-op if data already exists).
	if cfg.IsDev() {
		if err := database.Seed(db); err != nil {
			slog.Error("failed to seed database", "error", err)
			os.Exit(1)
		}
	}

	// Connect to Valkey (Redis-compatible cache + session store).
	valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
	if err != nil {
		slog.Error("failed to connect to valkey", "error", err)
		os.Exit(1)
	}
	defer valkeyClient.Close()

	// Session store backed by Valkey. Outside development, session
	// cookies are marked Secure (HTTPS-only).
	sessionStore := session.NewStore(valkeyClient, !cfg.IsDev())

	// Data stores.
	userStore := store.NewUserStore(db)
	onboardingStore := store.NewOnboardingStore(db)
	uploadStore := store.NewUploadStore(db)
	profileStore := store.NewProfileStore(db)
	ledgerStore := store.NewLedgerStore(db)
	contentStore := store.NewContentStore(db)
	guidelineStore := store.NewGuidelineStore(db)

	// S3-compatible object storage for raw writing-sample files
	// (optional; uploads keep only extracted text without it).
	storageClient, err := storage.New(cfg.S3Endpoint, cfg.S3Region, cfg.S3AccessKey, cfg.S3SecretKey, cfg.S3Bucket)
	if err != nil {
		slog.Error("failed to initialize S3 storage", "error", err)
		os.Exit(1)
	}
	if storageClient != nil {
		slog.Info("s3 storage connected", "endpoint", cfg.S3Endpoint, "bucket", cfg.S3Bucket)
	} else {
		slog.Warn("s3 storage not configured, original upload files will not be retained")
	}

	// AI provider registry with all configured providers.
	aiRegistry := ai.NewRegistry(cfg.AIProvider, map[string]ai.ProviderConfig{
		"openai":  {APIKey: cfg.OpenAIKey, Model: cfg.OpenAIModel, BaseURL: cfg.OpenAIBaseURL},
		"gemini":  {APIKey: cfg.GeminiKey, Model: cfg.GeminiModel, BaseURL: cfg.GeminiBaseURL},
		"claude":  {APIKey: cfg.ClaudeKey, Model: cfg.ClaudeModel, BaseURL: cfg.ClaudeBaseURL},
		"mistral": {APIKey: cfg.MistralKey, Model: cfg.MistralModel, BaseURL: cfg.MistralBaseURL},
	})

	slog.Info("ai providers initialized",
		"active", aiRegistry.ActiveName(),
		"available", aiRegistry.Available(),
	)

	// Draft generation service on top of the registry.
	generator := generate.NewService(aiRegistry)

	// Stock photo search with a Valkey-backed result cache.
	imageCache := cache.NewSearchCache(valkeyClient, cache.DefaultSearchTTL)
	imageService := images.NewService(cfg.PexelsKey, cfg.UnsplashKey, imageCache)

	// Handler groups with their dependencies.
	h := router.Handlers{
		Auth:       handlers.NewAuth(userStore, sessionStore),
		Onboarding: handlers.NewOnboarding(userStore, onboardingStore, uploadStore, profileStore, aiRegistry, sessionStore),
		Uploads:    handlers.NewUploads(uploadStore, onboardingStore, profileStore, aiRegistry, storageClient),
		Style:      handlers.NewStyle(uploadStore, onboardingStore, profileStore, aiRegistry),
		Credits:    handlers.NewCredits(ledgerStore),
		Content:    handlers.NewContent(userStore, contentStore, profileStore, generator, imageService),
		Calendar:   handlers.NewCalendar(userStore, contentStore, profileStore, guidelineStore, generator),
		Pillars:    handlers.NewPillars(guidelineStore),
		Images:     handlers.NewImages(imageService),
	}

	// Per-IP rate limiting across the whole API.
	limiter := middleware.NewRateLimiter(120, time.Minute)
	defer limiter.Stop()

	// Chi router with all middleware and routes.
	r := router.New(sessionStore, limiter, h)

	// WriteTimeout must accommodate generation endpoints that wait on
	// LLM responses; auto-populate makes several calls in sequence.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 300 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	// Give active requests up to 30 seconds to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}

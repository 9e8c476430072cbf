package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"newslens/app/analysis"
	"newslens/app/api"
	"newslens/app/cfg"
	"newslens/app/database"
	"newslens/app/news"
	"newslens/app/nlp"
	"newslens/app/topics"
)

func main() {
	appCfg, err := cfg.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if appCfg == nil {
		// Help was shown, exit gracefully
		return
	}

	logLevel := slog.LevelInfo
	if appCfg.Debug {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})))

	slog.Info("Starting NewsLens server", "version", appCfg.Version)

	// Database connection and schema
	db, err := database.NewConnection(appCfg.DBPath)
	if err != nil {
		slog.Error("Failed to open database", "path", appCfg.DBPath, "error", err)
		os.Exit(1)
	}
	defer db.Close()

	migrationVersion, dirty, err := database.RunMigrations(db)
	if err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database ready", "path", appCfg.DBPath, "migration_version", migrationVersion, "dirty", dirty)

	userRepo := database.NewUserRepository(db)

	// Curated topic presets
	topicCache := topics.NewCache(appCfg.TopicsFile)
	if err := topicCache.Run(); err != nil {
		slog.Error("Failed to load topics", "file", appCfg.TopicsFile, "error", err)
		os.Exit(1)
	}
	slog.Info("Topics loaded", "count", topicCache.GetTopicCount())

	// Model inference clients, constructed once and shared read-only
	// across requests for the lifetime of the process.
	sentimentClient := nlp.NewSentimentClient(appCfg.SentimentURL, appCfg.UserAgent)

	var recognizer nlp.EntityRecognizer
	if appCfg.NERURL == "" {
		slog.Warn("NER endpoint not configured, entity recognition disabled")
	} else {
		nerClient := nlp.NewNERClient(appCfg.NERURL, appCfg.UserAgent)
		probeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		err := nerClient.Ping(probeCtx)
		cancel()
		if err != nil {
			slog.Warn("NER service unavailable, entity recognition disabled", "error", err)
		} else {
			recognizer = nerClient
			slog.Info("NER service available", "endpoint", appCfg.NERURL)
		}
	}

	analyzer := analysis.NewAnalyzer(sentimentClient, recognizer)
	aggregator := analysis.NewAggregator(analyzer)

	newsClient := news.NewClient(appCfg.NewsAPIURL, appCfg.NewsAPIKey, appCfg.UserAgent)

	// Initialize HTTP server
	apiHandler := api.NewHandler(userRepo, newsClient, aggregator, topicCache)
	server := api.NewServer(apiHandler, appCfg.SessionSecret)

	httpServer := &http.Server{
		Addr:         ":" + appCfg.Port,
		Handler:      server,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start HTTP server in a goroutine
	serverErrChan := make(chan error, 1)
	go func() {
		slog.Info("Starting HTTP server", "port", appCfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	// Wait for interrupt signal or server error
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	slog.Info("NewsLens server started")

	select {
	case sig := <-sigChan:
		slog.Info("Received signal", "signal", sig.String())
	case err := <-serverErrChan:
		slog.Error("Server error", "error", err)
	}

	// Graceful shutdown
	slog.Info("Shutting down server gracefully")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	} else {
		slog.Info("HTTP server stopped")
	}

	slog.Info("NewsLens server shutdown complete")
}

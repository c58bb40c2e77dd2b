package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pep299/just-news/internal/application"
	"github.com/pep299/just-news/internal/config"
	"github.com/pep299/just-news/internal/logger"
)

// Set via -ldflags at build time
var (
	Version   = "dev"
	Commit    = "none"
	BuildTime = "unknown"
)

func main() {
	showHelp := flag.Bool("help", false, "Show help information")
	showVersion := flag.Bool("version", false, "Show version information")
	flag.Parse()

	if *showHelp {
		printHelp(os.Stdout)
		return
	}

	if *showVersion {
		fmt.Printf("just-news %s (commit %s, built %s)\n", Version, Commit, BuildTime)
		return
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(os.Stdout, cfg.LogLevel, cfg.LogFormat)

	app, err := application.New(cfg, log, Version)
	if err != nil {
		log.WithError(err).Fatal("Failed to create application")
	}

	httpServer := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      app.Handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 90 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Start scheduled digests
	scheduler, err := app.Scheduler(ctx)
	if err != nil {
		log.WithError(err).Fatal("Failed to schedule digest")
	}
	if scheduler != nil {
		scheduler.Start()
		log.WithField("schedule", cfg.DigestSchedule).WithField("keywords", cfg.DigestKeywords).Info("Digest scheduler started")
	}

	// Setup graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Start server
	go func() {
		log.WithField("addr", cfg.Addr()).WithField("provider", cfg.SearchProvider).Info("Starting server")
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("Server failed to start")
		}
	}()

	// Wait for shutdown signal
	<-sigChan
	log.Info("Shutting down server...")

	// Cancel background tasks and wait for a running digest
	cancel()
	if scheduler != nil {
		<-scheduler.Stop().Done()
	}

	// Shutdown HTTP server
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Server shutdown error")
	}

	log.Info("Server stopped")
}

func printHelp(w io.Writer) {
	fmt.Fprintln(w, "just-news - keyword news search powered by Gemini with Google Search grounding")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  server [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -help       Show help information")
	fmt.Fprintln(w, "  -version    Show version information")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  SEARCH_PROVIDER       gemini (default), newsapi or googlenews")
	fmt.Fprintln(w, "  GEMINI_API_KEY        Gemini API key (falls back to GOOGLE_API_KEY)")
	fmt.Fprintln(w, "  GEMINI_MODEL          Gemini model (default gemini-3-flash-preview)")
	fmt.Fprintln(w, "  NEWSAPI_KEY           NewsAPI key, required for the newsapi provider")
	fmt.Fprintln(w, "  PORT, HOST            Listen address (default 0.0.0.0:8080)")
	fmt.Fprintln(w, "  DIGEST_KEYWORDS       Comma-separated keywords posted to Slack")
	fmt.Fprintln(w, "  DIGEST_SCHEDULE       Cron schedule for digests (default \"0 8 * * *\")")
	fmt.Fprintln(w, "  DIGEST_TRIGGER_TOKEN  Bearer token enabling POST /api/v1/digest")
	fmt.Fprintln(w, "  SLACK_BOT_TOKEN       Slack bot token for digests")
	fmt.Fprintln(w, "  SLACK_CHANNEL         Slack channel for digests (default #just-news)")
	fmt.Fprintln(w, "  LOG_LEVEL             debug, info, warn or error")
	fmt.Fprintln(w, "  LOG_FORMAT            text or json")
}

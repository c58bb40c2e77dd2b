package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/pep299/just-news/internal/application"
	"github.com/pep299/just-news/internal/config"
	"github.com/pep299/just-news/internal/logger"
)

// Version is set via -ldflags at build time
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:   "justnews",
	Short: "Search the latest news for a keyword",
	Long: `justnews asks Gemini with Google Search grounding for the latest news on a
keyword, and prints a short summary with the cited articles.

Configuration is read from the environment and an optional .env file.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(digestCmd)
}

// loadApp loads configuration and wires the application. Logs go to stderr
// so command output stays clean.
func loadApp() (*application.Application, *logrus.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("loading configuration: %w", err)
	}

	log := logger.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)

	app, err := application.New(cfg, log, Version)
	if err != nil {
		return nil, nil, fmt.Errorf("creating application: %w", err)
	}
	return app, log, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

package application

import (
	"context"
	"fmt"
	"net/http"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/pep299/just-news/internal/config"
	"github.com/pep299/just-news/internal/gemini"
	"github.com/pep299/just-news/internal/handlers"
	"github.com/pep299/just-news/internal/newsapi"
	"github.com/pep299/just-news/internal/repository"
	"github.com/pep299/just-news/internal/rss"
	"github.com/pep299/just-news/internal/service"
	"github.com/pep299/just-news/internal/web"
)

// Application represents the application with all business logic components
type Application struct {
	Config  *config.Config
	News    *service.News
	Digest  *service.Digest // nil when no digest keywords are configured
	Handler http.Handler
	log     *logrus.Logger
}

// New wires the configured search provider, services and HTTP routes
func New(cfg *config.Config, log *logrus.Logger, version string) (*Application, error) {
	newsRepo, err := newNewsRepository(cfg)
	if err != nil {
		return nil, err
	}

	renderer, err := web.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("creating renderer: %w", err)
	}

	newsService := service.NewNews(newsRepo, log.WithField("provider", cfg.SearchProvider))
	server := handlers.NewServer(newsService, renderer, log, version)

	app := &Application{
		Config: cfg,
		News:   newsService,
		log:    log,
	}

	if cfg.DigestEnabled() {
		slackRepo := repository.NewSlackRepository(cfg.SlackBotToken, cfg.SlackChannel, cfg.SlackBaseURL)
		app.Digest = service.NewDigest(newsService, slackRepo, cfg.DigestKeywords, log.WithField("component", "digest"))
		server.WithDigest(app.Digest, cfg.DigestTriggerToken)
	}

	app.Handler = server.SetupRoutes()
	return app, nil
}

// newNewsRepository selects the news backend named by cfg.SearchProvider
func newNewsRepository(cfg *config.Config) (repository.NewsRepository, error) {
	switch cfg.SearchProvider {
	case config.ProviderGemini:
		return repository.NewGeminiRepository(gemini.NewClient(cfg.GeminiAPIKey, cfg.GeminiModel, cfg.GeminiBaseURL)), nil
	case config.ProviderNewsAPI:
		return repository.NewNewsAPIRepository(newsapi.NewClient(cfg.NewsAPIKey, cfg.NewsAPIBaseURL)), nil
	case config.ProviderGoogleNews:
		return repository.NewGoogleNewsRepository(rss.NewClient(cfg.GoogleNewsBaseURL)), nil
	default:
		return nil, fmt.Errorf("unknown search provider %q", cfg.SearchProvider)
	}
}

// Scheduler returns a cron scheduler running the digest on the configured
// schedule, or nil when digests are disabled. The caller starts and stops it.
func (a *Application) Scheduler(ctx context.Context) (*cron.Cron, error) {
	if a.Digest == nil {
		return nil, nil
	}
	return service.NewDigestScheduler(ctx, a.Digest, a.Config.DigestSchedule, a.log)
}

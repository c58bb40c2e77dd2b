package cloudfunctions

import (
	"log"
	"net/http"

	"github.com/GoogleCloudPlatform/functions-framework-go/funcframework"
	"github.com/GoogleCloudPlatform/functions-framework-go/functions"

	"github.com/pep299/just-news/internal/application"
	"github.com/pep299/just-news/internal/config"
	"github.com/pep299/just-news/internal/logger"
)

// Version reported by the health endpoint
var Version = "dev"

func init() {
	functions.HTTP("JustNews", JustNews)
}

// JustNews serves the search UI and JSON API as a Cloud Function
func JustNews(w http.ResponseWriter, r *http.Request) {
	cfg, err := config.Load()
	if err != nil {
		log.New(funcframework.LogWriter(r.Context()), "", 0).Printf("Failed to load configuration: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	app, err := application.New(cfg, logger.New(funcframework.LogWriter(r.Context()), cfg.LogLevel, cfg.LogFormat), Version)
	if err != nil {
		log.New(funcframework.LogWriter(r.Context()), "", 0).Printf("Failed to create application: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	app.Handler.ServeHTTP(w, r)
}

package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/pep299/just-news/internal/response"
	"github.com/pep299/just-news/internal/service"
	"github.com/pep299/just-news/internal/web"
)

// indexHandler renders the empty search page
func (s *Server) indexHandler(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, web.Page{})
}

// searchPageHandler runs a search and renders the results, or the error box on failure
func (s *Server) searchPageHandler(w http.ResponseWriter, r *http.Request) {
	keyword := strings.TrimSpace(r.URL.Query().Get("q"))

	news, err := s.searcher.Search(r.Context(), keyword)
	if errors.Is(err, service.ErrEmptyKeyword) {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	if err != nil {
		s.render(w, r, http.StatusBadGateway, web.Page{Keyword: keyword, Error: service.FailureMessage})
		return
	}

	s.render(w, r, http.StatusOK, web.Page{Keyword: keyword, News: news})
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, page web.Page) {
	page.Year = s.now().Year()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := s.renderer.Render(w, page); err != nil {
		requestLogger(r, s.log).WithError(err).Error("Error rendering page")
	}
}

// healthHandler provides health check endpoint
func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	response.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "ok",
		"timestamp": s.now().Unix(),
		"version":   s.version,
	})
}

// searchAPIHandler returns the search result as JSON
func (s *Server) searchAPIHandler(w http.ResponseWriter, r *http.Request) {
	news, err := s.searcher.Search(r.Context(), r.URL.Query().Get("q"))
	if errors.Is(err, service.ErrEmptyKeyword) {
		response.WriteBadRequest(w, err.Error())
		return
	}
	if err != nil {
		response.WriteBadGateway(w, service.FailureMessage)
		return
	}

	response.WriteSuccess(w, news)
}

// digestHandler runs one digest pass and reports per-keyword failures
func (s *Server) digestHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.digest.Run(r.Context()); err != nil {
		requestLogger(r, s.log).WithError(err).Warn("Triggered digest finished with errors")
		response.WriteError(w, http.StatusBadGateway, err.Error())
		return
	}

	response.WriteJSON(w, http.StatusOK, response.Response{
		Status:  "success",
		Message: "digest sent",
	})
}

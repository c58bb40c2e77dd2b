package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/pep299/just-news/internal/model"
	"github.com/pep299/just-news/internal/repository"
)

// NoSummary replaces an empty summary from the provider
const NoSummary = "No summary available."

// FailureMessage is the only failure text shown to users
const FailureMessage = "Failed to fetch news. Please check your network or try again."

var (
	ErrEmptyKeyword = errors.New("keyword is required")
	ErrSearchFailed = errors.New("news search failed")
)

// Searcher runs a keyword search
type Searcher interface {
	Search(ctx context.Context, keyword string) (*model.NewsResponse, error)
}

type News struct {
	repo repository.NewsRepository
	log  logrus.FieldLogger
}

func NewNews(repo repository.NewsRepository, log logrus.FieldLogger) *News {
	return &News{
		repo: repo,
		log:  log,
	}
}

// Search trims keyword, fetches news for it and counts keyword occurrences in
// the headlines. Blank keywords fail with ErrEmptyKeyword before any outbound
// call; provider failures are wrapped in ErrSearchFailed.
func (n *News) Search(ctx context.Context, keyword string) (*model.NewsResponse, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil, ErrEmptyKeyword
	}

	logger := n.log.WithField("keyword", keyword)
	startTime := time.Now()

	logger.Info("News search started")

	result, err := n.repo.FetchNews(ctx, keyword)
	if err != nil {
		logger.WithError(err).WithField("duration_ms", time.Since(startTime).Milliseconds()).Error("News search failed")
		return nil, fmt.Errorf("%w: %w", ErrSearchFailed, err)
	}

	summary := result.Summary
	if summary == "" {
		summary = NoSummary
	}

	articles := result.Articles
	if articles == nil {
		articles = []model.Article{}
	}

	resp := &model.NewsResponse{
		Summary:          summary,
		Articles:         articles,
		KeywordFrequency: KeywordFrequency(articles, keyword),
	}

	logger.WithFields(logrus.Fields{
		"articles":          len(resp.Articles),
		"keyword_frequency": resp.KeywordFrequency,
		"duration_ms":       time.Since(startTime).Milliseconds(),
	}).Info("News search completed")

	return resp, nil
}

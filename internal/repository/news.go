package repository

import (
	"context"

	"github.com/pep299/just-news/internal/model"
)

// Defaults for citation fields the upstream left empty
const (
	UntitledArticle = "Untitled Article"
	MissingURL      = "#"
	UnknownSource   = "News Source"
)

// Result is what a news provider returned for one keyword
type Result struct {
	Summary  string
	Articles []model.Article
}

type NewsRepository interface {
	FetchNews(ctx context.Context, keyword string) (*Result, error)
}

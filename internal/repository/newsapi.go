package repository

import (
	"context"

	"github.com/pep299/just-news/internal/model"
	"github.com/pep299/just-news/internal/newsapi"
)

type newsAPIRepository struct {
	client *newsapi.Client
}

// NewNewsAPIRepository serves headlines from NewsAPI. It has no summary of its own.
func NewNewsAPIRepository(client *newsapi.Client) NewsRepository {
	return &newsAPIRepository{
		client: client,
	}
}

func (n *newsAPIRepository) FetchNews(ctx context.Context, keyword string) (*Result, error) {
	resp, err := n.client.Everything(ctx, keyword)
	if err != nil {
		return nil, err
	}

	return &Result{Articles: articlesFromNewsAPI(resp.Articles)}, nil
}

func articlesFromNewsAPI(items []newsapi.Article) []model.Article {
	articles := make([]model.Article, 0, len(items))
	for _, item := range items {
		article := model.Article{
			Title:  item.Title,
			URL:    item.URL,
			Source: item.Source.Name,
		}
		if article.Title == "" {
			article.Title = UntitledArticle
		}
		if article.URL == "" {
			article.URL = MissingURL
		}
		if article.Source == "" {
			article.Source = UnknownSource
		}
		articles = append(articles, article)
	}
	return articles
}

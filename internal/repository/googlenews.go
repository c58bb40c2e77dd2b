package repository

import (
	"context"

	"github.com/pep299/just-news/internal/model"
	"github.com/pep299/just-news/internal/rss"
)

type googleNewsRepository struct {
	client *rss.Client
}

// NewGoogleNewsRepository serves headlines from the Google News RSS search feed.
// Like NewsAPI it has no summary of its own.
func NewGoogleNewsRepository(client *rss.Client) NewsRepository {
	return &googleNewsRepository{
		client: client,
	}
}

func (g *googleNewsRepository) FetchNews(ctx context.Context, keyword string) (*Result, error) {
	feed, err := g.client.SearchNews(ctx, keyword)
	if err != nil {
		return nil, err
	}

	return &Result{Articles: articlesFromFeed(feed.Items)}, nil
}

// articlesFromFeed prefers the <source> element and falls back to the title suffix
func articlesFromFeed(items []rss.Item) []model.Article {
	articles := make([]model.Article, 0, len(items))
	for _, item := range items {
		article := model.Article{
			Title:  item.Title,
			URL:    item.Link,
			Source: item.Source.Name,
		}
		if article.Source == "" {
			article.Source = SourceFromTitle(item.Title)
		}
		if article.Title == "" {
			article.Title = UntitledArticle
		}
		if article.URL == "" {
			article.URL = MissingURL
		}
		articles = append(articles, article)
	}
	return articles
}

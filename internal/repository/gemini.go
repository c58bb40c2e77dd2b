package repository

import (
	"context"
	"strings"

	"github.com/pep299/just-news/internal/gemini"
	"github.com/pep299/just-news/internal/model"
)

type geminiSearcher interface {
	SearchNews(ctx context.Context, keyword string) (*gemini.SearchResponse, error)
}

type geminiRepository struct {
	client geminiSearcher
}

func NewGeminiRepository(client *gemini.Client) NewsRepository {
	return &geminiRepository{
		client: client,
	}
}

func (g *geminiRepository) FetchNews(ctx context.Context, keyword string) (*Result, error) {
	resp, err := g.client.SearchNews(ctx, keyword)
	if err != nil {
		return nil, err
	}

	return &Result{
		Summary:  resp.Text,
		Articles: ArticlesFromGrounding(resp.Chunks),
	}, nil
}

// ArticlesFromGrounding keeps the chunks that cite a web page, in order
func ArticlesFromGrounding(chunks []gemini.GroundingChunk) []model.Article {
	articles := make([]model.Article, 0, len(chunks))
	for _, chunk := range chunks {
		if chunk.Web == nil {
			continue
		}

		article := model.Article{
			Title:  chunk.Web.Title,
			URL:    chunk.Web.URI,
			Source: SourceFromTitle(chunk.Web.Title),
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

// SourceFromTitle guesses the publisher from a "Headline - Publisher" title.
// Only the second segment is used, so "A - B - C" yields "B".
func SourceFromTitle(title string) string {
	parts := strings.Split(title, " - ")
	if len(parts) < 2 || parts[1] == "" {
		return UnknownSource
	}
	return parts[1]
}

package repository

import (
	"context"

	"github.com/pep299/just-news/internal/model"
	"github.com/pep299/just-news/internal/slack"
)

type SlackRepository interface {
	SendDigest(ctx context.Context, keyword string, news *model.NewsResponse) error
}

func NewSlackRepository(botToken, channel, baseURL string) SlackRepository {
	return slack.NewClient(botToken, channel, baseURL)
}

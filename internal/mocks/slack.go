package mocks

import (
	"context"
	"sync"

	"github.com/pep299/just-news/internal/model"
)

// SentDigest is one recorded Slack digest
type SentDigest struct {
	Keyword string
	News    *model.NewsResponse
}

// Mock Slack Repository
type MockSlackRepo struct {
	Err error

	mu   sync.Mutex
	Sent []SentDigest
}

func (m *MockSlackRepo) SendDigest(ctx context.Context, keyword string, news *model.NewsResponse) error {
	if m.Err != nil {
		return m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Sent = append(m.Sent, SentDigest{Keyword: keyword, News: news})
	return nil
}

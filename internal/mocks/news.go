package mocks

import (
	"context"
	"sync"

	"github.com/pep299/just-news/internal/model"
	"github.com/pep299/just-news/internal/repository"
)

// Mock News Repository
type MockNewsRepo struct {
	Result *repository.Result
	Err    error

	mu       sync.Mutex
	Keywords []string
}

func (m *MockNewsRepo) FetchNews(ctx context.Context, keyword string) (*repository.Result, error) {
	m.mu.Lock()
	m.Keywords = append(m.Keywords, keyword)
	m.mu.Unlock()

	if m.Err != nil {
		return nil, m.Err
	}
	if m.Result == nil {
		return &repository.Result{Summary: "test summary", Articles: []model.Article{}}, nil
	}
	return m.Result, nil
}

// Calls returns how many times FetchNews was called
func (m *MockNewsRepo) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Keywords)
}

// Mock Searcher
type MockSearcher struct {
	SearchFunc func(ctx context.Context, keyword string) (*model.NewsResponse, error)
}

func (m *MockSearcher) Search(ctx context.Context, keyword string) (*model.NewsResponse, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, keyword)
	}
	return &model.NewsResponse{Summary: "test summary", Articles: []model.Article{}}, nil
}

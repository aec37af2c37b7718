package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"news_sentiment/internal/domain"
)

type Source interface {
	ID() string
	Name() string
	Fetch(ctx context.Context) ([]domain.RawArticle, error)
}

type Scorer interface {
	Score(text string) float64
}

// Classifier labels a batch of texts, one label per text in input order.
type Classifier interface {
	Classify(ctx context.Context, texts []string) ([]string, error)
}

type ArticleStore interface {
	Insert(ctx context.Context, article *domain.Article) (int64, error)
	QueryWindow(ctx context.Context, since time.Time) ([]domain.Article, error)
	EvictOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type JobStateStore interface {
	Get(ctx context.Context, job string) (*domain.JobState, error)
	Update(ctx context.Context, state *domain.JobState) error
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type SummaryCache interface {
	Key(window, category string) string
	Write(ctx context.Context, key string, snapshot domain.SummarySnapshot, ttl time.Duration) error
	WriteCategories(ctx context.Context, window string, categories []string, ttl time.Duration) error
	ReadCategories(ctx context.Context, window string) ([]string, error)
	Delete(ctx context.Context, keys []string) error
}

type Publisher interface {
	Publish(ctx context.Context, event domain.SummariesRefreshed) error
	Close() error
}

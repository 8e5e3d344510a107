package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"launchradar/internal/domain"
)

type RawPostStore interface {
	StoreBatch(ctx context.Context, posts []domain.RawPost) error
	GetUnprocessed(ctx context.Context, limit int) ([]domain.RawPost, error)
	MarkProcessed(ctx context.Context, ids []int64, at time.Time) error
	DeleteProcessedBefore(ctx context.Context, cutoff time.Time) (int64, error)
	Count(ctx context.Context) (int64, error)
	CountUnprocessed(ctx context.Context) (int64, error)
}

type OpportunityStore interface {
	InsertBatch(ctx context.Context, opportunities []domain.Opportunity) error
	Count(ctx context.Context) (int64, error)
	RecentScores(ctx context.Context, limit int) ([]domain.RecentScore, error)
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Publisher interface {
	PublishOpportunity(ctx context.Context, opportunity *domain.Opportunity) error
	Close() error
}

type Scorer interface {
	Score(post domain.NormalizedPost) (*domain.ScoredOpportunity, error)
}

// ProcessingService is the manager's view of the processor.
type ProcessingService interface {
	ProcessUnprocessed(ctx context.Context) (int, error)
	Stats(ctx context.Context) (domain.ProcessingStats, error)
	Cleanup(ctx context.Context, daysToKeep int) (int64, error)
}

// Collector is the capability the manager drives for each source.
type Collector interface {
	Source() domain.Source
	CollectPosts(ctx context.Context) ([]domain.NormalizedPost, error)
	CollectOnce(ctx context.Context) (domain.CollectionResult, error)
	Start() error
	Stop()
	Status() domain.CollectorStatus
}

package collector

import (
	"context"
	"errors"
	"log/slog"

	"launchradar/internal/domain"
)

// Handoff receives fetched posts and advances the processing pipeline. The
// processing service implements it.
type Handoff interface {
	StoreRawPosts(ctx context.Context, posts []domain.NormalizedPost) error
	ProcessUnprocessed(ctx context.Context) (int, error)
}

// Cycle runs one fetch-store-process cycle. Transient fetch failures and rate
// limits degrade to an empty fetch; auth and persistence failures escalate to
// the caller.
func Cycle(
	ctx context.Context,
	fetch func(ctx context.Context) ([]domain.NormalizedPost, error),
	handoff Handoff,
	logger *slog.Logger,
) (domain.CollectionResult, error) {
	posts, err := fetch(ctx)
	if err != nil {
		var rateErr *domain.RateLimitError
		var fetchErr *domain.FetchError
		switch {
		case errors.As(err, &rateErr):
			logger.Warn("rate limited, skipping cycle", "error", err)
			posts = nil
		case errors.As(err, &fetchErr):
			logger.Warn("fetch failed, skipping cycle", "error", err)
			posts = nil
		default:
			return domain.CollectionResult{}, err
		}
	}

	result := domain.CollectionResult{Posts: len(posts)}
	if len(posts) == 0 {
		return result, nil
	}

	if err := handoff.StoreRawPosts(ctx, posts); err != nil {
		return result, err
	}

	created, err := handoff.ProcessUnprocessed(ctx)
	if err != nil {
		return result, err
	}
	result.Opportunities = created

	logger.Info("collection cycle completed",
		"posts", result.Posts,
		"opportunities", created,
	)
	return result, nil
}

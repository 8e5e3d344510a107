package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"launchradar/internal/domain"
)

// Unprocessed posts are drained in batches of this size, oldest first.
const batchSize = 100

// Processor turns stored raw posts into opportunity records. It implements
// the collectors' handoff: collectors store fetched posts through it and then
// trigger a processing pass.
type Processor struct {
	rawPosts      RawPostStore
	opportunities OpportunityStore
	txManager     TransactionManager
	publisher     Publisher
	scorer        Scorer
	minimumScore  int
	logger        *slog.Logger
}

func NewProcessor(
	rawPosts RawPostStore,
	opportunities OpportunityStore,
	txManager TransactionManager,
	publisher Publisher,
	scorer Scorer,
	minimumScore int,
	logger *slog.Logger,
) *Processor {
	return &Processor{
		rawPosts:      rawPosts,
		opportunities: opportunities,
		txManager:     txManager,
		publisher:     publisher,
		scorer:        scorer,
		minimumScore:  minimumScore,
		logger:        logger.With("component", "processor"),
	}
}

// StoreRawPosts persists fetched posts. Duplicate (source, external_id) pairs
// are ignored by the store, so overlapping fetch windows are safe.
func (p *Processor) StoreRawPosts(ctx context.Context, posts []domain.NormalizedPost) error {
	if len(posts) == 0 {
		return nil
	}

	rows := make([]domain.RawPost, 0, len(posts))
	for _, np := range posts {
		rows = append(rows, domain.RawPost{
			Source:            np.Source,
			ExternalID:        np.ExternalID,
			Content:           np.Content,
			Author:            np.Author,
			EngagementMetrics: np.Engagement,
			RawMetadata:       np.Metadata,
		})
	}

	if err := p.rawPosts.StoreBatch(ctx, rows); err != nil {
		return err
	}

	p.logger.Info("stored raw posts", "count", len(rows))
	return nil
}

// ProcessUnprocessed drains one batch of unprocessed posts through the
// scoring engine and returns the number of opportunities created. Opportunity
// insert and processed-state advancement happen in one transaction: if the
// insert fails, no post in the batch is marked processed.
func (p *Processor) ProcessUnprocessed(ctx context.Context) (int, error) {
	posts, err := p.rawPosts.GetUnprocessed(ctx, batchSize)
	if err != nil {
		return 0, fmt.Errorf("fetch unprocessed posts: %w", err)
	}
	if len(posts) == 0 {
		p.logger.Debug("no unprocessed posts")
		return 0, nil
	}

	var opportunities []domain.Opportunity
	ids := make([]int64, 0, len(posts))

	for _, post := range posts {
		// A post that fails scoring still advances to processed so it cannot
		// block the batch or be retried forever.
		ids = append(ids, post.ID)

		scored, err := p.scorer.Score(reconstruct(post))
		if err != nil {
			p.logger.Error("scoring failed, post skipped",
				"post_id", post.ID,
				"external_id", post.ExternalID,
				"error", err,
			)
			continue
		}
		if scored == nil || scored.Score < p.minimumScore {
			continue
		}

		opportunities = append(opportunities, p.toOpportunity(post, scored))
	}

	err = p.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := p.opportunities.InsertBatch(txCtx, opportunities); err != nil {
			return err
		}
		return p.rawPosts.MarkProcessed(txCtx, ids, time.Now().UTC())
	})
	if err != nil {
		return 0, fmt.Errorf("process batch: %w", err)
	}

	if p.publisher != nil {
		for i := range opportunities {
			if err := p.publisher.PublishOpportunity(ctx, &opportunities[i]); err != nil {
				p.logger.Warn("publish opportunity failed",
					"opportunity_id", opportunities[i].ID,
					"error", err,
				)
			}
		}
	}

	p.logger.Info("processed batch",
		"posts", len(posts),
		"opportunities", len(opportunities),
	)
	return len(opportunities), nil
}

// reconstruct rebuilds the scorable representation from a stored raw post.
func reconstruct(post domain.RawPost) domain.NormalizedPost {
	np := domain.NormalizedPost{
		Source:       post.Source,
		ExternalID:   post.ExternalID,
		Content:      post.Content,
		Author:       post.Author,
		Engagement:   post.EngagementMetrics,
		Metadata:     post.RawMetadata,
		DiscoveredAt: post.CreatedAt,
	}

	switch post.Source {
	case domain.SourceTwitter:
		if created := post.RawMetadata.String("created_at"); created != "" {
			if t, err := time.Parse(time.RFC3339, created); err == nil {
				np.DiscoveredAt = t
			}
		}
	case domain.SourceReddit:
		np.Title, _, _ = strings.Cut(post.Content, "\n")
		if utc := post.RawMetadata.Float("created_utc"); utc > 0 {
			np.DiscoveredAt = time.Unix(int64(utc), 0).UTC()
		}
	}

	return np
}

func (p *Processor) toOpportunity(post domain.RawPost, scored *domain.ScoredOpportunity) domain.Opportunity {
	meta := make(domain.JSONMap, len(scored.Metadata)+3)
	for k, v := range scored.Metadata {
		meta[k] = v
	}
	meta["scoring_breakdown"] = scored.Breakdown
	meta["source_post_id"] = post.ID
	meta["external_id"] = post.ExternalID

	return domain.Opportunity{
		ID:             uuid.NewString(),
		Title:          scored.Title,
		Description:    scored.Description,
		Source:         scored.Source,
		Score:          scored.Score,
		Category:       scored.Category,
		PersonalTags:   scored.PersonalTags,
		EngagementData: scored.EngagementData,
		Metadata:       meta,
		DiscoveredAt:   scored.DiscoveredAt,
	}
}

// Stats summarizes backlog and opportunity state for status reporting.
func (p *Processor) Stats(ctx context.Context) (domain.ProcessingStats, error) {
	total, err := p.rawPosts.Count(ctx)
	if err != nil {
		return domain.ProcessingStats{}, fmt.Errorf("count posts: %w", err)
	}
	unprocessed, err := p.rawPosts.CountUnprocessed(ctx)
	if err != nil {
		return domain.ProcessingStats{}, fmt.Errorf("count unprocessed posts: %w", err)
	}
	opportunities, err := p.opportunities.Count(ctx)
	if err != nil {
		return domain.ProcessingStats{}, fmt.Errorf("count opportunities: %w", err)
	}
	recent, err := p.opportunities.RecentScores(ctx, 10)
	if err != nil {
		return domain.ProcessingStats{}, fmt.Errorf("recent scores: %w", err)
	}

	stats := domain.ProcessingStats{
		TotalPosts:         total,
		UnprocessedPosts:   unprocessed,
		TotalOpportunities: opportunities,
	}
	if total > 0 {
		stats.ProcessingRate = float64(total-unprocessed) / float64(total) * 100
	}
	if len(recent) > 0 {
		var sum int
		for _, r := range recent {
			sum += r.Score
		}
		stats.AverageScore = int(float64(sum)/float64(len(recent)) + 0.5)
		stats.LastProcessedAt = &recent[0].CreatedAt
	}
	return stats, nil
}

// Cleanup deletes processed posts older than the retention window.
// Unprocessed posts are kept regardless of age.
func (p *Processor) Cleanup(ctx context.Context, daysToKeep int) (int64, error) {
	cutoff := time.Now().AddDate(0, 0, -daysToKeep)

	deleted, err := p.rawPosts.DeleteProcessedBefore(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	p.logger.Info("cleaned up old posts", "deleted", deleted, "days_kept", daysToKeep)
	return deleted, nil
}

package postgres

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/jmoiron/sqlx"

	"launchradar/internal/domain"
)

type OpportunityStore struct {
	db *sqlx.DB
}

func NewOpportunityStore(db *sqlx.DB) *OpportunityStore {
	return &OpportunityStore{db: db}
}

// InsertBatch writes all staged opportunities of one processing batch in a
// single statement.
func (s *OpportunityStore) InsertBatch(ctx context.Context, opps []domain.Opportunity) error {
	if len(opps) == 0 {
		return nil
	}

	var sb strings.Builder
	sb.WriteString(`INSERT INTO opportunities (
		id, title, description, source, score, category,
		personal_tags, engagement_data, metadata, discovered_at
	) VALUES `)
	args := make([]interface{}, 0, len(opps)*10)

	for i, o := range opps {
		if i > 0 {
			sb.WriteString(", ")
		}
		base := i * 10
		sb.WriteString("($")
		sb.WriteString(strconv.Itoa(base + 1))
		for j := 2; j <= 10; j++ {
			sb.WriteString(", $")
			sb.WriteString(strconv.Itoa(base + j))
		}
		sb.WriteString(")")
		args = append(args,
			o.ID,
			o.Title,
			o.Description,
			o.Source,
			o.Score,
			o.Category,
			o.PersonalTags,
			o.EngagementData,
			o.Metadata,
			o.DiscoveredAt,
		)
	}

	if _, err := GetExecutor(ctx, s.db).ExecContext(ctx, sb.String(), args...); err != nil {
		return fmt.Errorf("insert opportunities: %w", err)
	}
	return nil
}

func (s *OpportunityStore) Count(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM opportunities`)
	return n, err
}

// RecentScores returns the scores and creation times of the newest
// opportunities, newest first, for status reporting.
func (s *OpportunityStore) RecentScores(ctx context.Context, limit int) ([]domain.RecentScore, error) {
	query := `
		SELECT score, created_at
		FROM opportunities
		ORDER BY created_at DESC
		LIMIT $1`

	var scores []domain.RecentScore
	if err := s.db.SelectContext(ctx, &scores, query, limit); err != nil {
		return nil, fmt.Errorf("recent scores: %w", err)
	}
	return scores, nil
}

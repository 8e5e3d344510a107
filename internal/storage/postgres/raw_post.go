package postgres

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"launchradar/internal/domain"
)

type RawPostStore struct {
	db *sqlx.DB
}

func NewRawPostStore(db *sqlx.DB) *RawPostStore {
	return &RawPostStore{db: db}
}

// StoreBatch upserts fetched posts keyed by (source, external_id). Conflicting
// rows are ignored, not overwritten: the first stored copy of an external id
// wins, which makes overlapping fetch windows idempotent.
func (s *RawPostStore) StoreBatch(ctx context.Context, posts []domain.RawPost) error {
	if len(posts) == 0 {
		return nil
	}

	var sb strings.Builder
	sb.WriteString(`INSERT INTO posts (source, external_id, content, author, engagement_metrics, raw_metadata) VALUES `)
	args := make([]interface{}, 0, len(posts)*6)

	for i, p := range posts {
		if i > 0 {
			sb.WriteString(", ")
		}
		base := i * 6
		sb.WriteString("($")
		sb.WriteString(strconv.Itoa(base + 1))
		for j := 2; j <= 6; j++ {
			sb.WriteString(", $")
			sb.WriteString(strconv.Itoa(base + j))
		}
		sb.WriteString(")")
		args = append(args,
			p.Source,
			p.ExternalID,
			p.Content,
			p.Author,
			p.EngagementMetrics,
			p.RawMetadata,
		)
	}
	sb.WriteString(" ON CONFLICT (source, external_id) DO NOTHING")

	if _, err := GetExecutor(ctx, s.db).ExecContext(ctx, sb.String(), args...); err != nil {
		return fmt.Errorf("store raw posts: %w", err)
	}
	return nil
}

// GetUnprocessed returns up to limit posts with no processed_at yet, oldest
// first so no post starves behind the backlog.
func (s *RawPostStore) GetUnprocessed(ctx context.Context, limit int) ([]domain.RawPost, error) {
	query := `
		SELECT id, source, external_id, content, author,
		       engagement_metrics, raw_metadata, created_at, processed_at
		FROM posts
		WHERE processed_at IS NULL
		ORDER BY created_at ASC
		LIMIT $1`

	var posts []domain.RawPost
	if err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &posts, query, limit); err != nil {
		return nil, fmt.Errorf("get unprocessed posts: %w", err)
	}
	return posts, nil
}

// MarkProcessed sets processed_at for the given ids. processed_at is set-once;
// rows that already carry a timestamp are left alone.
func (s *RawPostStore) MarkProcessed(ctx context.Context, ids []int64, at time.Time) error {
	if len(ids) == 0 {
		return nil
	}

	query := `UPDATE posts SET processed_at = $1 WHERE id = ANY($2) AND processed_at IS NULL`
	if _, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, at, pq.Array(ids)); err != nil {
		return fmt.Errorf("mark posts processed: %w", err)
	}
	return nil
}

// DeleteProcessedBefore removes processed posts created before the cutoff.
// Unprocessed posts are retained regardless of age.
func (s *RawPostStore) DeleteProcessedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	query := `DELETE FROM posts WHERE created_at < $1 AND processed_at IS NOT NULL`

	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, cutoff)
	if err != nil {
		return 0, fmt.Errorf("delete old posts: %w", err)
	}
	return res.RowsAffected()
}

func (s *RawPostStore) Count(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM posts`)
	return n, err
}

func (s *RawPostStore) CountUnprocessed(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM posts WHERE processed_at IS NULL`)
	return n, err
}

package domain

import "time"

// Source identifies a social media platform posts are collected from.
type Source string

const (
	SourceTwitter Source = "twitter"
	SourceReddit  Source = "reddit"
)

// NormalizedPost is a post fetched from a source, reduced to the shape the
// scoring engine understands. Collectors produce these; the processor also
// reconstructs them from stored raw posts.
type NormalizedPost struct {
	Source       Source
	ExternalID   string
	Title        string
	Content      string
	Author       string
	Engagement   Metrics
	Metadata     JSONMap
	DiscoveredAt time.Time
}

// RawPost is the stored form of a fetched post, kept for traceability before
// scoring. Unique on (source, external_id). ProcessedAt is set exactly once,
// null until the post has gone through a processing batch.
type RawPost struct {
	ID                int64      `db:"id"`
	Source            Source     `db:"source"`
	ExternalID        string     `db:"external_id"`
	Content           string     `db:"content"`
	Author            string     `db:"author"`
	EngagementMetrics Metrics    `db:"engagement_metrics"`
	RawMetadata       JSONMap    `db:"raw_metadata"`
	CreatedAt         time.Time  `db:"created_at"`
	ProcessedAt       *time.Time `db:"processed_at"`
}

// CollectionResult summarizes one fetch-store-process cycle.
type CollectionResult struct {
	Posts         int `json:"posts"`
	Opportunities int `json:"opportunities"`
}

// CollectorStatus is per-source in-memory state, reset on process restart.
type CollectorStatus struct {
	IsRunning        bool       `json:"is_running"`
	LastCollectionAt *time.Time `json:"last_collection_at"`
	TotalCollected   int        `json:"total_collected"`
}

// ProcessingStats describes the state of the raw-post backlog and the
// opportunities derived from it.
type ProcessingStats struct {
	TotalPosts         int64      `json:"total_posts"`
	UnprocessedPosts   int64      `json:"unprocessed_posts"`
	TotalOpportunities int64      `json:"total_opportunities"`
	ProcessingRate     float64    `json:"processing_rate"`
	AverageScore       int        `json:"average_score"`
	LastProcessedAt    *time.Time `json:"last_processed_at"`
}

// RecentScore is one row of the recent-opportunity window used to compute the
// average score in ProcessingStats.
type RecentScore struct {
	Score     int       `db:"score"`
	CreatedAt time.Time `db:"created_at"`
}

// Health classifies a component or the whole pipeline.
type Health string

const (
	Healthy   Health = "healthy"
	Degraded  Health = "degraded"
	Unhealthy Health = "unhealthy"
)

// HealthReport aggregates per-service probe results.
type HealthReport struct {
	Overall  Health            `json:"overall"`
	Services map[string]Health `json:"services"`
	Issues   []string          `json:"issues"`
}

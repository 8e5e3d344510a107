package domain

import (
	"time"

	"github.com/lib/pq"
)

// Opportunity is a scored, categorized business-signal record derived from a
// single raw post. Immutable after creation except for PersonalTags, which the
// dashboard owns.
type Opportunity struct {
	ID             string         `db:"id" json:"id"`
	Title          string         `db:"title" json:"title"`
	Description    string         `db:"description" json:"description"`
	Source         Source         `db:"source" json:"source"`
	Score          int            `db:"score" json:"score"`
	Category       string         `db:"category" json:"category"`
	PersonalTags   pq.StringArray `db:"personal_tags" json:"personal_tags"`
	EngagementData Metrics        `db:"engagement_data" json:"engagement_data"`
	Metadata       JSONMap        `db:"metadata" json:"metadata"`
	DiscoveredAt   time.Time      `db:"discovered_at" json:"discovered_at"`
	CreatedAt      time.Time      `db:"created_at" json:"created_at"`
}

// ScoringBreakdown holds the four sub-scores whose weighted sum is the final
// score. Stored in opportunity metadata for auditability, never recomputed.
type ScoringBreakdown struct {
	Engagement float64 `json:"engagement"`
	Relevance  float64 `json:"relevance"`
	Freshness  float64 `json:"freshness"`
	Authority  float64 `json:"authority"`
}

// ScoredOpportunity is the scoring engine's output before persistence.
type ScoredOpportunity struct {
	Title          string
	Description    string
	Source         Source
	Score          int
	Category       string
	PersonalTags   []string
	EngagementData Metrics
	Metadata       JSONMap
	Breakdown      ScoringBreakdown
	DiscoveredAt   time.Time
}

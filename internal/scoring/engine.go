package scoring

import (
	"fmt"
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"launchradar/internal/domain"
)

// Weights of the four sub-scores in the final score.
const (
	relevanceWeight  = 0.4
	engagementWeight = 0.3
	authorityWeight  = 0.2
	freshnessWeight  = 0.1
)

// Posts scoring below this are discarded outright, before the configurable
// opportunity threshold is even consulted.
const minViableScore = 20

// Engine turns a normalized post into a scored opportunity. Pure: identical
// input and clock always produce an identical score, category and tag set.
type Engine struct {
	now func() time.Time
}

func New() *Engine {
	return &Engine{now: time.Now}
}

// Score evaluates one post. Returns nil when the post does not clear the
// minimum viable score.
func (e *Engine) Score(post domain.NormalizedPost) (*domain.ScoredOpportunity, error) {
	if post.Source != domain.SourceTwitter && post.Source != domain.SourceReddit {
		return nil, fmt.Errorf("score post %s: unknown source %q", post.ExternalID, post.Source)
	}

	content := strings.TrimSpace(post.Content)
	lower := strings.ToLower(content)

	breakdown := domain.ScoringBreakdown{
		Engagement: engagementScore(post.Engagement, post.Source),
		Relevance:  relevanceScore(lower),
		Freshness:  e.freshnessScore(post.DiscoveredAt),
		Authority:  authorityScore(post.Metadata, post.Source),
	}

	final := int(math.Round(
		breakdown.Relevance*relevanceWeight +
			breakdown.Engagement*engagementWeight +
			breakdown.Authority*authorityWeight +
			breakdown.Freshness*freshnessWeight,
	))

	if final < minViableScore {
		return nil, nil
	}

	category := categorize(lower)

	return &domain.ScoredOpportunity{
		Title:          title(post, content),
		Description:    content,
		Source:         post.Source,
		Score:          final,
		Category:       category,
		PersonalTags:   personalTags(lower, category, final),
		EngagementData: post.Engagement,
		Metadata:       post.Metadata,
		Breakdown:      breakdown,
		DiscoveredAt:   post.DiscoveredAt,
	}, nil
}

func title(post domain.NormalizedPost, content string) string {
	if t := strings.TrimSpace(post.Title); t != "" {
		return t
	}
	if len(content) > 100 {
		// Back up to a rune boundary so the cut never splits a multibyte
		// character.
		cut := 100
		for cut > 0 && !utf8.RuneStart(content[cut]) {
			cut--
		}
		return content[:cut] + "..."
	}
	return content
}

// engagementScore weights raw interaction counts per source and normalizes
// them onto the 0-100 scale.
func engagementScore(metrics domain.Metrics, source domain.Source) float64 {
	var score float64

	switch source {
	case domain.SourceTwitter:
		// Retweets carry the most signal, likes the least.
		score = (metrics["retweet_count"]*3 +
			metrics["reply_count"]*2.5 +
			metrics["quote_count"]*2 +
			metrics["like_count"]) / 10
	case domain.SourceReddit:
		score = (metrics["score"]*2 + metrics["num_comments"]*3) / 5
	}

	return clamp(score)
}

func relevanceScore(lower string) float64 {
	var score float64

	for _, kw := range highValueKeywords {
		if strings.Contains(lower, kw) {
			score += 15
		}
	}

	var modelBonus float64
	for _, bm := range businessModels {
		for _, kw := range bm.keywords {
			if strings.Contains(lower, kw) {
				modelBonus += 20
				break
			}
		}
	}
	score += math.Min(40, modelBonus)

	for _, signal := range negativeSignals {
		if strings.Contains(lower, signal) {
			score -= 25
		}
	}

	return clamp(score)
}

// freshnessScore is a step function of post age.
func (e *Engine) freshnessScore(discoveredAt time.Time) float64 {
	age := e.now().Sub(discoveredAt).Hours()

	switch {
	case age <= 1:
		return 100
	case age <= 6:
		return 90
	case age <= 24:
		return 70
	case age <= 72:
		return 50
	case age <= 168:
		return 30
	default:
		return 10
	}
}

func authorityScore(meta domain.JSONMap, source domain.Source) float64 {
	score := 50.0

	switch source {
	case domain.SourceTwitter:
		author := meta.Map("author")
		if author.Bool("verified") {
			score += 20
		}

		pm := author.Map("public_metrics")
		followers := pm.Float("followers_count")
		following := pm.Float("following_count")

		ratio := followers / math.Max(1, following)
		switch {
		case ratio > 10:
			score += 20
		case ratio > 3:
			score += 10
		case ratio > 1:
			score += 5
		}

		switch {
		case followers > 100000:
			score += 15
		case followers > 10000:
			score += 10
		case followers > 1000:
			score += 5
		}

	case domain.SourceReddit:
		if authoritativeSubreddits[strings.ToLower(meta.String("subreddit"))] {
			score += 15
		}

		// Best effort: reddit does not expose author karma in listing
		// responses, so this is usually zero.
		karma := meta.Float("author_karma")
		switch {
		case karma > 10000:
			score += 15
		case karma > 1000:
			score += 10
		case karma > 100:
			score += 5
		}
	}

	return clamp(score)
}

func categorize(lower string) string {
	for _, bm := range businessModels {
		for _, kw := range bm.keywords {
			if strings.Contains(lower, kw) {
				return bm.category
			}
		}
	}

	switch {
	case strings.Contains(lower, "idea") || strings.Contains(lower, "concept"):
		return "idea"
	case strings.Contains(lower, "feedback") || strings.Contains(lower, "review"):
		return "validation"
	case strings.Contains(lower, "help") || strings.Contains(lower, "advice"):
		return "help-request"
	default:
		return "other"
	}
}

func personalTags(lower, category string, score int) []string {
	var tags []string

	switch {
	case score >= 80:
		tags = append(tags, "high-priority")
	case score >= 60:
		tags = append(tags, "medium-priority")
	default:
		tags = append(tags, "low-priority")
	}

	if strings.Contains(lower, "idea") || strings.Contains(lower, "concept") {
		tags = append(tags, "early-stage")
	}
	if strings.Contains(lower, "mvp") || strings.Contains(lower, "beta") {
		tags = append(tags, "mvp-stage")
	}
	if strings.Contains(lower, "revenue") || strings.Contains(lower, "customers") {
		tags = append(tags, "traction-stage")
	}

	tags = append(tags, "bm-"+category)

	if strings.Contains(lower, "pain point") || strings.Contains(lower, "problem") {
		tags = append(tags, "problem-discovery")
	}
	if strings.Contains(lower, "solution") || strings.Contains(lower, "solve") {
		tags = append(tags, "solution-proposed")
	}
	if strings.Contains(lower, "market") || strings.Contains(lower, "opportunity") {
		tags = append(tags, "market-analysis")
	}

	return tags
}

func clamp(v float64) float64 {
	return math.Min(100, math.Max(0, v))
}

package twitter

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"launchradar/internal/collector"
	"launchradar/internal/domain"
)

const defaultBaseURL = "https://api.twitter.com/2/tweets/search/recent"

// Twitter caps max_results for recent search at 100 per request.
const maxResultsLimit = 100

// Config holds Twitter collector configuration.
type Config struct {
	BearerToken string
	Keywords    []string
	MaxResults  int
	Interval    time.Duration
	Timeout     time.Duration
	BaseURL     string
}

// Collector fetches recent tweets matching the configured keywords.
type Collector struct {
	httpClient  *http.Client
	baseURL     string
	bearerToken string
	keywords    []string
	maxResults  int
	handoff     collector.Handoff
	runner      *collector.Runner
	logger      *slog.Logger
}

// New creates a Twitter collector. Missing credentials fail construction.
func New(cfg Config, handoff collector.Handoff, logger *slog.Logger) (*Collector, error) {
	if cfg.BearerToken == "" {
		return nil, &domain.ConfigError{Field: "twitter.bearer_token", Reason: "missing"}
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.MaxResults <= 0 || cfg.MaxResults > maxResultsLimit {
		cfg.MaxResults = maxResultsLimit
	}

	log := logger.With("source", domain.SourceTwitter)
	return &Collector{
		httpClient:  &http.Client{Timeout: cfg.Timeout},
		baseURL:     cfg.BaseURL,
		bearerToken: cfg.BearerToken,
		keywords:    cfg.Keywords,
		maxResults:  cfg.MaxResults,
		handoff:     handoff,
		runner:      collector.NewRunner(cfg.Interval, log),
		logger:      log,
	}, nil
}

func (c *Collector) Source() domain.Source {
	return domain.SourceTwitter
}

// CollectPosts queries the recent search endpoint with an OR'd keyword
// expression and joins expanded author objects back onto each tweet.
func (c *Collector) CollectPosts(ctx context.Context) ([]domain.NormalizedPost, error) {
	if len(c.keywords) == 0 {
		c.logger.Warn("no keywords configured, skipping collection")
		return nil, nil
	}

	params := url.Values{
		"query":        {strings.Join(c.keywords, " OR ")},
		"max_results":  {strconv.Itoa(c.maxResults)},
		"tweet.fields": {"created_at,public_metrics,author_id,referenced_tweets"},
		"user.fields":  {"username,name,verified,public_metrics"},
		"expansions":   {"author_id"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.bearerToken)
	req.Header.Set("User-Agent", "LaunchRadar/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &domain.FetchError{Source: domain.SourceTwitter, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, &domain.RateLimitError{Source: domain.SourceTwitter}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &domain.FetchError{Source: domain.SourceTwitter, Status: resp.StatusCode}
	}

	var search searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&search); err != nil {
		return nil, &domain.FetchError{Source: domain.SourceTwitter, Err: fmt.Errorf("decode response: %w", err)}
	}

	users := make(map[string]user, len(search.Includes.Users))
	for _, u := range search.Includes.Users {
		users[u.ID] = u
	}

	posts := make([]domain.NormalizedPost, 0, len(search.Data))
	for _, t := range search.Data {
		posts = append(posts, c.normalize(t, users))
	}

	c.logger.Debug("search returned tweets", "count", len(posts))
	return posts, nil
}

func (c *Collector) normalize(t tweet, users map[string]user) domain.NormalizedPost {
	discoveredAt, err := time.Parse(time.RFC3339, t.CreatedAt)
	if err != nil {
		discoveredAt = time.Now()
	}

	meta := domain.JSONMap{
		"created_at":        t.CreatedAt,
		"referenced_tweets": t.ReferencedTweets,
	}
	if u, ok := users[t.AuthorID]; ok {
		author := domain.JSONMap{
			"id":       u.ID,
			"username": u.Username,
			"name":     u.Name,
			"verified": u.Verified,
		}
		if u.PublicMetrics != nil {
			author["public_metrics"] = domain.JSONMap{
				"followers_count": float64(u.PublicMetrics.FollowersCount),
				"following_count": float64(u.PublicMetrics.FollowingCount),
			}
		}
		meta["author"] = author
	}

	return domain.NormalizedPost{
		Source:     domain.SourceTwitter,
		ExternalID: t.ID,
		Content:    t.Text,
		Author:     t.AuthorID,
		Engagement: domain.Metrics{
			"retweet_count": float64(t.PublicMetrics.RetweetCount),
			"like_count":    float64(t.PublicMetrics.LikeCount),
			"reply_count":   float64(t.PublicMetrics.ReplyCount),
			"quote_count":   float64(t.PublicMetrics.QuoteCount),
		},
		Metadata:     meta,
		DiscoveredAt: discoveredAt,
	}
}

// CollectOnce runs exactly one fetch-store-process cycle regardless of the
// running state.
func (c *Collector) CollectOnce(ctx context.Context) (domain.CollectionResult, error) {
	result, err := collector.Cycle(ctx, c.CollectPosts, c.handoff, c.logger)
	if err != nil {
		return result, err
	}
	c.runner.RecordCollection(result.Posts)
	return result, nil
}

func (c *Collector) Start() error {
	return c.runner.Start(func(ctx context.Context) (domain.CollectionResult, error) {
		return collector.Cycle(ctx, c.CollectPosts, c.handoff, c.logger)
	})
}

func (c *Collector) Stop() {
	c.runner.Stop()
	c.logger.Info("collector stopped")
}

func (c *Collector) Status() domain.CollectorStatus {
	return c.runner.Status()
}

package reddit

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"launchradar/internal/collector"
	"launchradar/internal/domain"
)

const defaultBaseURL = "https://oauth.reddit.com"

// Reddit allows 60 requests per minute; spacing subreddit fetches 1.1s apart
// keeps a safe margin under that budget.
const requestPacing = 1100 * time.Millisecond

// Each subreddit listing is capped at this many posts per fetch.
const listingLimit = 25

// Config holds Reddit collector configuration.
type Config struct {
	ClientID     string
	ClientSecret string
	Username     string
	Password     string
	Subreddits   []string
	Keywords     []string
	Interval     time.Duration
	Timeout      time.Duration
	BaseURL      string
	TokenURL     string
}

// Collector fetches new posts from the configured subreddits, paced to
// respect the per-minute request budget.
type Collector struct {
	httpClient *http.Client
	baseURL    string
	subreddits []string
	keywords   []string
	tokens     *TokenManager
	limiter    *rate.Limiter
	handoff    collector.Handoff
	runner     *collector.Runner
	logger     *slog.Logger
}

// New creates a Reddit collector. Missing credentials fail construction.
func New(cfg Config, handoff collector.Handoff, logger *slog.Logger) (*Collector, error) {
	fields := []struct {
		name  string
		value string
	}{
		{"reddit.client_id", cfg.ClientID},
		{"reddit.client_secret", cfg.ClientSecret},
		{"reddit.username", cfg.Username},
		{"reddit.password", cfg.Password},
	}
	for _, f := range fields {
		if f.value == "" {
			return nil, &domain.ConfigError{Field: f.name, Reason: "missing"}
		}
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}

	log := logger.With("source", domain.SourceReddit)
	return &Collector{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    cfg.BaseURL,
		subreddits: cfg.Subreddits,
		keywords:   cfg.Keywords,
		tokens:     NewTokenManager(cfg, log),
		limiter:    rate.NewLimiter(rate.Every(requestPacing), 1),
		handoff:    handoff,
		runner:     collector.NewRunner(cfg.Interval, log),
		logger:     log,
	}, nil
}

func (c *Collector) Source() domain.Source {
	return domain.SourceReddit
}

// CollectPosts iterates the configured subreddits sequentially. A single
// subreddit's failure is skipped, not propagated; a token exchange failure
// fails the whole fetch.
func (c *Collector) CollectPosts(ctx context.Context) ([]domain.NormalizedPost, error) {
	if len(c.subreddits) == 0 {
		c.logger.Warn("no subreddits configured, skipping collection")
		return nil, nil
	}

	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}

	var all []domain.NormalizedPost
	for _, subreddit := range c.subreddits {
		if err := c.limiter.Wait(ctx); err != nil {
			return all, err
		}

		posts, err := c.fetchSubreddit(ctx, token, subreddit)
		if err != nil {
			c.logger.Warn("subreddit fetch failed, skipping",
				"subreddit", subreddit,
				"error", err,
			)
			continue
		}

		matched := c.filterByKeywords(posts)
		for _, p := range matched {
			all = append(all, c.normalize(p))
		}

		c.logger.Debug("collected from subreddit",
			"subreddit", subreddit,
			"fetched", len(posts),
			"matched", len(matched),
		)
	}

	c.logger.Debug("collection finished", "total", len(all))
	return all, nil
}

func (c *Collector) fetchSubreddit(ctx context.Context, token, subreddit string) ([]redditPost, error) {
	url := fmt.Sprintf("%s/r/%s/new.json?limit=%d", c.baseURL, subreddit, listingLimit)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("User-Agent", "LaunchRadar/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &domain.FetchError{Source: domain.SourceReddit, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, &domain.RateLimitError{Source: domain.SourceReddit}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &domain.FetchError{Source: domain.SourceReddit, Status: resp.StatusCode}
	}

	var listing listingResponse
	if err := json.NewDecoder(resp.Body).Decode(&listing); err != nil {
		return nil, &domain.FetchError{Source: domain.SourceReddit, Err: fmt.Errorf("decode response: %w", err)}
	}

	posts := make([]redditPost, 0, len(listing.Data.Children))
	for _, child := range listing.Data.Children {
		posts = append(posts, child.Data)
	}
	return posts, nil
}

// filterByKeywords keeps posts whose title or body contains any configured
// keyword, case-insensitively. With no keywords configured everything passes.
func (c *Collector) filterByKeywords(posts []redditPost) []redditPost {
	if len(c.keywords) == 0 {
		return posts
	}

	var matched []redditPost
	for _, p := range posts {
		text := strings.ToLower(p.Title + " " + p.Selftext)
		for _, kw := range c.keywords {
			if strings.Contains(text, strings.ToLower(kw)) {
				matched = append(matched, p)
				break
			}
		}
	}
	return matched
}

func (c *Collector) normalize(p redditPost) domain.NormalizedPost {
	content := p.Title
	if p.Selftext != "" {
		content += "\n\n" + p.Selftext
	}

	return domain.NormalizedPost{
		Source:     domain.SourceReddit,
		ExternalID: p.ID,
		Title:      p.Title,
		Content:    content,
		Author:     p.Author,
		Engagement: domain.Metrics{
			"score":        float64(p.Score),
			"num_comments": float64(p.NumComments),
			"upvote_ratio": p.UpvoteRatio,
		},
		Metadata: domain.JSONMap{
			"subreddit":   p.Subreddit,
			"url":         p.URL,
			"created_utc": p.CreatedUTC,
			"permalink":   "https://reddit.com" + p.Permalink,
			"is_self":     p.IsSelf,
		},
		DiscoveredAt: time.Unix(int64(p.CreatedUTC), 0).UTC(),
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

// Stop ends the collection loop and clears the cached credential.
func (c *Collector) Stop() {
	c.runner.Stop()
	c.tokens.Invalidate()
	c.logger.Info("collector stopped")
}

func (c *Collector) Status() domain.CollectorStatus {
	return c.runner.Status()
}

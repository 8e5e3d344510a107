package twitter

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"launchradar/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func newTestCollector(t *testing.T, baseURL string, keywords []string) *Collector {
	t.Helper()
	c, err := New(Config{
		BearerToken: "test-token",
		Keywords:    keywords,
		MaxResults:  10,
		Interval:    time.Minute,
		Timeout:     5 * time.Second,
		BaseURL:     baseURL,
	}, nil, testLogger())
	require.NoError(t, err)
	return c
}

const searchPayload = `{
	"data": [
		{
			"id": "1801",
			"text": "just launched my saas, looking for feedback",
			"author_id": "42",
			"created_at": "2025-06-15T10:00:00Z",
			"public_metrics": {"retweet_count": 3, "like_count": 25, "reply_count": 7, "quote_count": 1}
		},
		{
			"id": "1802",
			"text": "mvp is live",
			"author_id": "99",
			"created_at": "2025-06-15T11:00:00Z",
			"public_metrics": {"retweet_count": 0, "like_count": 2, "reply_count": 0, "quote_count": 0}
		}
	],
	"includes": {
		"users": [
			{
				"id": "42",
				"username": "builder",
				"name": "Builder",
				"verified": true,
				"public_metrics": {"followers_count": 5000, "following_count": 300}
			}
		]
	}
}`

func TestNew_RequiresBearerToken(t *testing.T) {
	_, err := New(Config{}, nil, testLogger())

	var cfgErr *domain.ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "twitter.bearer_token", cfgErr.Field)
}

func TestCollectPosts_JoinsExpandedAuthors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.Equal(t, "saas OR mvp", r.URL.Query().Get("query"))
		assert.Equal(t, "10", r.URL.Query().Get("max_results"))
		assert.Equal(t, "author_id", r.URL.Query().Get("expansions"))
		w.Write([]byte(searchPayload))
	}))
	defer srv.Close()

	c := newTestCollector(t, srv.URL, []string{"saas", "mvp"})

	posts, err := c.CollectPosts(context.Background())
	require.NoError(t, err)
	require.Len(t, posts, 2)

	first := posts[0]
	assert.Equal(t, domain.SourceTwitter, first.Source)
	assert.Equal(t, "1801", first.ExternalID)
	assert.Equal(t, "42", first.Author)
	assert.Equal(t, 3.0, first.Engagement["retweet_count"])
	assert.Equal(t, 25.0, first.Engagement["like_count"])
	assert.Equal(t, time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC), first.DiscoveredAt)

	author := first.Metadata.Map("author")
	require.NotNil(t, author)
	assert.Equal(t, "builder", author.String("username"))
	assert.True(t, author.Bool("verified"))
	assert.Equal(t, 5000.0, author.Map("public_metrics").Float("followers_count"))

	// No expanded user for author 99, so no author object either.
	assert.Nil(t, posts[1].Metadata.Map("author"))
}

func TestCollectPosts_RateLimited(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := newTestCollector(t, srv.URL, []string{"saas"})

	_, err := c.CollectPosts(context.Background())

	var rateErr *domain.RateLimitError
	require.ErrorAs(t, err, &rateErr)
	assert.Equal(t, domain.SourceTwitter, rateErr.Source)
}

func TestCollectPosts_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := newTestCollector(t, srv.URL, []string{"saas"})

	_, err := c.CollectPosts(context.Background())

	var fetchErr *domain.FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, http.StatusServiceUnavailable, fetchErr.Status)
}

func TestCollectPosts_NoKeywordsSkipsFetch(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	c := newTestCollector(t, srv.URL, nil)

	posts, err := c.CollectPosts(context.Background())
	require.NoError(t, err)
	assert.Nil(t, posts)
	assert.False(t, called)
}

func TestCollectPosts_MalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	c := newTestCollector(t, srv.URL, []string{"saas"})

	_, err := c.CollectPosts(context.Background())

	var fetchErr *domain.FetchError
	assert.ErrorAs(t, err, &fetchErr)
}

type recordingHandoff struct {
	stored    []domain.NormalizedPost
	processed int
	created   int
}

func (h *recordingHandoff) StoreRawPosts(_ context.Context, posts []domain.NormalizedPost) error {
	h.stored = append(h.stored, posts...)
	return nil
}

func (h *recordingHandoff) ProcessUnprocessed(context.Context) (int, error) {
	h.processed++
	return h.created, nil
}

func TestCollectOnce_RunsFullCycle(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(searchPayload))
	}))
	defer srv.Close()

	handoff := &recordingHandoff{created: 1}
	c, err := New(Config{
		BearerToken: "test-token",
		Keywords:    []string{"saas"},
		Interval:    time.Minute,
		Timeout:     5 * time.Second,
		BaseURL:     srv.URL,
	}, handoff, testLogger())
	require.NoError(t, err)

	result, err := c.CollectOnce(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, result.Posts)
	assert.Equal(t, 1, result.Opportunities)
	assert.Len(t, handoff.stored, 2)
	assert.Equal(t, 1, handoff.processed)

	status := c.Status()
	assert.False(t, status.IsRunning)
	assert.Equal(t, 2, status.TotalCollected)
	assert.NotNil(t, status.LastCollectionAt)
}

func TestCollectOnce_RateLimitDegradesToEmptyCycle(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	handoff := &recordingHandoff{}
	c, err := New(Config{
		BearerToken: "test-token",
		Keywords:    []string{"saas"},
		Interval:    time.Minute,
		Timeout:     5 * time.Second,
		BaseURL:     srv.URL,
	}, handoff, testLogger())
	require.NoError(t, err)

	result, err := c.CollectOnce(context.Background())
	require.NoError(t, err)
	assert.Zero(t, result.Posts)
	assert.Empty(t, handoff.stored)
	assert.Zero(t, handoff.processed)
}

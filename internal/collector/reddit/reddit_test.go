package reddit

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"launchradar/internal/domain"
)

func listingPayload(posts ...string) string {
	var children []string
	for _, p := range posts {
		children = append(children, fmt.Sprintf(`{"data": %s}`, p))
	}
	return fmt.Sprintf(`{"data": {"children": [%s]}}`, strings.Join(children, ","))
}

// newTestServer serves the token endpoint on /token and subreddit listings on
// /r/<name>/new.json from the handlers map.
func newTestServer(t *testing.T, handlers map[string]http.HandlerFunc) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"access_token": "tok-1", "expires_in": 3600}`)
	})
	for subreddit, handler := range handlers {
		mux.HandleFunc("/r/"+subreddit+"/new.json", handler)
	}
	return httptest.NewServer(mux)
}

func newTestCollector(t *testing.T, srv *httptest.Server, subreddits, keywords []string) *Collector {
	t.Helper()
	c, err := New(Config{
		ClientID:     "client",
		ClientSecret: "secret",
		Username:     "user",
		Password:     "pass",
		Subreddits:   subreddits,
		Keywords:     keywords,
		Interval:     time.Minute,
		Timeout:      5 * time.Second,
		BaseURL:      srv.URL,
		TokenURL:     srv.URL + "/token",
	}, nil, testLogger())
	require.NoError(t, err)
	return c
}

func TestNew_RequiresAllCredentials(t *testing.T) {
	cases := []struct {
		missing string
		cfg     Config
	}{
		{"reddit.client_id", Config{ClientSecret: "s", Username: "u", Password: "p"}},
		{"reddit.client_secret", Config{ClientID: "c", Username: "u", Password: "p"}},
		{"reddit.username", Config{ClientID: "c", ClientSecret: "s", Password: "p"}},
		{"reddit.password", Config{ClientID: "c", ClientSecret: "s", Username: "u"}},
	}

	for _, tc := range cases {
		_, err := New(tc.cfg, nil, testLogger())

		var cfgErr *domain.ConfigError
		require.ErrorAs(t, err, &cfgErr, tc.missing)
		assert.Equal(t, tc.missing, cfgErr.Field)
	}
}

func TestCollectPosts_FiltersByKeyword(t *testing.T) {
	srv := newTestServer(t, map[string]http.HandlerFunc{
		"startups": func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
			fmt.Fprint(w, listingPayload(
				`{"id": "aaa", "title": "Launched my SaaS today", "selftext": "feedback welcome", "author": "builder", "created_utc": 1750000000, "score": 50, "num_comments": 10, "subreddit": "startups", "permalink": "/r/startups/comments/aaa/", "upvote_ratio": 0.95, "is_self": true}`,
				`{"id": "bbb", "title": "What I had for lunch", "selftext": "a sandwich", "author": "someone", "created_utc": 1750000100, "score": 3, "num_comments": 1, "subreddit": "startups", "permalink": "/r/startups/comments/bbb/", "is_self": true}`,
			))
		},
	})
	defer srv.Close()

	c := newTestCollector(t, srv, []string{"startups"}, []string{"saas"})

	posts, err := c.CollectPosts(context.Background())
	require.NoError(t, err)
	require.Len(t, posts, 1)

	post := posts[0]
	assert.Equal(t, domain.SourceReddit, post.Source)
	assert.Equal(t, "aaa", post.ExternalID)
	assert.Equal(t, "Launched my SaaS today", post.Title)
	assert.Equal(t, "Launched my SaaS today\n\nfeedback welcome", post.Content)
	assert.Equal(t, 50.0, post.Engagement["score"])
	assert.Equal(t, 10.0, post.Engagement["num_comments"])
	assert.Equal(t, "https://reddit.com/r/startups/comments/aaa/", post.Metadata.String("permalink"))
	assert.Equal(t, "startups", post.Metadata.String("subreddit"))
	assert.Equal(t, time.Unix(1750000000, 0).UTC(), post.DiscoveredAt)
}

func TestCollectPosts_NoKeywordsPassesEverything(t *testing.T) {
	srv := newTestServer(t, map[string]http.HandlerFunc{
		"startups": func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, listingPayload(
				`{"id": "aaa", "title": "anything", "author": "a", "created_utc": 1750000000}`,
				`{"id": "bbb", "title": "goes", "author": "b", "created_utc": 1750000100}`,
			))
		},
	})
	defer srv.Close()

	c := newTestCollector(t, srv, []string{"startups"}, nil)

	posts, err := c.CollectPosts(context.Background())
	require.NoError(t, err)
	assert.Len(t, posts, 2)
}

func TestCollectPosts_SubredditFailureSkipped(t *testing.T) {
	srv := newTestServer(t, map[string]http.HandlerFunc{
		"broken": func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		},
		"startups": func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, listingPayload(
				`{"id": "aaa", "title": "saas launch", "author": "builder", "created_utc": 1750000000}`,
			))
		},
	})
	defer srv.Close()

	c := newTestCollector(t, srv, []string{"broken", "startups"}, []string{"saas"})

	posts, err := c.CollectPosts(context.Background())
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "aaa", posts[0].ExternalID)
}

func TestCollectPosts_NoSubredditsSkipsFetch(t *testing.T) {
	srv := newTestServer(t, nil)
	defer srv.Close()

	c := newTestCollector(t, srv, nil, []string{"saas"})

	posts, err := c.CollectPosts(context.Background())
	require.NoError(t, err)
	assert.Nil(t, posts)
}

func TestCollectPosts_TokenFailureEscalates(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := newTestCollector(t, srv, []string{"startups"}, []string{"saas"})

	_, err := c.CollectPosts(context.Background())

	var authErr *domain.AuthError
	assert.ErrorAs(t, err, &authErr)
}

func TestFilterByKeywords_CaseInsensitive(t *testing.T) {
	srv := newTestServer(t, nil)
	defer srv.Close()

	c := newTestCollector(t, srv, []string{"startups"}, []string{"SaaS", "mvp"})

	posts := []redditPost{
		{ID: "1", Title: "MY SAAS STORY"},
		{ID: "2", Title: "weekend project", Selftext: "shipping an MVP soon"},
		{ID: "3", Title: "unrelated"},
	}

	matched := c.filterByKeywords(posts)
	require.Len(t, matched, 2)
	assert.Equal(t, "1", matched[0].ID)
	assert.Equal(t, "2", matched[1].ID)
}

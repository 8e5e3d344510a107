package reddit

import (
	"context"
	"fmt"
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

func tokenConfig(tokenURL string) Config {
	return Config{
		ClientID:     "client",
		ClientSecret: "secret",
		Username:     "user",
		Password:     "pass",
		Timeout:      5 * time.Second,
		TokenURL:     tokenURL,
	}
}

func TestToken_ExchangesAndCaches(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++

		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "client", user)
		assert.Equal(t, "secret", pass)

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "password", r.PostForm.Get("grant_type"))
		assert.Equal(t, "user", r.PostForm.Get("username"))

		fmt.Fprintf(w, `{"access_token": "tok-%d", "expires_in": 3600}`, calls)
	}))
	defer srv.Close()

	tm := NewTokenManager(tokenConfig(srv.URL), testLogger())

	first, err := tm.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tok-1", first)

	// Well within the expiry window, so no second exchange.
	second, err := tm.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tok-1", second)
	assert.Equal(t, 1, calls)
}

func TestToken_RefreshesAfterExpiry(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		// expires_in equals the safety margin, so the token is already
		// considered expired on the next call.
		fmt.Fprintf(w, `{"access_token": "tok-%d", "expires_in": 60}`, calls)
	}))
	defer srv.Close()

	tm := NewTokenManager(tokenConfig(srv.URL), testLogger())

	first, err := tm.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tok-1", first)

	second, err := tm.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tok-2", second)
	assert.Equal(t, 2, calls)
}

func TestToken_ExchangeFailureLeavesCacheIntact(t *testing.T) {
	fail := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if fail {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		fmt.Fprint(w, `{"access_token": "tok-1", "expires_in": 60}`)
	}))
	defer srv.Close()

	tm := NewTokenManager(tokenConfig(srv.URL), testLogger())

	_, err := tm.Token(context.Background())
	require.NoError(t, err)

	fail = true
	_, err = tm.Token(context.Background())

	var authErr *domain.AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, domain.SourceReddit, authErr.Source)

	tm.mu.Lock()
	defer tm.mu.Unlock()
	assert.Equal(t, "tok-1", tm.token)
}

func TestToken_ErrorPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"error": "invalid_grant"}`)
	}))
	defer srv.Close()

	tm := NewTokenManager(tokenConfig(srv.URL), testLogger())

	_, err := tm.Token(context.Background())

	var authErr *domain.AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Contains(t, err.Error(), "invalid_grant")
}

func TestInvalidate_ClearsCachedToken(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		fmt.Fprintf(w, `{"access_token": "tok-%d", "expires_in": 3600}`, calls)
	}))
	defer srv.Close()

	tm := NewTokenManager(tokenConfig(srv.URL), testLogger())

	_, err := tm.Token(context.Background())
	require.NoError(t, err)

	tm.Invalidate()

	tok, err := tm.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tok-2", tok)
	assert.Equal(t, 2, calls)
}

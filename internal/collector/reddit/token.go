package reddit

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"launchradar/internal/domain"
)

const defaultTokenURL = "https://www.reddit.com/api/v1/access_token"

// Refresh this long before the token actually expires, so a token never dies
// mid-request.
const tokenSafetyMargin = time.Minute

// TokenManager owns the cached bearer credential for the Reddit API and
// refreshes it via a password-grant exchange before expiry. Concurrent
// callers may race to refresh; a redundant exchange is harmless because each
// one issues a fresh token.
type TokenManager struct {
	httpClient   *http.Client
	tokenURL     string
	clientID     string
	clientSecret string
	username     string
	password     string
	logger       *slog.Logger

	mu     sync.Mutex
	token  string
	expiry time.Time
}

func NewTokenManager(cfg Config, logger *slog.Logger) *TokenManager {
	tokenURL := cfg.TokenURL
	if tokenURL == "" {
		tokenURL = defaultTokenURL
	}
	return &TokenManager{
		httpClient:   &http.Client{Timeout: cfg.Timeout},
		tokenURL:     tokenURL,
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		username:     cfg.Username,
		password:     cfg.Password,
		logger:       logger,
	}
}

// Token returns the cached token when still valid, otherwise exchanges
// credentials for a fresh one. On exchange failure the previous cached token
// is left intact.
func (tm *TokenManager) Token(ctx context.Context) (string, error) {
	tm.mu.Lock()
	if tm.token != "" && time.Now().Before(tm.expiry) {
		token := tm.token
		tm.mu.Unlock()
		return token, nil
	}
	tm.mu.Unlock()

	token, expiry, err := tm.exchange(ctx)
	if err != nil {
		return "", &domain.AuthError{Source: domain.SourceReddit, Err: err}
	}

	tm.mu.Lock()
	tm.token = token
	tm.expiry = expiry
	tm.mu.Unlock()

	tm.logger.Info("access token refreshed", "expires_at", expiry)
	return token, nil
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
	Error       string `json:"error"`
}

func (tm *TokenManager) exchange(ctx context.Context) (string, time.Time, error) {
	form := url.Values{
		"grant_type": {"password"},
		"username":   {tm.username},
		"password":   {tm.password},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, tm.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("create request: %w", err)
	}
	req.SetBasicAuth(tm.clientID, tm.clientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", "LaunchRadar/1.0")

	resp, err := tm.httpClient.Do(req)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", time.Time{}, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var tr tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return "", time.Time{}, fmt.Errorf("decode response: %w", err)
	}
	if tr.Error != "" {
		return "", time.Time{}, fmt.Errorf("token endpoint error: %s", tr.Error)
	}
	if tr.AccessToken == "" {
		return "", time.Time{}, fmt.Errorf("token endpoint returned no access token")
	}

	expiry := time.Now().Add(time.Duration(tr.ExpiresIn)*time.Second - tokenSafetyMargin)
	return tr.AccessToken, expiry, nil
}

// Invalidate clears the cached credential.
func (tm *TokenManager) Invalidate() {
	tm.mu.Lock()
	tm.token = ""
	tm.expiry = time.Time{}
	tm.mu.Unlock()
}

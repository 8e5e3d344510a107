package domain

import (
	"errors"
	"fmt"
)

// ErrAlreadyRunning signals a start request for a collector that is running.
var ErrAlreadyRunning = errors.New("collector is already running")

// ErrUnknownSource signals a request naming a source no collector serves.
var ErrUnknownSource = errors.New("unknown source")

// ConfigError reports missing or invalid configuration. Fatal to startup of
// the affected source, never retried automatically.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Reason)
}

// AuthError reports a failed credential exchange. The previous cached token,
// if any, is left intact; the next cycle retries the exchange.
type AuthError struct {
	Source Source
	Err    error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("%s auth: %v", e.Source, e.Err)
}

func (e *AuthError) Unwrap() error { return e.Err }

// RateLimitError reports a 429-class response. Handled like a transient fetch
// failure but kept distinguishable for observability.
type RateLimitError struct {
	Source Source
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("%s: rate limited", e.Source)
}

// FetchError reports a transient non-2xx or network failure for one fetch.
// Swallowed at the collector level; the cycle continues with what it has.
type FetchError struct {
	Source Source
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s fetch: %v", e.Source, e.Err)
	}
	return fmt.Sprintf("%s fetch: unexpected status %d", e.Source, e.Status)
}

func (e *FetchError) Unwrap() error { return e.Err }

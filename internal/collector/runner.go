package collector

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"launchradar/internal/domain"
)

// CycleFunc runs one fetch-store-process cycle.
type CycleFunc func(ctx context.Context) (domain.CollectionResult, error)

// Runner drives a repeating fetch-then-reschedule loop for one collector.
// The next cycle is scheduled only after the current one finishes, so cycles
// never overlap and drift is tolerated. Stop prevents the next cycle; an
// in-flight cycle runs to completion.
type Runner struct {
	interval time.Duration
	logger   *slog.Logger

	mu             sync.Mutex
	running        bool
	stop           chan struct{}
	lastCollection *time.Time
	totalCollected int
}

func NewRunner(interval time.Duration, logger *slog.Logger) *Runner {
	return &Runner{interval: interval, logger: logger}
}

func (r *Runner) Start(cycle CycleFunc) error {
	r.mu.Lock()
	if r.running {
		r.mu.Unlock()
		return domain.ErrAlreadyRunning
	}
	r.running = true
	r.stop = make(chan struct{})
	stop := r.stop
	r.mu.Unlock()

	go r.loop(stop, cycle)
	return nil
}

func (r *Runner) loop(stop chan struct{}, cycle CycleFunc) {
	for {
		select {
		case <-stop:
			return
		default:
		}

		result, err := cycle(context.Background())
		if err != nil {
			r.logger.Error("collection cycle failed", "error", err)
		}
		r.RecordCollection(result.Posts)

		select {
		case <-stop:
			return
		case <-time.After(r.interval):
		}
	}
}

// Stop is safe to call on a runner that is not running.
func (r *Runner) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.running {
		return
	}
	r.running = false
	close(r.stop)
}

// RecordCollection notes a completed cycle that fetched posts.
func (r *Runner) RecordCollection(posts int) {
	if posts == 0 {
		return
	}
	now := time.Now()
	r.mu.Lock()
	r.lastCollection = &now
	r.totalCollected += posts
	r.mu.Unlock()
}

func (r *Runner) Status() domain.CollectorStatus {
	r.mu.Lock()
	defer r.mu.Unlock()
	return domain.CollectorStatus{
		IsRunning:        r.running,
		LastCollectionAt: r.lastCollection,
		TotalCollected:   r.totalCollected,
	}
}

package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"launchradar/internal/domain"
)

// Manager owns the collector lifecycles and fronts the pipeline for the API
// layer. Constructed once at process start and passed to whatever boundary
// needs it.
type Manager struct {
	collectors map[domain.Source]Collector
	order      []domain.Source
	processing ProcessingService
	logger     *slog.Logger
}

func NewManager(collectors []Collector, processing ProcessingService, logger *slog.Logger) *Manager {
	m := &Manager{
		collectors: make(map[domain.Source]Collector, len(collectors)),
		processing: processing,
		logger:     logger.With("component", "manager"),
	}
	for _, c := range collectors {
		m.collectors[c.Source()] = c
		m.order = append(m.order, c.Source())
	}
	return m
}

func (m *Manager) collector(name string) (Collector, error) {
	c, ok := m.collectors[domain.Source(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownSource, name)
	}
	return c, nil
}

// StartSource starts one collector's loop. Starting a running collector
// returns domain.ErrAlreadyRunning.
func (m *Manager) StartSource(name string) error {
	c, err := m.collector(name)
	if err != nil {
		return err
	}
	if err := c.Start(); err != nil {
		return fmt.Errorf("start %s: %w", name, err)
	}
	m.logger.Info("collector started", "source", name)
	return nil
}

// StopSource stops one collector. Safe to call on a collector that is not
// running.
func (m *Manager) StopSource(name string) error {
	c, err := m.collector(name)
	if err != nil {
		return err
	}
	c.Stop()
	return nil
}

// StartAll starts every collector, tolerating individual failures. The
// returned error joins whatever failed; collectors that started stay started.
func (m *Manager) StartAll() error {
	var errs []error
	for _, source := range m.order {
		if err := m.collectors[source].Start(); err != nil {
			m.logger.Warn("collector failed to start", "source", source, "error", err)
			errs = append(errs, fmt.Errorf("%s: %w", source, err))
		}
	}
	return errors.Join(errs...)
}

func (m *Manager) StopAll() {
	for _, source := range m.order {
		m.collectors[source].Stop()
	}
	m.logger.Info("all collectors stopped")
}

// CollectSummary is the result of a fan-out one-shot collection.
type CollectSummary struct {
	Sources  map[domain.Source]domain.CollectionResult `json:"sources"`
	Failures map[domain.Source]string                  `json:"failures,omitempty"`
	Total    domain.CollectionResult                   `json:"total"`
}

// CollectOnce fans out to all collectors concurrently and joins on all of
// them. One source's failure never aborts another's collection; failures are
// reported per source.
func (m *Manager) CollectOnce(ctx context.Context) CollectSummary {
	summary := CollectSummary{
		Sources:  make(map[domain.Source]domain.CollectionResult, len(m.collectors)),
		Failures: make(map[domain.Source]string),
	}

	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)
	for _, c := range m.collectors {
		wg.Add(1)
		go func(c Collector) {
			defer wg.Done()
			result, err := c.CollectOnce(ctx)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				m.logger.Error("one-shot collection failed", "source", c.Source(), "error", err)
				summary.Failures[c.Source()] = err.Error()
			}
			summary.Sources[c.Source()] = result
			summary.Total.Posts += result.Posts
			summary.Total.Opportunities += result.Opportunities
		}(c)
	}
	wg.Wait()

	return summary
}

// Status merges per-source collector state with aggregate processing stats.
type Status struct {
	Collectors map[domain.Source]domain.CollectorStatus `json:"collectors"`
	Processing domain.ProcessingStats                   `json:"processing"`
}

func (m *Manager) GetStatus(ctx context.Context) Status {
	status := Status{
		Collectors: make(map[domain.Source]domain.CollectorStatus, len(m.collectors)),
	}
	for source, c := range m.collectors {
		status.Collectors[source] = c.Status()
	}

	stats, err := m.processing.Stats(ctx)
	if err != nil {
		m.logger.Error("failed to get processing stats", "error", err)
	} else {
		status.Processing = stats
	}
	return status
}

// ProcessUnprocessed drains one batch of the raw-post backlog.
func (m *Manager) ProcessUnprocessed(ctx context.Context) (int, error) {
	return m.processing.ProcessUnprocessed(ctx)
}

// Cleanup removes processed posts older than the retention window.
func (m *Manager) Cleanup(ctx context.Context, daysToKeep int) (int64, error) {
	return m.processing.Cleanup(ctx, daysToKeep)
}

// HealthCheck probes every source and the store, classifying overall health
// by the fraction of healthy sub-checks.
func (m *Manager) HealthCheck(ctx context.Context) domain.HealthReport {
	report := domain.HealthReport{
		Services: make(map[string]domain.Health),
	}

	healthy := 0
	total := 0

	for _, source := range m.order {
		total++
		if _, err := m.collectors[source].CollectPosts(ctx); err != nil {
			report.Services[string(source)] = domain.Unhealthy
			report.Issues = append(report.Issues, fmt.Sprintf("%s: %v", source, err))
		} else {
			report.Services[string(source)] = domain.Healthy
			healthy++
		}
	}

	total++
	if _, err := m.processing.Stats(ctx); err != nil {
		report.Services["database"] = domain.Unhealthy
		report.Issues = append(report.Issues, fmt.Sprintf("database: %v", err))
	} else {
		report.Services["database"] = domain.Healthy
		healthy++
	}

	switch {
	case healthy == total:
		report.Overall = domain.Healthy
	case healthy > 0:
		report.Overall = domain.Degraded
	default:
		report.Overall = domain.Unhealthy
	}
	return report
}

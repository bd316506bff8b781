package catalog

import (
	"context"
	"errors"
	"math/rand/v2"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/shopgrid/shopgrid/internal/metrics"
	"github.com/shopgrid/shopgrid/internal/model"
)

// Simulated latency bounds, uniform distribution.
const (
	DefaultMinLatency = 350 * time.Millisecond
	DefaultMaxLatency = 1200 * time.Millisecond
)

// ErrSimulatedOutage is returned by Search while failure simulation is on.
var ErrSimulatedOutage = errors.New("simulated backend outage")

// Source answers catalog searches. The record list is immutable; only the
// latency bounds and the failure switch change at runtime.
type Source struct {
	records []model.Record

	mu              sync.RWMutex
	minLatency      time.Duration
	maxLatency      time.Duration
	simulateFailure bool

	log     *zap.Logger
	metrics *metrics.Metrics
}

// NewSource creates a source over records. Metrics may be nil.
func NewSource(records []model.Record, log *zap.Logger, m *metrics.Metrics) *Source {
	return &Source{
		records:    records,
		minLatency: DefaultMinLatency,
		maxLatency: DefaultMaxLatency,
		log:        log,
		metrics:    m,
	}
}

// SetLatencyBounds replaces the simulated delay range. Non-positive or
// inverted bounds collapse to the minimum.
func (s *Source) SetLatencyBounds(min, max time.Duration) {
	if min < 0 {
		min = 0
	}
	if max < min {
		max = min
	}
	s.mu.Lock()
	s.minLatency, s.maxLatency = min, max
	s.mu.Unlock()
}

// SetSimulateFailure toggles rejection of subsequent searches.
func (s *Source) SetSimulateFailure(on bool) {
	s.mu.Lock()
	s.simulateFailure = on
	s.mu.Unlock()
}

// Search normalizes query, waits the simulated latency, then returns the
// matching subsequence of the catalog in original order. The empty query
// matches everything. Cancelling ctx aborts the wait.
func (s *Source) Search(ctx context.Context, query string) ([]model.Record, error) {
	start := time.Now()
	if s.metrics != nil {
		s.metrics.Searches.Inc()
	}

	select {
	case <-time.After(s.nextDelay()):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	s.mu.RLock()
	fail := s.simulateFailure
	s.mu.RUnlock()

	if fail {
		s.log.Warn("search rejected (failure simulation on)",
			zap.String("query", query),
			zap.Duration("elapsed", time.Since(start)))
		return nil, ErrSimulatedOutage
	}

	results := model.Filter(s.records, query)

	elapsed := time.Since(start)
	if s.metrics != nil {
		s.metrics.SearchLatency.Observe(elapsed.Seconds())
	}
	s.log.Info("search complete",
		zap.String("query", model.NormalizeQuery(query)),
		zap.Int("matches", len(results)),
		zap.Duration("elapsed", elapsed))

	return results, nil
}

// nextDelay draws a uniform delay from the configured bounds.
func (s *Source) nextDelay() time.Duration {
	s.mu.RLock()
	min, max := s.minLatency, s.maxLatency
	s.mu.RUnlock()

	if max <= min {
		return min
	}
	return min + rand.N(max-min)
}

package query

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/shopgrid/shopgrid/internal/metrics"
	"github.com/shopgrid/shopgrid/internal/model"
	"github.com/shopgrid/shopgrid/internal/resource"
)

// Searcher is the slice of the catalog source the controller depends on.
type Searcher interface {
	Search(ctx context.Context, query string) ([]model.Record, error)
}

// Snapshot is the read-only view handed to the rendering surface. Query is
// authoritative and always current; DeferredQuery lags it until the
// matching resource commit lands and is the string the results region
// filters and labels with.
type Snapshot struct {
	Query         string
	DeferredQuery string
	Pending       bool
	Resource      *resource.Resource[[]model.Record]
}

// request is one scheduled resource replacement.
type request struct {
	gen     uint64
	query   string
	fetchID string
}

// Controller owns the query state machine. All mutation goes through
// OnQueryChange; the rendering surface reads Snapshot and re-renders on
// update callbacks.
type Controller struct {
	source  Searcher
	log     *zap.Logger
	metrics *metrics.Metrics

	ctx    context.Context
	cancel context.CancelFunc

	// Capacity 1: at most one scheduled request waits; newer ones replace it.
	requests chan request

	mu            sync.Mutex
	query         string
	deferredQuery string
	gen           uint64
	committedGen  uint64
	res           *resource.Resource[[]model.Record]
	onUpdate      func()
}

// NewController starts the commit worker and schedules the initial
// empty-query search so the app opens onto the full catalog. Metrics may
// be nil.
func NewController(source Searcher, log *zap.Logger, m *metrics.Metrics) *Controller {
	ctx, cancel := context.WithCancel(context.Background())
	c := &Controller{
		source:   source,
		log:      log,
		metrics:  m,
		ctx:      ctx,
		cancel:   cancel,
		requests: make(chan request, 1),
	}
	go c.run()
	c.OnQueryChange("")
	return c
}

// SetUpdateCallback registers the hook invoked after every state change:
// immediate query updates, resource commits, and settlements of the
// current resource.
func (c *Controller) SetUpdateCallback(callback func()) {
	c.mu.Lock()
	c.onUpdate = callback
	c.mu.Unlock()
}

// OnQueryChange applies next to the authoritative query immediately, then
// schedules the resource replacement at low priority. A previously queued
// but uncommitted request is discarded; latest wins.
func (c *Controller) OnQueryChange(next string) {
	c.mu.Lock()
	c.query = next
	c.gen++
	req := request{gen: c.gen, query: next, fetchID: newFetchID()}
	c.mu.Unlock()

	// Input echo first; it never waits on resource work.
	c.notify()

	for {
		select {
		case c.requests <- req:
			return
		default:
		}
		select {
		case stale := <-c.requests:
			if c.metrics != nil {
				c.metrics.QuerySuperseded.Inc()
			}
			c.log.Debug("discarded queued query",
				zap.String("fetch_id", stale.fetchID),
				zap.String("query", stale.query))
		default:
		}
	}
}

// IsPending reports whether a scheduled replacement has not committed yet.
func (c *Controller) IsPending() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.committedGen != c.gen
}

// Snapshot returns the current state for rendering.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Snapshot{
		Query:         c.query,
		DeferredQuery: c.deferredQuery,
		Pending:       c.committedGen != c.gen,
		Resource:      c.res,
	}
}

// Close stops the worker. In-flight searches are cancelled; the teacher
// contract of never reading superseded results holds trivially afterwards.
func (c *Controller) Close() {
	c.cancel()
}

func (c *Controller) run() {
	for {
		select {
		case <-c.ctx.Done():
			return
		case req := <-c.requests:
			c.commit(req)
		}
	}
}

// commit swaps in a brand-new resource for req unless a newer query has
// already been typed, in which case req is dropped unobserved.
func (c *Controller) commit(req request) {
	c.mu.Lock()
	if req.gen != c.gen {
		c.mu.Unlock()
		if c.metrics != nil {
			c.metrics.QuerySuperseded.Inc()
		}
		c.log.Debug("superseded before commit",
			zap.String("fetch_id", req.fetchID),
			zap.String("query", req.query))
		return
	}

	res := resource.New(c.ctx, func(ctx context.Context) ([]model.Record, error) {
		return c.source.Search(ctx, req.query)
	})
	c.res = res
	c.deferredQuery = req.query
	c.committedGen = req.gen
	c.mu.Unlock()

	if c.metrics != nil {
		c.metrics.QueryCommits.Inc()
	}
	c.log.Info("query committed",
		zap.String("fetch_id", req.fetchID),
		zap.String("query", req.query))

	c.notify()
	go c.watch(req, res)
}

// watch waits for res to settle and pings the UI if it is still current,
// which is the retry-on-settlement half of the suspension contract. A
// superseded resource's settlement is recorded in metrics but never
// rendered.
func (c *Controller) watch(req request, res *resource.Resource[[]model.Record]) {
	select {
	case <-res.Done():
	case <-c.ctx.Done():
		return
	}

	_, err, _ := res.TryRead()
	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	c.metrics.ObserveSettlement(outcome)
	c.log.Info("resource settled",
		zap.String("fetch_id", req.fetchID),
		zap.String("outcome", outcome))

	c.mu.Lock()
	current := c.res == res
	c.mu.Unlock()
	if current {
		c.notify()
	}
}

func (c *Controller) notify() {
	c.mu.Lock()
	callback := c.onUpdate
	c.mu.Unlock()
	if callback != nil {
		callback()
	}
}

func newFetchID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

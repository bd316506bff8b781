package query

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/shopgrid/shopgrid/internal/model"
)

// fakeSource tags results with the query so tests can tell which search a
// resource belongs to. Individual queries can be gated to stay in flight.
type fakeSource struct {
	mu    sync.Mutex
	calls []string
	gates map[string]chan struct{}
	err   error
}

func newFakeSource() *fakeSource {
	return &fakeSource{gates: make(map[string]chan struct{})}
}

func (f *fakeSource) gate(query string) chan struct{} {
	f.mu.Lock()
	defer f.mu.Unlock()
	ch := make(chan struct{})
	f.gates[query] = ch
	return ch
}

func (f *fakeSource) Search(ctx context.Context, query string) ([]model.Record, error) {
	f.mu.Lock()
	f.calls = append(f.calls, query)
	gate := f.gates[query]
	err := f.err
	f.mu.Unlock()

	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if err != nil {
		return nil, err
	}
	return []model.Record{{ID: "result:" + query, Title: query}}, nil
}

func waitFor(t *testing.T, timeout time.Duration, message string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal(message)
}

func settledValue(t *testing.T, snap Snapshot) []model.Record {
	t.Helper()
	value, err, ready := snap.Resource.TryRead()
	if !ready {
		t.Fatal("Expected a settled resource")
	}
	if err != nil {
		t.Fatalf("Expected a successful resource, got %v", err)
	}
	return value
}

func TestNewController_LoadsInitialCatalog(t *testing.T) {
	source := newFakeSource()
	c := NewController(source, zap.NewNop(), nil)
	defer c.Close()

	waitFor(t, 2*time.Second, "initial resource never settled", func() bool {
		snap := c.Snapshot()
		if snap.Resource == nil {
			return false
		}
		_, _, ready := snap.Resource.TryRead()
		return ready && !snap.Pending
	})

	records := settledValue(t, c.Snapshot())
	if len(records) != 1 || records[0].ID != "result:" {
		t.Errorf("Expected the empty-query result, got %+v", records)
	}
}

func TestOnQueryChange_ImmediateEcho(t *testing.T) {
	source := newFakeSource()
	source.gate("slow") // keeps the fetch in flight, not the input path

	c := NewController(source, zap.NewNop(), nil)
	defer c.Close()

	c.OnQueryChange("slow")

	if got := c.Snapshot().Query; got != "slow" {
		t.Errorf("Query should update synchronously, got %q", got)
	}
}

func TestIsPending_ClearsAfterCommit(t *testing.T) {
	source := newFakeSource()
	c := NewController(source, zap.NewNop(), nil)
	defer c.Close()

	c.OnQueryChange("knife")

	waitFor(t, 2*time.Second, "commit never landed", func() bool {
		return !c.IsPending()
	})

	snap := c.Snapshot()
	if snap.DeferredQuery != "knife" {
		t.Errorf("Expected deferred query to converge to 'knife', got %q", snap.DeferredQuery)
	}
}

func TestDeferredQuery_LagsUntilCommit(t *testing.T) {
	source := newFakeSource()
	c := NewController(source, zap.NewNop(), nil)
	defer c.Close()

	waitFor(t, 2*time.Second, "initial commit never landed", func() bool {
		return !c.IsPending()
	})

	c.OnQueryChange("knife")

	// Authoritative query moves first; the deferred projection follows only
	// at commit time.
	snap := c.Snapshot()
	if snap.Query != "knife" {
		t.Fatalf("Expected immediate query 'knife', got %q", snap.Query)
	}

	waitFor(t, 2*time.Second, "deferred query never converged", func() bool {
		return c.Snapshot().DeferredQuery == "knife"
	})
}

func TestSupersededResult_NeverRendered(t *testing.T) {
	source := newFakeSource()
	firstGate := source.gate("first")

	c := NewController(source, zap.NewNop(), nil)
	defer c.Close()

	c.OnQueryChange("first")
	waitFor(t, 2*time.Second, "'first' was never committed", func() bool {
		return c.Snapshot().DeferredQuery == "first"
	})

	c.OnQueryChange("second")
	waitFor(t, 2*time.Second, "'second' never settled", func() bool {
		snap := c.Snapshot()
		if snap.DeferredQuery != "second" {
			return false
		}
		_, _, ready := snap.Resource.TryRead()
		return ready
	})

	// The first search finishes late; its result must not surface.
	close(firstGate)
	time.Sleep(50 * time.Millisecond)

	records := settledValue(t, c.Snapshot())
	if len(records) != 1 || records[0].ID != "result:second" {
		t.Errorf("Expected only the latest result, got %+v", records)
	}
}

func TestRapidTyping_ConvergesToLatest(t *testing.T) {
	source := newFakeSource()
	c := NewController(source, zap.NewNop(), nil)
	defer c.Close()

	for i := 0; i < 10; i++ {
		c.OnQueryChange(fmt.Sprintf("q%d", i))
	}

	waitFor(t, 2*time.Second, "never converged to the last query", func() bool {
		snap := c.Snapshot()
		if snap.Pending || snap.DeferredQuery != "q9" {
			return false
		}
		_, _, ready := snap.Resource.TryRead()
		return ready
	})

	records := settledValue(t, c.Snapshot())
	if records[0].ID != "result:q9" {
		t.Errorf("Expected result for q9, got %+v", records)
	}
}

func TestFailingSearch_SettlesAsFailure(t *testing.T) {
	source := newFakeSource()
	source.err = errors.New("outage")

	c := NewController(source, zap.NewNop(), nil)
	defer c.Close()

	c.OnQueryChange("boom")

	waitFor(t, 2*time.Second, "failed resource never settled", func() bool {
		snap := c.Snapshot()
		if snap.Resource == nil || snap.DeferredQuery != "boom" {
			return false
		}
		_, err, ready := snap.Resource.TryRead()
		return ready && err != nil
	})

	_, err, _ := c.Snapshot().Resource.TryRead()
	if err == nil || err.Error() != "outage" {
		t.Errorf("Expected the outage error, got %v", err)
	}
}

func TestUpdateCallback_FiresOnEchoAndCommit(t *testing.T) {
	source := newFakeSource()
	c := NewController(source, zap.NewNop(), nil)
	defer c.Close()

	var pings atomic.Int64
	c.SetUpdateCallback(func() { pings.Add(1) })

	c.OnQueryChange("knife")

	// At least the immediate echo, the commit, and the settlement ping.
	waitFor(t, 2*time.Second, "expected at least 3 callback pings", func() bool {
		return pings.Load() >= 3
	})
}

func TestClose_CancelsInFlightSearch(t *testing.T) {
	source := newFakeSource()
	gate := source.gate("hang")
	defer close(gate)

	c := NewController(source, zap.NewNop(), nil)
	c.OnQueryChange("hang")

	waitFor(t, 2*time.Second, "'hang' was never committed", func() bool {
		return c.Snapshot().DeferredQuery == "hang"
	})

	snap := c.Snapshot()
	c.Close()

	waitFor(t, 2*time.Second, "in-flight search was not cancelled", func() bool {
		_, err, ready := snap.Resource.TryRead()
		return ready && errors.Is(err, context.Canceled)
	})
}

package catalog

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/shopgrid/shopgrid/internal/model"
)

func newTestSource() *Source {
	s := NewSource(model.GenerateCatalog(), zap.NewNop(), nil)
	s.SetLatencyBounds(0, 0)
	return s
}

func TestSearch_EmptyQueryReturnsFullCatalog(t *testing.T) {
	s := newTestSource()

	results, err := s.Search(context.Background(), "")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(results) != model.CatalogSize {
		t.Fatalf("Expected %d results, got %d", model.CatalogSize, len(results))
	}
	for i, r := range results {
		if r.ID != strconv.Itoa(i+1) {
			t.Fatalf("Result %d out of order: id %q", i, r.ID)
		}
	}
}

func TestSearch_KnifeScenario(t *testing.T) {
	s := newTestSource()

	results, err := s.Search(context.Background(), "Knife")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(results) != 25 {
		t.Fatalf("Expected 25 results, got %d", len(results))
	}

	brands := [...]string{"Aran", "Bertazzoni", "Caesarstone", "Radianz"}
	for n, r := range results {
		i := 2 + n*10
		if r.ID != strconv.Itoa(i+1) {
			t.Errorf("Result %d: expected id %q, got %q", n, strconv.Itoa(i+1), r.ID)
		}
		if r.Title != "Chef Knife" {
			t.Errorf("Result %d: expected title 'Chef Knife', got %q", n, r.Title)
		}
		if r.Brand != brands[i%4] {
			t.Errorf("Result %d: expected brand %q, got %q", n, brands[i%4], r.Brand)
		}
	}
}

func TestSearch_NormalizesQuery(t *testing.T) {
	s := newTestSource()

	exact, err := s.Search(context.Background(), "knife")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	sloppy, err := s.Search(context.Background(), "  KNiFe ")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(exact) != len(sloppy) {
		t.Errorf("Normalization mismatch: %d vs %d results", len(exact), len(sloppy))
	}
}

func TestSearch_BrandMatch(t *testing.T) {
	s := newTestSource()

	results, err := s.Search(context.Background(), "bertazzoni")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	// Brand cycle of 4 over 250 records: indices 1, 5, 9, ...
	if len(results) != 62 {
		t.Fatalf("Expected 62 Bertazzoni records, got %d", len(results))
	}
	for _, r := range results {
		if r.Brand != "Bertazzoni" {
			t.Errorf("Unexpected brand %q in results", r.Brand)
		}
	}
}

func TestSearch_NoMatches(t *testing.T) {
	s := newTestSource()

	results, err := s.Search(context.Background(), "teapot")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(results) != 0 {
		t.Errorf("Expected no results, got %d", len(results))
	}
}

func TestSearch_ContextCancellation(t *testing.T) {
	s := NewSource(model.GenerateCatalog(), zap.NewNop(), nil)
	s.SetLatencyBounds(5*time.Second, 5*time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	_, err := s.Search(ctx, "knife")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}

func TestSearch_SimulatedFailure(t *testing.T) {
	s := newTestSource()
	s.SetSimulateFailure(true)

	_, err := s.Search(context.Background(), "knife")
	if !errors.Is(err, ErrSimulatedOutage) {
		t.Fatalf("Expected ErrSimulatedOutage, got %v", err)
	}

	// Switching it back off restores normal behavior.
	s.SetSimulateFailure(false)
	results, err := s.Search(context.Background(), "knife")
	if err != nil {
		t.Fatalf("Expected no error after disabling simulation, got %v", err)
	}
	if len(results) == 0 {
		t.Error("Expected results after disabling simulation")
	}
}

func TestSetLatencyBounds_Clamping(t *testing.T) {
	s := newTestSource()

	s.SetLatencyBounds(-time.Second, -2*time.Second)
	if d := s.nextDelay(); d != 0 {
		t.Errorf("Expected clamped zero delay, got %v", d)
	}

	s.SetLatencyBounds(100*time.Millisecond, 10*time.Millisecond)
	if d := s.nextDelay(); d != 100*time.Millisecond {
		t.Errorf("Expected inverted bounds to collapse to min, got %v", d)
	}

	s.SetLatencyBounds(10*time.Millisecond, 20*time.Millisecond)
	for i := 0; i < 50; i++ {
		if d := s.nextDelay(); d < 10*time.Millisecond || d >= 20*time.Millisecond {
			t.Fatalf("Delay %v outside [10ms, 20ms)", d)
		}
	}
}

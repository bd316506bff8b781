package config

import (
	"time"

	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyMinLatencyMS    = "min_latency_ms"
	KeyMaxLatencyMS    = "max_latency_ms"
	KeySkeletonCards   = "skeleton_cards"
	KeySimulateFailure = "simulate_failure"
	KeyMetricsAddress  = "metrics_address"
)

// Default values
const (
	DefaultMinLatencyMS  = 350
	DefaultMaxLatencyMS  = 1200
	DefaultSkeletonCards = 8

	MinSkeletonCards = 1
	MaxSkeletonCards = 24
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetMinLatency returns the lower bound of the simulated search delay
func (s *Settings) GetMinLatency() time.Duration {
	ms := s.app.Preferences().Int(KeyMinLatencyMS)
	if ms <= 0 {
		s.SetMinLatencyMS(DefaultMinLatencyMS)
		return DefaultMinLatencyMS * time.Millisecond
	}
	return time.Duration(ms) * time.Millisecond
}

// SetMinLatencyMS sets the lower latency bound in milliseconds
func (s *Settings) SetMinLatencyMS(ms int) {
	if ms < 0 {
		ms = 0
	}
	s.app.Preferences().SetInt(KeyMinLatencyMS, ms)
}

// GetMaxLatency returns the upper bound of the simulated search delay
func (s *Settings) GetMaxLatency() time.Duration {
	ms := s.app.Preferences().Int(KeyMaxLatencyMS)
	if ms <= 0 {
		s.SetMaxLatencyMS(DefaultMaxLatencyMS)
		return DefaultMaxLatencyMS * time.Millisecond
	}
	return time.Duration(ms) * time.Millisecond
}

// SetMaxLatencyMS sets the upper latency bound in milliseconds
func (s *Settings) SetMaxLatencyMS(ms int) {
	if ms < 0 {
		ms = 0
	}
	s.app.Preferences().SetInt(KeyMaxLatencyMS, ms)
}

// GetSkeletonCards returns how many placeholder cards to show while pending
func (s *Settings) GetSkeletonCards() int {
	count := s.app.Preferences().Int(KeySkeletonCards)
	if count <= 0 {
		s.SetSkeletonCards(DefaultSkeletonCards)
		return DefaultSkeletonCards
	}
	return count
}

// SetSkeletonCards sets the placeholder card count
func (s *Settings) SetSkeletonCards(count int) {
	if count < MinSkeletonCards {
		count = MinSkeletonCards
	}
	if count > MaxSkeletonCards {
		count = MaxSkeletonCards
	}
	s.app.Preferences().SetInt(KeySkeletonCards, count)
}

// GetSimulateFailure returns whether searches should reject
func (s *Settings) GetSimulateFailure() bool {
	return s.app.Preferences().Bool(KeySimulateFailure)
}

// SetSimulateFailure toggles search rejection
func (s *Settings) SetSimulateFailure(on bool) {
	s.app.Preferences().SetBool(KeySimulateFailure, on)
}

// GetMetricsAddress returns the debug listener address; empty means
// the listener stays off
func (s *Settings) GetMetricsAddress() string {
	return s.app.Preferences().String(KeyMetricsAddress)
}

// SetMetricsAddress sets the debug listener address
func (s *Settings) SetMetricsAddress(addr string) {
	s.app.Preferences().SetString(KeyMetricsAddress, addr)
}

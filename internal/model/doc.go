package model

// Package model defines the domain data structures shared across the app:
// catalog records, the deterministic demo catalog generator, and the query
// normalization and filtering helpers used by both the simulated backend
// and the results view.

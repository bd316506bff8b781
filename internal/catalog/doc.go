package catalog

// Package catalog implements the simulated backend: a fixed in-memory
// record list queried by case-insensitive substring match after a
// randomized artificial delay. The real backend never fails; a failure
// simulation switch exists only to demonstrate the recovery path.

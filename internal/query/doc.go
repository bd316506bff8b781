package query

// Package query implements the controller that owns the authoritative query
// string and the current results resource. Input updates are applied
// synchronously; resource replacement runs on a single low-priority worker
// fed by a coalescing channel, so rapid typing discards stale scheduled
// searches and only the latest committed resource is ever rendered.

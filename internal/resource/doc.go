package resource

// Package resource implements the write-once cell that bridges an
// asynchronous operation to a synchronous-looking read. A Resource is
// pending until its backing operation settles exactly once, then reports
// the same value or failure forever. Callers that find it pending must
// subscribe to Done and retry their read after settlement; that retry
// contract is what lets the UI suspend a render pass instead of blocking.

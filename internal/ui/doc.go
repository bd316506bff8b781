package ui

// Package ui contains the Fyne-based desktop user interface. It wires the
// search entry to the query controller and renders the results region from
// controller snapshots: skeleton cards while the current resource is
// pending, a recoverable error panel when it failed, and the filtered
// result grid once it settled.

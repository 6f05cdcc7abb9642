// Package model holds the in-memory schedule entities of a GTFS feed: trips and
// the stop times that make up each trip's sequence of visits.
//
// Entities are not safe for concurrent mutation. A loader populates them on a
// single goroutine, an optional compaction pass may then rebind stop times to
// packed storage (see StopTime.SetProxy), and only after that are they shared
// with concurrent readers. Callers enforce that write/read phase split.
//
// Routes and stops referenced by trips and stop times are owned by an external
// registry and must outlive every entity that points at them.
package model

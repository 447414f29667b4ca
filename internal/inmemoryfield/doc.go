// Package inmemoryfield provides an ephemeral, map-backed implementation of
// the fieldstore.Store interface.
//
// # Layout
//
// Entries are kept row-major: an outer map keyed by Y holds one inner map per
// materialised row, keyed by X. A row exists only once a cell in it is set.
//
// # Concurrency Model
//
// The store is owned by exactly one traversal, so it uses plain maps with no
// locking. Sharing a Store between goroutines requires external
// synchronisation.
package inmemoryfield

// Package intern provides the name-interning table shared by the level, tag
// and writer registries.
//
// Architecture:
//   - Lock-free reads: one atomic.Pointer publishes an immutable snapshot
//     holding both the by-name map and the by-id slice
//   - Copy-on-write inserts: every insert builds fresh structures and swaps
//     the pointer; published snapshots are never mutated
//   - Single-writer: the caller serializes inserts with its own mutex, so
//     the table needs no CAS loop
//
// Ids are dense, start at zero, and are never reused.
package intern

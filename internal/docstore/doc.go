// Package docstore provides a generic, concurrent-safe document store backed
// by one JSON file per collection.
//
// # Overview
//
// The package centers around [Store], which maps a collection name to a
// `<name>.json` file under the store root holding a single JSON array of
// records. A [Record] is an arbitrary JSON object carrying a unique string
// "id" field. Every operation is a full read-modify-write of the backing
// file: the filesystem is the source of truth, there is no cache shared
// across calls.
//
// # Concurrency: Pessimistic Locking
//
// Each collection is guarded by its own read-write mutex, so a mutation holds
// the write lock for the entire read-modify-write cycle. This serializes
// writers per collection and rules out the lost-update race that a bare
// last-write-wins scheme has, without changing any single-writer observable
// behavior. A file lock on the store root (acquired in [Open]) keeps a second
// process from opening the same store.
//
// # Failure Semantics
//
// A missing collection file reads as an empty collection. A file that fails
// to parse also reads as an empty collection; the condition is logged rather
// than surfaced, so stale or hand-mangled data never takes the API down.
// Inserts without an "id" fail with [ErrInvalidRecord]; inserts reusing an
// existing id fail with [ErrDuplicateID]. I/O failures propagate wrapped.
package docstore

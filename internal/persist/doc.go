// Package persist snapshots run results into local storage.
//
// The core produces an opaque Results payload per run and hands it to a
// Store together with the run metadata. The SQLite store keeps snapshots
// in a single local database file; Discard drops them for runs that only
// report to the console.
package persist

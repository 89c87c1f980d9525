// Package store persists enrichment lookups in SQLite so repeated views of
// the same titles do not repeat network calls.
//
// Rows are keyed by (kind, key) where kind names the lookup ("poster",
// "trailer", ...) and key is derived from the normalized title and year.
// Negative results are cached as well; failed lookups never are.
package store

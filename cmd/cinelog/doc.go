// Package main hosts the cinelog CLI entrypoint and command graph.
//
// Each command loads the configured catalog, applies the flags it was given
// to the named session's saved view state, renders one view and saves the
// state again. Paging, filters and ordering therefore carry over between
// invocations until they are changed or the session is reset.
//
// Keep this package lean: views live in internal/dashboard and the engine in
// the packages beneath it; commands only translate flags and render output.
package main

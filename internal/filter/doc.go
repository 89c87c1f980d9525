// Package filter narrows a catalog pool by range, membership and free-text
// predicates and orders the surviving entries.
//
// Ranges are inclusive on both ends. An entry whose value is absent never
// satisfies a configured range. Genres are required in full (every selected
// genre must be present); directors match when any selected name is present.
package filter

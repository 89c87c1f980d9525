// Package tmdb provides the minimal TMDB API client used for catalog
// enrichment.
//
// It searches movies by title with an optional release-year filter, fetches
// movie details, watch providers per country and the video list used as a
// trailer fallback. Options allow tests to supply custom HTTP clients.
package tmdb

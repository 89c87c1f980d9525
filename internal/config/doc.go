// Package config loads, normalizes, and validates cinelog configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// TMDB_API_KEY, OMDB_API_KEY, and YOUTUBE_API_KEY. The Config type centralizes
// every knob the CLI needs: where the catalog and award datasets live, where
// session state and the lookup cache are kept, and how the metadata
// collaborators are reached.
//
// Always obtain settings through this package so downstream code receives
// expanded paths, canonical log formats, and clear validation errors.
package config

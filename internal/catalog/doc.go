// Package catalog loads a watched-films export (IMDb "Your ratings" CSV and
// compatible files) into an immutable, normalized in-memory table.
//
// Only the Title column is required. Every other recognized column (Year,
// Your Rating, IMDb Rating, Genres, Directors, Date Rated, Original Title,
// URL, and a few IMDb extras) is optional: a missing column or an unparsable
// cell becomes an explicit absent value at load time and is never re-checked
// downstream. Each entry also carries its normalized title (the fuzzy join key
// used by the matcher) and a lowercase search blob used by free-text search.
//
// A file that cannot be parsed as delimited text fails the whole load with a
// *LoadError; individual missing fields never do.
package catalog

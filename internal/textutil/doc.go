// Package textutil provides the text handling shared by the catalog, matcher,
// and award packages.
//
// The primary use cases are:
//   - Normalizing titles into the fuzzy join key used by the title matcher
//   - Building token fingerprints of titles for "did you mean" suggestions
//   - Sanitizing user supplied names into filesystem-safe tokens
//
// NormalizeTitle is a pure character filter: it keeps ASCII letters and
// digits, lowercases them, and drops everything else (spaces, punctuation,
// accented letters). It is not a tokenizer and never reorders input.
package textutil

// Package match reconciles reference lists (the canon list and award
// records) against a catalog by normalized title and year.
//
// Matching is tiered and best effort. Tiers are tried in order and the first
// tier with any candidate wins; within a tier the earliest catalog entry is
// chosen:
//
//  1. same year and equal normalized title
//  2. same year and catalog title containing the reference title
//  3. equal normalized title, any year
//  4. catalog title containing the reference title, any year
//
// The substring tiers can pair a reference with a sequel or remake sharing
// its title ("The Godfather" inside "The Godfather Part II") when no year
// guard applies. That is accepted behavior.
package match

// Package dashboard composes the catalog engine into the views a front end
// renders: a paged browse table, a poster gallery, statistics, canon
// progress, award reports and a random pick.
//
// Views never hold state of their own. Each takes the caller's
// session.State, reads the paging and selection fields it needs, and may
// clamp Page; persisting the state is left to the caller.
package dashboard

// Package catalog holds the view-independent core of dex: loading the two
// collections, deriving the visible list from the user's query, and tracking
// the detail selection and display preferences.
//
// # Query pipeline
//
// Apply is a pure function of (entities, Query, Preferences). Its stages run
// in a fixed order: name search in the active language (case-folded substring),
// type filter, generation filter, then a stable sort. Name ordering uses
// locale-aware collation for the active language. The input slice is never
// reordered; callers recompute whenever any input changes.
//
// # Loading
//
// Loader.Load issues both requests in parallel and waits for both. If either
// fails the result carries an *UnavailableError and no data, so the view never
// renders from half a catalog.
//
// # Selection
//
// Selection.Close keeps the last entity so Reopen can show it again without a
// new Select. Preferences is one shared value; toggling it affects the list and
// the open detail view together.
package catalog

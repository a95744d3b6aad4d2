// Package state holds the loader lifecycle shared between the background fetch
// and the terminal UI.
//
// A Store starts idle. Begin moves it to loading exactly once and hands back an
// activation token; Finish with that token moves it to ready or failed. Results
// carrying a stale token, or arriving after Close, are dropped. Snapshot
// returns a defensive copy so the UI can render without holding the lock.
package state

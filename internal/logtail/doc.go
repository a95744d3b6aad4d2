// Package logtail reads the end of dex's log file for display in the TUI.
//
// Read uses a ring buffer of maxLines entries so only the tail is kept in
// memory regardless of file size. Lines come back in file order.
//
// dex writes JSON records through zap. Parse turns one such record into an
// Entry with the time, level and message split out and the remaining fields
// sorted by key; lines that are not JSON are passed through untouched in
// Entry.Raw.
//
//	entries, err := logtail.ReadEntries(cfg.LogPath(), 8)
package logtail

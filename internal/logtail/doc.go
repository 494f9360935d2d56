// Package logtail reads and formats the tail of bedboard's session log.
//
// # Reading
//
// Read returns the last N lines of a file using a ring buffer of size N, so
// memory stays O(N) regardless of file size:
//
//	lines, err := logtail.Read(cfg.LogPath(), 500)
//
// A missing file is not an error; the log simply has no entries yet.
//
// # Formatting
//
// The session log is JSON, one object per line, as written by the logging
// package. Parse decodes a line into an Entry and Format renders it for the
// log view:
//
//	2026-10-16 12:00:00 INFO [session] – fetch complete rooms=12 seq=3
//
// The timestamp is shown in local time and the session_id, caller and
// stacktrace keys are dropped. Lines that are not JSON pass through
// FormatLines unchanged.
package logtail

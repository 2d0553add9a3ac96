// Package logtail reads and colorizes the session log written by the
// logging package when a log file is configured.
//
// Read returns the last N lines of a file with a single sequential pass and
// a ring buffer of N entries, so large logs never load into memory. A
// missing file yields no lines.
//
// Parse splits a console-encoded zap line into time, level, logger, caller,
// message and JSON fields. Lines that do not look like an entry (stack
// traces, wrapped output) are continuations and travel with the entry above
// them through Filter.
//
// ColorizeLine renders an entry with lipgloss styles for `wayfarer logs`.
package logtail

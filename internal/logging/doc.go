// Package logging owns the process-wide zap logger.
//
// Logging is silent unless a level is configured (config `log_level`, the
// --log-level flag or WAYFARER_LOG_LEVEL). The TUI owns the terminal, so
// interactive sessions should also set `log_file`; otherwise log lines are
// written to stderr underneath the alternate screen.
//
// Every logger built by Initialize carries a `session_id` field so lines from
// one run can be grepped together.
package logging

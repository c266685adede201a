// Package health collects pass/info/warn/error entries produced while the
// issue tracker is being set up, and renders them for the checkhealth command.
//
// Core types:
//   - Reporter: Receives entries and section headers
//   - Entry: One named check with a Status and optional detail
//
// Implementations:
//   - Console: Coloured terminal output (lipgloss)
//   - LogReporter: Structured slog output
//   - Recorder: Keeps entries in memory (for testing)
//   - Multi: Fans out to several reporters
//   - Nop: Discards everything
//
// Producers never depend on what a reporter does with an entry.
package health

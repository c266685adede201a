package health

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
)

// Nop is a reporter that discards all entries.
type Nop struct{}

// Section implements Reporter.
func (Nop) Section(string) {}

// Report implements Reporter.
func (Nop) Report(Entry) {}

// LogReporter logs entries using slog.
type LogReporter struct {
	Logger *slog.Logger

	mu      sync.Mutex
	section string
}

// NewLogReporter creates a reporter that logs to the given logger.
// If logger is nil, uses the default slog logger.
func NewLogReporter(logger *slog.Logger) *LogReporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogReporter{Logger: logger}
}

// Section implements Reporter.
func (r *LogReporter) Section(name string) {
	r.mu.Lock()
	r.section = name
	r.mu.Unlock()
}

// Report implements Reporter.
func (r *LogReporter) Report(e Entry) {
	r.mu.Lock()
	section := r.section
	r.mu.Unlock()

	level := slog.LevelDebug
	switch e.Status {
	case StatusWarn:
		level = slog.LevelWarn
	case StatusError:
		level = slog.LevelError
	}

	r.Logger.Log(context.Background(), level, e.Name,
		"section", section,
		"status", e.Status.String(),
		"detail", e.Detail,
	)
}

// Multi fans entries out to several reporters.
type Multi []Reporter

// Section implements Reporter.
func (m Multi) Section(name string) {
	for _, r := range m {
		r.Section(name)
	}
}

// Report implements Reporter.
func (m Multi) Report(e Entry) {
	for _, r := range m {
		r.Report(e)
	}
}

// Recorder keeps entries in memory. Safe for concurrent use.
type Recorder struct {
	mu      sync.Mutex
	section string
	entries []Entry
}

// Section implements Reporter.
func (r *Recorder) Section(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.section = name
}

// Report implements Reporter.
func (r *Recorder) Report(e Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e.Section = r.section
	r.entries = append(r.entries, e)
}

// Entries returns a copy of the recorded entries.
func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Entry(nil), r.entries...)
}

// Find returns the last entry with the given name.
func (r *Recorder) Find(name string) (Entry, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := len(r.entries) - 1; i >= 0; i-- {
		if r.entries[i].Name == name {
			return r.entries[i], true
		}
	}
	return Entry{}, false
}

// Worst returns the most severe status recorded, StatusOK when empty.
func (r *Recorder) Worst() Status {
	r.mu.Lock()
	defer r.mu.Unlock()
	worst := StatusOK
	for _, e := range r.entries {
		if e.Status > worst {
			worst = e.Status
		}
	}
	return worst
}

// Err returns ErrUnhealthy listing the failed checks, or nil.
func (r *Recorder) Err() error {
	var failed []string
	for _, e := range r.Entries() {
		if e.Status == StatusError {
			failed = append(failed, e.Name)
		}
	}
	if len(failed) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrUnhealthy, strings.Join(failed, ", "))
}

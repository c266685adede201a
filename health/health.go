package health

import (
	"errors"
	"fmt"
)

// Status is the outcome of a single check.
type Status int

// Status constants, in increasing severity.
const (
	StatusOK Status = iota
	StatusInfo
	StatusWarn
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusInfo:
		return "INFO"
	case StatusWarn:
		return "WARNING"
	case StatusError:
		return "ERROR"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Entry describes one check.
type Entry struct {
	Section string // Set by reporters that track sections
	Name    string
	Status  Status
	Detail  string
}

// Reporter receives health entries.
type Reporter interface {
	// Section starts a new group of entries.
	Section(name string)

	// Report records one entry.
	Report(e Entry)
}

// OK reports a passing check.
func OK(r Reporter, name, detail string) {
	r.Report(Entry{Name: name, Status: StatusOK, Detail: detail})
}

// Info reports an informational entry.
func Info(r Reporter, name, detail string) {
	r.Report(Entry{Name: name, Status: StatusInfo, Detail: detail})
}

// Warn reports a degraded but usable state.
func Warn(r Reporter, name, detail string) {
	r.Report(Entry{Name: name, Status: StatusWarn, Detail: detail})
}

// Error reports a failed check.
func Error(r Reporter, name, detail string) {
	r.Report(Entry{Name: name, Status: StatusError, Detail: detail})
}

// Check reports err as an error entry, or success when err is nil, and
// returns err unchanged.
func Check(r Reporter, name string, err error) error {
	if err != nil {
		Error(r, name, err.Error())
		return err
	}
	OK(r, name, "")
	return nil
}

// OrNop returns r, or Nop when r is nil.
func OrNop(r Reporter) Reporter {
	if r == nil {
		return Nop{}
	}
	return r
}

// ErrUnhealthy is returned by Recorder.Err when any error entry was recorded.
var ErrUnhealthy = errors.New("health check failed")

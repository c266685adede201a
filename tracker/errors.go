package tracker

import (
	"errors"
	"fmt"
)

// ErrorKind classifies upstream failures.
type ErrorKind int

// Error kinds.
const (
	// ErrorTransport is a process or network failure.
	ErrorTransport ErrorKind = iota + 1
	// ErrorAuthentication means the credential was missing or rejected.
	ErrorAuthentication
	// ErrorOther covers malformed payloads and unexpected responses.
	ErrorOther
)

// Sentinels matched by *UpstreamError.Is.
var (
	ErrTransport      = errors.New("transport failure")
	ErrAuthentication = errors.New("authentication failed")
	ErrOther          = errors.New("upstream error")
)

func (k ErrorKind) sentinel() error {
	switch k {
	case ErrorTransport:
		return ErrTransport
	case ErrorAuthentication:
		return ErrAuthentication
	default:
		return ErrOther
	}
}

// UpstreamError is the only error type adapters return.
type UpstreamError struct {
	Kind    ErrorKind
	Backend Kind
	Message string
	// Err is the backend's own error. It shows in Error() and logs but is
	// not returned by Unwrap, so SDK error types stay inside the adapter.
	Err error
}

func (e *UpstreamError) Error() string {
	prefix := e.Backend.String()
	switch e.Kind {
	case ErrorTransport:
		prefix += ": transport error"
	case ErrorAuthentication:
		prefix += ": authentication failed"
	}
	switch {
	case e.Message != "":
		return prefix + ": " + e.Message
	case e.Err != nil:
		return prefix + ": " + e.Err.Error()
	default:
		return prefix
	}
}

// Unwrap returns the sentinel for the error's kind.
func (e *UpstreamError) Unwrap() error {
	return e.Kind.sentinel()
}

// IsTransport reports whether err is a transport failure.
func IsTransport(err error) bool {
	return errors.Is(err, ErrTransport)
}

// IsAuthentication reports whether err is an authentication failure.
func IsAuthentication(err error) bool {
	return errors.Is(err, ErrAuthentication)
}

func transportError(backend Kind, err error) *UpstreamError {
	return &UpstreamError{Kind: ErrorTransport, Backend: backend, Err: err}
}

func authError(backend Kind, err error) *UpstreamError {
	return &UpstreamError{Kind: ErrorAuthentication, Backend: backend, Err: err}
}

func otherError(backend Kind, format string, args ...any) *UpstreamError {
	return &UpstreamError{Kind: ErrorOther, Backend: backend, Message: fmt.Sprintf(format, args...)}
}

// asUpstream passes *UpstreamError through and treats anything else, such as
// a cancelled context, as a transport failure.
func asUpstream(backend Kind, err error) error {
	var up *UpstreamError
	if err == nil || errors.As(err, &up) {
		return err
	}
	return transportError(backend, err)
}

func otherErrorWrap(backend Kind, err error) *UpstreamError {
	return &UpstreamError{Kind: ErrorOther, Backend: backend, Err: err}
}

// Package errors turns failures from the tracker subsystem into messages a
// user can act on.
//
// CLIError carries a message, optional details and a suggestion. Diagnose
// recognises the sentinel errors of the git, remote, credential, tracker and
// health packages and wraps them; the original error stays reachable through
// errors.Is and errors.As.
//
//	if err := run(); err != nil {
//	    fmt.Fprintln(os.Stderr, errors.Diagnose(err))
//	}
package errors

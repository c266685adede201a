// Package command runs external programs and captures their output.
//
// Core types:
//   - Runner: Interface for executing commands (with mock for testing)
//   - ExecRunner: Runner backed by os/exec
//   - MockRunner: Scripted Runner that records every call
//   - Error: Failure with the command line, stderr output and exit code
//
// Example usage:
//
//	runner := command.NewExecRunner()
//	top, err := runner.Run(dir, "git", "rev-parse", "--show-toplevel")
//
// Commands are always executed directly, never through a shell, so arguments
// are passed verbatim.
package command

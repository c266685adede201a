// Package credential obtains issue-tracker tokens by running a user-configured
// command, such as a password-manager CLI, and keeps them out of logs.
//
// The command is executed directly from its argument vector. No shell is
// involved, so arguments are never re-interpreted.
//
//	secret, err := credential.NewResolver().Resolve([]string{"pass", "show", "gitlab/token"})
//	if err != nil {
//	    var cmdErr *credential.CommandError
//	    if errors.As(err, &cmdErr) {
//	        log.Printf("exit %d: %s", cmdErr.ExitCode, cmdErr.Stderr)
//	    }
//	}
//	client.SetToken(secret.Reveal())
package credential

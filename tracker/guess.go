package tracker

import (
	"strings"

	"github.com/randalmurphal/commitlsp/remote"
)

// Guess picks a backend from the remote host. demo forces KindDemo.
// The second result is false for hosts no backend claims.
func Guess(d remote.Descriptor, demo bool) (Kind, bool) {
	if demo {
		return KindDemo, true
	}

	host := strings.ToLower(d.Host)
	switch {
	case host == "dev.azure.com" || host == "ssh.dev.azure.com":
		return KindAzureDevOps, true
	case host == "github.com":
		return KindGitHub, true
	case strings.Contains(host, "gitlab"):
		return KindGitLab, true
	default:
		return 0, false
	}
}

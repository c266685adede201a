package tracker

import (
	"fmt"
	"strings"

	"github.com/randalmurphal/commitlsp/credential"
	"github.com/randalmurphal/commitlsp/remote"
)

// Ticket is one issue as reported by a backend.
type Ticket struct {
	ID    uint64
	Title string
	Body  string
}

// Kind identifies a backend.
type Kind int

// Backend kinds.
const (
	KindDemo Kind = iota + 1
	KindGitHub
	KindGitLab
	KindAzureDevOps
)

func (k Kind) String() string {
	switch k {
	case KindDemo:
		return "<DEMO>"
	case KindGitHub:
		return "Github"
	case KindGitLab:
		return "Gitlab"
	case KindAzureDevOps:
		return "Azure DevOps"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// RequiresCredential reports whether the backend cannot work anonymously.
func (k Kind) RequiresCredential() bool {
	return k == KindGitLab || k == KindAzureDevOps
}

// ParseKind parses a configured backend name. Matching ignores case, spaces,
// dashes and underscores, so "AzureDevOps", "azure devops" and "azure-devops"
// are equal.
func ParseKind(s string) (Kind, error) {
	norm := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_':
			return -1
		}
		return r
	}, strings.ToLower(strings.TrimSpace(s)))

	switch norm {
	case "demo", "<demo>":
		return KindDemo, nil
	case "github":
		return KindGitHub, nil
	case "gitlab":
		return KindGitLab, nil
	case "azuredevops", "azure", "ado":
		return KindAzureDevOps, nil
	}
	return 0, fmt.Errorf("unknown issue tracker type %q", s)
}

// TrackerConfig is what an adapter is built from.
type TrackerConfig struct {
	Remote remote.Descriptor
	Secret credential.Secret
}

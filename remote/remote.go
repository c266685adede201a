package remote

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// ErrInvalidURL indicates the string is not a remote URL with a host.
var ErrInvalidURL = errors.New("invalid remote URL")

// Descriptor is a parsed remote URL.
type Descriptor struct {
	Host         string // Lower-cased host without port
	Organization string // Azure DevOps organization; empty elsewhere
	Owner        string // Namespace path, or the Azure DevOps project
	Name         string // Repository name without .git
	Raw          string // The input, trimmed

	redacted string
}

var scpLike = regexp.MustCompile(`^(?:([^@/\s]+)@)?([^:/\s]+):(.*)$`)

// Parse parses a git remote URL.
func Parse(raw string) (Descriptor, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Descriptor{}, fmt.Errorf("%w: empty", ErrInvalidURL)
	}

	var host, path, redacted string
	if strings.Contains(raw, "://") {
		u, err := url.Parse(raw)
		if err != nil {
			return Descriptor{}, fmt.Errorf("%w %q: %v", ErrInvalidURL, raw, err)
		}
		switch u.Scheme {
		case "https", "http", "ssh", "git", "git+ssh", "ssh+git":
		default:
			return Descriptor{}, fmt.Errorf("%w: unsupported scheme %q", ErrInvalidURL, u.Scheme)
		}
		host = u.Hostname()
		path = u.Path
		redacted = redact(u)
	} else {
		m := scpLike.FindStringSubmatch(raw)
		// A single-letter host is a Windows drive, not a remote.
		if m == nil || len(m[2]) < 2 {
			return Descriptor{}, fmt.Errorf("%w: %q", ErrInvalidURL, raw)
		}
		host = m[2]
		path = m[3]
		redacted = raw
	}

	host = strings.ToLower(host)
	if host == "" {
		return Descriptor{}, fmt.Errorf("%w: %q has no host", ErrInvalidURL, raw)
	}

	d := Descriptor{Host: host, Raw: raw, redacted: redacted}
	d.fillPath(segments(path))
	return d, nil
}

// MustParse is like Parse but panics on error. For tests and constants.
func MustParse(raw string) Descriptor {
	d, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return d
}

// Redacted returns the URL with any credentials removed.
func (d Descriptor) Redacted() string {
	if d.redacted == "" {
		return d.Raw
	}
	return d.redacted
}

// String implements fmt.Stringer with the redacted form.
func (d Descriptor) String() string {
	return d.Redacted()
}

// IsZero reports whether d is the zero Descriptor.
func (d Descriptor) IsZero() bool {
	return d.Host == "" && d.Raw == ""
}

func (d *Descriptor) fillPath(parts []string) {
	switch {
	case d.Host == "dev.azure.com":
		// org/project/_git/repo
		if len(parts) == 4 && parts[2] == "_git" {
			d.Organization, d.Owner, d.Name = parts[0], parts[1], parts[3]
			return
		}
	case d.Host == "ssh.dev.azure.com" || d.Host == "vs-ssh.visualstudio.com":
		// v3/org/project/repo
		if len(parts) == 4 && parts[0] == "v3" {
			d.Organization, d.Owner, d.Name = parts[1], parts[2], parts[3]
			return
		}
	case strings.HasSuffix(d.Host, ".visualstudio.com"):
		// [DefaultCollection/]project/_git/repo on <org>.visualstudio.com
		if len(parts) == 4 && parts[0] == "DefaultCollection" {
			parts = parts[1:]
		}
		if len(parts) == 3 && parts[1] == "_git" {
			d.Organization = strings.TrimSuffix(d.Host, ".visualstudio.com")
			d.Owner, d.Name = parts[0], parts[2]
			return
		}
	}

	if len(parts) == 0 {
		return
	}
	d.Name = parts[len(parts)-1]
	d.Owner = strings.Join(parts[:len(parts)-1], "/")
}

func segments(path string) []string {
	path = strings.Trim(path, "/")
	path = strings.TrimSuffix(path, ".git")

	var parts []string
	for _, p := range strings.Split(path, "/") {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}

// redact drops the user info of http(s) URLs entirely, since the user part
// there is commonly a token. Other schemes keep a bare username.
func redact(u *url.URL) string {
	c := *u
	if c.User != nil {
		if _, hasPassword := c.User.Password(); hasPassword || c.Scheme == "https" || c.Scheme == "http" {
			c.User = nil
		}
	}
	return c.String()
}

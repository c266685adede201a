package tracker

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/randalmurphal/commitlsp/config"
	"github.com/randalmurphal/commitlsp/credential"
	"github.com/randalmurphal/commitlsp/health"
	"github.com/randalmurphal/commitlsp/remote"
)

// BuildOption configures Build.
type BuildOption func(*builder)

type builder struct {
	health      health.Reporter
	logger      *slog.Logger
	demoDir     string
	credentials *credential.Resolver
	adapterOpts []AdapterOption
}

// WithHealth sets the reporter that receives one entry per decision.
func WithHealth(r health.Reporter) BuildOption {
	return func(b *builder) {
		b.health = health.OrNop(r)
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) BuildOption {
	return func(b *builder) {
		if l != nil {
			b.logger = l
		}
	}
}

// WithDemoDir forces the Demo backend reading fixtures from dir, regardless of
// remote or configuration. An empty dir leaves selection alone.
func WithDemoDir(dir string) BuildOption {
	return func(b *builder) {
		b.demoDir = dir
	}
}

// WithCredentialResolver sets the resolver used for credentials commands.
func WithCredentialResolver(r *credential.Resolver) BuildOption {
	return func(b *builder) {
		b.credentials = r
	}
}

// WithAdapterOptions passes options through to the constructed adapter.
func WithAdapterOptions(opts ...AdapterOption) BuildOption {
	return func(b *builder) {
		b.adapterOpts = append(b.adapterOpts, opts...)
	}
}

// Build selects, configures and constructs the tracker for remoteURL.
//
// It returns (nil, nil) when the repository simply has no usable tracker: an
// unsupported host, a missing credential for a backend that needs one, or a
// remote lacking the coordinates the backend requires. An error is returned
// only when remoteURL itself cannot be parsed. Every decision is reported to
// the health reporter.
func Build(ctx context.Context, remoteURL string, remoteCfg *config.Remote, opts ...BuildOption) (*IssueTracker, error) {
	b := &builder{
		health: health.Nop{},
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.credentials == nil {
		b.credentials = credential.NewResolver(credential.WithLogger(b.logger))
	}
	return b.build(ctx, remoteURL, remoteCfg)
}

func (b *builder) build(_ context.Context, remoteURL string, remoteCfg *config.Remote) (*IssueTracker, error) {
	desc, err := remote.Parse(remoteURL)
	if err != nil {
		health.Error(b.health, "parse remote url", err.Error())
		return nil, fmt.Errorf("parse remote url: %w", err)
	}
	health.OK(b.health, "parse remote url", desc.Redacted())

	if remoteCfg == nil {
		health.Info(b.health, "remote config", "No entry for this remote")
	} else {
		health.OK(b.health, "remote config", fmt.Sprintf("Matched host '%s' (%s)", remoteCfg.Host, sourceOf(remoteCfg)))
	}

	kind, ok := b.resolveKind(desc, remoteCfg)
	if !ok {
		return nil, nil
	}

	desc = b.applyURLOverride(desc, remoteCfg)

	secret, credErr := b.resolveCredential(remoteCfg)
	if credErr != nil && kind.RequiresCredential() {
		health.Error(b.health, "construct adapter", fmt.Sprintf("%s needs a working credentials command", kind))
		return nil, nil
	}

	adapter := b.newAdapter(kind, TrackerConfig{Remote: desc, Secret: secret})
	if adapter == nil {
		health.Error(b.health, "construct adapter", missingFieldsHint(kind, desc, secret))
		return nil, nil
	}
	health.OK(b.health, "construct adapter", kind.String())

	b.logger.Debug("issue tracker ready", "kind", kind.String(), "remote", desc.Redacted())
	return New(kind, adapter), nil
}

func (b *builder) resolveKind(desc remote.Descriptor, remoteCfg *config.Remote) (Kind, bool) {
	const check = "issue tracker type"

	if b.demoDir != "" {
		health.Warn(b.health, check, fmt.Sprintf("%s forced, reading tickets from %s", KindDemo, b.demoDir))
		return KindDemo, true
	}

	if remoteCfg != nil && remoteCfg.IssueTrackerType != "" {
		kind, err := ParseKind(remoteCfg.IssueTrackerType)
		if err == nil {
			health.OK(b.health, check, fmt.Sprintf("%s (configured)", kind))
			return kind, true
		}
		health.Error(b.health, check, err.Error()+", falling back to host detection")
	}

	kind, ok := Guess(desc, false)
	if !ok {
		health.Warn(b.health, check, fmt.Sprintf("Unsupported host '%s'", desc.Host))
		return 0, false
	}
	health.OK(b.health, check, fmt.Sprintf("%s (guessed from host)", kind))
	return kind, true
}

func (b *builder) applyURLOverride(desc remote.Descriptor, remoteCfg *config.Remote) remote.Descriptor {
	const check = "apply url override"

	if remoteCfg == nil || remoteCfg.IssueTrackerURL == "" {
		return desc
	}
	override, err := remote.Parse(remoteCfg.IssueTrackerURL)
	if err != nil {
		health.Error(b.health, check, err.Error()+", keeping the git remote")
		return desc
	}
	health.OK(b.health, check, override.Redacted())
	return override
}

// resolveCredential returns a zero secret and nil error when nothing is configured.
func (b *builder) resolveCredential(remoteCfg *config.Remote) (credential.Secret, error) {
	if !remoteCfg.HasCredentialsCommand() {
		health.Info(b.health, "credentials command", "None configured")
		return credential.Secret{}, nil
	}
	health.OK(b.health, "credentials command", strings.Join(remoteCfg.CredentialsCommand, " "))

	secret, err := b.credentials.Resolve(remoteCfg.CredentialsCommand)
	if err != nil {
		health.Error(b.health, "get credentials", err.Error())
		return credential.Secret{}, err
	}
	health.OK(b.health, "get credentials", "")
	return secret, nil
}

// newAdapter returns a nil interface, never a typed nil, when construction fails.
func (b *builder) newAdapter(kind Kind, cfg TrackerConfig) Adapter {
	switch kind {
	case KindDemo:
		if a := NewDemo(b.demoDir); a != nil {
			return a
		}
	case KindGitHub:
		if a := NewGitHub(cfg, b.adapterOptions()...); a != nil {
			return a
		}
	case KindGitLab:
		if a := NewGitLab(cfg, b.adapterOptions()...); a != nil {
			return a
		}
	case KindAzureDevOps:
		if a := NewAzureDevOps(cfg, b.adapterOptions()...); a != nil {
			return a
		}
	}
	return nil
}

func (b *builder) adapterOptions() []AdapterOption {
	return append([]AdapterOption{WithAdapterLogger(b.logger)}, b.adapterOpts...)
}

func missingFieldsHint(kind Kind, d remote.Descriptor, secret credential.Secret) string {
	var missing []string
	switch kind {
	case KindDemo:
		missing = append(missing, "fixture directory")
	case KindGitHub:
		if d.Owner == "" {
			missing = append(missing, "owner")
		}
		if d.Name == "" {
			missing = append(missing, "repository name")
		}
	case KindGitLab:
		if d.Owner == "" {
			missing = append(missing, "namespace")
		}
		if d.Name == "" {
			missing = append(missing, "project name")
		}
	case KindAzureDevOps:
		if d.Organization == "" {
			missing = append(missing, "organization")
		}
		if d.Owner == "" {
			missing = append(missing, "project")
		}
	}
	if kind.RequiresCredential() && secret.IsZero() {
		missing = append(missing, "credential")
	}
	return fmt.Sprintf("%s adapter needs: %s", kind, strings.Join(missing, ", "))
}

func sourceOf(r *config.Remote) string {
	if r.Source == "" {
		return "config"
	}
	return string(r.Source)
}

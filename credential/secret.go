package credential

import "log/slog"

const redacted = "[REDACTED]"

// Secret holds a credential. Every formatting path renders it as [REDACTED];
// only Reveal exposes the value.
type Secret struct {
	value string
}

// NewSecret wraps a raw credential value.
func NewSecret(value string) Secret {
	return Secret{value: value}
}

// Reveal returns the raw credential. Call it only at the point of use.
func (s Secret) Reveal() string {
	return s.value
}

// IsZero reports whether no credential is held.
func (s Secret) IsZero() bool {
	return s.value == ""
}

func (s Secret) String() string {
	return redacted
}

func (s Secret) GoString() string {
	return redacted
}

// LogValue implements slog.LogValuer.
func (s Secret) LogValue() slog.Value {
	return slog.StringValue(redacted)
}

// MarshalText keeps secrets out of encoded output as well.
func (s Secret) MarshalText() ([]byte, error) {
	return []byte(redacted), nil
}

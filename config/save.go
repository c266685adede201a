package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// SaveRemote inserts or replaces the entry for r.Host in the file at path,
// keeping the file's format. Global files are written owner-only since they
// usually sit next to other credentials helpers.
func SaveRemote(path string, r Remote) error {
	if r.Host == "" {
		return fmt.Errorf("remote host is required")
	}

	existing := &User{}
	if data, err := os.ReadFile(path); err == nil {
		parsed, _, err := decode(path, data)
		if err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
		existing = parsed
	}

	replaced := false
	for i := range existing.Remotes {
		if existing.Remotes[i].Host == r.Host {
			existing.Remotes[i] = r
			replaced = true
			break
		}
	}
	if !replaced {
		existing.Remotes = append(existing.Remotes, r)
	}

	data, err := encode(path, existing)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

// RemoveRemote deletes the entry for host. A missing file or host is not an error.
func RemoveRemote(path, host string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil // Nothing to delete
	}

	existing, _, err := decode(path, data)
	if err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	kept := existing.Remotes[:0]
	for _, r := range existing.Remotes {
		if r.Host != host {
			kept = append(kept, r)
		}
	}
	existing.Remotes = kept

	data, err = encode(path, existing)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

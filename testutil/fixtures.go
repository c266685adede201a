package testutil

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"
)

// WriteTicketFixtures writes one file per ticket into a fresh directory and
// returns it. Each value is the complete file content.
func WriteTicketFixtures(t *testing.T, tickets map[uint64]string) string {
	t.Helper()

	dir := t.TempDir()
	for id, content := range tickets {
		WriteFile(t, dir, strconv.FormatUint(id, 10), content)
	}
	return dir
}

// WriteFile writes content to dir/name, creating parent directories.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create directory for %s: %v", name, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write file %s: %v", name, err)
	}
	return path
}

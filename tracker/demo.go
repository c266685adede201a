package tracker

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Demo serves tickets from a local directory: one file per ticket, named by
// its id. Line 1 is the title, line 2 is blank, the rest is the body.
type Demo struct {
	dir string
}

// NewDemo creates a Demo adapter reading from dir. Returns nil for an empty dir.
func NewDemo(dir string) *Demo {
	if dir == "" {
		return nil
	}
	return &Demo{dir: dir}
}

// ListTicketIDs implements Adapter.
func (d *Demo) ListTicketIDs(_ context.Context) ([]uint64, error) {
	entries, err := os.ReadDir(d.dir)
	if err != nil {
		return nil, transportError(KindDemo, err)
	}

	var ids []uint64
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if id, err := strconv.ParseUint(e.Name(), 10, 64); err == nil {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

// TicketDetails implements Adapter. Missing or unparsable files are skipped.
func (d *Demo) TicketDetails(_ context.Context, ids []uint64) ([]Ticket, error) {
	var tickets []Ticket
	for _, id := range ids {
		data, err := os.ReadFile(filepath.Join(d.dir, strconv.FormatUint(id, 10)))
		if err != nil {
			continue
		}
		t, err := parseFixture(id, string(data))
		if err != nil {
			continue
		}
		tickets = append(tickets, t)
	}
	return tickets, nil
}

func parseFixture(id uint64, content string) (Ticket, error) {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	if content == "" {
		return Ticket{}, fmt.Errorf("ticket %d: empty file", id)
	}

	lines := strings.Split(strings.TrimSuffix(content, "\n"), "\n")
	t := Ticket{ID: id, Title: lines[0]}
	if len(lines) > 2 {
		t.Body = strings.Join(lines[2:], "\n")
	}
	return t, nil
}

package health

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

const consoleWidth = 80

var (
	sectionStyle = lipgloss.NewStyle().Bold(true)
	statusStyles = map[Status]lipgloss.Style{
		StatusOK:    lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		StatusInfo:  lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
		StatusWarn:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		StatusError: lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	}
)

// Console writes a human-readable report:
//
//	------------------------------ Issue Tracker ------------------------------
//
//	- retrieve repo url: OK
//	    Got 'git@github.com:acme/widgets.git'
type Console struct {
	mu    sync.Mutex
	w     io.Writer
	plain bool
}

// NewConsole creates a Console writing to w.
func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

// NewPlainConsole creates a Console that never emits colour codes.
func NewPlainConsole(w io.Writer) *Console {
	return &Console{w: w, plain: true}
}

// Section implements Reporter.
func (c *Console) Section(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	pad := (consoleWidth - len(name) - 2) / 2
	if pad < 3 {
		pad = 3
	}
	dashes := strings.Repeat("-", pad)
	fmt.Fprintf(c.w, "%s %s %s\n", dashes, c.render(sectionStyle, name), dashes)
}

// Report implements Reporter.
func (c *Console) Report(e Entry) {
	c.mu.Lock()
	defer c.mu.Unlock()

	fmt.Fprintf(c.w, "\n- %s: %s\n", e.Name, c.render(statusStyles[e.Status], e.Status.String()))
	if e.Detail != "" {
		for _, line := range strings.Split(e.Detail, "\n") {
			fmt.Fprintf(c.w, "    %s\n", line)
		}
	}
}

func (c *Console) render(style lipgloss.Style, s string) string {
	if c.plain {
		return s
	}
	return style.Render(s)
}

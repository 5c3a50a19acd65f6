package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/tada/internal/model"
)

// Card describes one todo: title, status badge and the deleted marker.
func Card(t *model.Todo) []string {
	th := Current()
	title := t.Title()
	if title == "" {
		title = C(th.Muted, "(untitled)")
	}
	lines := []string{
		C(th.Title, title),
		"",
		fmt.Sprintf("%s %s", C(th.Accent, "status "), StatusBadge(t.Status())),
	}
	if t.IsDeleted() {
		lines = append(lines, fmt.Sprintf("%s %s", C(th.Accent, "deleted"), C(th.Error, th.SymDeleted+" yes")))
	}
	return lines
}

// Panel draws a framed box using the current theme.
func Panel(w io.Writer, lines []string) {
	t := Current()
	maxw := 0
	for _, ln := range lines {
		if vis := lipgloss.Width(ln); vis > maxw {
			maxw = vis
		}
	}
	pad := func(s string) string {
		if vis := lipgloss.Width(s); vis < maxw {
			s += strings.Repeat(" ", maxw-vis)
		}
		return s
	}
	fmt.Fprintln(w, t.CornerTL+strings.Repeat(t.H, maxw+2)+t.CornerTR)
	for _, ln := range lines {
		fmt.Fprintln(w, t.V+" "+pad(ln)+" "+t.V)
	}
	fmt.Fprintln(w, t.CornerBL+strings.Repeat(t.H, maxw+2)+t.CornerBR)
}

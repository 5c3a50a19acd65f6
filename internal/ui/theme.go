package ui

import (
	"strings"

	"github.com/idilsaglam/tada/internal/model"
)

// Theme bundles palette + symbols + box borders.
// All UI helpers pull from `current`.
type Theme struct {
	Title, Muted, Accent, Success, Error, Pending, Skipped string
	CornerTL, CornerTR, CornerBL, CornerBR                 string
	H, V                                                   string
	SymPending, SymSkipped, SymCompleted, SymDeleted       string
}

var (
	current Theme
	// plain is set by the mono theme and suppresses colour on its own,
	// independent of SetColorForcing.
	plain bool
)

func init() { SetTheme("classic") }

func SetTheme(name string) {
	plain = false
	switch strings.ToLower(name) {
	case "neon":
		current = Theme{
			Title: "\033[95m", // bright magenta
			Muted: fgGray, Accent: "\033[96m",
			Success: fgGreen, Error: fgRed, Pending: "\033[93m", Skipped: fgBlue,
			CornerTL: "╭", CornerTR: "╮", CornerBL: "╰", CornerBR: "╯",
			H: "─", V: "│",
			SymPending: "◻", SymSkipped: "↷", SymCompleted: "◼", SymDeleted: "✖",
		}
	case "mono":
		plain = true
		current = Theme{
			CornerTL: "+", CornerTR: "+", CornerBL: "+", CornerBR: "+",
			H: "-", V: "|",
			SymPending: "[ ]", SymSkipped: "[-]", SymCompleted: "[x]", SymDeleted: "(deleted)",
		}
	default: // classic
		current = Theme{
			Title: bold, Muted: fgGray, Accent: fgBlue,
			Success: fgGreen, Error: fgRed, Pending: fgYellow, Skipped: fgGray,
			CornerTL: "┌", CornerTR: "┐", CornerBL: "└", CornerBR: "┘",
			H: "─", V: "│",
			SymPending: "☐", SymSkipped: "↷", SymCompleted: "☑", SymDeleted: "✖",
		}
	}
}

// Expose what renderers need
func Current() Theme { return current }

// StatusBadge returns the coloured symbol and name for s.
func StatusBadge(s model.Status) string {
	t := current
	switch s {
	case model.StatusPending:
		return C(t.Pending, t.SymPending+" "+s.String())
	case model.StatusSkipped:
		return C(t.Skipped, t.SymSkipped+" "+s.String())
	case model.StatusCompleted:
		return C(t.Success, t.SymCompleted+" "+s.String())
	default:
		return C(t.Error, s.String())
	}
}

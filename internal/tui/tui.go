// Package tui is an interactive Bubble Tea view over a single todo.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/tada/internal/model"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	pendingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	skippedStyle = lipgloss.NewStyle().Faint(true).Italic(true)
	accentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	deletedStyle = lipgloss.NewStyle().Faint(true).Strikethrough(true)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1)
)

type keyMap struct {
	Skip     key.Binding
	Complete key.Binding
	Delete   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Skip, k.Complete, k.Delete, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Skip, k.Complete, k.Delete}, {k.Help, k.Quit}}
}

func defaultKeys() keyMap {
	return keyMap{
		Skip:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "skip")),
		Complete: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "complete")),
		Delete:   key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:     key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// Model is the Bubble Tea model. It mutates the todo it was given.
type Model struct {
	todo    *model.Todo
	keys    keyMap
	help    help.Model
	changed bool
	status  string // last outcome, success or rejection
	failed  bool
}

func New(t *model.Todo) Model {
	return Model{todo: t, keys: defaultKeys(), help: help.New()}
}

// Changed reports whether any transition succeeded.
func (m Model) Changed() bool { return m.changed }

// Todo returns the todo being edited.
func (m Model) Todo() *model.Todo { return m.todo }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Skip):
			m.apply("skipped", m.todo.Skip())
		case key.Matches(msg, m.keys.Complete):
			m.apply("completed", m.todo.Complete())
		case key.Matches(msg, m.keys.Delete):
			if m.todo.IsDeleted() {
				// nothing to save
				m.failed, m.status = false, "deleted"
				break
			}
			m.todo.Delete()
			m.apply("deleted", nil)
		}
	}
	return m, nil
}

func (m *Model) apply(done string, err error) {
	if err != nil {
		m.failed = true
		if msg := model.TransitionMessage(err); msg != "" {
			m.status = msg
		} else {
			m.status = err.Error()
		}
		return
	}
	m.failed = false
	m.changed = true
	m.status = done
}

func (m Model) View() string {
	t := m.todo
	title := t.Title()
	if t.IsDeleted() {
		title = deletedStyle.Render(title)
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "%s %s", accentStyle.Render("status"), statusText(t.Status()))
	if t.IsDeleted() {
		fmt.Fprintf(&b, "  %s", errorStyle.Render("deleted"))
	}
	if m.status != "" {
		b.WriteString("\n")
		if m.failed {
			b.WriteString(errorStyle.Render("✖ " + m.status))
		} else {
			b.WriteString(successStyle.Render("✔ " + m.status))
		}
	}
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	return panelStyle.Render(b.String())
}

func statusText(s model.Status) string {
	switch s {
	case model.StatusPending:
		return pendingStyle.Render(s.String())
	case model.StatusSkipped:
		return skippedStyle.Render(s.String())
	case model.StatusCompleted:
		return successStyle.Render(s.String())
	default:
		return errorStyle.Render(s.String())
	}
}

// Run starts the interactive view and calls save on quit if anything changed.
func Run(t *model.Todo, save func(*model.Todo) error, opts ...tea.ProgramOption) error {
	p := tea.NewProgram(New(t), opts...)
	final, err := p.Run()
	if err != nil {
		return err
	}
	fm, ok := final.(Model)
	if !ok || !fm.Changed() {
		return nil
	}
	return save(fm.Todo())
}

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gennyble/rnprefix/internal/prefix"
	"github.com/gennyble/rnprefix/internal/ui"
	"github.com/gennyble/rnprefix/model"
)

// --- Styles ---
var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))  // Mauve
	prefixStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")) // Pink
	tableStyle  = lipgloss.NewStyle().PaddingLeft(2)
	faintStyle  = lipgloss.NewStyle().Faint(true)
)

// --- Keys ---
type keyMap struct {
	Yes  key.Binding
	No   key.Binding
	Quit key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Yes, k.No, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var keys = keyMap{
	Yes: key.NewBinding(
		key.WithKeys("y", "Y"),
		key.WithHelp("y", "rename with this prefix"),
	),
	No: key.NewBinding(
		key.WithKeys("n", "N"),
		key.WithHelp("n", "try a shorter prefix"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// --- Model ---
type state int

const (
	stateReviewing state = iota
	stateAccepted
	stateExhausted
	stateQuit
)

// Result is what the review ended with.
type Result struct {
	Prefix   string
	Accepted bool
	// Quit is set when the user left before the candidates ran out.
	Quit bool
}

// Model shows one candidate prefix at a time with the renames it implies.
type Model struct {
	files   []model.FileRecord
	cursor  *prefix.Cursor
	current string
	state   state
	help    help.Model
}

// New builds a review over set, positioned on its longest candidate.
func New(set model.FileSet) Model {
	m := Model{
		files:  set.Files,
		cursor: prefix.FromFileSet(set),
		help:   help.New(),
	}
	m.advance()
	return m
}

func (m *Model) advance() {
	candidate, ok := m.cursor.Next()
	if !ok {
		m.current = ""
		m.state = stateExhausted
		return
	}
	m.current = candidate
	m.state = stateReviewing
}

func (m Model) Init() tea.Cmd {
	if m.state != stateReviewing {
		return tea.Quit
	}
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if m.state != stateReviewing {
			return m, tea.Quit
		}
		switch {
		case key.Matches(msg, keys.Yes):
			m.state = stateAccepted
			return m, tea.Quit
		case key.Matches(msg, keys.No):
			m.advance()
			if m.state == stateExhausted {
				return m, tea.Quit
			}
		case key.Matches(msg, keys.Quit):
			m.state = stateQuit
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m Model) View() string {
	switch m.state {
	case stateReviewing:
		return m.renderReview()
	case stateAccepted:
		return headerStyle.Render(fmt.Sprintf("Renaming with prefix '%s'", m.current)) + "\n"
	default:
		return ""
	}
}

func (m Model) renderReview() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("Are these names okay?"))
	b.WriteString("\n\n")
	b.WriteString(tableStyle.Render(strings.Join(ui.TableLines(m.files, m.current), "\n")))
	b.WriteString("\n\n")
	b.WriteString("Prefix is '")
	b.WriteString(prefixStyle.Render(m.current))
	b.WriteString("'\n\n")
	b.WriteString(faintStyle.Render(m.help.View(keys)))
	b.WriteString("\n")

	return b.String()
}

// Result reports the outcome once the program has finished.
func (m Model) Result() Result {
	return Result{
		Prefix:   m.current,
		Accepted: m.state == stateAccepted,
		Quit:     m.state == stateQuit,
	}
}

// Review runs the full-screen review and blocks until the user accepts a
// prefix, quits, or runs out of candidates.
func Review(set model.FileSet, opts ...tea.ProgramOption) (Result, error) {
	p := tea.NewProgram(New(set), opts...)
	final, err := p.Run()
	if err != nil {
		return Result{}, fmt.Errorf("review failed: %w", err)
	}
	m, ok := final.(Model)
	if !ok {
		return Result{}, fmt.Errorf("review ended with unexpected model %T", final)
	}
	return m.Result(), nil
}

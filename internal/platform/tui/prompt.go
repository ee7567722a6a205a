package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DefaultPlayerName is offered when no better name is known.
const DefaultPlayerName = "Player"

const maxNameLength = 20

// NamePrompt asks for the player name before each run.
// Enter accepts the typed value verbatim, Esc cancels with an empty name.
type NamePrompt struct {
	input textinput.Model
}

// NewNamePrompt creates a focused prompt pre-filled with def.
func NewNamePrompt(def string) NamePrompt {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = DefaultPlayerName
	ti.CharLimit = maxNameLength
	ti.Width = maxNameLength
	ti.SetValue(def)
	ti.CursorEnd()
	ti.Focus()
	return NamePrompt{input: ti}
}

// Update feeds a message to the prompt. done reports that the prompt
// finished, in which case name holds the result.
func (p NamePrompt) Update(msg tea.Msg) (np NamePrompt, name string, done bool, cmd tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.Type {
		case tea.KeyEnter:
			return p, p.input.Value(), true, nil
		case tea.KeyEsc:
			return p, "", true, nil
		}
	}
	p.input, cmd = p.input.Update(msg)
	return p, "", false, cmd
}

// View renders the prompt as a small dialog.
func (p NamePrompt) View() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	hintStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(1, 2)

	var b strings.Builder
	b.WriteString(titleStyle.Render("Enter your name"))
	b.WriteString("\n\n")
	b.WriteString(p.input.View())
	b.WriteString("\n\n")
	b.WriteString(hintStyle.Render("enter: play  esc: skip"))

	return boxStyle.Render(b.String())
}

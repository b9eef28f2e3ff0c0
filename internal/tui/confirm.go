// Package tui provides the interactive terminal prompts for Loadout.
package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// confirmModel is a minimal yes/no prompt.
//
// Navigation: left/right/tab move focus between Yes and No. Enter activates
// the focused button. y/n/esc are shortcut accelerators.
type confirmModel struct {
	message   string
	focusYes  bool // true = Yes focused, false = No focused
	confirmed bool
	done      bool
}

func newConfirmModel(message string) confirmModel {
	// Focus defaults to No, the safe choice for destructive actions.
	return confirmModel{message: message}
}

func (m confirmModel) Init() tea.Cmd { return nil }

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, confirmYesKey):
		m.confirmed = true
		m.done = true
		return m, tea.Quit

	case key.Matches(keyMsg, confirmNoKey), key.Matches(keyMsg, confirmQuitKey):
		m.confirmed = false
		m.done = true
		return m, tea.Quit

	case key.Matches(keyMsg, confirmEnterKey):
		m.confirmed = m.focusYes
		m.done = true
		return m, tea.Quit

	case key.Matches(keyMsg, confirmLeft), key.Matches(keyMsg, confirmRight),
		key.Matches(keyMsg, confirmTab):
		m.focusYes = !m.focusYes
		return m, nil
	}

	return m, nil
}

func (m confirmModel) View() string {
	if m.done {
		return ""
	}

	var yesBtn, noBtn string
	if m.focusYes {
		yesBtn = activeButtonStyle.Render("Yes")
		noBtn = buttonStyle.Render("No")
	} else {
		yesBtn = buttonStyle.Render("Yes")
		noBtn = activeButtonStyle.Render("No")
	}

	buttons := lipgloss.JoinHorizontal(lipgloss.Top, yesBtn, "  ", noBtn)
	return lipgloss.JoinVertical(lipgloss.Left, m.message, "", buttons, "")
}

// Confirm shows a yes/no prompt and blocks until the user answers.
func Confirm(message string) (bool, error) {
	p := tea.NewProgram(newConfirmModel(message))
	final, err := p.Run()
	if err != nil {
		return false, err
	}
	return final.(confirmModel).confirmed, nil
}

var (
	buttonStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Foreground(lipgloss.Color("#6B7280"))

	activeButtonStyle = lipgloss.NewStyle().
				Padding(0, 2).
				Bold(true).
				Foreground(lipgloss.Color("#FFFFFF")).
				Background(lipgloss.Color("#7C3AED"))
)

// Key bindings for the confirm prompt.
var (
	confirmYesKey = key.NewBinding(
		key.WithKeys("y", "Y"),
		key.WithHelp("y", "confirm"),
	)
	confirmNoKey = key.NewBinding(
		key.WithKeys("n", "N"),
		key.WithHelp("n", "cancel"),
	)
	confirmQuitKey = key.NewBinding(
		key.WithKeys("esc", "ctrl+c", "q"),
	)
	confirmEnterKey = key.NewBinding(
		key.WithKeys("enter"),
	)
	confirmLeft = key.NewBinding(
		key.WithKeys("left", "h"),
	)
	confirmRight = key.NewBinding(
		key.WithKeys("right", "l"),
	)
	confirmTab = key.NewBinding(
		key.WithKeys("tab", "shift+tab"),
	)
)

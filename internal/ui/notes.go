package ui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/bd-tui/internal/state"
	"github.com/leighmacdonald/bd-tui/internal/ui/styles"
)

// notesModel is the note editor overlay. Saving sends the note to the
// backend; an empty note clears it.
type notesModel struct {
	textarea textarea.Model
	player   state.Player
	active   bool
}

func newNotesModel() notesModel {
	textArea := textarea.New()
	textArea.SetHeight(8)
	textArea.Placeholder = "A note..."

	return notesModel{textarea: textArea}
}

func (m notesModel) Init() tea.Cmd {
	return textarea.Blink
}

func (m notesModel) Update(msg tea.Msg) (notesModel, tea.Cmd) {
	switch msg := msg.(type) {
	case selectedPlayerMsg:
		m.player = msg.player
		if !m.active {
			m.textarea.SetValue(msg.player.Notes)
		}

		return m, nil
	case openNotesMsg:
		m.active = true
		m.textarea.SetValue(m.player.Notes)

		return m, m.textarea.Focus()
	case tea.KeyMsg:
		if !m.active {
			return m, nil
		}
		switch {
		case key.Matches(msg, defaultKeyMap.back):
			m.active = false
			m.textarea.Blur()

			return m, nil
		case key.Matches(msg, defaultKeyMap.accept):
			m.active = false
			m.textarea.Blur()

			return m, func() tea.Msg {
				return saveNoteMsg{player: m.player, note: m.textarea.Value()}
			}
		}

		var cmd tea.Cmd
		m.textarea, cmd = m.textarea.Update(msg)

		return m, cmd
	}

	return m, nil
}

func (m notesModel) View() string {
	title := styles.DetailLabel.Render("Notes: " + m.player.Name)

	return lipgloss.JoinVertical(lipgloss.Top, title, m.textarea.View(),
		styles.StatusHelp.Render("enter save · esc cancel"))
}

type openNotesMsg struct{}

type saveNoteMsg struct {
	player state.Player
	note   string
}

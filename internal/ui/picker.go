package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/bd-tui/internal/state"
	"github.com/leighmacdonald/bd-tui/internal/tf"
	"github.com/leighmacdonald/bd-tui/internal/ui/styles"
	"github.com/leighmacdonald/bd-tui/internal/view"
)

// pickerKind selects what the generic list overlay is currently choosing.
type pickerKind int

const (
	pickerNone pickerKind = iota
	pickerMarkAttr
	pickerVoteReason
	pickerColumns
)

type openPickerMsg struct {
	kind pickerKind
}

type markAttrPickedMsg struct {
	player state.Player
	attr   string
}

type voteReasonPickedMsg struct {
	player state.Player
	reason tf.KickReason
}

type columnToggledMsg struct {
	column view.ColumnID
}

// defaultMarkAttrs are always offered; the backends configured kick tags are
// appended when known.
var defaultMarkAttrs = []string{"cheater", "bot", "suspicious", "racist"}

func newPickerModel() pickerModel {
	return pickerModel{}
}

// pickerModel is a single-column chooser overlay used for mark attributes,
// vote reasons and the enabled column set.
type pickerModel struct {
	kind     pickerKind
	items    []string
	cursor   int
	player   state.Player
	enabled  []view.ColumnID
	kickTags []string
}

func (m pickerModel) Init() tea.Cmd {
	return nil
}

func (m pickerModel) active() bool {
	return m.kind != pickerNone
}

func (m pickerModel) Update(msg tea.Msg) (pickerModel, tea.Cmd) {
	switch msg := msg.(type) {
	case selectedPlayerMsg:
		m.player = msg.player

		return m, nil
	case viewModelMsg:
		m.enabled = msg.prefs.EnabledColumns

		return m, nil
	case kickTagsMsg:
		m.kickTags = msg.tags

		return m, nil
	case openPickerMsg:
		m.kind = msg.kind
		m.cursor = 0
		m.items = m.buildItems()

		return m, nil
	case tea.KeyMsg:
		if !m.active() {
			return m, nil
		}
		switch {
		case key.Matches(msg, defaultKeyMap.back):
			m.kind = pickerNone

			return m, nil
		case key.Matches(msg, defaultKeyMap.up):
			if m.cursor > 0 {
				m.cursor--
			}

			return m, nil
		case key.Matches(msg, defaultKeyMap.down):
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}

			return m, nil
		case key.Matches(msg, defaultKeyMap.accept):
			return m.pick()
		}

		return m, nil
	}

	return m, nil
}

func (m pickerModel) pick() (pickerModel, tea.Cmd) {
	if m.cursor > len(m.items)-1 {
		return m, nil
	}

	choice := m.items[m.cursor]
	kind := m.kind

	switch kind {
	case pickerMarkAttr:
		m.kind = pickerNone

		return m, func() tea.Msg { return markAttrPickedMsg{player: m.player, attr: choice} }
	case pickerVoteReason:
		m.kind = pickerNone

		return m, func() tea.Msg { return voteReasonPickedMsg{player: m.player, reason: tf.KickReason(choice)} }
	case pickerColumns:
		// Stays open so several columns can be toggled in one go.
		return m, func() tea.Msg { return columnToggledMsg{column: view.ColumnID(choice)} }
	case pickerNone:
		fallthrough
	default:
		return m, nil
	}
}

func (m pickerModel) buildItems() []string {
	switch m.kind {
	case pickerMarkAttr:
		items := make([]string, 0, len(defaultMarkAttrs)+len(m.kickTags))
		items = append(items, defaultMarkAttrs...)
		for _, tag := range m.kickTags {
			var exists bool
			for _, item := range items {
				if item == tag {
					exists = true

					break
				}
			}
			if !exists {
				items = append(items, tag)
			}
		}

		return items
	case pickerVoteReason:
		var items []string
		for _, reason := range tf.KickReasons() {
			items = append(items, string(reason))
		}

		return items
	case pickerColumns:
		var items []string
		for _, column := range view.AllColumns() {
			items = append(items, string(column))
		}

		return items
	case pickerNone:
		fallthrough
	default:
		return nil
	}
}

func (m pickerModel) View() string {
	var title string
	switch m.kind {
	case pickerMarkAttr:
		title = "Mark " + m.player.Name
	case pickerVoteReason:
		title = "Vote kick " + m.player.Name
	case pickerColumns:
		title = "Columns"
	case pickerNone:
		fallthrough
	default:
		return ""
	}

	lines := []string{styles.DetailLabel.Render(title)}
	for idx, item := range m.items {
		label := item
		if m.kind == pickerColumns {
			mark := "[ ] "
			for _, enabled := range m.enabled {
				if string(enabled) == item {
					mark = "[x] "

					break
				}
			}
			label = mark + view.ColumnID(item).Title()
		}

		if idx == m.cursor {
			lines = append(lines, styles.SelectedCellStyle.Render("> "+label))
		} else {
			lines = append(lines, styles.DetailValue.Render("  "+label))
		}
	}
	lines = append(lines, styles.StatusHelp.Render("enter select · esc close"))

	return lipgloss.JoinVertical(lipgloss.Top, lines...)
}

type kickTagsMsg struct {
	tags []string
}

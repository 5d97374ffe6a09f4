package ui

import (
	"slices"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/bd-tui/internal/bdapi"
	"github.com/leighmacdonald/bd-tui/internal/config"
	"github.com/leighmacdonald/bd-tui/internal/prefs"
	"github.com/leighmacdonald/bd-tui/internal/state"
	"github.com/leighmacdonald/bd-tui/internal/ui/styles"
	"github.com/leighmacdonald/bd-tui/internal/view"
	zone "github.com/lrstanley/bubblezone"
)

// rootModel is the top level model for the ui side of the app. It owns the
// two view-model inputs, the latest snapshot and the preferences, and
// rebuilds the table projection whenever either changes. Preferences are
// replaced copy-on-write and persisted on every change.
type rootModel struct {
	currentPage  page
	previousPage page
	height       int
	width        int
	compact      bool

	snapshot  state.Snapshot
	prefs     view.Preferences
	client    *bdapi.Client
	prefStore prefs.Store

	tableModel  *tablePlayerModel
	detailModel detailPanelModel
	notesModel  notesModel
	pickerModel pickerModel
	configModel configPageModel
	helpModel   helpModel
	statusModel statusBarModel
}

func newRootModel(opts Opts) *rootModel {
	app := &rootModel{
		currentPage:  pageMain,
		previousPage: pageMain,
		compact:      opts.CompactMode,
		prefs:        opts.Preferences,
		client:       opts.Client,
		prefStore:    opts.Prefs,
		tableModel:   newPlayerTableModel(opts.Config.SteamID),
		detailModel:  newDetailPanelModel(opts.Config.Links),
		notesModel:   newNotesModel(),
		pickerModel:  newPickerModel(),
		configModel:  newConfigPageModel(opts.Config, opts.Client, opts.Loader, opts.DoSetup),
		helpModel:    newHelpModel(opts.BuildVersion, opts.BuildDate, opts.BuildCommit),
		statusModel:  newStatusBarModel(opts.BuildVersion),
	}

	if opts.DoSetup {
		app.currentPage = pageConfig
	}

	return app
}

func (m *rootModel) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("bd-tui"),
		m.configModel.Init(),
		m.notesModel.Init(),
		m.statusModel.Init(),
	)
}

func (m *rootModel) Update(inMsg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := inMsg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height
		m.width = msg.Width

		return m.propagate(contentSizeMsg{width: m.width, height: m.height - 2})
	case state.Snapshot:
		m.snapshot = msg
		_, cmdSnap := m.propagate(inMsg)
		_, cmdModel := m.propagate(m.rebuild())

		return m, tea.Batch(cmdSnap, cmdModel)
	case bdapi.UserSettings:
		return m.propagate(kickTagsMsg{tags: msg.KickTags})
	case config.Config:
		// Live config reload from the file watcher.
		return m.propagate(inMsg)
	case setPageMsg:
		m.previousPage = m.currentPage
		m.currentPage = msg.page

		return m, nil
	case sortRequestedMsg:
		return m.onSortRequested(msg.column)
	case columnToggledMsg:
		return m.onColumnToggled(msg.column)
	case saveNoteMsg:
		return m.propagateAll(inMsg, saveNote(m.client, msg.player, msg.note))
	case markAttrPickedMsg:
		return m.propagateAll(inMsg, markPlayer(m.client, msg.player, []string{msg.attr}))
	case voteReasonPickedMsg:
		return m.propagateAll(inMsg, callVote(m.client, msg.player, msg.reason))
	case tea.KeyMsg:
		if handled, model, cmd := m.onKey(msg); handled {
			return model, cmd
		}
	}

	return m.propagate(inMsg)
}

// onKey handles the global bindings. Returns handled=false when the key
// should fall through to the focused component instead.
func (m *rootModel) onKey(msg tea.KeyMsg) (bool, tea.Model, tea.Cmd) {
	if m.notesModel.active || m.pickerModel.active() || m.currentPage == pageConfig {
		if key.Matches(msg, defaultKeyMap.back) && m.currentPage == pageConfig && !m.notesModel.active {
			m.currentPage = m.previousPage

			return true, m, nil
		}

		return false, nil, nil
	}

	switch {
	case key.Matches(msg, defaultKeyMap.quit):
		return true, m, tea.Quit
	case key.Matches(msg, defaultKeyMap.help):
		m.togglePage(pageHelp)

		return true, m, nil
	case key.Matches(msg, defaultKeyMap.config):
		m.togglePage(pageConfig)

		return true, m, nil
	case key.Matches(msg, defaultKeyMap.filter):
		updated := m.prefs
		updated.MatchesOnly = !updated.MatchesOnly

		return m.handled(m.applyPrefs(updated))
	case key.Matches(msg, defaultKeyMap.reverseSort):
		updated := m.prefs
		if updated.SortDirection == view.Ascending {
			updated.SortDirection = view.Descending
		} else {
			updated.SortDirection = view.Ascending
		}

		return m.handled(m.applyPrefs(updated))
	case key.Matches(msg, defaultKeyMap.toggleCol):
		return m.handled(m.propagate(openPickerMsg{kind: pickerColumns}))
	case key.Matches(msg, defaultKeyMap.mark):
		if m.hasSelection() {
			return m.handled(m.propagate(openPickerMsg{kind: pickerMarkAttr}))
		}
	case key.Matches(msg, defaultKeyMap.vote):
		if m.hasSelection() {
			return m.handled(m.propagate(openPickerMsg{kind: pickerVoteReason}))
		}
	case key.Matches(msg, defaultKeyMap.unmark):
		if row, ok := m.tableModel.currentPlayer(); ok {
			return true, m, unmarkPlayer(m.client, row.Player)
		}
	case key.Matches(msg, defaultKeyMap.whitelist):
		if row, ok := m.tableModel.currentPlayer(); ok {
			return true, m, whitelistPlayer(m.client, row.Player)
		}
	case key.Matches(msg, defaultKeyMap.notes):
		if m.hasSelection() {
			return m.handled(m.propagate(openNotesMsg{}))
		}
	case key.Matches(msg, defaultKeyMap.launch):
		return true, m, launchGame(m.client)
	case key.Matches(msg, defaultKeyMap.quitGame):
		return true, m, quitGame(m.client)
	}

	return false, nil, nil
}

func (m *rootModel) handled(model tea.Model, cmd tea.Cmd) (bool, tea.Model, tea.Cmd) {
	return true, model, cmd
}

func (m *rootModel) hasSelection() bool {
	_, ok := m.tableModel.currentPlayer()

	return ok
}

func (m *rootModel) togglePage(target page) {
	if m.currentPage == target {
		m.currentPage = m.previousPage
	} else {
		m.previousPage = m.currentPage
		m.currentPage = target
	}
}

func (m *rootModel) onSortRequested(column view.ColumnID) (tea.Model, tea.Cmd) {
	updated := m.prefs
	if updated.SortColumn == column {
		if updated.SortDirection == view.Ascending {
			updated.SortDirection = view.Descending
		} else {
			updated.SortDirection = view.Ascending
		}
	} else {
		updated.SortColumn = column
		updated.SortDirection = view.Descending
	}

	return m.applyPrefs(updated)
}

func (m *rootModel) onColumnToggled(column view.ColumnID) (tea.Model, tea.Cmd) {
	updated := m.prefs
	if slices.Contains(updated.EnabledColumns, column) {
		// The last enabled column cant be removed, the table needs at least one.
		if len(updated.EnabledColumns) == 1 {
			return m, setStatusMessage("Cannot remove the last column", true)
		}
		columns := make([]view.ColumnID, 0, len(updated.EnabledColumns)-1)
		for _, existing := range updated.EnabledColumns {
			if existing != column {
				columns = append(columns, existing)
			}
		}
		updated.EnabledColumns = columns
	} else {
		updated.EnabledColumns = append(slices.Clone(updated.EnabledColumns), column)
	}

	return m.applyPrefs(updated)
}

// applyPrefs installs a new preference value, rebuilds the projection and
// persists in the background.
func (m *rootModel) applyPrefs(updated view.Preferences) (tea.Model, tea.Cmd) {
	m.prefs = updated

	return m.propagateAll(m.rebuild(), savePreferences(m.prefStore, updated))
}

func (m *rootModel) rebuild() viewModelMsg {
	return viewModelMsg{model: view.Build(m.snapshot, m.prefs), prefs: m.prefs}
}

func (m *rootModel) View() string {
	footer := styles.FooterContainerStyle.Width(m.width).Render(m.statusModel.View())

	var content string
	switch m.currentPage {
	case pageConfig:
		content = m.configModel.View()
	case pageHelp:
		content = m.helpModel.View()
	case pageMain:
		fallthrough
	default:
		content = m.mainView()
	}

	ctr := styles.ContentContainerStyle.Height(max(0, m.height-lipgloss.Height(footer))).Render(content)

	return zone.Scan(lipgloss.JoinVertical(lipgloss.Left, ctr, footer))
}

func (m *rootModel) mainView() string {
	tableView := m.tableModel.View()
	if m.compact {
		return tableView
	}

	var lower string
	switch {
	case m.notesModel.active:
		lower = m.notesModel.View()
	case m.pickerModel.active():
		lower = m.pickerModel.View()
	default:
		lower = m.detailModel.View()
	}

	return lipgloss.JoinVertical(lipgloss.Top, tableView, "", lower)
}

func (m *rootModel) propagate(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 7)
	var cmd tea.Cmd

	m.tableModel, cmd = m.tableModel.Update(msg)
	cmds = append(cmds, cmd)
	m.detailModel, cmd = m.detailModel.Update(msg)
	cmds = append(cmds, cmd)
	m.notesModel, cmd = m.notesModel.Update(msg)
	cmds = append(cmds, cmd)
	m.pickerModel, cmd = m.pickerModel.Update(msg)
	cmds = append(cmds, cmd)
	m.configModel, cmd = m.configModel.Update(msg)
	cmds = append(cmds, cmd)
	m.helpModel, cmd = m.helpModel.Update(msg)
	cmds = append(cmds, cmd)
	m.statusModel, cmd = m.statusModel.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m *rootModel) propagateAll(msg tea.Msg, extra ...tea.Cmd) (tea.Model, tea.Cmd) {
	model, cmd := m.propagate(msg)

	return model, tea.Batch(append([]tea.Cmd{cmd}, extra...)...)
}

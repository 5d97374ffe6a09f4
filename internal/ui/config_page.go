package ui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/bd-tui/internal/bdapi"
	"github.com/leighmacdonald/bd-tui/internal/config"
	"github.com/leighmacdonald/bd-tui/internal/ui/styles"
	"github.com/leighmacdonald/steamid/v4/steamid"
)

const (
	fieldSteamID = iota
	fieldAPIBaseURL
	fieldUpdateFreq
	fieldTF2Dir
	fieldCount
)

// configPageModel edits the local client config and, on first run, performs
// the backend setup call with the steam id and tf2 directory.
type configPageModel struct {
	inputs  []textinput.Model
	focused int
	conf    config.Config
	client  *bdapi.Client
	loader  *config.Loader
	doSetup bool
}

func newConfigPageModel(conf config.Config, client *bdapi.Client, loader *config.Loader, doSetup bool) configPageModel {
	labels := []string{"Steam ID", "API Base URL", "Update Freq (ms)", "TF2 Dir"}
	inputs := make([]textinput.Model, fieldCount)
	for idx := range inputs {
		input := textinput.New()
		input.Placeholder = labels[idx]
		input.Prompt = "> "
		inputs[idx] = input
	}

	inputs[fieldSteamID].SetValue(conf.SteamIDString)
	inputs[fieldAPIBaseURL].SetValue(conf.APIBaseURL)
	inputs[fieldUpdateFreq].SetValue(strconv.Itoa(conf.UpdateFreqMs))
	inputs[fieldSteamID].Focus()

	return configPageModel{
		inputs:  inputs,
		conf:    conf,
		client:  client,
		loader:  loader,
		doSetup: doSetup,
	}
}

func (m configPageModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m configPageModel) Update(msg tea.Msg) (configPageModel, tea.Cmd) {
	keyMsg, isKey := msg.(tea.KeyMsg)
	if !isKey {
		return m, nil
	}

	switch {
	case keyMsg.String() == "tab" || keyMsg.String() == "down":
		return m.focusField((m.focused + 1) % fieldCount), nil
	case keyMsg.String() == "shift+tab" || keyMsg.String() == "up":
		return m.focusField((m.focused + fieldCount - 1) % fieldCount), nil
	case key.Matches(keyMsg, defaultKeyMap.accept):
		return m.submit()
	}

	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)

	return m, cmd
}

func (m configPageModel) focusField(index int) configPageModel {
	m.inputs[m.focused].Blur()
	m.focused = index
	m.inputs[m.focused].Focus()

	return m
}

func (m configPageModel) submit() (configPageModel, tea.Cmd) {
	conf := m.conf

	sidValue := m.inputs[fieldSteamID].Value()
	if sidValue != "" {
		sid := steamid.New(sidValue)
		if !sid.Valid() {
			return m, setStatusMessage("Invalid steam id", true)
		}
		conf.SteamID = sid
		conf.SteamIDString = sidValue
	}

	if freq, errFreq := strconv.Atoi(m.inputs[fieldUpdateFreq].Value()); errFreq == nil && freq > 0 {
		conf.UpdateFreqMs = freq
	}
	conf.APIBaseURL = m.inputs[fieldAPIBaseURL].Value()

	m.conf = conf

	cmds := []tea.Cmd{writeConfig(m.loader, conf), setPage(pageMain)}
	if m.doSetup {
		cmds = append(cmds, setupBackend(m.client, bdapi.SetupOpts{
			SteamID: conf.SteamIDString,
			TF2Dir:  m.inputs[fieldTF2Dir].Value(),
		}))
		m.doSetup = false
	}

	return m, tea.Batch(cmds...)
}

func (m configPageModel) View() string {
	lines := []string{styles.DetailLabel.Render("Configuration")}
	for _, input := range m.inputs {
		lines = append(lines, input.View())
	}
	lines = append(lines, styles.StatusHelp.Render("tab next field · enter save · esc back"))

	return lipgloss.JoinVertical(lipgloss.Top, lines...)
}

// Package ui implements the bubbletea terminal interface.
package ui

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leighmacdonald/bd-tui/internal/bdapi"
	"github.com/leighmacdonald/bd-tui/internal/config"
	"github.com/leighmacdonald/bd-tui/internal/prefs"
	"github.com/leighmacdonald/bd-tui/internal/view"
	zone "github.com/lrstanley/bubblezone"
)

const clearMessageTimeout = time.Second * 10

var ErrUIExit = errors.New("ui error returned")

type page int

const (
	pageMain page = iota
	pageConfig
	pageHelp
)

// Opts carries everything the root model needs that is not a tea.Msg.
type Opts struct {
	Config       config.Config
	Client       *bdapi.Client
	Prefs        prefs.Store
	Preferences  view.Preferences
	Loader       *config.Loader
	DoSetup      bool
	CompactMode  bool
	BuildVersion string
	BuildDate    string
	BuildCommit  string
}

type UI struct {
	program *tea.Program
}

func New(ctx context.Context, opts Opts) *UI {
	zone.NewGlobal()

	return &UI{
		program: tea.NewProgram(
			newRootModel(opts),
			tea.WithMouseCellMotion(),
			tea.WithAltScreen(),
			tea.WithContext(ctx)),
	}
}

func (t UI) Run() error {
	if _, err := t.program.Run(); err != nil {
		return errors.Join(err, ErrUIExit)
	}

	return nil
}

func (t UI) Send(msg tea.Msg) {
	t.program.Send(msg)
}

package main

import (
	"context"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leighmacdonald/bd-tui/internal/bdapi"
	"github.com/leighmacdonald/bd-tui/internal/config"
	"github.com/leighmacdonald/bd-tui/internal/prefs"
	"github.com/leighmacdonald/bd-tui/internal/state"
	"github.com/leighmacdonald/bd-tui/internal/ui"
	"golang.org/x/sync/errgroup"
)

type UI interface {
	Send(msg tea.Msg)
	Run() error
}

// App wires the poller, the config watcher and the UI together. Very little
// logic lives here, its mostly message routing.
type App struct {
	ui            UI
	config        config.Config
	client        *bdapi.Client
	poller        *state.Poller
	prefStore     prefs.Store
	loader        *config.Loader
	updates       chan state.Snapshot
	configUpdates chan config.Config
	compact       bool
}

func NewApp(conf config.Config, client *bdapi.Client, poller *state.Poller, prefStore prefs.Store,
	loader *config.Loader, updates chan state.Snapshot, configUpdates chan config.Config, compact bool,
) *App {
	return &App{
		config:        conf,
		client:        client,
		poller:        poller,
		prefStore:     prefStore,
		loader:        loader,
		updates:       updates,
		configUpdates: configUpdates,
		compact:       compact,
	}
}

// Start brings up the background goroutines and blocks until the UI exits or
// the context is cancelled.
func (app *App) Start(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	preferences := app.prefStore.Load(ctx)

	// The backend settings and the first snapshot load concurrently. Neither
	// is required for startup, the UI renders an empty table until they land.
	group, groupCtx := errgroup.WithContext(ctx)

	var settings bdapi.UserSettings
	group.Go(func() error {
		loaded, errSettings := app.client.Settings(groupCtx)
		if errSettings != nil {
			slog.Error("Failed to fetch settings", slog.String("error", errSettings.Error()))

			return nil
		}
		settings = loaded

		return nil
	})

	doSetup := false
	group.Go(func() error {
		if _, errState := app.client.State(groupCtx); errState != nil {
			slog.Warn("Backend not reachable yet", slog.String("error", errState.Error()))
		}

		return nil
	})

	if err := group.Wait(); err != nil {
		return err
	}

	if !app.config.SteamID.Valid() {
		doSetup = true
	}

	app.ui = ui.New(ctx, ui.Opts{
		Config:       app.config,
		Client:       app.client,
		Prefs:        app.prefStore,
		Preferences:  preferences,
		Loader:       app.loader,
		DoSetup:      doSetup,
		CompactMode:  app.compact,
		BuildVersion: BuildVersion,
		BuildDate:    BuildDate,
		BuildCommit:  BuildCommit,
	})

	go app.poller.Start(ctx)
	go app.uiSender(ctx)

	app.ui.Send(settings)

	err := app.ui.Run()
	cancel()

	return err
}

// uiSender forwards snapshot and config updates to the UI.
func (app *App) uiSender(ctx context.Context) {
	for {
		select {
		case snapshot := <-app.updates:
			if app.ui != nil {
				app.ui.Send(snapshot)
			}
		case conf := <-app.configUpdates:
			if app.ui != nil {
				app.ui.Send(conf)
			}
		case <-ctx.Done():
			return
		}
	}
}

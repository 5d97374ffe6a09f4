package ui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leighmacdonald/bd-tui/internal/bdapi"
	"github.com/leighmacdonald/bd-tui/internal/config"
	"github.com/leighmacdonald/bd-tui/internal/prefs"
	"github.com/leighmacdonald/bd-tui/internal/state"
	"github.com/leighmacdonald/bd-tui/internal/tf"
	"github.com/leighmacdonald/bd-tui/internal/view"
)

// Action commands are thin wrappers over the backend dispatchers. They never
// mutate local state on success; the table reflects the change once the next
// snapshot poll lands.

func markPlayer(client *bdapi.Client, player state.Player, attrs []string) tea.Cmd {
	return func() tea.Msg {
		if err := client.Mark(context.Background(), player.SteamID, attrs); err != nil {
			return statusMsg{Message: "Failed to mark " + player.Name, Err: true}
		}

		return statusMsg{Message: fmt.Sprintf("Marked %s %v", player.Name, attrs)}
	}
}

func unmarkPlayer(client *bdapi.Client, player state.Player) tea.Cmd {
	return func() tea.Msg {
		if err := client.Unmark(context.Background(), player.SteamID); err != nil {
			return statusMsg{Message: "Failed to unmark " + player.Name, Err: true}
		}

		return statusMsg{Message: "Unmarked " + player.Name}
	}
}

func whitelistPlayer(client *bdapi.Client, player state.Player) tea.Cmd {
	enable := !player.Whitelisted

	return func() tea.Msg {
		if err := client.Whitelist(context.Background(), player.SteamID, enable); err != nil {
			return statusMsg{Message: "Failed to update whitelist for " + player.Name, Err: true}
		}

		if enable {
			return statusMsg{Message: "Whitelisted " + player.Name}
		}

		return statusMsg{Message: "Removed whitelist for " + player.Name}
	}
}

func saveNote(client *bdapi.Client, player state.Player, note string) tea.Cmd {
	return func() tea.Msg {
		if err := client.SaveNote(context.Background(), player.SteamID, note); err != nil {
			return statusMsg{Message: "Failed to save note for " + player.Name, Err: true}
		}

		return statusMsg{Message: "Saved note for " + player.Name}
	}
}

func callVote(client *bdapi.Client, player state.Player, reason tf.KickReason) tea.Cmd {
	return func() tea.Msg {
		if err := client.CallVote(context.Background(), player.SteamID, reason); err != nil {
			return statusMsg{Message: "Failed to call vote against " + player.Name, Err: true}
		}

		return statusMsg{Message: fmt.Sprintf("Called vote against %s (%s)", player.Name, reason)}
	}
}

func launchGame(client *bdapi.Client) tea.Cmd {
	return func() tea.Msg {
		if err := client.LaunchGame(context.Background()); err != nil {
			return statusMsg{Message: "Failed to launch game", Err: true}
		}

		return statusMsg{Message: "Launching game"}
	}
}

func quitGame(client *bdapi.Client) tea.Cmd {
	return func() tea.Msg {
		if err := client.QuitGame(context.Background()); err != nil {
			return statusMsg{Message: "Failed to quit game", Err: true}
		}

		return statusMsg{Message: "Quitting game"}
	}
}

func setupBackend(client *bdapi.Client, opts bdapi.SetupOpts) tea.Cmd {
	return func() tea.Msg {
		if err := client.Setup(context.Background(), opts); err != nil {
			return statusMsg{Message: "Setup failed", Err: true}
		}

		return statusMsg{Message: "Setup complete"}
	}
}

func writeConfig(loader *config.Loader, conf config.Config) tea.Cmd {
	return func() tea.Msg {
		if err := loader.Write(conf); err != nil {
			return statusMsg{Message: "Failed to write config", Err: true}
		}

		return statusMsg{Message: "Config saved"}
	}
}

// savePreferences persists the view preferences in the background. Failures
// only cost the user their display settings on the next start, so they are
// reported but otherwise ignored.
func savePreferences(store prefs.Store, preferences view.Preferences) tea.Cmd {
	return func() tea.Msg {
		if err := store.Save(context.Background(), preferences); err != nil {
			return statusMsg{Message: "Failed to save view preferences", Err: true}
		}

		return nil
	}
}

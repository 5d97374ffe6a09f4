// Package state owns the polled game snapshot. A snapshot is immutable once
// built and replaced wholesale on every poll tick.
package state

import (
	"log/slog"
	"time"

	"github.com/leighmacdonald/bd-tui/internal/bdapi"
	"github.com/leighmacdonald/bd-tui/internal/tf"
	"github.com/leighmacdonald/steamid/v4/steamid"
)

type Player struct {
	SteamID          steamid.SteamID
	Name             string
	UserID           int
	AvatarHash       string
	Score            int
	Kills            int
	Deaths           int
	Health           int
	Ping             int
	KPM              float64
	ConnectedSeconds int
	MapTimeSeconds   int
	Alive            bool
	Connected        bool
	Team             tf.Team
	Visibility       tf.ProfileVisibility
	VacBans          int
	GameBans         int
	CommunityBanned  bool
	Notes            string
	Whitelisted      bool
	Matches          []bdapi.Match
	Sourcebans       []bdapi.SourcebanRecord
}

type Players []Player

func (p Players) TeamCount(team tf.Team) int {
	var count int
	for _, player := range p {
		if player.Team == team {
			count++
		}
	}

	return count
}

type Server struct {
	Name       string
	CurrentMap string
	Tags       []string
	LastUpdate time.Time
}

type Snapshot struct {
	GameRunning bool
	Server      Server
	Players     Players
}

// FromAPI maps a backend state response onto a snapshot. KPM is derived here
// rather than trusted from the backend, guarded against a zero connected
// time. A duplicate steam id within one response is a contract violation on
// the backend side and is logged rather than silently merged.
func FromAPI(resp bdapi.State) Snapshot {
	snapshot := Snapshot{
		GameRunning: resp.GameRunning,
		Server: Server{
			Name:       resp.Server.ServerName,
			CurrentMap: resp.Server.CurrentMap,
			Tags:       resp.Server.Tags,
			LastUpdate: resp.Server.LastUpdate,
		},
		Players: make(Players, 0, len(resp.Players)),
	}

	seen := make(map[steamid.SteamID]bool, len(resp.Players))
	for _, player := range resp.Players {
		if seen[player.SteamID] {
			slog.Error("Duplicate steam id in state response",
				slog.String("steam_id", player.SteamID.String()),
				slog.String("name", player.Name))
		}
		seen[player.SteamID] = true

		snapshot.Players = append(snapshot.Players, Player{
			SteamID:          player.SteamID,
			Name:             player.Name,
			UserID:           player.UserID,
			AvatarHash:       player.AvatarHash,
			Score:            player.Score,
			Kills:            player.Kills,
			Deaths:           player.Deaths,
			Health:           player.Health,
			Ping:             player.Ping,
			KPM:              killsPerMinute(player.Kills, player.Connected),
			ConnectedSeconds: int(player.Connected),
			MapTimeSeconds:   int(player.MapTime),
			Alive:            player.Alive,
			Connected:        player.IsConnected,
			Team:             player.Team,
			Visibility:       player.Visibility,
			VacBans:          player.NumberOfVacBans,
			GameBans:         player.NumberOfGameBans,
			CommunityBanned:  player.CommunityBanned,
			Notes:            player.Notes,
			Whitelisted:      player.Whitelist,
			Matches:          player.Matches,
			Sourcebans:       player.Sourcebans,
		})
	}

	return snapshot
}

func killsPerMinute(kills int, connectedSeconds float64) float64 {
	if connectedSeconds <= 0 {
		return 0
	}

	return float64(kills) / (connectedSeconds / 60)
}

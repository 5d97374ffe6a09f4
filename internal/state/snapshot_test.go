package state

import (
	"testing"
	"time"

	"github.com/leighmacdonald/bd-tui/internal/bdapi"
	"github.com/leighmacdonald/bd-tui/internal/tf"
	"github.com/leighmacdonald/steamid/v4/steamid"
	"github.com/stretchr/testify/require"
)

func TestFromAPI(t *testing.T) {
	lastUpdate := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	resp := bdapi.State{
		GameRunning: true,
		Server: bdapi.Server{
			ServerName: "test server",
			CurrentMap: "pl_upward",
			Tags:       []string{"payload"},
			LastUpdate: lastUpdate,
		},
		Players: []bdapi.Player{
			{
				SteamID:     steamid.New(76561197960265729),
				Name:        "player one",
				Kills:       10,
				Connected:   120,
				Team:        tf.RED,
				IsConnected: true,
			},
		},
	}

	snapshot := FromAPI(resp)
	require.True(t, snapshot.GameRunning)
	require.Equal(t, "pl_upward", snapshot.Server.CurrentMap)
	require.Equal(t, lastUpdate, snapshot.Server.LastUpdate)
	require.Len(t, snapshot.Players, 1)
	require.Equal(t, 120, snapshot.Players[0].ConnectedSeconds)
	// 10 kills over 2 minutes.
	require.InDelta(t, 5.0, snapshot.Players[0].KPM, 0.001)
}

func TestFromAPIKPMZeroConnected(t *testing.T) {
	resp := bdapi.State{
		Players: []bdapi.Player{
			{SteamID: steamid.New(76561197960265729), Kills: 10, Connected: 0},
		},
	}

	snapshot := FromAPI(resp)
	require.Zero(t, snapshot.Players[0].KPM)
}

func TestFromAPIKeepsDuplicates(t *testing.T) {
	sid := steamid.New(76561197960265729)
	resp := bdapi.State{
		Players: []bdapi.Player{
			{SteamID: sid, Name: "first"},
			{SteamID: sid, Name: "second"},
		},
	}

	// Duplicates are a backend bug; they get logged but not merged.
	snapshot := FromAPI(resp)
	require.Len(t, snapshot.Players, 2)
}

func TestTeamCount(t *testing.T) {
	players := Players{
		{Team: tf.RED},
		{Team: tf.RED},
		{Team: tf.BLU},
		{Team: tf.SPEC},
	}

	require.Equal(t, 2, players.TeamCount(tf.RED))
	require.Equal(t, 1, players.TeamCount(tf.BLU))
	require.Equal(t, 0, players.TeamCount(tf.UNASSIGNED))
}

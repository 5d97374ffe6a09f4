package bdapi_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/leighmacdonald/bd-tui/internal/bdapi"
	"github.com/leighmacdonald/bd-tui/internal/tf"
	"github.com/leighmacdonald/steamid/v4/steamid"
	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	method string
	path   string
	body   string
}

func testServer(t *testing.T, status int, response string) (*bdapi.Client, *recordedRequest) {
	t.Helper()

	recorded := &recordedRequest{}
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, req *http.Request) {
		body, errBody := io.ReadAll(req.Body)
		require.NoError(t, errBody)

		recorded.method = req.Method
		recorded.path = req.URL.Path
		recorded.body = string(body)

		writer.WriteHeader(status)
		_, _ = writer.Write([]byte(response))
	}))
	t.Cleanup(server.Close)

	return bdapi.New(server.URL, server.Client()), recorded
}

func TestState(t *testing.T) {
	client, recorded := testServer(t, http.StatusOK, `{
		"game_running": true,
		"server": {"server_name": "test server", "current_map": "pl_badwater"},
		"players": [
			{"steam_id": "76561197960265729", "name": "player one", "kills": 4, "is_connected": true}
		]
	}`)

	resp, errState := client.State(t.Context())
	require.NoError(t, errState)
	require.Equal(t, http.MethodGet, recorded.method)
	require.Equal(t, "/api/state", recorded.path)
	require.True(t, resp.GameRunning)
	require.Equal(t, "pl_badwater", resp.Server.CurrentMap)
	require.Len(t, resp.Players, 1)
	require.Equal(t, steamid.New(76561197960265729), resp.Players[0].SteamID)
	require.Equal(t, 4, resp.Players[0].Kills)
}

func TestStateBadStatus(t *testing.T) {
	client, _ := testServer(t, http.StatusInternalServerError, "")

	_, errState := client.State(t.Context())
	require.ErrorIs(t, errState, bdapi.ErrRequestStatus)
}

func TestStateBadBody(t *testing.T) {
	client, _ := testServer(t, http.StatusOK, "not json")

	_, errState := client.State(t.Context())
	require.ErrorIs(t, errState, bdapi.ErrResponseDecode)
}

func TestMark(t *testing.T) {
	client, recorded := testServer(t, http.StatusOK, "")
	sid := steamid.New(76561197960265729)

	require.NoError(t, client.Mark(t.Context(), sid, []string{"cheater"}))
	require.Equal(t, http.MethodPost, recorded.method)
	require.Equal(t, "/api/mark/"+sid.String(), recorded.path)

	var body map[string][]string
	require.NoError(t, json.Unmarshal([]byte(recorded.body), &body))
	require.Equal(t, []string{"cheater"}, body["attrs"])
}

func TestMarkInvalidSteamID(t *testing.T) {
	client, _ := testServer(t, http.StatusOK, "")

	var invalid steamid.SteamID
	require.Error(t, client.Mark(t.Context(), invalid, []string{"cheater"}))
}

func TestUnmark(t *testing.T) {
	client, recorded := testServer(t, http.StatusOK, "")
	sid := steamid.New(76561197960265729)

	require.NoError(t, client.Unmark(t.Context(), sid))
	require.Equal(t, http.MethodDelete, recorded.method)
	require.Equal(t, "/api/mark/"+sid.String(), recorded.path)
}

func TestWhitelist(t *testing.T) {
	client, recorded := testServer(t, http.StatusOK, "")
	sid := steamid.New(76561197960265729)

	require.NoError(t, client.Whitelist(t.Context(), sid, true))
	require.Equal(t, http.MethodPost, recorded.method)
	require.Equal(t, "/api/whitelist/"+sid.String(), recorded.path)

	require.NoError(t, client.Whitelist(t.Context(), sid, false))
	require.Equal(t, http.MethodDelete, recorded.method)
}

func TestSaveNote(t *testing.T) {
	client, recorded := testServer(t, http.StatusOK, "")
	sid := steamid.New(76561197960265729)

	require.NoError(t, client.SaveNote(t.Context(), sid, "aimbots on sniper"))
	require.Equal(t, http.MethodPost, recorded.method)
	require.Equal(t, "/api/notes/"+sid.String(), recorded.path)
	require.JSONEq(t, `{"note": "aimbots on sniper"}`, recorded.body)
}

func TestDeleteNote(t *testing.T) {
	client, recorded := testServer(t, http.StatusOK, "")
	sid := steamid.New(76561197960265729)

	require.NoError(t, client.DeleteNote(t.Context(), sid))
	require.Equal(t, http.MethodDelete, recorded.method)
	require.Equal(t, "/api/notes/"+sid.String(), recorded.path)
}

func TestCallVote(t *testing.T) {
	client, recorded := testServer(t, http.StatusOK, "")
	sid := steamid.New(76561197960265729)

	require.NoError(t, client.CallVote(t.Context(), sid, tf.KickReasonCheating))
	require.Equal(t, http.MethodPost, recorded.method)
	require.Equal(t, "/api/callvote/"+sid.String()+"/cheating", recorded.path)
}

func TestLaunchAndQuit(t *testing.T) {
	client, recorded := testServer(t, http.StatusOK, "")

	require.NoError(t, client.LaunchGame(t.Context()))
	require.Equal(t, "/api/launch", recorded.path)
	require.Equal(t, http.MethodGet, recorded.method)

	require.NoError(t, client.QuitGame(t.Context()))
	require.Equal(t, "/api/quit", recorded.path)
}

func TestSaveSettings(t *testing.T) {
	client, recorded := testServer(t, http.StatusOK, "")

	settings := bdapi.UserSettings{KickTags: []string{"cheater", "bot"}}
	require.NoError(t, client.SaveSettings(t.Context(), settings))
	require.Equal(t, http.MethodPut, recorded.method)
	require.Equal(t, "/api/settings", recorded.path)
}

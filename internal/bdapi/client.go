// Package bdapi is a thin client for the bot detector backend REST API. All
// mutations go through the backend; the UI only reflects changes once they
// show up in a subsequent state poll.
package bdapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/leighmacdonald/bd-tui/internal/encoding"
	"github.com/leighmacdonald/bd-tui/internal/tf"
	"github.com/leighmacdonald/steamid/v4/steamid"
)

var (
	ErrRequestCreate  = errors.New("failed to create request")
	ErrRequestPerform = errors.New("failed to perform request")
	ErrRequestStatus  = errors.New("request returned a non-2xx status")
	ErrResponseDecode = errors.New("failed to decode response")
	errInvalidSteamID = errors.New("invalid steam id")
)

// HTTPDoer defines a common interface for HTTP clients.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// New creates a backend client rooted at baseURL, eg. http://localhost:8900.
func New(baseURL string, httpClient HTTPDoer) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: httpClient,
	}
}

type Client struct {
	baseURL    string
	httpClient HTTPDoer
}

// State fetches the current game snapshot.
func (c *Client) State(ctx context.Context) (State, error) {
	return request[State](ctx, c, http.MethodGet, "/api/state", nil)
}

// Settings fetches the backend-owned user settings document.
func (c *Client) Settings(ctx context.Context) (UserSettings, error) {
	return request[UserSettings](ctx, c, http.MethodGet, "/api/settings", nil)
}

// SaveSettings persists the full settings document. Callers must send a
// complete document, the backend does not merge partial updates.
func (c *Client) SaveSettings(ctx context.Context, settings UserSettings) error {
	return c.exec(ctx, http.MethodPut, "/api/settings", settings)
}

// Setup performs the first-run configuration of the backend.
func (c *Client) Setup(ctx context.Context, opts SetupOpts) error {
	return c.exec(ctx, http.MethodPost, "/api/setup", opts)
}

// Mark attaches the provided attributes to a player on the local list.
// Marking a player twice with the same attributes is not an error.
func (c *Client) Mark(ctx context.Context, steamID steamid.SteamID, attrs []string) error {
	if !steamID.Valid() {
		return errInvalidSteamID
	}

	return c.exec(ctx, http.MethodPost, "/api/mark/"+steamID.String(), markOpts{Attrs: attrs})
}

// Unmark removes a player from the local list. Unmarking a player with no
// existing mark is not an error.
func (c *Client) Unmark(ctx context.Context, steamID steamid.SteamID) error {
	if !steamID.Valid() {
		return errInvalidSteamID
	}

	return c.exec(ctx, http.MethodDelete, "/api/mark/"+steamID.String(), nil)
}

// Whitelist adds or removes a player from the local whitelist.
func (c *Client) Whitelist(ctx context.Context, steamID steamid.SteamID, enable bool) error {
	if !steamID.Valid() {
		return errInvalidSteamID
	}

	method := http.MethodPost
	if !enable {
		method = http.MethodDelete
	}

	return c.exec(ctx, method, "/api/whitelist/"+steamID.String(), nil)
}

// SaveNote stores a note for a player. An empty note clears it.
func (c *Client) SaveNote(ctx context.Context, steamID steamid.SteamID, note string) error {
	if !steamID.Valid() {
		return errInvalidSteamID
	}

	return c.exec(ctx, http.MethodPost, "/api/notes/"+steamID.String(), noteOpts{Note: note})
}

// DeleteNote removes a players note entirely.
func (c *Client) DeleteNote(ctx context.Context, steamID steamid.SteamID) error {
	if !steamID.Valid() {
		return errInvalidSteamID
	}

	return c.exec(ctx, http.MethodDelete, "/api/notes/"+steamID.String(), nil)
}

// CallVote triggers an in-game vote kick against the player.
func (c *Client) CallVote(ctx context.Context, steamID steamid.SteamID, reason tf.KickReason) error {
	if !steamID.Valid() {
		return errInvalidSteamID
	}

	return c.exec(ctx, http.MethodPost, fmt.Sprintf("/api/callvote/%s/%s", steamID.String(), reason), nil)
}

// LaunchGame asks the backend to start the monitored game process.
func (c *Client) LaunchGame(ctx context.Context) error {
	return c.exec(ctx, http.MethodGet, "/api/launch", nil)
}

// QuitGame asks the backend to stop the monitored game process.
func (c *Client) QuitGame(ctx context.Context) error {
	return c.exec(ctx, http.MethodGet, "/api/quit", nil)
}

type markOpts struct {
	Attrs []string `json:"attrs"`
}

type noteOpts struct {
	Note string `json:"note"`
}

func (c *Client) do(ctx context.Context, method string, path string, body any) (*http.Response, error) {
	requestURL, errURL := url.JoinPath(c.baseURL, path)
	if errURL != nil {
		return nil, errors.Join(errURL, ErrRequestCreate)
	}

	var reader io.Reader
	if body != nil {
		encoded, errEncode := encoding.MarshalJSON(body)
		if errEncode != nil {
			return nil, errors.Join(errEncode, ErrRequestCreate)
		}
		reader = encoded
	}

	req, errReq := http.NewRequestWithContext(ctx, method, requestURL, reader)
	if errReq != nil {
		return nil, errors.Join(errReq, ErrRequestCreate)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, errResp := c.httpClient.Do(req)
	if errResp != nil {
		return nil, errors.Join(errResp, ErrRequestPerform)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		closeBody(resp.Body)

		return nil, fmt.Errorf("%w: %s %s (%d)", ErrRequestStatus, method, path, resp.StatusCode)
	}

	return resp, nil
}

// exec performs a request where the caller only cares about success.
func (c *Client) exec(ctx context.Context, method string, path string, body any) error {
	resp, errResp := c.do(ctx, method, path, body)
	if errResp != nil {
		return errResp
	}
	closeBody(resp.Body)

	return nil
}

func request[T any](ctx context.Context, client *Client, method string, path string, body any) (T, error) {
	var value T
	resp, errResp := client.do(ctx, method, path, body)
	if errResp != nil {
		return value, errResp
	}

	defer closeBody(resp.Body)

	decoded, errDecode := encoding.UnmarshalJSON[T](resp.Body)
	if errDecode != nil {
		return value, errors.Join(errDecode, ErrResponseDecode)
	}

	return decoded, nil
}

func closeBody(body io.ReadCloser) {
	if err := body.Close(); err != nil {
		slog.Error("Failed to close response body", slog.String("error", err.Error()))
	}
}

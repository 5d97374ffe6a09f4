package bdapi

import (
	"time"

	"github.com/leighmacdonald/bd-tui/internal/tf"
	"github.com/leighmacdonald/steamid/v4/steamid"
)

// State is the full poll result returned from /api/state. It is replaced
// wholesale every tick, never patched.
type State struct {
	GameRunning bool     `json:"game_running"`
	Server      Server   `json:"server"`
	Players     []Player `json:"players"`
}

type Server struct {
	ServerName string    `json:"server_name"`
	CurrentMap string    `json:"current_map"`
	Tags       []string  `json:"tags"`
	LastUpdate time.Time `json:"last_update"`
}

type Player struct {
	SteamID          steamid.SteamID      `json:"steam_id"`
	Name             string               `json:"name"`
	UserID           int                  `json:"user_id"`
	AvatarHash       string               `json:"avatar_hash"`
	Score            int                  `json:"score"`
	Kills            int                  `json:"kills"`
	Deaths           int                  `json:"deaths"`
	Health           int                  `json:"health"`
	Ping             int                  `json:"ping"`
	Connected        float64              `json:"connected"`
	MapTime          float64              `json:"map_time"`
	Alive            bool                 `json:"alive"`
	IsConnected      bool                 `json:"is_connected"`
	Team             tf.Team              `json:"team"`
	Visibility       tf.ProfileVisibility `json:"visibility"`
	NumberOfVacBans  int                  `json:"number_of_vac_bans"`
	NumberOfGameBans int                  `json:"number_of_game_bans"`
	CommunityBanned  bool                 `json:"community_banned"`
	Notes            string               `json:"notes"`
	Whitelist        bool                 `json:"whitelist"`
	Matches          []Match              `json:"matches"`
	Sourcebans       []SourcebanRecord    `json:"sourcebans"`
}

// Match records the provenance of a player list hit.
type Match struct {
	Origin      string   `json:"origin"`
	MatcherType string   `json:"matcher_type"`
	Attributes  []string `json:"attributes"`
}

type SourcebanRecord struct {
	SiteName    string    `json:"site_name"`
	PersonaName string    `json:"persona_name"`
	Reason      string    `json:"reason"`
	Permanent   bool      `json:"permanent"`
	CreatedOn   time.Time `json:"created_on"`
}

// UserSettings is the backend-owned settings document. This is a superset of
// anything the panel edits directly; unknown fields round-trip untouched on
// the backend side so we only model what the UI exposes.
type UserSettings struct {
	SteamID                 string     `json:"steam_id"`
	TF2Dir                  string     `json:"tf2_dir"`
	APIKey                  string     `json:"api_key"`
	KickEnabled             bool       `json:"kicker_enabled"`
	KickTags                []string   `json:"kick_tags"`
	ChatWarningsEnabled     bool       `json:"chat_warnings_enabled"`
	PartyWarningsEnabled    bool       `json:"party_warnings_enabled"`
	DiscordPresenceEnabled  bool       `json:"discord_presence_enabled"`
	AutoLaunchGame          bool       `json:"auto_launch_game"`
	AutoCloseOnGameExit     bool       `json:"auto_close_on_game_exit"`
	DebugLogEnabled         bool       `json:"debug_log_enabled"`
	Lists                   []UserList `json:"lists"`
	Links                   []UserLink `json:"links"`
	RCONStatic              bool       `json:"rcon_static"`
	HTTPEnabled             bool       `json:"http_enabled"`
	HTTPListenAddr          string     `json:"http_listen_addr"`
	PlayerExpiredTimeout    int        `json:"player_expired_timeout"`
	PlayerDisconnectTimeout int        `json:"player_disconnect_timeout"`
}

type UserList struct {
	ListType string `json:"list_type"`
	Name     string `json:"name"`
	Enabled  bool   `json:"enabled"`
	URL      string `json:"url"`
}

type UserLink struct {
	Enabled  bool   `json:"enabled"`
	Name     string `json:"name"`
	URL      string `json:"url"`
	IDFormat string `json:"id_format"`
}

// SetupOpts is the first-run payload for /api/setup.
type SetupOpts struct {
	SteamID string `json:"steam_id"`
	TF2Dir  string `json:"tf2_dir"`
}

package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path"
	"time"

	"github.com/adrg/xdg"
	"github.com/leighmacdonald/steamid/v4/steamid"
)

var (
	errConfigWrite = errors.New("failed to write config file")
	errConfigRead  = errors.New("failed to read config file")
	errLoggerInit  = errors.New("failed to initialize logger")
)

const (
	ConfigDirName      = "bd-tui"
	DefaultConfigName  = "bd-tui"
	DefaultDBName      = "bd-tui.db"
	DefaultLogName     = "bd-tui.log"
	EnvPrefix          = "bdtui"
	DefaultHTTPTimeout = 15 * time.Second
)

type Config struct {
	SteamID       steamid.SteamID `mapstructure:"-"`
	SteamIDString string          `mapstructure:"steam_id"`
	// APIBaseURL points at the bot detector backend that owns the game
	// process and the player lists.
	APIBaseURL   string     `mapstructure:"api_base_url"`
	UpdateFreqMs int        `mapstructure:"update_freq_ms,omitempty"`
	Links        []UserLink `mapstructure:"links"`
	Debug        bool       `mapstructure:"debug"`
}

type SIDFormats string

const (
	Steam64 SIDFormats = "steam64"
	Steam2  SIDFormats = "steam"
	Steam3  SIDFormats = "steam3"
)

type UserLink struct {
	URL    string     `mapstructure:"url"`
	Name   string     `mapstructure:"name"`
	Format SIDFormats `mapstructure:"format"`
}

func (u UserLink) Generate(steamID steamid.SteamID) string {
	switch u.Format {
	case Steam2:
		return fmt.Sprintf(u.URL, steamID.Steam(false))
	case Steam3:
		return fmt.Sprintf(u.URL, steamID.Steam3())
	case Steam64:
		fallthrough
	default:
		return fmt.Sprintf(u.URL, steamID.String())
	}
}

// Path generates a path pointing to the filename under this apps defined $XDG_CONFIG_HOME.
func Path(name string) string {
	fullPath, errFullPath := xdg.ConfigFile(path.Join(ConfigDirName, name))
	if errFullPath != nil {
		panic(errFullPath)
	}

	return fullPath
}

// LoggerInit sets up the slog global handler to use a log file as we cant print to the console.
func LoggerInit(logPath string, level slog.Level) (io.Closer, error) {
	logFile, errLogFile := os.Create(path.Join(xdg.ConfigHome, ConfigDirName, logPath))
	if errLogFile != nil {
		return nil, errors.Join(errLogFile, errLoggerInit)
	}

	logger := slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{
		AddSource: false,
		Level:     level,
	}))

	slog.SetDefault(logger)

	return logFile, nil
}

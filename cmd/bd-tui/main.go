package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/fang"
	_ "github.com/joho/godotenv/autoload"
	"github.com/leighmacdonald/bd-tui/internal/bdapi"
	"github.com/leighmacdonald/bd-tui/internal/config"
	"github.com/leighmacdonald/bd-tui/internal/prefs"
	"github.com/leighmacdonald/bd-tui/internal/state"
	"github.com/leighmacdonald/bd-tui/internal/store"
	"github.com/spf13/cobra"
)

var (
	BuildVersion   = "master"
	BuildCommit    = "00000000"
	BuildDate      = time.Now().Format("2006-01-02T15:04:05Z")
	BuildGoVersion = runtime.Version()
	cfgFile        string
	compactMode    bool

	rootCmd = &cobra.Command{
		Use:   "bd-tui",
		Short: "Bot detector control panel",
		Long:  `bd-tui - A terminal control panel for the bot detector backend`,
		RunE:  run,
	}

	widgetCmd = &cobra.Command{
		Use:   "widget",
		Short: "Run the compact table-only widget",
		Long:  "Run only the live player table, suitable for embedding in a tiled layout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			compactMode = true

			return run(cmd, args)
		},
	}

	versionCmd = &cobra.Command{
		Use:               "version",
		Short:             "Print version information",
		Long:              "Print detailed version information about bd-tui",
		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		Run:               version,
	}
)

var errApp = errors.New("application error")

func main() {
	configPath := config.Path(config.DefaultConfigName)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", configPath, "Config file path")
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(widgetCmd)

	if err := fang.Execute(context.Background(), rootCmd); err != nil {
		slog.Error("Exited with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func version(_ *cobra.Command, _ []string) {
	fmt.Printf("bd-tui - Bot detector control panel\n\n") //nolint:forbidigo
	fmt.Printf("  Version: %s\n", BuildVersion)           //nolint:forbidigo
	fmt.Printf("  Commit:  %s\n", BuildCommit)            //nolint:forbidigo
	fmt.Printf("  Built:   %s\n", BuildDate)              //nolint:forbidigo
	fmt.Printf("  Runtime: %s\n\n", BuildGoVersion)       //nolint:forbidigo
}

// run is the main entry point of bd-tui.
func run(cmd *cobra.Command, _ []string) error {
	// If PROFILE is set, it will be used as the output file path for the profiler.
	if len(os.Getenv("PROFILE")) > 0 {
		profileFile, err := os.Create(os.Getenv("PROFILE"))
		if err != nil {
			return errors.Join(err, errApp)
		}

		if errStart := pprof.StartCPUProfile(profileFile); errStart != nil {
			return errors.Join(errStart, errApp)
		}
		defer pprof.StopCPUProfile()
	}

	// Make sure our config & data home exists.
	if err := os.MkdirAll(path.Join(xdg.ConfigHome, config.ConfigDirName), 0o750); err != nil {
		return errors.Join(err, errApp)
	}

	configUpdates := make(chan config.Config)
	configLoader := config.NewLoader(configUpdates)
	userConfig, errConfig := configLoader.Read()
	if errConfig != nil {
		return errors.Join(errApp, errConfig)
	}

	// Setup file based logger. This is very useful for us as our console is taken over by the ui.
	logLevel := slog.LevelInfo
	if userConfig.Debug {
		logLevel = slog.LevelDebug
	}
	logFile, errLogger := config.LoggerInit(config.DefaultLogName, logLevel)
	if errLogger != nil {
		return errors.Join(errLogger, errApp)
	}

	defer func(closer io.Closer) {
		if err := closer.Close(); err != nil {
			slog.Error("Failed to close log file", slog.String("error", err.Error()))
		}
	}(logFile)

	slog.Info("Starting bd-tui", slog.String("version", BuildVersion),
		slog.String("commit", BuildCommit), slog.String("date", BuildDate),
		slog.String("go", runtime.Version()))

	// Local sqlite store for the view preferences.
	database, errDB := store.Open(cmd.Context(), config.Path(config.DefaultDBName))
	if errDB != nil {
		return errors.Join(errDB, errApp)
	}

	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Error closing database", slog.String("error", err.Error()))
		}
	}()

	httpClient := &http.Client{Timeout: config.DefaultHTTPTimeout}
	client := bdapi.New(userConfig.APIBaseURL, httpClient)

	updates := make(chan state.Snapshot)
	poller := state.NewPoller(client,
		time.Millisecond*time.Duration(userConfig.UpdateFreqMs), updates)

	app := NewApp(userConfig, client, poller, prefs.New(database), configLoader, updates, configUpdates, compactMode)

	return app.Start(cmd.Context())
}

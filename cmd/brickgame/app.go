package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/brickgame/internal/config"
	"github.com/vovakirdan/brickgame/internal/core"
	"github.com/vovakirdan/brickgame/internal/registry"
	"github.com/vovakirdan/brickgame/internal/storage"
)

// app holds what every interactive command needs: resolved config, the
// logger and, for the sqlite backend, the open score store.
type app struct {
	cfg     config.Config
	logger  *log.Logger
	store   *storage.Store
	logFile io.Closer
}

// newApp loads config, applies flag overrides and opens storage.
// A store that cannot be opened falls back to the file backend.
func newApp() (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	a := &app{cfg: cfg}
	a.logger = a.openLogger()

	if cfg.Storage.Backend == config.BackendSQLite {
		store, err := storage.Open(cfg.Storage.DBPath)
		if err != nil {
			a.logger.Warn("could not open scores database, using score files", "path", cfg.Storage.DBPath, "error", err)
		} else {
			a.store = store
		}
	}

	a.logger.Debug("started", "backend", cfg.Storage.Backend, "seed", flagSeed)
	return a, nil
}

// loadConfig reads the config file and applies the global flags.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagStore != "" {
		cfg.Storage.Backend = flagStore
	}
	if flagDBPath != "" {
		cfg.Storage.DBPath = flagDBPath
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// openLogger writes to the configured log file so output never lands on
// the alternate screen. Stderr is used when the file cannot be opened.
func (a *app) openLogger() *log.Logger {
	var w io.Writer = os.Stderr
	if path, err := storage.ExpandPath(a.cfg.Log.File); err == nil && path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err == nil {
			if f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); err == nil {
				w = f
				a.logFile = f
			}
		}
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "brickgame",
	})
	if level, err := log.ParseLevel(a.cfg.Log.Level); err == nil {
		logger.SetLevel(level)
	}
	return logger
}

// keeper returns the high-score keeper for gameID on the active backend.
func (a *app) keeper(gameID string) core.ScoreKeeper {
	if a.store != nil {
		return a.store.Keeper(gameID, a.logger)
	}
	return storage.NewFileKeeper(a.cfg.Game(gameID).ScoreFile, a.logger)
}

// create builds a game with its collaborators wired from config.
func (a *app) create(gameID string) (registry.Game, error) {
	return registry.Create(gameID, registry.Deps{
		Scores: a.keeper(gameID),
		Rand:   core.NewSource(flagSeed),
		Frame:  a.cfg.Game(gameID).Frame(),
	})
}

// Close releases the store and the log file.
func (a *app) Close() {
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			a.logger.Warn("could not close scores database", "error", err)
		}
	}
	if a.logFile != nil {
		a.logFile.Close()
	}
}

// runtimeConfig reports the terminal size for the first frame.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	return cfg
}

// mustExist exits with the standard error when gameID is not registered.
func mustExist(gameID string) {
	if registry.Exists(gameID) {
		return
	}
	fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
	fmt.Fprintln(os.Stderr, "Run 'brickgame list' to see available games.")
	os.Exit(1)
}

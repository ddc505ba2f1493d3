// Package config provides YAML-based configuration loading for brickgame.
package config

import (
	"fmt"
	"strings"
	"time"
)

// Storage backends.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Config is the full application configuration.
type Config struct {
	Tetris  GameConfig    `yaml:"tetris"`
	Snake   GameConfig    `yaml:"snake"`
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
}

// GameConfig holds per-game owner settings.
type GameConfig struct {
	FrameMS   int    `yaml:"frame_ms"`   // Owner loop cadence in milliseconds
	ScoreFile string `yaml:"score_file"` // High-score text file for the file backend
}

// Frame returns the owner loop cadence.
func (g GameConfig) Frame() time.Duration {
	return time.Duration(g.FrameMS) * time.Millisecond
}

// StorageConfig selects where high scores live.
type StorageConfig struct {
	Backend string `yaml:"backend"` // "file" or "sqlite"
	DBPath  string `yaml:"db_path"`
}

// LogConfig controls the application logger.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`
}

// Game returns the settings for a game ID. Unknown IDs get zero settings.
func (c Config) Game(id string) GameConfig {
	switch id {
	case "tetris":
		return c.Tetris
	case "snake":
		return c.Snake
	default:
		return GameConfig{}
	}
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.Tetris.FrameMS <= 0 {
		return fmt.Errorf("config: tetris.frame_ms must be positive, got %d", c.Tetris.FrameMS)
	}
	if c.Snake.FrameMS <= 0 {
		return fmt.Errorf("config: snake.frame_ms must be positive, got %d", c.Snake.FrameMS)
	}
	switch c.Storage.Backend {
	case BackendFile:
		if c.Tetris.ScoreFile == "" || c.Snake.ScoreFile == "" {
			return fmt.Errorf("config: file backend needs tetris.score_file and snake.score_file")
		}
	case BackendSQLite:
		if c.Storage.DBPath == "" {
			return fmt.Errorf("config: sqlite backend needs storage.db_path")
		}
	default:
		return fmt.Errorf("config: unknown storage backend %q", c.Storage.Backend)
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unknown log level %q", c.Log.Level)
	}
	return nil
}

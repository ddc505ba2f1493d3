package config

import (
	_ "embed"
)

//go:embed defaults/brickgame.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Tetris: GameConfig{
			FrameMS:   33,
			ScoreFile: "max_score.txt",
		},
		Snake: GameConfig{
			FrameMS:   50,
			ScoreFile: "highscore.txt",
		},
		Storage: StorageConfig{
			Backend: BackendFile,
			DBPath:  "~/.brickgame/scores.db",
		},
		Log: LogConfig{
			Level: "info",
			File:  "~/.brickgame/brickgame.log",
		},
	}
}

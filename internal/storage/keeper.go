package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
)

// FileKeeper keeps one high score as plain decimal text. Missing or
// malformed files read as zero; write failures are logged and dropped.
type FileKeeper struct {
	path   string
	logger *log.Logger
}

// NewFileKeeper creates a keeper for path. A nil logger discards warnings.
func NewFileKeeper(path string, logger *log.Logger) *FileKeeper {
	return &FileKeeper{path: path, logger: logger}
}

// Path returns the file location.
func (k *FileKeeper) Path() string {
	return k.path
}

// Load returns the stored value, or 0 when it cannot be read.
func (k *FileKeeper) Load() int {
	score, err := k.read()
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			warn(k.logger, "could not read high score", "path", k.path, "error", err)
		}
		return 0
	}
	return score
}

func (k *FileKeeper) read() (int, error) {
	path, err := ExpandPath(k.path)
	if err != nil {
		return 0, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	score, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, fmt.Errorf("storage: malformed high score: %w", err)
	}
	if score < 0 {
		return 0, fmt.Errorf("storage: negative high score %d", score)
	}
	return score, nil
}

// Save writes score, replacing the previous value.
func (k *FileKeeper) Save(score int) {
	if err := k.write(score); err != nil {
		warn(k.logger, "could not save high score", "path", k.path, "error", err)
	}
}

func (k *FileKeeper) write(score int) error {
	path, err := ExpandPath(k.path)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, []byte(strconv.Itoa(score)), 0o644); err != nil {
		return fmt.Errorf("storage: cannot write high score: %w", err)
	}
	return nil
}

// Keeper adapts a Store to a single game's high score.
type Keeper struct {
	store  *Store
	gameID string
	logger *log.Logger
}

// Keeper returns a high-score keeper for gameID backed by s.
func (s *Store) Keeper(gameID string, logger *log.Logger) *Keeper {
	return &Keeper{store: s, gameID: gameID, logger: logger}
}

// Load returns the game's high score, or 0 on error.
func (k *Keeper) Load() int {
	score, err := k.store.HighScore(k.gameID)
	if err != nil {
		warn(k.logger, "could not load high score", "game", k.gameID, "error", err)
		return 0
	}
	return score
}

// Save stores the game's high score.
func (k *Keeper) Save(score int) {
	if err := k.store.SetHighScore(k.gameID, score); err != nil {
		warn(k.logger, "could not save high score", "game", k.gameID, "error", err)
	}
}

func warn(logger *log.Logger, msg string, keyvals ...any) {
	if logger != nil {
		logger.Warn(msg, keyvals...)
	}
}

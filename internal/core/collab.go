package core

import (
	"math/rand"
	"sync"
	"time"
)

// Source is the random-number capability injected into piece and apple
// generators. *math/rand.Rand satisfies it.
type Source interface {
	// Intn returns a uniform integer in [0, n).
	Intn(n int) int
}

// NewSource returns a seeded source. A zero seed uses the current time.
func NewSource(seed int64) Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// ScoreKeeper persists a single high-score value. Load must return 0 when
// nothing is stored or the stored value is unreadable; Save failures are
// non-fatal and are the keeper's own concern.
type ScoreKeeper interface {
	Load() int
	Save(score int)
}

// NopKeeper is a ScoreKeeper that remembers nothing.
type NopKeeper struct{}

// Load always returns 0.
func (NopKeeper) Load() int { return 0 }

// Save discards the score.
func (NopKeeper) Save(int) {}

// MemoryKeeper keeps the high score in memory. It is used by tests and as
// a fallback when no durable storage is available.
type MemoryKeeper struct {
	mu    sync.Mutex
	score int
	saves int
}

// NewMemoryKeeper creates a keeper pre-loaded with score.
func NewMemoryKeeper(score int) *MemoryKeeper {
	return &MemoryKeeper{score: score}
}

// Load returns the stored score.
func (k *MemoryKeeper) Load() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.score
}

// Save stores score.
func (k *MemoryKeeper) Save(score int) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.score = score
	k.saves++
}

// Saves returns how many times Save was called.
func (k *MemoryKeeper) Saves() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.saves
}

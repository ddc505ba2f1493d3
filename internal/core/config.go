package core

// RuntimeConfig contains settings passed from the CLI to the platform layer.
type RuntimeConfig struct {
	ScreenW int // Screen width in characters
	ScreenH int // Screen height in characters
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
	}
}

// Frame is the read-only view of an engine handed to the renderer after
// every step. It holds copies only; mutating it never affects the engine.
type Frame struct {
	Field     Grid   // Playfield including the live piece / snake / apple
	Next      *Block // Next-piece preview, nil when the game has none
	Score     int
	HighScore int
	Level     int
	Speed     int    // Ticks-based speed (tetris) or interval in ms (snake)
	Status    string // Engine-specific status name
	LastScore int    // Score of the round that ended most recently

	Paused bool // Waiting for Start after a pause
	Over   bool // Round ended in a loss
	Won    bool // Round ended in a win
	Exit   bool // Owner should stop driving the engine
}

package snake

// Config controls the board dimensions and random seed of an Engine.
type Config struct {
	BoardWidth  int
	BoardHeight int

	// Seed initialises the food, spawn and heading generator. Zero seeds
	// from the clock.
	Seed int64
}

// DefaultConfig returns the standard 600x600 board.
func DefaultConfig() Config {
	return Config{BoardWidth: 600, BoardHeight: 600}
}

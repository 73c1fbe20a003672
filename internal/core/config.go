package core

// RuntimeConfig contains configuration passed to the game at initialization.
// Screen dimensions are in terminal cells; the platform converts them to
// logical units with the configured cell size.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Frames per second requested from the host loop (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  100,
		ScreenH:  30,
		TickRate: 60,
	}
}

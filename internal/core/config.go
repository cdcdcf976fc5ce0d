package core

// RuntimeConfig contains configuration passed to the viewer at startup.
type RuntimeConfig struct {
	ScreenW  int // Screen width in cells
	ScreenH  int // Screen height in cells
	TickRate int // Render/advance ticks per second (default 30)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
	}
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

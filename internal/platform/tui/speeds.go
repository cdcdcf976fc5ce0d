package tui

import "math"

// Speed is one preset of the simulated-seconds-per-real-second control.
type Speed struct {
	Label string
	Scale float64
}

// Speeds are the time-scale presets stepped through with the speed keys,
// from real time up to a decade of simulated time per second.
var Speeds = []Speed{
	{"1s", 1},
	{"5s", 5},
	{"30s", 30},
	{"1m", 60},
	{"5m", 60 * 5},
	{"15m", 60 * 15},
	{"30m", 60 * 30},
	{"1h", 60 * 60},
	{"2h", 60 * 60 * 2},
	{"5h", 60 * 60 * 5},
	{"12h", 60 * 60 * 12},
	{"1d", 60 * 60 * 24},
	{"3d", 60 * 60 * 24 * 3},
	{"1w", 60 * 60 * 24 * 7},
	{"2w", 60 * 60 * 24 * 7 * 2},
	{"1mo", 60 * 60 * 24 * 7 * 4},
	{"2mo", 60 * 60 * 24 * 7 * 4 * 2},
	{"3mo", 60 * 60 * 24 * 7 * 4 * 3},
	{"6mo", 60 * 60 * 24 * 7 * 4 * 6},
	{"1y", 60 * 60 * 24 * 7 * 4 * 12},
	{"2y", 60 * 60 * 24 * 7 * 4 * 12 * 2},
	{"5y", 60 * 60 * 24 * 7 * 4 * 12 * 5},
	{"10y", 60 * 60 * 24 * 7 * 4 * 12 * 10},
}

// nearestSpeed returns the index of the preset closest to the given scale
// (compared on a log scale, since presets span seven decades).
func nearestSpeed(scale float64) int {
	if scale <= 0 {
		return 0
	}
	best, bestDist := 0, math.Inf(1)
	for i, s := range Speeds {
		d := math.Abs(math.Log(scale) - math.Log(s.Scale))
		if d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

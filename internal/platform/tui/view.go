package tui

import (
	"fmt"
	"math"

	"orbitarium/internal/core"
	"orbitarium/internal/physics"
)

// Glyphs for the simulation view.
const (
	bodyChar  = '●'
	trailChar = '·'
)

// drawUniverse renders trails and bodies through the camera into the
// screen buffer. Trails go first so bodies draw over their own history.
func drawUniverse(dst *core.Screen, u *physics.Universe, cam *Camera, trails map[int64][]physics.Vec2, colors map[int64]core.Color) {
	w, h := dst.Width(), dst.Height()

	for _, points := range trails {
		for _, p := range points {
			if x, y, ok := cam.Project(p, w, h); ok {
				dst.SetCell(x, y, trailChar, core.ColorGray)
			}
		}
	}

	for _, b := range u.Bodies() {
		x, y, ok := cam.Project(b.Pos, w, h)
		if !ok {
			continue
		}
		dst.SetCell(x, y, bodyChar, colors[b.ID])
		if b.Name != "" {
			dst.DrawTextColored(x+2, y, b.Name, colors[b.ID])
		}
	}
}

// fmtSimDuration renders simulated seconds compactly: "42s", "3h12m",
// "14d 6h", "2y 31d".
func fmtSimDuration(seconds float64) string {
	sign := ""
	if seconds < 0 {
		sign = "-"
		seconds = -seconds
	}

	const (
		minute = 60
		hour   = 60 * minute
		day    = 24 * hour
		year   = 365 * day
	)

	switch {
	case seconds < minute:
		return fmt.Sprintf("%s%.0fs", sign, seconds)
	case seconds < hour:
		return fmt.Sprintf("%s%.0fm%02.0fs", sign, math.Floor(seconds/minute), math.Mod(seconds, minute))
	case seconds < day:
		return fmt.Sprintf("%s%.0fh%02.0fm", sign, math.Floor(seconds/hour), math.Floor(math.Mod(seconds, hour)/minute))
	case seconds < year:
		return fmt.Sprintf("%s%.0fd %.0fh", sign, math.Floor(seconds/day), math.Floor(math.Mod(seconds, day)/hour))
	default:
		return fmt.Sprintf("%s%.0fy %.0fd", sign, math.Floor(seconds/year), math.Floor(math.Mod(seconds, year)/day))
	}
}

// fmtScale renders meters-per-cell for the HUD: "1.5e+08 m/cell".
func fmtScale(metersPerCell float64) string {
	return fmt.Sprintf("%.2g m/cell", metersPerCell)
}

package tui

import (
	"math"

	"orbitarium/internal/core"
	"orbitarium/internal/physics"
)

// Zoom bounds in meters per cell. The lower bound keeps a body from
// collapsing the projection; the upper bound is far beyond any scenario.
const (
	minMetersPerCell = 1
	maxMetersPerCell = 1e14
)

// cellAspect compensates for terminal cells being roughly twice as tall as
// they are wide, so orbits render round instead of squashed.
const cellAspect = 2.0

// Camera maps world coordinates (meters) to screen cells. It either holds
// a fixed center or follows a target body.
type Camera struct {
	center        physics.Vec2
	target        *physics.Body
	metersPerCell float64
}

// NewCamera creates a camera centered on the origin at the given scale.
func NewCamera(metersPerCell float64) *Camera {
	return &Camera{
		metersPerCell: core.ClampF(metersPerCell, minMetersPerCell, maxMetersPerCell),
	}
}

// FitCamera creates a camera framing all bodies with a margin, centered on
// the bounding box of their positions.
func FitCamera(bodies []*physics.Body, screenW, screenH int) *Camera {
	if len(bodies) == 0 || screenW <= 0 || screenH <= 0 {
		return NewCamera(1e9)
	}

	minP := bodies[0].Pos
	maxP := bodies[0].Pos
	for _, b := range bodies[1:] {
		minP.X = math.Min(minP.X, b.Pos.X)
		minP.Y = math.Min(minP.Y, b.Pos.Y)
		maxP.X = math.Max(maxP.X, b.Pos.X)
		maxP.Y = math.Max(maxP.Y, b.Pos.Y)
	}

	// Frame the extent in ~80% of the viewport.
	extentX := (maxP.X - minP.X) / (0.8 * float64(screenW))
	extentY := (maxP.Y - minP.Y) / (0.8 * float64(screenH) * cellAspect)
	scale := math.Max(extentX, extentY)
	if scale <= 0 {
		scale = 1e9
	}

	cam := NewCamera(scale)
	cam.center = physics.Vec2{X: (minP.X + maxP.X) / 2, Y: (minP.Y + maxP.Y) / 2}
	return cam
}

// MetersPerCell returns the current horizontal scale.
func (c *Camera) MetersPerCell() float64 {
	return c.metersPerCell
}

// ZoomIn halves the meters-per-cell scale (doubles magnification).
func (c *Camera) ZoomIn() {
	c.metersPerCell = core.ClampF(c.metersPerCell/2, minMetersPerCell, maxMetersPerCell)
}

// ZoomOut doubles the meters-per-cell scale.
func (c *Camera) ZoomOut() {
	c.metersPerCell = core.ClampF(c.metersPerCell*2, minMetersPerCell, maxMetersPerCell)
}

// Follow locks the view center on a body; nil releases the target, keeping
// its last position as the fixed center.
func (c *Camera) Follow(b *physics.Body) {
	if b == nil && c.target != nil {
		c.center = c.target.Pos
	}
	c.target = b
}

// Target returns the followed body, nil when the camera is free.
func (c *Camera) Target() *physics.Body {
	return c.target
}

// Pan moves a free camera by the given number of cells. Following a target
// pins the center, so panning releases it first.
func (c *Camera) Pan(dxCells, dyCells float64) {
	if c.target != nil {
		c.Follow(nil)
	}
	c.center.X += dxCells * c.metersPerCell
	c.center.Y -= dyCells * c.metersPerCell * cellAspect
}

// Center returns the current view center in world coordinates.
func (c *Camera) Center() physics.Vec2 {
	if c.target != nil {
		return c.target.Pos
	}
	return c.center
}

// Project maps a world position to screen cell coordinates. The boolean is
// false when the position falls outside the viewport. World +y points up;
// screen +y points down.
func (c *Camera) Project(pos physics.Vec2, screenW, screenH int) (int, int, bool) {
	center := c.Center()
	x := (pos.X-center.X)/c.metersPerCell + float64(screenW)/2
	y := float64(screenH)/2 - (pos.Y-center.Y)/(c.metersPerCell*cellAspect)

	cx := int(math.Floor(x))
	cy := int(math.Floor(y))
	if cx < 0 || cx >= screenW || cy < 0 || cy >= screenH {
		return cx, cy, false
	}
	return cx, cy, true
}

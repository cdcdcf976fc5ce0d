package physics

import (
	"errors"
	"fmt"
)

// Sentinel errors for rejected inputs and degenerate configurations.
var (
	// ErrInvalidParameter marks physically meaningless inputs (non-positive
	// mass, negative radius, negative elapsed time).
	ErrInvalidParameter = errors.New("physics: invalid parameter")

	// ErrDegenerateState marks configurations the force model cannot
	// evaluate, such as two bodies at the exact same position.
	ErrDegenerateState = errors.New("physics: degenerate state")
)

// UnassignedID is the Body.ID sentinel before registration in a Universe.
const UnassignedID int64 = -1

// Body is a point mass. Pos, Vel and Acc are SI (m, m/s, m/s²).
// Acc is transient: it is rebuilt from scratch by the force evaluation of
// every substep and zeroed again by the following kinematic half-step.
type Body struct {
	Mass   float64 // kg, always > 0
	Radius float64 // m, display only; the force model treats bodies as points
	Pos    Vec2
	Vel    Vec2
	Acc    Vec2
	ID     int64 // UnassignedID until the body is added to a Universe
	Name   string
}

// NewBody constructs an unregistered body. Mass must be positive and radius
// non-negative; anything else is rejected with ErrInvalidParameter.
func NewBody(mass, radius float64, pos, vel Vec2) (*Body, error) {
	if !(mass > 0) {
		return nil, fmt.Errorf("%w: mass %v must be > 0", ErrInvalidParameter, mass)
	}
	if !(radius >= 0) {
		return nil, fmt.Errorf("%w: radius %v must be >= 0", ErrInvalidParameter, radius)
	}
	return &Body{
		Mass:   mass,
		Radius: radius,
		Pos:    pos,
		Vel:    vel,
		ID:     UnassignedID,
	}, nil
}

// HalfStep applies one kinematic half-step of substep length h.
// With kick set, the velocity first receives a full-length kick from the
// acceleration accumulated during the previous phase. The position then
// drifts by half a substep and the accumulated acceleration is cleared for
// the next force evaluation. The integrator clears kick on the very first
// half-step of an Advance call, when no acceleration has been computed yet.
func (b *Body) HalfStep(h float64, kick bool) {
	if kick {
		b.Vel = b.Vel.Add(b.Acc.Scale(h))
	}
	b.Pos = b.Pos.Add(b.Vel.Scale(h / 2))
	b.Acc = Vec2{}
}

package physics

import (
	"fmt"
	"math"
	"sync/atomic"
)

// MaxSubstep caps the simulated seconds integrated per leapfrog substep.
// The time scale can stretch a single frame across days to years of
// simulated time; without the cap a single giant step would diverge badly
// for close or fast orbits. One hour keeps the Earth-Moon system well
// inside 0.1% energy drift per orbit.
const MaxSubstep = 3600.0

// Universe owns the ordered body collection and the simulated-time-scale
// multiplier, and exposes the single time-advance entry point the platform
// layer drives once per tick.
//
// Advance is single-threaded and synchronous. The one field writable from
// outside the driving goroutine is the time scale, stored as atomic float
// bits so the control surface can update it mid-flight without tearing;
// Advance loads it exactly once per call.
type Universe struct {
	bodies    []*Body
	nextID    int64
	timeScale atomic.Uint64 // float64 bits
	simTime   float64       // total simulated seconds integrated so far
}

// NewUniverse creates an empty universe with a time scale of 1 (real time).
func NewUniverse() *Universe {
	u := &Universe{}
	u.SetTimeScale(1)
	return u
}

// Add registers a body: it receives the next sequential id (0, 1, 2, ...)
// and is appended to the collection. Bodies are permanent once added; there
// is no removal and ids are never reused. A body exactly coincident with an
// already-registered one is rejected with ErrDegenerateState, since the
// force model cannot evaluate zero separation.
func (u *Universe) Add(b *Body) error {
	for _, reg := range u.bodies {
		if reg.Pos == b.Pos {
			return fmt.Errorf("%w: body %q coincides with %q at (%g, %g)",
				ErrDegenerateState, b.Name, reg.Name, b.Pos.X, b.Pos.Y)
		}
	}
	b.ID = u.nextID
	u.nextID++
	u.bodies = append(u.bodies, b)
	return nil
}

// Bodies returns the body collection in id order. Callers read positions
// and velocities for display; they must not add or remove entries.
func (u *Universe) Bodies() []*Body {
	return u.bodies
}

// TimeScale returns the current simulated-seconds-per-real-second
// multiplier.
func (u *Universe) TimeScale() float64 {
	return math.Float64frombits(u.timeScale.Load())
}

// SetTimeScale updates the multiplier, effective on the next Advance call.
// Negative values run the simulation backwards; the leapfrog scheme is
// time-symmetric, so reversal is well defined.
func (u *Universe) SetTimeScale(scale float64) {
	u.timeScale.Store(math.Float64bits(scale))
}

// SimTime returns the total simulated seconds integrated so far. Negative
// time scales subtract from it.
func (u *Universe) SimTime() float64 {
	return u.simTime
}

// Advance progresses the simulation by elapsed real seconds, scaled by the
// current time scale and split into substeps of at most MaxSubstep
// simulated seconds. Each substep runs a symmetric kick-drift scheme: a
// kinematic half-step on every body, one mirrored force evaluation per
// unordered pair in id order, then a second half-step. Straddling the
// force evaluation this way keeps long-term energy drift bounded where a
// plain explicit Euler update would visibly spiral.
//
// The very first half-step of a call skips its velocity kick: no
// acceleration has been computed yet this call, and whatever the previous
// call left behind is stale. Advance(0) is a strict no-op; elapsed < 0 is
// rejected (run time backwards via SetTimeScale, not via elapsed).
func (u *Universe) Advance(elapsed float64) error {
	if elapsed < 0 {
		return fmt.Errorf("%w: elapsed %v must be >= 0", ErrInvalidParameter, elapsed)
	}

	total := elapsed * u.TimeScale()
	if total == 0 {
		return nil
	}

	dir := 1.0
	if total < 0 {
		dir = -1
	}

	first := true
	for remaining := math.Abs(total); remaining > 0; {
		h := math.Min(remaining, MaxSubstep)
		remaining -= h
		h *= dir

		for _, b := range u.bodies {
			b.HalfStep(h, !first)
		}
		first = false

		for i := 0; i < len(u.bodies); i++ {
			for j := i + 1; j < len(u.bodies); j++ {
				u.bodies[i].ApplyMirroredGravity(u.bodies[j])
			}
		}

		for _, b := range u.bodies {
			b.HalfStep(h, true)
		}
	}

	u.simTime += total
	return nil
}

// TotalMomentum returns Σ mᵢvᵢ. With no external forces it is conserved
// across Advance calls up to floating-point rounding.
func (u *Universe) TotalMomentum() Vec2 {
	var p Vec2
	for _, b := range u.bodies {
		p = p.Add(b.Vel.Scale(b.Mass))
	}
	return p
}

// TotalEnergy returns kinetic plus pairwise gravitational potential energy
// in joules.
func (u *Universe) TotalEnergy() float64 {
	var e float64
	for i, b := range u.bodies {
		v := b.Vel.Len()
		e += 0.5 * b.Mass * v * v
		for j := i + 1; j < len(u.bodies); j++ {
			o := u.bodies[j]
			e -= G * b.Mass * o.Mass / o.Pos.Sub(b.Pos).Len()
		}
	}
	return e
}

package physics

import "math"

// G is the gravitational constant in m³·kg⁻¹·s⁻².
const G = 6.674e-11

// ApplyMirroredGravity accumulates the mutual gravitational acceleration of
// the pair (b, other) into both bodies. The shared field term
//
//	field = G / |r|³ · r        (r pointing from b to other)
//
// is computed once and applied with each body's mass factor and opposite
// sign (Newton's third law), halving the pairwise work versus evaluating
// each body's pull independently. Coincident positions make |r|³ zero and
// the field undefined; Universe.Add rejects exact coincidence at
// registration, and the model deliberately carries no softening clamp.
func (b *Body) ApplyMirroredGravity(other *Body) {
	r := other.Pos.Sub(b.Pos)
	r3 := math.Pow(r.Dot(r), 1.5)
	field := r.Scale(G / r3)

	b.Acc = b.Acc.Add(field.Scale(other.Mass))
	other.Acc = other.Acc.Sub(field.Scale(b.Mass))
}

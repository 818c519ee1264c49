package physics

import (
	"math/rand/v2"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Body is a free-standing target that falls, rests on the floor and gets
// pushed around by projectile hits. Bodies live for the whole session.
type Body struct {
	Handle   Handle
	Position rl.Vector3
	Velocity rl.Vector3
}

// BodySet is the fixed, ordered collection of bodies in a session.
type BodySet struct {
	bodies []*Body
}

func NewBodySet(handles *HandleSource, positions []rl.Vector3) *BodySet {
	s := &BodySet{bodies: make([]*Body, 0, len(positions))}
	for _, pos := range positions {
		s.bodies = append(s.bodies, &Body{
			Handle:   handles.Next(),
			Position: pos,
		})
	}
	return s
}

// ScatterPositions places n bodies in front of the origin: x in [-2, 2),
// y in [1.5, 3.5), z in (-4, -2].
func ScatterPositions(rng *rand.Rand, n int) []rl.Vector3 {
	positions := make([]rl.Vector3, n)
	for i := range positions {
		positions[i] = rl.Vector3{
			X: (rng.Float32() - 0.5) * 4,
			Y: 1.5 + rng.Float32()*2,
			Z: -2 - rng.Float32()*2,
		}
	}
	return positions
}

// Bodies returns the bodies in set order. The slice must not be modified.
func (s *BodySet) Bodies() []*Body {
	return s.bodies
}

func (s *BodySet) Len() int {
	return len(s.bodies)
}

// Bounds returns the box used for ray queries against b.
func (b *Body) Bounds() AABB {
	return NewAABBFromCenter(b.Position, rl.Vector3{X: BodySize, Y: BodySize, Z: BodySize})
}

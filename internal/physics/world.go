package physics

import (
	"log"
	"math"

	"ballshooter/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// SimulationState is everything one session simulates: the projectile pool
// and the body set. It is owned by a single goroutine.
type SimulationState struct {
	Pool   *Pool
	Bodies *BodySet

	// OnHit fires synchronously for every resolved impact. Listeners must not
	// insert into or remove from the pool.
	OnHit engine.EventWithArg[Hit]

	frame uint64
}

// NewSimulationState creates a session with bodies at the given positions.
// scene is told about every projectile that leaves the pool; it may be nil.
func NewSimulationState(scene Scene, bodyPositions []rl.Vector3) *SimulationState {
	handles := &HandleSource{}
	s := &SimulationState{
		Bodies: NewBodySet(handles, bodyPositions),
	}
	s.Pool = NewPool(PoolCapacity, handles, scene)
	log.Printf("Physics: session ready (%d bodies, pool capacity %d)", s.Bodies.Len(), s.Pool.Cap())
	return s
}

// Frame returns the number of steps that advanced the simulation.
func (s *SimulationState) Frame() uint64 {
	return s.frame
}

// Step advances the simulation by dt seconds. dt should already be clamped
// by the caller; a large dt can carry a projectile through a body without a
// hit. Non-positive and NaN dt leave the state untouched.
func (s *SimulationState) Step(dt float32) {
	if !(dt > 0) || math.IsInf(float64(dt), 0) {
		return
	}
	s.frame++

	bodies := s.Bodies.bodies
	for pr := range s.Pool.Active() {
		integrateProjectile(pr, dt)
		for _, b := range bodies {
			if hit, ok := collide(pr, b); ok {
				s.OnHit.Invoke(hit)
			}
		}
	}
	s.Pool.RemoveOutOfBounds()

	for _, b := range bodies {
		integrateBody(b, dt)
	}
}

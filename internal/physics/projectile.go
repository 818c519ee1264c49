package physics

import rl "github.com/gen2brain/raylib-go/raylib"

// Handle identifies a projectile or body for the scene graph. Zero is never
// assigned.
type Handle uint64

// SourceID identifies a tracked input source (hand or controller).
type SourceID int

type ProjectileState uint8

const (
	// Held projectiles ride on their holder; Position is the local offset.
	Held ProjectileState = iota
	// InFlight projectiles live in world space and are integrated each step.
	InFlight
	// Evicted projectiles were dropped by the pool and must not be used again.
	Evicted
)

func (s ProjectileState) String() string {
	switch s {
	case Held:
		return "held"
	case InFlight:
		return "in-flight"
	case Evicted:
		return "evicted"
	}
	return "unknown"
}

type Projectile struct {
	Handle   Handle
	State    ProjectileState
	Holder   SourceID // only meaningful while Held
	Position rl.Vector3
	Velocity rl.Vector3
}

// NewHeldProjectile creates a projectile attached to holder at a local offset.
func NewHeldProjectile(holder SourceID, local rl.Vector3) *Projectile {
	return &Projectile{
		State:    Held,
		Holder:   holder,
		Position: local,
	}
}

// Launch moves a held projectile into world space.
func (p *Projectile) Launch(position, velocity rl.Vector3) {
	p.State = InFlight
	p.Position = position
	p.Velocity = velocity
}

// HandleSource hands out unique entity handles for one session.
type HandleSource struct {
	last Handle
}

func (h *HandleSource) Next() Handle {
	h.last++
	return h.last
}

package physics

import rl "github.com/gen2brain/raylib-go/raylib"

// Hit describes one projectile/body impact resolved during a step.
type Hit struct {
	Projectile Handle
	Body       Handle
	Point      rl.Vector3
	Normal     rl.Vector3 // from the body toward the projectile
	Speed      float32    // projectile speed before the bounce
}

// Overlaps reports whether a projectile at p touches a body at b. Touching
// exactly at the sum of the radii does not count.
func Overlaps(p, b rl.Vector3) bool {
	return rl.Vector3Distance(p, b) < ProjectileRadius+BodyCollisionRadius
}

// collide resolves a projectile/body contact: the body takes a fixed impulse
// along the contact normal and the projectile reflects with energy loss.
// Coincident centers have no normal and are skipped.
func collide(pr *Projectile, b *Body) (Hit, bool) {
	offset := rl.Vector3Subtract(pr.Position, b.Position)
	dist := rl.Vector3Length(offset)
	if dist >= ProjectileRadius+BodyCollisionRadius || dist < degenerateDistance {
		return Hit{}, false
	}

	normal := rl.Vector3Scale(offset, 1/dist)
	hit := Hit{
		Projectile: pr.Handle,
		Body:       b.Handle,
		Point:      pr.Position,
		Normal:     normal,
		Speed:      rl.Vector3Length(pr.Velocity),
	}

	b.Velocity = rl.Vector3Add(b.Velocity, rl.Vector3Scale(normal, ImpactImpulse))
	pr.Velocity = rl.Vector3Scale(rl.Vector3Reflect(pr.Velocity, normal), ProjectileRestitution)
	return hit, true
}

func integrateProjectile(pr *Projectile, dt float32) {
	pr.Velocity.Y -= Gravity * dt
	pr.Position = rl.Vector3Add(pr.Position, rl.Vector3Scale(pr.Velocity, dt))
}

func integrateBody(b *Body, dt float32) {
	b.Velocity.Y -= Gravity * dt * BodyGravityScale
	b.Position = rl.Vector3Add(b.Position, rl.Vector3Scale(b.Velocity, dt))
	applyFloorContact(b)
}

// applyFloorContact clamps a body that sank below the floor, bounces it with
// FloorRestitution and bleeds horizontal speed. A resting body keeps hitting
// this every frame, so its horizontal speed decays geometrically.
func applyFloorContact(b *Body) bool {
	if b.Position.Y >= FloorContactHeight {
		return false
	}
	b.Position.Y = FloorContactHeight
	b.Velocity.Y = -b.Velocity.Y * FloorRestitution
	b.Velocity.X *= FloorFriction
	b.Velocity.Z *= FloorFriction
	return true
}

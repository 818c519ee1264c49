package physics

// Tuning constants for the projectile/body simulation. Distances are in
// meters, times in seconds.
const (
	Gravity = 9.8

	ProjectileRadius    = 0.05
	BodyCollisionRadius = 0.15 // half the body's 0.3 box extent
	BodySize            = 0.3

	LaunchSpeed   = 5.0
	ImpactImpulse = 2.0

	// Velocity retained by a projectile after bouncing off a body.
	ProjectileRestitution = 0.7

	// Bodies fall at half gravity and bounce softer than projectiles.
	BodyGravityScale   = 0.5
	FloorRestitution   = 0.5
	FloorFriction      = 0.9
	FloorContactHeight = 0.15

	OutOfBoundsHeight = -10.0

	PoolCapacity = 20
	BodyCount    = 5
)

// degenerateDistance is the separation below which a collision normal
// cannot be computed.
const degenerateDistance = 1e-6

package physics

import (
	"math"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const epsilon = 1e-5

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < epsilon
}

func newTestState(bodies ...rl.Vector3) *SimulationState {
	return NewSimulationState(nil, bodies)
}

func TestStepIntegratesInFlightProjectile(t *testing.T) {
	s := newTestState()
	pr := &Projectile{State: InFlight, Velocity: rl.Vector3{Z: -LaunchSpeed}}
	s.Pool.Insert(pr)

	const dt = float32(1.0 / 60.0)
	s.Step(dt)

	// Velocity is updated before position.
	wantVY := -Gravity * dt
	if !near(pr.Velocity.Y, wantVY) {
		t.Errorf("Expected vy %f, got %f", wantVY, pr.Velocity.Y)
	}
	if !near(pr.Position.Y, wantVY*dt) {
		t.Errorf("Expected y %f, got %f", wantVY*dt, pr.Position.Y)
	}
	if !near(pr.Position.Z, -LaunchSpeed*dt) {
		t.Errorf("Expected z %f, got %f", -LaunchSpeed*dt, pr.Position.Z)
	}
	if pr.Position.X != 0 {
		t.Errorf("Expected x 0, got %f", pr.Position.X)
	}
}

func TestStepLeavesHeldProjectileAlone(t *testing.T) {
	s := newTestState()
	pr := NewHeldProjectile(1, rl.Vector3{Z: -0.1})
	s.Pool.Insert(pr)

	s.Step(0.016)

	if pr.Position != (rl.Vector3{Z: -0.1}) || pr.Velocity != (rl.Vector3{}) {
		t.Errorf("Held projectile moved: pos %v vel %v", pr.Position, pr.Velocity)
	}
}

func TestStepIgnoresInvalidDelta(t *testing.T) {
	s := newTestState(rl.Vector3{Y: 2})
	pr := &Projectile{State: InFlight, Velocity: rl.Vector3{Z: -1}}
	s.Pool.Insert(pr)

	for _, dt := range []float32{0, -0.016, float32(math.NaN()), float32(math.Inf(1))} {
		s.Step(dt)
	}

	if pr.Position != (rl.Vector3{}) {
		t.Errorf("Expected projectile untouched, got %v", pr.Position)
	}
	if b := s.Bodies.Bodies()[0]; b.Position.Y != 2 {
		t.Errorf("Expected body untouched, got %v", b.Position)
	}
	if s.Frame() != 0 {
		t.Errorf("Expected frame 0, got %d", s.Frame())
	}
}

func TestFloorClampIsExact(t *testing.T) {
	s := newTestState(rl.Vector3{Y: FloorContactHeight})
	b := s.Bodies.Bodies()[0]
	b.Velocity = rl.Vector3{Y: -2}

	s.Step(0.05)

	if b.Position.Y != FloorContactHeight {
		t.Errorf("Expected y exactly %f, got %f", float32(FloorContactHeight), b.Position.Y)
	}
	if b.Velocity.Y <= 0 {
		t.Errorf("Expected upward bounce, got vy %f", b.Velocity.Y)
	}
	wantVY := (2 + Gravity*0.05*BodyGravityScale) * FloorRestitution
	if !near(b.Velocity.Y, float32(wantVY)) {
		t.Errorf("Expected vy %f, got %f", wantVY, b.Velocity.Y)
	}
}

func TestBodyNeverSinksBelowFloor(t *testing.T) {
	s := newTestState(rl.Vector3{Y: 3})
	b := s.Bodies.Bodies()[0]

	for range 600 {
		s.Step(1.0 / 60.0)
		if b.Position.Y < FloorContactHeight {
			t.Fatalf("Body sank to %f", b.Position.Y)
		}
	}
}

func TestRestingBodyHorizontalSpeedDecays(t *testing.T) {
	s := newTestState(rl.Vector3{Y: FloorContactHeight})
	b := s.Bodies.Bodies()[0]
	b.Velocity = rl.Vector3{X: 1, Z: -0.5}

	prev := float32(math.Hypot(1, 0.5))
	for i := range 20 {
		s.Step(1.0 / 60.0)
		speed := float32(math.Hypot(float64(b.Velocity.X), float64(b.Velocity.Z)))
		if speed >= prev {
			t.Fatalf("Expected horizontal speed to decrease at step %d: %f >= %f", i, speed, prev)
		}
		prev = speed
	}

	want := float32(math.Pow(FloorFriction, 20))
	if !near(b.Velocity.X, want) {
		t.Errorf("Expected vx %f after 20 steps, got %f", want, b.Velocity.X)
	}
}

func TestCollisionBoundaryIsStrict(t *testing.T) {
	b := &Body{Handle: 1}
	contact := float32(ProjectileRadius + BodyCollisionRadius)

	touching := &Projectile{State: InFlight, Position: rl.Vector3{X: contact}, Velocity: rl.Vector3{X: -1}}
	if _, ok := collide(touching, b); ok {
		t.Error("Exact contact distance should not collide")
	}
	if b.Velocity != (rl.Vector3{}) {
		t.Errorf("Body should not move, got %v", b.Velocity)
	}

	inside := &Projectile{State: InFlight, Position: rl.Vector3{X: contact - 0.001}, Velocity: rl.Vector3{X: -1}}
	hit, ok := collide(inside, b)
	if !ok {
		t.Fatal("Expected a collision just inside the contact distance")
	}
	if !near(hit.Normal.X, 1) {
		t.Errorf("Expected normal +X, got %v", hit.Normal)
	}
	// The impulse follows the body-to-projectile normal.
	if !near(b.Velocity.X, ImpactImpulse) {
		t.Errorf("Expected body vx %f, got %f", ImpactImpulse, b.Velocity.X)
	}
	if !near(inside.Velocity.X, ProjectileRestitution) {
		t.Errorf("Expected projectile vx %f, got %f", ProjectileRestitution, inside.Velocity.X)
	}
	if !near(hit.Speed, 1) {
		t.Errorf("Expected hit speed 1, got %f", hit.Speed)
	}
}

func TestCollisionAtCoincidentCentersIsSkipped(t *testing.T) {
	b := &Body{Handle: 1, Position: rl.Vector3{Y: 1}}
	pr := &Projectile{State: InFlight, Position: rl.Vector3{Y: 1}, Velocity: rl.Vector3{Z: -3}}

	if _, ok := collide(pr, b); ok {
		t.Error("Coincident centers should not resolve")
	}
	if pr.Velocity != (rl.Vector3{Z: -3}) || b.Velocity != (rl.Vector3{}) {
		t.Errorf("Velocities should be untouched: %v %v", pr.Velocity, b.Velocity)
	}
}

func TestReflectionKeepsSeventyPercentSpeed(t *testing.T) {
	b := &Body{Handle: 1}
	pr := &Projectile{
		State:    InFlight,
		Position: rl.Vector3{X: 0.1, Y: 0.05, Z: 0.08},
		Velocity: rl.Vector3{X: -2, Y: 1, Z: -4},
	}
	before := rl.Vector3Length(pr.Velocity)

	if _, ok := collide(pr, b); !ok {
		t.Fatal("Expected a collision")
	}

	after := rl.Vector3Length(pr.Velocity)
	if math.Abs(float64(after-before*ProjectileRestitution)) > 1e-4 {
		t.Errorf("Expected speed %f, got %f", before*ProjectileRestitution, after)
	}
}

func TestStepPublishesHits(t *testing.T) {
	s := newTestState(rl.Vector3{Y: 5, Z: -1})
	pr := &Projectile{State: InFlight, Position: rl.Vector3{Y: 5, Z: -0.85}, Velocity: rl.Vector3{Z: -LaunchSpeed}}
	s.Pool.Insert(pr)

	var hits []Hit
	s.OnHit.AddListener(func(h Hit) { hits = append(hits, h) })
	s.Step(1.0 / 60.0)

	if len(hits) != 1 {
		t.Fatalf("Expected 1 hit, got %d", len(hits))
	}
	if hits[0].Projectile != pr.Handle || hits[0].Body != s.Bodies.Bodies()[0].Handle {
		t.Errorf("Unexpected hit handles: %+v", hits[0])
	}
	if pr.Velocity.Z <= 0 {
		t.Errorf("Expected projectile to bounce back, got vz %f", pr.Velocity.Z)
	}
}

func TestStepDeflectsOffEveryOverlappingBody(t *testing.T) {
	s := newTestState(rl.Vector3{X: -0.1, Y: 5}, rl.Vector3{X: 0.1, Y: 5})
	pr := &Projectile{State: InFlight, Position: rl.Vector3{Y: 5.05}, Velocity: rl.Vector3{Z: -1}}
	s.Pool.Insert(pr)

	var hits []Hit
	s.OnHit.AddListener(func(h Hit) { hits = append(hits, h) })
	const dt = float32(0.001)
	s.Step(dt)

	bodies := s.Bodies.Bodies()
	if len(hits) != 2 {
		t.Fatalf("Expected 2 hits, got %d", len(hits))
	}
	for i, h := range hits {
		if h.Body != bodies[i].Handle {
			t.Errorf("Hit %d: expected body %d, got %d", i, bodies[i].Handle, h.Body)
		}
		if h.Projectile != pr.Handle {
			t.Errorf("Hit %d: expected projectile %d, got %d", i, pr.Handle, h.Projectile)
		}
	}
	if hits[0].Normal.X <= 0 || hits[1].Normal.X >= 0 {
		t.Errorf("Expected normals pointing away from each body, got %v and %v", hits[0].Normal, hits[1].Normal)
	}

	// Each body took one impulse along its own normal before gravity.
	for i, b := range bodies {
		got := b.Velocity
		got.Y += Gravity * dt * BodyGravityScale
		want := rl.Vector3Scale(hits[i].Normal, ImpactImpulse)
		if rl.Vector3Distance(got, want) > 1e-4 {
			t.Errorf("Body %d: expected impulse %v, got %v", i, want, got)
		}
	}

	before := hits[0].Speed
	if math.Abs(float64(hits[1].Speed-before*ProjectileRestitution)) > 1e-4 {
		t.Errorf("Expected second hit at speed %f, got %f", before*ProjectileRestitution, hits[1].Speed)
	}
	want := before * ProjectileRestitution * ProjectileRestitution
	if after := rl.Vector3Length(pr.Velocity); math.Abs(float64(after-want)) > 1e-4 {
		t.Errorf("Expected final speed %f, got %f", want, after)
	}
}

func TestStepRemovesOutOfBoundsProjectile(t *testing.T) {
	s := newTestState()
	falling := &Projectile{State: InFlight, Position: rl.Vector3{Y: -9.99}, Velocity: rl.Vector3{Y: -5}}
	staying := &Projectile{State: InFlight, Position: rl.Vector3{Y: 1}}
	s.Pool.Insert(falling)
	s.Pool.Insert(staying)

	s.Step(0.1)

	if s.Pool.Len() != 1 || s.Pool.items[0] != staying {
		t.Errorf("Expected only the high projectile to remain, got %d", s.Pool.Len())
	}
	if falling.State != Evicted {
		t.Errorf("Expected evicted state, got %s", falling.State)
	}
	if s.Frame() != 1 {
		t.Errorf("Expected frame 1, got %d", s.Frame())
	}
}

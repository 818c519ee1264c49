package camera

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Camera is a free-flying spectator eye. Yaw and pitch are in degrees; yaw
// -90 looks down -Z.
type Camera struct {
	Position  rl.Vector3
	Yaw       float32
	Pitch     float32
	MoveSpeed float32
	LookSpeed float32
	Fovy      float32
}

func New(pos rl.Vector3) *Camera {
	return &Camera{
		Position:  pos,
		Yaw:       -90.0,
		Pitch:     0,
		MoveSpeed: 2.0, // Units per second
		LookSpeed: 0.1,
		Fovy:      60,
	}
}

// Update applies mouse look and WASD/QE movement.
func (c *Camera) Update(deltaTime float32) {
	mouseDelta := rl.GetMouseDelta()
	c.Look(mouseDelta.X, mouseDelta.Y)

	var forward, right, up float32
	if rl.IsKeyDown(rl.KeyW) {
		forward++
	}
	if rl.IsKeyDown(rl.KeyS) {
		forward--
	}
	if rl.IsKeyDown(rl.KeyD) {
		right++
	}
	if rl.IsKeyDown(rl.KeyA) {
		right--
	}
	if rl.IsKeyDown(rl.KeyE) {
		up++
	}
	if rl.IsKeyDown(rl.KeyQ) {
		up--
	}
	c.Move(forward, right, up, deltaTime)
}

// Look turns the camera by a mouse delta in pixels.
func (c *Camera) Look(dx, dy float32) {
	c.Yaw += dx * c.LookSpeed
	c.Pitch -= dy * c.LookSpeed

	// Clamp pitch
	if c.Pitch > 89 {
		c.Pitch = 89
	}
	if c.Pitch < -89 {
		c.Pitch = -89
	}
}

// Move translates along the horizontal forward/right axes and world up.
// Inputs are in [-1, 1]; diagonal movement is normalized.
func (c *Camera) Move(forward, right, up, deltaTime float32) {
	f, r := c.directions()
	dir := rl.Vector3Add(rl.Vector3Scale(f, forward), rl.Vector3Scale(r, right))
	dir.Y += up
	if rl.Vector3Length(dir) > 1 {
		dir = rl.Vector3Normalize(dir)
	}
	c.Position = rl.Vector3Add(c.Position, rl.Vector3Scale(dir, c.MoveSpeed*deltaTime))
}

// directions returns the horizontal forward and right vectors.
func (c *Camera) directions() (forward, right rl.Vector3) {
	yawRad := float64(c.Yaw) * math.Pi / 180
	forward = rl.Vector3{
		X: float32(math.Cos(yawRad)),
		Y: 0,
		Z: float32(math.Sin(yawRad)),
	}
	right = rl.Vector3{
		X: float32(-math.Sin(yawRad)),
		Y: 0,
		Z: float32(math.Cos(yawRad)),
	}
	return
}

// Forward returns the unit look direction.
func (c *Camera) Forward() rl.Vector3 {
	yawRad := float64(c.Yaw) * math.Pi / 180
	pitchRad := float64(c.Pitch) * math.Pi / 180
	return rl.Vector3{
		X: float32(math.Cos(yawRad) * math.Cos(pitchRad)),
		Y: float32(math.Sin(pitchRad)),
		Z: float32(math.Sin(yawRad) * math.Cos(pitchRad)),
	}
}

// Orientation returns the rotation that maps local -Z onto Forward and keeps
// local +Y in the vertical plane.
func (c *Camera) Orientation() rl.Quaternion {
	yaw := rl.QuaternionFromAxisAngle(rl.Vector3{Y: 1}, -(c.Yaw+90)*rl.Deg2rad)
	pitch := rl.QuaternionFromAxisAngle(rl.Vector3{X: 1}, c.Pitch*rl.Deg2rad)
	return rl.QuaternionMultiply(yaw, pitch)
}

func (c *Camera) GetRaylibCamera() rl.Camera3D {
	return rl.Camera3D{
		Position:   c.Position,
		Target:     rl.Vector3Add(c.Position, c.Forward()),
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       c.Fovy,
		Projection: rl.CameraPerspective,
	}
}

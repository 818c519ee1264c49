package camera

import (
	"math"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func nearVec(a, b rl.Vector3) bool {
	d := rl.Vector3Subtract(a, b)
	return math.Abs(float64(d.X)) < 1e-4 && math.Abs(float64(d.Y)) < 1e-4 && math.Abs(float64(d.Z)) < 1e-4
}

func TestNewCameraLooksDownNegativeZ(t *testing.T) {
	c := New(rl.Vector3{Y: 1.6})

	if !nearVec(c.Forward(), rl.Vector3{Z: -1}) {
		t.Errorf("Expected forward -Z, got %v", c.Forward())
	}
	q := c.Orientation()
	if !nearVec(rl.Vector3RotateByQuaternion(rl.Vector3{Z: -1}, q), rl.Vector3{Z: -1}) {
		t.Errorf("Expected identity orientation, got %v", q)
	}
}

func TestOrientationMatchesForward(t *testing.T) {
	c := New(rl.Vector3{})
	for _, yp := range [][2]float32{{0, 0}, {-45, 20}, {120, -60}, {-200, 80}} {
		c.Yaw, c.Pitch = yp[0], yp[1]
		got := rl.Vector3RotateByQuaternion(rl.Vector3{Z: -1}, c.Orientation())
		if !nearVec(got, c.Forward()) {
			t.Errorf("yaw %v pitch %v: expected %v, got %v", yp[0], yp[1], c.Forward(), got)
		}
		up := rl.Vector3RotateByQuaternion(rl.Vector3{X: 1}, c.Orientation())
		if math.Abs(float64(up.Y)) > 1e-4 {
			t.Errorf("yaw %v pitch %v: local +X should stay horizontal, got %v", yp[0], yp[1], up)
		}
	}
}

func TestLookClampsPitch(t *testing.T) {
	c := New(rl.Vector3{})
	c.Look(0, -10000)
	if c.Pitch != 89 {
		t.Errorf("Expected pitch 89, got %f", c.Pitch)
	}
	c.Look(0, 20000)
	if c.Pitch != -89 {
		t.Errorf("Expected pitch -89, got %f", c.Pitch)
	}
}

func TestMoveNormalizesDiagonal(t *testing.T) {
	c := New(rl.Vector3{})
	c.Move(1, 1, 0, 1)

	if d := rl.Vector3Length(c.Position); math.Abs(float64(d-c.MoveSpeed)) > 1e-4 {
		t.Errorf("Expected distance %f, got %f", c.MoveSpeed, d)
	}
	// Facing -Z, right is +X.
	if c.Position.X <= 0 || c.Position.Z >= 0 {
		t.Errorf("Expected movement forward-right, got %v", c.Position)
	}
}

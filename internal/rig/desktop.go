package rig

import (
	"ballshooter/internal/camera"
	"ballshooter/internal/launch"
	"ballshooter/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Hand positions in the camera's local frame.
var (
	LeftHandOffset  = rl.Vector3{X: -0.2, Y: -0.25, Z: -0.35}
	RightHandOffset = rl.Vector3{X: 0.2, Y: -0.25, Z: -0.35}
)

// Desktop emulates two controllers held in front of the camera. The left and
// right mouse buttons are their triggers.
type Desktop struct {
	Camera *camera.Camera
	// Paused freezes the camera and releases both triggers, so the mouse can
	// drive the HUD.
	Paused   bool
	gestures Gestures
	hands    map[physics.SourceID]hand
}

type hand struct {
	offset rl.Vector3
	button rl.MouseButton
	down   bool
}

func NewDesktop(cam *camera.Camera) *Desktop {
	return &Desktop{
		Camera: cam,
		hands: map[physics.SourceID]hand{
			Left:  {offset: LeftHandOffset, button: rl.MouseLeftButton},
			Right: {offset: RightHandOffset, button: rl.MouseRightButton},
		},
	}
}

func (d *Desktop) Sources() []physics.SourceID {
	return []physics.SourceID{Left, Right}
}

func (d *Desktop) Gestures() *Gestures {
	return &d.gestures
}

func (d *Desktop) Pose(id physics.SourceID) (launch.Pose, bool) {
	h, ok := d.hands[id]
	if !ok {
		return launch.Pose{}, false
	}
	rot := d.Camera.Orientation()
	return launch.Pose{
		Position: rl.Vector3Add(d.Camera.Position, rl.Vector3RotateByQuaternion(h.offset, rot)),
		Rotation: rot,
	}, true
}

func (d *Desktop) Update(deltaTime float32) {
	if d.Paused {
		for _, id := range d.Sources() {
			d.SetTrigger(id, false)
		}
		return
	}
	d.Camera.Update(deltaTime)
	for _, id := range d.Sources() {
		d.SetTrigger(id, rl.IsMouseButtonDown(d.hands[id].button))
	}
}

// SetTrigger feeds a trigger level for one hand and fires an event on each
// edge.
func (d *Desktop) SetTrigger(id physics.SourceID, down bool) {
	h, ok := d.hands[id]
	if !ok || h.down == down {
		return
	}
	h.down = down
	d.hands[id] = h
	if down {
		d.gestures.Start.Invoke(id)
	} else {
		d.gestures.End.Invoke(id)
	}
}

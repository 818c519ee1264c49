package components

import (
	"ballshooter/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const DefaultRayLength = 5.0

// PointerRay draws a controller marker and a ray along the object's local -Z.
type PointerRay struct {
	engine.BaseComponent
	Length float32
	Color  rl.Color
	// Hit shortens the drawn ray to this distance when positive.
	Hit float32
}

func NewPointerRay(color rl.Color) *PointerRay {
	return &PointerRay{
		Length: DefaultRayLength,
		Color:  color,
	}
}

// Direction returns the world-space pointing direction.
func (p *PointerRay) Direction() rl.Vector3 {
	g := p.GetGameObject()
	if g == nil {
		return rl.Vector3{Z: -1}
	}
	return rl.Vector3RotateByQuaternion(rl.Vector3{Z: -1}, g.WorldRotation())
}

// Segment returns the start and end points of the visible ray.
func (p *PointerRay) Segment() (rl.Vector3, rl.Vector3) {
	g := p.GetGameObject()
	if g == nil {
		return rl.Vector3{}, rl.Vector3{}
	}
	length := p.Length
	if p.Hit > 0 && p.Hit < length {
		length = p.Hit
	}
	start := g.WorldPosition()
	return start, rl.Vector3Add(start, rl.Vector3Scale(p.Direction(), length))
}

func (p *PointerRay) Draw() {
	g := p.GetGameObject()
	if g == nil || !g.Active {
		return
	}
	start, end := p.Segment()
	rl.DrawCube(start, 0.04, 0.04, 0.12, p.Color)
	rl.DrawLine3D(start, end, p.Color)
}

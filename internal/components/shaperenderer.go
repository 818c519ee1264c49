package components

import (
	"ballshooter/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Shape uint8

const (
	Sphere Shape = iota
	Cube
)

// ShapeRenderer draws a primitive at its GameObject's world transform using
// raylib's immediate-mode shapes, so it owns no GPU resources.
type ShapeRenderer struct {
	engine.BaseComponent
	Shape     Shape
	Size      float32 // sphere radius or cube edge
	Color     rl.Color
	Highlight bool
}

func NewShapeRenderer(shape Shape, size float32, color rl.Color) *ShapeRenderer {
	return &ShapeRenderer{
		Shape: shape,
		Size:  size,
		Color: color,
	}
}

func (s *ShapeRenderer) Draw() {
	g := s.GetGameObject()
	if g == nil || !g.Active {
		return
	}

	pos := g.WorldPosition()
	scale := g.WorldScale()
	switch s.Shape {
	case Sphere:
		rl.DrawSphere(pos, s.Size*scale.X, s.Color)
	case Cube:
		w, h, l := s.Size*scale.X, s.Size*scale.Y, s.Size*scale.Z
		rl.DrawCube(pos, w, h, l, s.Color)
		if s.Highlight {
			rl.DrawCubeWires(pos, w*1.1, h*1.1, l*1.1, rl.White)
		}
	}
}

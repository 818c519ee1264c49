package world

import (
	"ballshooter/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Renderer struct {
	RoomColor  rl.Color
	FloorColor rl.Color
	ShowRoom   bool
	ShowRays   bool
}

func NewRenderer() *Renderer {
	return &Renderer{
		RoomColor:  rl.NewColor(90, 90, 110, 255),
		FloorColor: rl.NewColor(60, 60, 70, 255),
		ShowRoom:   true,
		ShowRays:   true,
	}
}

// Draw renders the room and every drawable GameObject. Call between
// BeginDrawing and EndDrawing.
func (r *Renderer) Draw(camera rl.Camera3D, gameObjects []*engine.GameObject) {
	rl.BeginMode3D(camera)
	if r.ShowRoom {
		r.drawRoom()
	}
	r.drawScene(gameObjects)
	rl.EndMode3D()
}

func (r *Renderer) drawRoom() {
	rl.DrawPlane(rl.Vector3{Y: FloorY}, rl.Vector2{X: RoomSize, Y: RoomSize}, r.FloorColor)
	rl.DrawCubeWires(rl.Vector3{Y: FloorY + RoomSize/2}, RoomSize, RoomSize, RoomSize, r.RoomColor)
	rl.DrawGrid(int32(RoomSize), 1)
}

func (r *Renderer) drawScene(gameObjects []*engine.GameObject) {
	for _, g := range gameObjects {
		if !r.visible(g) {
			continue
		}
		for _, c := range g.Components() {
			if d, ok := c.(engine.Drawable); ok {
				d.Draw()
			}
		}
	}
}

// visible hides anything under an inactive ancestor, so a projectile held
// by an untracked hand disappears with it.
func (r *Renderer) visible(g *engine.GameObject) bool {
	if !r.ShowRays && g.HasTag("source") {
		return false
	}
	return g.ActiveInHierarchy()
}

package game

import (
	"fmt"

	"ballshooter/internal/physics"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	colorBgDark    = rl.NewColor(22, 22, 30, 235)
	colorBgElement = rl.NewColor(38, 38, 50, 255)
	colorAccent    = rl.NewColor(108, 99, 255, 255)
	colorText      = rl.NewColor(220, 220, 230, 255)
)

func initHUDStyle() {
	gui.SetStyle(gui.DEFAULT, gui.BACKGROUND_COLOR, gui.NewColorPropertyValue(colorBgDark))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_NORMAL, gui.NewColorPropertyValue(colorBgElement))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_PRESSED, gui.NewColorPropertyValue(colorAccent))
	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_FOCUSED, gui.NewColorPropertyValue(colorAccent))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_NORMAL, gui.NewColorPropertyValue(colorText))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, 15)
}

// Stats is a snapshot of one session for display.
type Stats struct {
	Frame    uint64
	Held     int
	InFlight int
	Capacity int
	Bodies   int
	Resting  int
	Throws   int
	Hits     int
}

func (g *Game) stats() Stats {
	sim := g.World.Sim
	held, inFlight := sim.Pool.Counts()
	s := Stats{
		Frame:    sim.Frame(),
		Held:     held,
		InFlight: inFlight,
		Capacity: sim.Pool.Cap(),
		Bodies:   sim.Bodies.Len(),
		Throws:   g.throws,
		Hits:     g.hits,
	}
	for _, b := range sim.Bodies.Bodies() {
		if b.Position.Y <= physics.FloorContactHeight {
			s.Resting++
		}
	}
	return s
}

// Lines formats the stats one label per line.
func (s Stats) Lines() []string {
	return []string{
		fmt.Sprintf("Frame: %d", s.Frame),
		fmt.Sprintf("Projectiles: %d/%d (%d held)", s.Held+s.InFlight, s.Capacity, s.Held),
		fmt.Sprintf("Bodies: %d (%d on floor)", s.Bodies, s.Resting),
		fmt.Sprintf("Throws: %d  Hits: %d", s.Throws, s.Hits),
	}
}

// HUD is the raygui side panel. Its controls only show while the rig is
// paused and the cursor is free.
type HUD struct {
	game *Game
}

func NewHUD(g *Game) *HUD {
	return &HUD{game: g}
}

func (h *HUD) Draw() {
	g := h.game
	const (
		x     = float32(10)
		y     = float32(90)
		width = float32(260)
		row   = float32(24)
	)

	lines := g.stats().Lines()
	height := row*float32(len(lines)+4) + 16
	gui.Panel(rl.Rectangle{X: x, Y: y, Width: width, Height: height}, "Session")

	cy := y + 30
	for _, line := range lines {
		gui.Label(rl.Rectangle{X: x + 10, Y: cy, Width: width - 20, Height: row}, line)
		cy += row
	}

	if !g.Rig.Paused {
		gui.Label(rl.Rectangle{X: x + 10, Y: cy, Width: width - 20, Height: row}, "Tab to edit")
		h.drawTimings(x, y+height)
		return
	}

	g.Renderer.ShowRoom = gui.CheckBox(rl.Rectangle{X: x + 10, Y: cy + 4, Width: 16, Height: 16}, "Room", g.Renderer.ShowRoom)
	g.Renderer.ShowRays = gui.CheckBox(rl.Rectangle{X: x + 120, Y: cy + 4, Width: 16, Height: 16}, "Rays", g.Renderer.ShowRays)
	cy += row

	muted := gui.CheckBox(rl.Rectangle{X: x + 10, Y: cy + 4, Width: 16, Height: 16}, "Mute", g.Audio.Muted())
	g.Audio.SetMuted(muted)
	cy += row

	if gui.Button(rl.Rectangle{X: x + 10, Y: cy + 4, Width: width - 20, Height: row}, "Reset bodies") {
		g.resetWorld()
	}
	h.drawTimings(x, y+height)
}

func (h *HUD) drawTimings(x, y float32) {
	g := h.game
	if !g.DebugMode {
		return
	}
	rl.DrawText(fmt.Sprintf("Update: %.2f ms", g.updateMs), int32(x), int32(y+10), 16, rl.Green)
	rl.DrawText(fmt.Sprintf("Draw:   %.2f ms", g.drawMs), int32(x), int32(y+30), 16, rl.Green)
}

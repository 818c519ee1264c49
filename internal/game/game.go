package game

import (
	"log"
	"time"

	"ballshooter/internal/audio"
	"ballshooter/internal/camera"
	"ballshooter/internal/physics"
	"ballshooter/internal/rig"
	"ballshooter/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Config struct {
	Seed      uint64
	TargetFPS int32
	Muted     bool
	Width     int32
	Height    int32
}

var eyePosition = rl.Vector3{X: 0, Y: 1.6, Z: 1.5}

type Game struct {
	Config    Config
	Camera    *camera.Camera
	Rig       *rig.Desktop
	World     *world.World
	Renderer  *world.Renderer
	Audio     *audio.Manager
	DebugMode bool

	hud    *HUD
	seed   uint64
	hits   int
	throws int

	// Debug timing (ms)
	updateMs float64
	drawMs   float64
}

func New(cfg Config) *Game {
	cam := camera.New(eyePosition)
	g := &Game{
		Config:   cfg,
		Camera:   cam,
		Rig:      rig.NewDesktop(cam),
		Renderer: world.NewRenderer(),
		seed:     cfg.Seed,
	}
	g.hud = NewHUD(g)
	g.resetWorld()
	return g
}

// resetWorld replaces the session with a fresh one using the next seed.
func (g *Game) resetWorld() {
	if g.World != nil {
		g.World.Close()
		g.seed++
	}
	g.World = world.New(g.Rig, g.seed)
	g.hits, g.throws = 0, 0
	g.World.Sim.OnHit.AddListener(g.onHit)
	g.World.Launcher.OnLaunch.AddListener(func(*physics.Projectile) { g.throws++ })
}

func (g *Game) onHit(hit physics.Hit) {
	g.hits++
	g.Audio.PlayImpact(hit.Point, hit.Speed)
}

func (g *Game) Run() {
	rl.SetConfigFlags(rl.FlagWindowHighdpi | rl.FlagMsaa4xHint)
	rl.InitWindow(g.Config.Width, g.Config.Height, "Ball Shooter")
	defer rl.CloseWindow()

	rl.SetTargetFPS(g.Config.TargetFPS)
	rl.DisableCursor()
	initHUDStyle()

	if am, err := audio.Init(); err != nil {
		log.Printf("Audio: disabled: %v", err)
	} else {
		g.Audio = am
		g.Audio.SetMuted(g.Config.Muted)
		defer g.Audio.Close()
	}

	for !rl.WindowShouldClose() {
		g.Update()
		g.Draw()
	}
}

func (g *Game) Update() {
	updateStart := time.Now()
	deltaTime := rl.GetFrameTime()

	// Tab frees the mouse for the HUD
	if rl.IsKeyPressed(rl.KeyTab) {
		g.Rig.Paused = !g.Rig.Paused
		if g.Rig.Paused {
			rl.EnableCursor()
		} else {
			rl.DisableCursor()
		}
	}
	if rl.IsKeyPressed(rl.KeyF1) {
		g.DebugMode = !g.DebugMode
	}
	if rl.IsKeyPressed(rl.KeyR) {
		g.resetWorld()
	}

	g.World.Update(deltaTime)
	g.Audio.SetListener(g.Camera.Position, g.Camera.Forward(), rl.Vector3{Y: 1})
	g.Audio.Update()

	g.updateMs = float64(time.Since(updateStart).Microseconds()) / 1000.0
}

func (g *Game) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(20, 20, 30, 255))

	drawStart := time.Now()
	g.Renderer.Draw(g.Camera.GetRaylibCamera(), g.World.Scene.GameObjects)
	g.drawMs = float64(time.Since(drawStart).Microseconds()) / 1000.0

	g.DrawUI()
	rl.EndDrawing()
}

func (g *Game) DrawUI() {
	rl.DrawText("Mouse to look, WASD/QE to move, LMB/RMB to grab and throw", 10, 10, 20, rl.DarkGray)
	rl.DrawText("Tab for the panel, R to reset, F1 for timings", 10, 35, 20, rl.DarkGray)
	rl.DrawFPS(10, 60)

	g.hud.Draw()
}

package world

import (
	"fmt"
	"log"
	"math/rand/v2"

	"ballshooter/internal/components"
	"ballshooter/internal/engine"
	"ballshooter/internal/launch"
	"ballshooter/internal/physics"
	"ballshooter/internal/rig"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// MaxFrameDelta caps the step so a stalled frame cannot tunnel projectiles
// through bodies.
const MaxFrameDelta = 0.1

const (
	RoomSize = 6.0
	FloorY   = 0.0
)

var bodyColors = []rl.Color{rl.Red, rl.Blue, rl.Green, rl.Purple, rl.Orange}

// World ties one simulation session to its scene graph and input rig.
type World struct {
	Scene    *engine.Scene
	Sim      *physics.SimulationState
	Launcher *launch.Controller
	Rig      rig.Rig

	sources     map[physics.SourceID]*engine.GameObject
	bodies      map[physics.Handle]*engine.GameObject
	projectiles map[physics.Handle]*engine.GameObject
	targets     map[physics.SourceID]physics.Handle
}

// New builds a session with BodyCount bodies scattered by seed.
func New(r rig.Rig, seed uint64) *World {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	return NewWithBodies(r, physics.ScatterPositions(rng, physics.BodyCount))
}

func NewWithBodies(r rig.Rig, bodyPositions []rl.Vector3) *World {
	w := &World{
		Scene:       engine.NewScene("Main"),
		Rig:         r,
		sources:     make(map[physics.SourceID]*engine.GameObject),
		bodies:      make(map[physics.Handle]*engine.GameObject),
		projectiles: make(map[physics.Handle]*engine.GameObject),
		targets:     make(map[physics.SourceID]physics.Handle),
	}
	w.Sim = physics.NewSimulationState(w, bodyPositions)
	w.Launcher = launch.NewController(w.Sim.Pool, r, w, r.Sources()...)

	w.createSources()
	w.createBodies()

	gestures := r.Gestures()
	gestures.Start.AddListener(w.Launcher.OnGestureStart)
	gestures.End.AddListener(w.Launcher.OnGestureEnd)

	w.syncSources()
	w.Scene.Start()
	return w
}

func (w *World) createSources() {
	for _, id := range w.Rig.Sources() {
		hand := engine.NewGameObject(fmt.Sprintf("Source_%d", id))
		hand.Tags = []string{"source"}
		color := rl.SkyBlue
		if id == rig.Right {
			color = rl.Pink
		}
		hand.AddComponent(components.NewPointerRay(color))
		w.Scene.AddGameObject(hand)
		w.sources[id] = hand
	}
}

func (w *World) createBodies() {
	for i, b := range w.Sim.Bodies.Bodies() {
		node := engine.NewGameObject(fmt.Sprintf("Body_%d", i))
		node.Tags = []string{"body"}
		node.Transform.Position = b.Position
		node.AddComponent(components.NewShapeRenderer(components.Cube, physics.BodySize, bodyColors[i%len(bodyColors)]))
		w.Scene.AddGameObject(node)
		w.bodies[b.Handle] = node
	}
}

// Update runs one frame: input, simulation, then node sync.
func (w *World) Update(deltaTime float32) {
	dt := ClampDelta(deltaTime)

	w.Rig.Update(dt)
	w.syncSources()
	w.Sim.Step(dt)
	w.syncBodies()
	w.syncProjectiles()
	w.updateTargets()
	w.Scene.Update(dt)
}

// ClampDelta maps a raw frame time onto [0, MaxFrameDelta].
func ClampDelta(deltaTime float32) float32 {
	if !(deltaTime > 0) {
		return 0
	}
	return min(deltaTime, MaxFrameDelta)
}

func (w *World) syncSources() {
	for id, node := range w.sources {
		pose, ok := w.Rig.Pose(id)
		node.Active = ok
		if !ok {
			continue
		}
		node.Transform.Position = pose.Position
		node.Transform.Rotation = pose.Rotation
	}
}

func (w *World) syncBodies() {
	for _, b := range w.Sim.Bodies.Bodies() {
		if node := w.bodies[b.Handle]; node != nil {
			node.Transform.Position = b.Position
		}
	}
}

func (w *World) syncProjectiles() {
	for pr := range w.Sim.Pool.Active() {
		if node := w.projectiles[pr.Handle]; node != nil {
			node.Transform.Position = pr.Position
		}
	}
}

// updateTargets highlights the body each idle source points at.
func (w *World) updateTargets() {
	for _, node := range w.Scene.FindByTag("body") {
		engine.GetComponent[*components.ShapeRenderer](node).Highlight = false
	}

	for id, hand := range w.sources {
		ray := engine.GetComponent[*components.PointerRay](hand)
		ray.Hit = 0
		delete(w.targets, id)
		if !hand.Active || w.Launcher.State(id) != launch.Idle {
			continue
		}

		hit, ok := w.Sim.Bodies.Raycast(hand.WorldPosition(), ray.Direction(), ray.Length)
		if !ok {
			continue
		}
		ray.Hit = hit.Distance
		w.targets[id] = hit.Body.Handle
		engine.GetComponent[*components.ShapeRenderer](w.bodies[hit.Body.Handle]).Highlight = true
	}
}

// Close unbinds the world from its rig so another world can take it over.
func (w *World) Close() {
	gestures := w.Rig.Gestures()
	gestures.Start.RemoveAllListeners()
	gestures.End.RemoveAllListeners()
}

// Attach implements launch.SceneGraph.
func (w *World) Attach(h physics.Handle, source physics.SourceID, local rl.Vector3) {
	hand := w.sources[source]
	if hand == nil {
		log.Printf("World: attach %d to unknown source %d", h, source)
		return
	}
	node := engine.NewGameObject(fmt.Sprintf("Projectile_%d", h))
	node.Tags = []string{"projectile"}
	node.Transform.Position = local
	node.AddComponent(components.NewShapeRenderer(components.Sphere, physics.ProjectileRadius, rl.Yellow))
	hand.AddChild(node)
	w.Scene.AddGameObject(node)
	node.Start()
	w.projectiles[h] = node
}

// Release implements launch.SceneGraph.
func (w *World) Release(h physics.Handle, position rl.Vector3) {
	node := w.projectiles[h]
	if node == nil {
		return
	}
	node.Unparent()
	node.Transform.Position = position
}

// Remove implements physics.Scene.
func (w *World) Remove(h physics.Handle) {
	node := w.projectiles[h]
	if node == nil {
		return
	}
	w.Scene.RemoveGameObject(node)
	delete(w.projectiles, h)
}

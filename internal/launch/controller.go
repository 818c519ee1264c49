package launch

import (
	"log"

	"ballshooter/internal/engine"
	"ballshooter/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

//go:generate go tool mockgen -destination=./mocks/launch_mock.go -package=mocks . PoseSource,SceneGraph

// HoldOffset is where a held projectile sits in its holder's local frame.
var HoldOffset = rl.Vector3{X: 0, Y: 0, Z: -0.1}

// Pose is a world-space position and orientation.
type Pose struct {
	Position rl.Vector3
	Rotation rl.Quaternion
}

// PoseSource reports the current world pose of an input source. ok is false
// while the source is not tracked.
type PoseSource interface {
	Pose(id physics.SourceID) (Pose, bool)
}

// SceneGraph mirrors projectiles as scene nodes.
type SceneGraph interface {
	physics.Scene
	// Attach creates the node for h as a child of the source at a local offset.
	Attach(h physics.Handle, source physics.SourceID, local rl.Vector3)
	// Release moves the node for h into world space at position.
	Release(h physics.Handle, position rl.Vector3)
}

type GestureState uint8

const (
	Idle GestureState = iota
	Holding
)

func (s GestureState) String() string {
	if s == Holding {
		return "holding"
	}
	return "idle"
}

type source struct {
	state      GestureState
	projectile *physics.Projectile
	grab       Pose
	hasGrab    bool
}

// Controller turns gesture start/end events into held and launched
// projectiles, one state machine per input source.
type Controller struct {
	pool    *physics.Pool
	poses   PoseSource
	scene   SceneGraph
	sources map[physics.SourceID]*source

	// OnLaunch fires after a projectile leaves its holder.
	OnLaunch engine.EventWithArg[*physics.Projectile]
}

// NewController tracks the given sources. Events for any other id are
// ignored.
func NewController(pool *physics.Pool, poses PoseSource, scene SceneGraph, ids ...physics.SourceID) *Controller {
	c := &Controller{
		pool:    pool,
		poses:   poses,
		scene:   scene,
		sources: make(map[physics.SourceID]*source, len(ids)),
	}
	for _, id := range ids {
		c.sources[id] = &source{}
	}
	return c
}

// OnGestureStart spawns a projectile in the source's hand. The pool may
// evict its oldest projectile to make room.
func (c *Controller) OnGestureStart(id physics.SourceID) {
	s, ok := c.sources[id]
	if !ok || s.state == Holding {
		return
	}

	pr := physics.NewHeldProjectile(id, HoldOffset)
	c.pool.Insert(pr)
	c.scene.Attach(pr.Handle, id, HoldOffset)

	s.grab, s.hasGrab = c.poses.Pose(id)
	s.state = Holding
	s.projectile = pr
}

// OnGestureEnd launches the held projectile along the source's -Z axis.
func (c *Controller) OnGestureEnd(id physics.SourceID) {
	s, ok := c.sources[id]
	if !ok || s.state != Holding {
		return
	}

	pr := s.projectile
	s.state = Idle
	s.projectile = nil
	if pr.State != physics.Held {
		return
	}

	pose, ok := c.poses.Pose(id)
	if !ok {
		if !s.hasGrab {
			log.Printf("Launch: source %d has no pose, dropping projectile %d", id, pr.Handle)
			c.pool.Remove(pr)
			return
		}
		pose = s.grab
	}

	position := rl.Vector3Add(pose.Position, rl.Vector3RotateByQuaternion(HoldOffset, pose.Rotation))
	velocity := rl.Vector3RotateByQuaternion(rl.Vector3{Z: -physics.LaunchSpeed}, pose.Rotation)
	pr.Launch(position, velocity)
	c.scene.Release(pr.Handle, position)
	c.OnLaunch.Invoke(pr)
}

func (c *Controller) State(id physics.SourceID) GestureState {
	if s, ok := c.sources[id]; ok {
		return s.state
	}
	return Idle
}

// Held returns the projectile the source is holding, or nil.
func (c *Controller) Held(id physics.SourceID) *physics.Projectile {
	if s, ok := c.sources[id]; ok {
		return s.projectile
	}
	return nil
}

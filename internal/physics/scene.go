package physics

//go:generate go tool mockgen -destination=./mocks/scene_mock.go -package=mocks . Scene

// Scene is the renderable-world side of an entity. The simulation calls
// Remove whenever a projectile leaves the pool, so the scene never keeps a
// node for a projectile the simulation no longer tracks.
type Scene interface {
	Remove(h Handle)
}

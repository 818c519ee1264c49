// Package rig supplies input sources: poses plus gesture start/end events.
package rig

import (
	"ballshooter/internal/engine"
	"ballshooter/internal/launch"
	"ballshooter/internal/physics"
)

const (
	Left  physics.SourceID = 0
	Right physics.SourceID = 1
)

// Gestures carries the select-start/select-end events of every source.
type Gestures struct {
	Start engine.EventWithArg[physics.SourceID]
	End   engine.EventWithArg[physics.SourceID]
}

type Rig interface {
	launch.PoseSource
	Sources() []physics.SourceID
	Gestures() *Gestures
	// Update polls input and fires gesture events for this frame.
	Update(deltaTime float32)
}

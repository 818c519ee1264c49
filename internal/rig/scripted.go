package rig

import (
	"cmp"
	"slices"

	"ballshooter/internal/launch"
	"ballshooter/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Event is one scheduled gesture edge.
type Event struct {
	At     float32 // seconds since the rig started
	Source physics.SourceID
	Start  bool
}

// Scripted replays a fixed gesture schedule with fixed poses. It drives
// headless sessions and tests.
type Scripted struct {
	gestures Gestures
	sources  []physics.SourceID
	poses    map[physics.SourceID]launch.Pose
	tracked  map[physics.SourceID]bool
	schedule []Event
	next     int
	clock    float32
}

func NewScripted(poses map[physics.SourceID]launch.Pose, schedule []Event) *Scripted {
	s := &Scripted{
		poses:    make(map[physics.SourceID]launch.Pose, len(poses)),
		tracked:  make(map[physics.SourceID]bool, len(poses)),
		schedule: slices.Clone(schedule),
	}
	for id, pose := range poses {
		s.sources = append(s.sources, id)
		s.poses[id] = pose
		s.tracked[id] = true
	}
	slices.Sort(s.sources)
	slices.SortStableFunc(s.schedule, func(a, b Event) int {
		return cmp.Compare(a.At, b.At)
	})
	return s
}

func (s *Scripted) Sources() []physics.SourceID {
	return s.sources
}

func (s *Scripted) Gestures() *Gestures {
	return &s.gestures
}

func (s *Scripted) Pose(id physics.SourceID) (launch.Pose, bool) {
	if !s.tracked[id] {
		return launch.Pose{}, false
	}
	return s.poses[id], true
}

// SetTracked toggles whether Pose reports the source.
func (s *Scripted) SetTracked(id physics.SourceID, tracked bool) {
	s.tracked[id] = tracked
}

// Update advances the clock and fires every event that is now due.
func (s *Scripted) Update(deltaTime float32) {
	if deltaTime > 0 {
		s.clock += deltaTime
	}
	for s.next < len(s.schedule) && s.schedule[s.next].At <= s.clock {
		ev := s.schedule[s.next]
		s.next++
		if ev.Start {
			s.gestures.Start.Invoke(ev.Source)
		} else {
			s.gestures.End.Invoke(ev.Source)
		}
	}
}

// ThrowEvery builds a schedule that alternates between sources, pressing
// every interval seconds and releasing hold seconds later, until duration.
func ThrowEvery(sources []physics.SourceID, interval, hold, duration float32) []Event {
	if len(sources) == 0 || interval <= 0 {
		return nil
	}
	var events []Event
	for i := 0; ; i++ {
		at := float32(i) * interval
		if at+hold > duration {
			break
		}
		id := sources[i%len(sources)]
		events = append(events,
			Event{At: at, Source: id, Start: true},
			Event{At: at + hold, Source: id, Start: false},
		)
	}
	return events
}

// AimedPose stands at position and points -Z at target.
func AimedPose(position, target rl.Vector3) launch.Pose {
	dir := rl.Vector3Subtract(target, position)
	if rl.Vector3Length(dir) < 1e-6 {
		return launch.Pose{Position: position, Rotation: rl.QuaternionIdentity()}
	}
	dir = rl.Vector3Normalize(dir)
	rot := rl.QuaternionFromVector3ToVector3(rl.Vector3{Z: -1}, dir)
	if rl.Vector3DotProduct(dir, rl.Vector3{Z: -1}) < -0.9999 {
		rot = rl.QuaternionFromAxisAngle(rl.Vector3{Y: 1}, rl.Pi)
	}
	return launch.Pose{Position: position, Rotation: rot}
}

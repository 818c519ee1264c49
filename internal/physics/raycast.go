package physics

import rl "github.com/gen2brain/raylib-go/raylib"

type RaycastHit struct {
	Body     *Body
	Point    rl.Vector3
	Normal   rl.Vector3
	Distance float32
}

// Raycast returns the closest body whose box is crossed by the ray within
// maxDistance. A zero direction never hits.
func (s *BodySet) Raycast(origin, direction rl.Vector3, maxDistance float32) (RaycastHit, bool) {
	if rl.Vector3Length(direction) < degenerateDistance {
		return RaycastHit{}, false
	}
	direction = rl.Vector3Normalize(direction)

	closest := RaycastHit{Distance: maxDistance}
	hit := false
	for _, b := range s.bodies {
		t, normal, ok := raycastBox(origin, direction, b.Bounds())
		if !ok || t > closest.Distance {
			continue
		}
		closest = RaycastHit{
			Body:     b,
			Point:    rl.Vector3Add(origin, rl.Vector3Scale(direction, t)),
			Normal:   normal,
			Distance: t,
		}
		hit = true
	}
	return closest, hit
}

// raycastBox is a slab test. It returns the entry distance (or the exit
// distance when the origin is inside the box) and the normal of the face hit.
func raycastBox(origin, direction rl.Vector3, box AABB) (float32, rl.Vector3, bool) {
	tmin, tmax := float32(-1e30), float32(1e30)
	enterAxis, exitAxis := -1, -1
	var enterSign, exitSign float32

	for i := 0; i < 3; i++ {
		o, d := axis(origin, i), axis(direction, i)
		lo, hi := axis(box.Min, i), axis(box.Max, i)

		if d == 0 {
			if o < lo || o > hi {
				return 0, rl.Vector3{}, false
			}
			continue
		}

		t1, t2 := (lo-o)/d, (hi-o)/d
		sign := float32(-1)
		if t1 > t2 {
			t1, t2 = t2, t1
			sign = 1
		}
		if t1 > tmin {
			tmin, enterAxis, enterSign = t1, i, sign
		}
		if t2 < tmax {
			tmax, exitAxis, exitSign = t2, i, -sign
		}
		if tmin > tmax {
			return 0, rl.Vector3{}, false
		}
	}

	if tmax < 0 {
		return 0, rl.Vector3{}, false
	}
	if tmin >= 0 {
		return tmin, axisNormal(enterAxis, enterSign), true
	}
	return tmax, axisNormal(exitAxis, exitSign), true
}

func axisNormal(i int, sign float32) rl.Vector3 {
	switch i {
	case 0:
		return rl.Vector3{X: sign}
	case 1:
		return rl.Vector3{Y: sign}
	case 2:
		return rl.Vector3{Z: sign}
	}
	return rl.Vector3{}
}

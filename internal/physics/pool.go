package physics

import (
	"iter"
	"log"
)

// Pool owns every live projectile, held or in flight, in insertion order.
// It never holds more than its capacity.
type Pool struct {
	capacity int
	items    []*Projectile
	handles  *HandleSource
	scene    Scene
}

func NewPool(capacity int, handles *HandleSource, scene Scene) *Pool {
	if capacity < 1 {
		capacity = 1
	}
	if handles == nil {
		handles = &HandleSource{}
	}
	return &Pool{
		capacity: capacity,
		items:    make([]*Projectile, 0, capacity),
		handles:  handles,
		scene:    scene,
	}
}

// Insert appends pr, assigning it a handle if it has none. When the pool is
// full the oldest in-flight projectile is evicted first; if every slot is
// held, the oldest entry goes regardless. The evicted projectile is returned.
func (p *Pool) Insert(pr *Projectile) *Projectile {
	if pr.Handle == 0 {
		pr.Handle = p.handles.Next()
	}

	var evicted *Projectile
	if len(p.items) >= p.capacity {
		evicted = p.evictOldest()
	}
	p.items = append(p.items, pr)
	return evicted
}

func (p *Pool) evictOldest() *Projectile {
	victim := 0
	for i, pr := range p.items {
		if pr.State == InFlight {
			victim = i
			break
		}
	}

	pr := p.items[victim]
	if pr.State == Held {
		log.Printf("Physics: pool full of held projectiles, evicting %d from source %d", pr.Handle, pr.Holder)
	}
	p.removeAt(victim)
	return pr
}

// Remove drops pr from the pool. It reports whether pr was present.
func (p *Pool) Remove(pr *Projectile) bool {
	for i, item := range p.items {
		if item == pr {
			p.removeAt(i)
			return true
		}
	}
	return false
}

// RemoveOutOfBounds drops every in-flight projectile below OutOfBoundsHeight
// and returns how many were removed.
func (p *Pool) RemoveOutOfBounds() int {
	removed := 0
	for i := 0; i < len(p.items); {
		pr := p.items[i]
		if pr.State == InFlight && pr.Position.Y < OutOfBoundsHeight {
			p.removeAt(i)
			removed++
			continue
		}
		i++
	}
	return removed
}

func (p *Pool) removeAt(i int) {
	pr := p.items[i]
	copy(p.items[i:], p.items[i+1:])
	p.items[len(p.items)-1] = nil
	p.items = p.items[:len(p.items)-1]

	pr.State = Evicted
	if p.scene != nil {
		p.scene.Remove(pr.Handle)
	}
}

// Active yields in-flight projectiles in insertion order.
func (p *Pool) Active() iter.Seq[*Projectile] {
	return func(yield func(*Projectile) bool) {
		for _, pr := range p.items {
			if pr.State != InFlight {
				continue
			}
			if !yield(pr) {
				return
			}
		}
	}
}

func (p *Pool) Len() int {
	return len(p.items)
}

func (p *Pool) Cap() int {
	return p.capacity
}

// Counts splits the live projectiles by state.
func (p *Pool) Counts() (held, inFlight int) {
	for _, pr := range p.items {
		switch pr.State {
		case Held:
			held++
		case InFlight:
			inFlight++
		}
	}
	return held, inFlight
}

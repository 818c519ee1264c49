// Headless throughput test: runs independent scripted sessions in parallel
// and reports per-session timing.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"ballshooter/internal/launch"
	"ballshooter/internal/physics"
	"ballshooter/internal/rig"
	"ballshooter/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
	"golang.org/x/sync/errgroup"
)

type result struct {
	session  int
	frames   int
	throws   int
	hits     int
	live     int
	gone     int // launched, then evicted or fallen out of the room
	stepTime time.Duration
}

func main() {
	sessions := flag.Int("sessions", 8, "parallel sessions")
	frames := flag.Int("frames", 3600, "frames per session")
	dt := flag.Float64("dt", 1.0/90.0, "seconds per frame")
	seed := flag.Uint64("seed", 42, "base seed")
	throwEvery := flag.Float64("throw-every", 0.25, "seconds between throws")
	flag.Parse()

	if *sessions < 1 || *frames < 1 || *dt <= 0 || *throwEvery <= 0 {
		fmt.Fprintln(os.Stderr, "sessions, frames, dt and throw-every must be positive")
		os.Exit(2)
	}

	log.SetPrefix("physics_stress: ")

	results := make([]result, *sessions)
	g, ctx := errgroup.WithContext(context.Background())
	for i := range results {
		g.Go(func() error {
			r, err := runSession(ctx, i, *seed+uint64(i), *frames, float32(*dt), float32(*throwEvery))
			if err != nil {
				return fmt.Errorf("session %d: %w", i, err)
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Printf("%7s | %7s | %6s | %5s | %4s | %5s | %12s\n", "session", "frames", "throws", "hits", "live", "gone", "avg step")
	fmt.Println("--------+---------+--------+-------+------+-------+-------------")
	var total time.Duration
	for _, r := range results {
		avg := r.stepTime / time.Duration(r.frames)
		total += avg
		fmt.Printf("%7d | %7d | %6d | %5d | %4d | %5d | %12v\n", r.session, r.frames, r.throws, r.hits, r.live, r.gone, avg)
	}
	fmt.Printf("\nMean step time across sessions: %v\n", total/time.Duration(len(results)))
}

func runSession(ctx context.Context, id int, seed uint64, frames int, dt, throwEvery float32) (result, error) {
	duration := float32(frames) * dt
	poses := map[physics.SourceID]launch.Pose{
		rig.Left:  rig.AimedPose(rl.Vector3{X: -0.2, Y: 1.4}, rl.Vector3{X: -0.5, Y: 1.5, Z: -3}),
		rig.Right: rig.AimedPose(rl.Vector3{X: 0.2, Y: 1.4}, rl.Vector3{X: 0.5, Y: 1.5, Z: -3}),
	}
	sources := []physics.SourceID{rig.Left, rig.Right}
	r := rig.NewScripted(poses, rig.ThrowEvery(sources, throwEvery, 0.1, duration))
	w := world.New(r, seed)

	res := result{session: id, frames: frames}
	w.Sim.OnHit.AddListener(func(physics.Hit) { res.hits++ })
	var launched []*physics.Projectile
	w.Launcher.OnLaunch.AddListener(func(pr *physics.Projectile) { launched = append(launched, pr) })

	for f := 0; f < frames; f++ {
		if f%256 == 0 {
			if err := ctx.Err(); err != nil {
				return res, err
			}
		}
		start := time.Now()
		w.Update(dt)
		res.stepTime += time.Since(start)
	}

	res.throws = len(launched)
	res.live = w.Sim.Pool.Len()
	for _, pr := range launched {
		if pr.State == physics.Evicted {
			res.gone++
		}
	}
	if res.live > physics.PoolCapacity {
		return res, fmt.Errorf("pool holds %d projectiles, capacity %d", res.live, physics.PoolCapacity)
	}
	return res, nil
}

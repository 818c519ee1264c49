package audio

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"log"
	"math"
	"sync"

	"github.com/ebitengine/oto/v3"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	sampleRate    = 44100
	channelCount  = 2
	clickSeconds  = 0.06
	clickHz       = 880.0
	maxDistance   = 12.0
	fullLoudSpeed = 6.0 // impact speed that plays at full volume
	minSpeed      = 0.3
	maxPlayers    = 8
)

// Listener represents the audio listener position and orientation
type Listener struct {
	Position rl.Vector3
	Forward  rl.Vector3
	Right    rl.Vector3
}

// Global oto context. oto allows one per process.
var (
	otoContext     *oto.Context
	otoContextOnce sync.Once
	otoContextErr  error
)

func initOtoContext() error {
	otoContextOnce.Do(func() {
		op := &oto.NewContextOptions{
			SampleRate:   sampleRate,
			ChannelCount: channelCount,
			Format:       oto.FormatFloat32LE,
		}
		var ready chan struct{}
		otoContext, ready, otoContextErr = oto.NewContext(op)
		if otoContextErr != nil {
			return
		}
		<-ready
		log.Println("Audio: oto context initialized")
	})
	return otoContextErr
}

// player is the part of *oto.Player the manager drives.
type player interface {
	Play()
	Pause()
	IsPlaying() bool
	Close() error
}

// Manager plays short synthesized impact clicks. A nil *Manager is silent.
type Manager struct {
	mu       sync.Mutex
	ctx      *oto.Context
	listener Listener
	players  []player
	muted    bool
}

// Init opens the audio device.
func Init() (*Manager, error) {
	if err := initOtoContext(); err != nil {
		return nil, fmt.Errorf("open audio device: %w", err)
	}
	return &Manager{ctx: otoContext}, nil
}

// SetListener updates the listener position and orientation
func (m *Manager) SetListener(pos, forward, up rl.Vector3) {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	m.listener.Position = pos
	m.listener.Forward = rl.Vector3Normalize(forward)
	m.listener.Right = rl.Vector3Normalize(rl.Vector3CrossProduct(forward, up))
}

func (m *Manager) SetMuted(muted bool) {
	if m == nil {
		return
	}
	m.mu.Lock()
	m.muted = muted
	m.mu.Unlock()
}

func (m *Manager) Muted() bool {
	if m == nil {
		return true
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.muted
}

// PlayImpact plays a click at pos, louder for faster impacts.
func (m *Manager) PlayImpact(pos rl.Vector3, speed float32) {
	if m == nil || speed < minSpeed {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.muted {
		return
	}

	m.reap()
	if len(m.players) >= maxPlayers {
		return
	}

	left, right := spatialGains(m.listener, pos)
	volume := min(speed/fullLoudSpeed, 1)
	if left*volume < 0.01 && right*volume < 0.01 {
		return
	}

	p := m.ctx.NewPlayer(bytes.NewReader(encodeFloat32(clickSamples(left*volume, right*volume))))
	p.Play()
	m.players = append(m.players, p)
}

// Update closes players that have finished.
func (m *Manager) Update() {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reap()
}

func (m *Manager) reap() {
	live := m.players[:0]
	for _, p := range m.players {
		if p.IsPlaying() {
			live = append(live, p)
			continue
		}
		if err := p.Close(); err != nil {
			log.Printf("Audio: close player: %v", err)
		}
	}
	clear(m.players[len(live):])
	m.players = live
}

// Close stops every click. The oto context itself lives until exit.
func (m *Manager) Close() {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.players {
		p.Pause()
		if err := p.Close(); err != nil {
			log.Printf("Audio: close player: %v", err)
		}
	}
	m.players = nil
}

// spatialGains returns left/right gains for a source at pos: linear distance
// falloff, equal-power pan from the listener's right vector, and a slight cut
// for sources behind the listener.
func spatialGains(l Listener, pos rl.Vector3) (float32, float32) {
	toSource := rl.Vector3Subtract(pos, l.Position)
	distance := rl.Vector3Length(toSource)
	if distance >= maxDistance {
		return 0, 0
	}
	volume := 1 - distance/maxDistance

	pan := float32(0.5) // center
	if distance > 0.001 && rl.Vector3Length(l.Right) > 0 {
		direction := rl.Vector3Scale(toSource, 1/distance)
		// -1 = full left, +1 = full right
		rightDot := rl.Vector3DotProduct(direction, l.Right)
		pan = min(max(0.5+rightDot*0.5, 0), 1)

		if frontDot := rl.Vector3DotProduct(direction, l.Forward); frontDot < 0 {
			volume *= 0.7 + 0.3*float32(math.Abs(float64(frontDot)))
		}
	}

	angle := float64(pan) * math.Pi / 2
	return volume * float32(math.Cos(angle)), volume * float32(math.Sin(angle))
}

// clickSamples synthesizes an interleaved stereo sine burst with an
// exponential decay.
func clickSamples(left, right float32) []float32 {
	n := int(sampleRate * clickSeconds)
	out := make([]float32, 0, n*channelCount)
	for i := range n {
		t := float64(i) / sampleRate
		s := float32(math.Sin(2*math.Pi*clickHz*t) * math.Exp(-t*60))
		out = append(out, s*left, s*right)
	}
	return out
}

func encodeFloat32(samples []float32) []byte {
	buf := make([]byte, 4*len(samples))
	for i, s := range samples {
		binary.LittleEndian.PutUint32(buf[4*i:], math.Float32bits(s))
	}
	return buf
}

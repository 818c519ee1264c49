package audio

import (
	"bytes"
	"encoding/binary"
	"errors"
	"log"
	"math"
	"os"
	"strings"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func testListener() Listener {
	return Listener{Forward: rl.Vector3{Z: -1}, Right: rl.Vector3{X: 1}}
}

func TestSpatialGainsPan(t *testing.T) {
	l := testListener()

	left, right := spatialGains(l, rl.Vector3{X: 2})
	if right <= left {
		t.Errorf("Expected source on the right to favor the right channel: %f %f", left, right)
	}

	left, right = spatialGains(l, rl.Vector3{Z: -2})
	if math.Abs(float64(left-right)) > 1e-5 {
		t.Errorf("Expected centered source to be balanced: %f %f", left, right)
	}
}

func TestSpatialGainsFalloff(t *testing.T) {
	l := testListener()

	nl, nr := spatialGains(l, rl.Vector3{Z: -1})
	fl, fr := spatialGains(l, rl.Vector3{Z: -8})
	if fl+fr >= nl+nr {
		t.Errorf("Expected far source to be quieter: near %f far %f", nl+nr, fl+fr)
	}

	if l, r := spatialGains(l, rl.Vector3{Z: -maxDistance}); l != 0 || r != 0 {
		t.Errorf("Expected silence at max distance, got %f %f", l, r)
	}
}

func TestSpatialGainsBehindIsQuieter(t *testing.T) {
	l := testListener()

	fl, fr := spatialGains(l, rl.Vector3{X: 1, Z: -1})
	bl, br := spatialGains(l, rl.Vector3{X: 1, Z: 1})
	if bl+br >= fl+fr {
		t.Errorf("Expected source behind to be quieter: front %f behind %f", fl+fr, bl+br)
	}
}

func TestClickSamples(t *testing.T) {
	samples := clickSamples(1, 0)

	if len(samples) != int(sampleRate*clickSeconds)*channelCount {
		t.Fatalf("Expected %d samples, got %d", int(sampleRate*clickSeconds)*channelCount, len(samples))
	}
	var peak float32
	for i := 0; i < len(samples); i += 2 {
		if samples[i+1] != 0 {
			t.Fatalf("Expected silent right channel at %d, got %f", i, samples[i+1])
		}
		peak = max(peak, float32(math.Abs(float64(samples[i]))))
	}
	if peak <= 0 || peak > 1 {
		t.Errorf("Expected peak in (0, 1], got %f", peak)
	}
	tail := samples[len(samples)-2]
	if math.Abs(float64(tail)) > 0.1 {
		t.Errorf("Expected the click to decay, got tail %f", tail)
	}
}

func TestEncodeFloat32(t *testing.T) {
	buf := encodeFloat32([]float32{0.5, -1})

	if len(buf) != 8 {
		t.Fatalf("Expected 8 bytes, got %d", len(buf))
	}
	if got := math.Float32frombits(binary.LittleEndian.Uint32(buf[4:])); got != -1 {
		t.Errorf("Expected -1, got %f", got)
	}
}

func TestNilManagerIsSilent(t *testing.T) {
	var m *Manager
	m.PlayImpact(rl.Vector3{}, 10)
	m.SetListener(rl.Vector3{}, rl.Vector3{Z: -1}, rl.Vector3{Y: 1})
	m.Update()
	m.Close()
	if !m.Muted() {
		t.Error("Nil manager should report muted")
	}
}

type fakePlayer struct {
	playing  bool
	paused   bool
	closed   bool
	closeErr error
}

func (p *fakePlayer) Play()           { p.playing = true }
func (p *fakePlayer) Pause()          { p.paused = true }
func (p *fakePlayer) IsPlaying() bool { return p.playing && !p.paused }
func (p *fakePlayer) Close() error {
	p.closed = true
	return p.closeErr
}

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })
	return &buf
}

func TestCloseLogsPlayerErrors(t *testing.T) {
	buf := captureLog(t)
	failing := &fakePlayer{playing: true, closeErr: errors.New("device lost")}
	fine := &fakePlayer{playing: true}
	m := &Manager{players: []player{failing, fine}}

	m.Close()

	if !failing.closed || !fine.closed {
		t.Error("Expected every player to be closed")
	}
	if !failing.paused || !fine.paused {
		t.Error("Expected every player to be paused first")
	}
	if len(m.players) != 0 {
		t.Errorf("Expected no players left, got %d", len(m.players))
	}
	if got := buf.String(); !strings.Contains(got, "Audio: close player: device lost") {
		t.Errorf("Expected the close error in the log, got %q", got)
	}
	if strings.Count(buf.String(), "close player") != 1 {
		t.Errorf("Expected one logged failure, got %q", buf.String())
	}
}

func TestUpdateReapsFinishedPlayers(t *testing.T) {
	buf := captureLog(t)
	done := &fakePlayer{closeErr: errors.New("busy")}
	live := &fakePlayer{playing: true}
	m := &Manager{players: []player{done, live}}

	m.Update()

	if len(m.players) != 1 || m.players[0] != live {
		t.Errorf("Expected only the playing click to remain, got %d", len(m.players))
	}
	if !done.closed || live.closed {
		t.Error("Expected only the finished player to be closed")
	}
	if !strings.Contains(buf.String(), "Audio: close player: busy") {
		t.Errorf("Expected the close error in the log, got %q", buf.String())
	}
}

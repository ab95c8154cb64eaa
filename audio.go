package pinelight

import (
	"io"
	"math"

	"github.com/hajimehoshi/oto/v2"
)

const (
	sampleRate      = 44100
	channelCount    = 2
	bitDepthInBytes = 2 // 16-bit signed PCM
)

// AudioSystem plays short procedural cues for the transition hooks. It is
// an optional collaborator: wire its methods into Hooks.OnExplosionStart
// and Hooks.OnReturnStart. The core never touches it.
type AudioSystem struct {
	ctx   *oto.Context
	ready chan struct{}
}

// NewAudioSystem opens the host audio device.
func NewAudioSystem() (*AudioSystem, error) {
	ctx, ready, err := oto.NewContext(sampleRate, channelCount, bitDepthInBytes)
	if err != nil {
		return nil, err
	}
	return &AudioSystem{ctx: ctx, ready: ready}, nil
}

// ExplosionSound plays a bright upward sweep.
func (a *AudioSystem) ExplosionSound() {
	a.play(genSweep(220, 880, 0.5))
}

// ReturnSound plays a soft downward sweep.
func (a *AudioSystem) ReturnSound() {
	a.play(genSweep(660, 220, 0.7))
}

// play starts a one-shot player for the sample buffer. Skipped silently if
// the device isn't ready yet.
func (a *AudioSystem) play(samples []int16) {
	if a == nil || len(samples) == 0 {
		return
	}
	select {
	case <-a.ready:
	default:
		return
	}
	player := a.ctx.NewPlayer(&soundReader{data: samples})
	player.Play()
}

// genSweep generates a stereo sine sweep from f0 to f1 Hz over dur seconds
// with an exponential decay envelope.
func genSweep(f0, f1, dur float64) []int16 {
	n := int(dur * sampleRate)
	out := make([]int16, n*channelCount)
	phase := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n)
		freq := f0 + (f1-f0)*t
		phase += 2 * math.Pi * freq / sampleRate
		env := math.Exp(-2.5*t) * 0.25
		v := int16(math.Sin(phase) * env * math.MaxInt16)
		out[i*2] = v
		out[i*2+1] = v
	}
	return out
}

// soundReader streams int16 samples as little-endian bytes.
type soundReader struct {
	data []int16
	pos  int
}

func (r *soundReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := 0
	for r.pos < len(r.data) && n+2 <= len(p) {
		v := uint16(r.data[r.pos])
		p[n] = byte(v)
		p[n+1] = byte(v >> 8)
		r.pos++
		n += 2
	}
	return n, nil
}

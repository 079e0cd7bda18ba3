// Package audio sonifies the simulation for the GUI: a soft pad whose
// pitch follows how far the bodies have spread, and a bell when a run
// ends. It is an optional collaborator; the simulation never touches it.
package audio

import (
	"math"
	"sync"

	"github.com/gordonklaus/portaudio"
)

const (
	SampleRate = 44100
	BufferSize = 1024

	baseFreq = 110.0
	bellFreq = 880.0
)

type Engine struct {
	stream *portaudio.Stream
	active bool

	mu          sync.Mutex
	spread      float64 // normalized bounding-box size, 0..1
	bellPending bool

	// synthesis state, touched only by the callback
	phase       float64
	bellPhase   float64
	bellEnv     float64
	spreadSlew  float64
	filterState float64
}

func NewEngine() *Engine {
	return &Engine{}
}

// Start opens the default output stream. Failure is not fatal to the
// caller; the GUI runs silent without an engine.
func (e *Engine) Start() error {
	if err := portaudio.Initialize(); err != nil {
		return err
	}
	stream, err := portaudio.OpenDefaultStream(0, 2, SampleRate, BufferSize, e.process)
	if err != nil {
		portaudio.Terminate()
		return err
	}
	if err := stream.Start(); err != nil {
		stream.Close()
		portaudio.Terminate()
		return err
	}
	e.stream = stream
	e.active = true
	return nil
}

func (e *Engine) Stop() {
	if e.stream != nil {
		e.stream.Stop()
		e.stream.Close()
		e.stream = nil
	}
	if e.active {
		portaudio.Terminate()
		e.active = false
	}
}

func (e *Engine) Active() bool { return e.active }

// SetSpread feeds the current bounding-box size, normalized against
// the divergence limit so 1.0 means "about to reset".
func (e *Engine) SetSpread(v float64) {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	e.mu.Lock()
	e.spread = v
	e.mu.Unlock()
}

// Bell retriggers the run-ended chime. The reset itself happens at the
// start of the next callback, so bell state stays callback-owned.
func (e *Engine) Bell() {
	e.mu.Lock()
	e.bellPending = true
	e.mu.Unlock()
}

// triangle is smooth and flute-like, no harsh buzz.
func triangle(phase float64) float64 {
	p := phase - math.Floor(phase)
	return 4.0*math.Abs(p-0.5) - 1.0
}

func (e *Engine) process(out [][]float32) {
	e.mu.Lock()
	spread := e.spread
	if e.bellPending {
		e.bellPending = false
		e.bellEnv = 1.0
		e.bellPhase = 0
	}
	e.mu.Unlock()

	dt := 1.0 / SampleRate

	for i := range out[0] {
		// slew the pitch input so resets glide instead of clicking
		e.spreadSlew += (spread - e.spreadSlew) * 0.0005

		freq := baseFreq * (1.0 + e.spreadSlew)
		e.phase += freq * dt
		pad := triangle(e.phase) * 0.12

		// one-pole low pass keeps the pad mellow
		cutoff := 400.0 + 1200.0*e.spreadSlew
		rc := 1.0 / (2.0 * math.Pi * cutoff)
		alpha := dt / (rc + dt)
		e.filterState += alpha * (pad - e.filterState)

		sample := e.filterState

		if e.bellEnv > 1e-4 {
			e.bellPhase += bellFreq * dt
			sample += math.Sin(2*math.Pi*e.bellPhase) * e.bellEnv * 0.2
			e.bellEnv *= 0.99985
		}

		out[0][i] = float32(sample)
		out[1][i] = float32(sample)
	}
}

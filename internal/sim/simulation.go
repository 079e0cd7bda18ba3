package sim

import (
	"math"
	"math/rand"
	"time"

	"github.com/AmirChGit/three-body-problem/internal/physics"
)

// minViewport guards against zero-sized viewports, which would make
// the divergence limit zero and force a reset every step.
const minViewport = 1.0

// defaultPalette colors bodies amber, cyan, white. Renderers may
// overwrite per body.
var defaultPalette = []string{"#ffbf00", "#00ffff", "#ffffff"}

// Camera is a smoothed view transform tracking the bodies' bounding
// box center.
type Camera struct {
	Pos  physics.Vec2
	Zoom float64
}

// Simulation owns a fixed set of mutually attracting bodies and steps
// them once per display frame. It is single-owner and not safe for
// concurrent use. Runs end by divergence or explicit reset; either way
// the body set is replaced wholesale and observers are notified.
type Simulation struct {
	bodies        []*physics.Body
	cam           Camera
	width, height float64
	tuning        Tuning
	rng           *rand.Rand
	observers     []Observer
	runStart      time.Time
	runs          int

	now func() time.Time
}

// New creates a simulation for the given viewport, clamping degenerate
// dimensions, and seeds the first run. A nil rng falls back to a
// time-seeded source.
func New(width, height float64, tuning Tuning, rng *rand.Rand) *Simulation {
	if width < minViewport {
		width = minViewport
	}
	if height < minViewport {
		height = minViewport
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	s := &Simulation{
		width:  width,
		height: height,
		tuning: tuning,
		rng:    rng,
		now:    time.Now,
	}
	s.initialize()
	return s
}

// initialize replaces all bodies with fresh random ones and resets the
// camera. No body survives across runs.
func (s *Simulation) initialize() {
	s.bodies = make([]*physics.Body, s.tuning.NumBodies)
	for i := range s.bodies {
		pos := physics.Vec2{
			X: (s.rng.Float64() - 0.5) * s.width,
			Y: (s.rng.Float64() - 0.5) * s.height,
		}
		mass := s.tuning.MassMin + s.rng.Float64()*(s.tuning.MassMax-s.tuning.MassMin)
		speed := s.tuning.SpeedMin + s.rng.Float64()*(s.tuning.SpeedMax-s.tuning.SpeedMin)
		vel := physics.FromPolar(speed, s.rng.Float64()*2*math.Pi)

		b := physics.NewBody(pos, vel, mass, s.tuning.TrailCap)
		b.Color = defaultPalette[i%len(defaultPalette)]
		s.bodies[i] = b
	}
	s.cam = Camera{Zoom: s.tuning.CameraZoom}
	s.runStart = s.now()
	s.runs++
}

// Step advances the simulation by one frame: accumulate all pairwise
// forces from start-of-step positions, advance every body once, then
// either reset on divergence or ease the camera toward the bodies'
// center.
func (s *Simulation) Step() {
	live := s.liveBodies()

	for i := 0; i < len(live); i++ {
		for j := i + 1; j < len(live); j++ {
			f, _ := s.pairForce(live[i], live[j])
			live[i].ApplyForce(f.Scale(-1))
			live[j].ApplyForce(f)
		}
	}

	for _, b := range s.bodies {
		b.Advance()
	}

	live = s.liveBodies()
	if len(live) == 0 {
		return
	}
	bounds := physics.ComputeBounds(positions(live))
	limit := math.Min(s.width, s.height) * s.tuning.DivergenceFactor
	if bounds.Width() > limit || bounds.Height() > limit {
		s.endRun(true)
		return
	}

	ease := s.tuning.CameraEase
	s.cam.Pos = s.cam.Pos.Scale(ease).Add(bounds.Center().Scale(1 - ease))
}

// pairForce computes the damped, capped gravitational pull between two
// bodies. The returned vector is the force on b; a receives its exact
// negation. The scalar is the capped magnitude before projection onto
// the floored separation.
func (s *Simulation) pairForce(a, b *physics.Body) (physics.Vec2, float64) {
	diff := a.Pos.Sub(b.Pos)
	dist := diff.Length()
	if dist < s.tuning.MinDist {
		dist = s.tuning.MinDist
	}
	dir := diff.Scale(1 / dist)

	mag := s.tuning.G * a.Mass * b.Mass / (dist * dist)
	if mag > s.tuning.ForceCap {
		mag = s.tuning.ForceCap
	}
	mag *= s.tuning.Damping

	return dir.Scale(mag), mag
}

// Reset ends the current run on user request and starts a fresh one.
func (s *Simulation) Reset() {
	s.endRun(false)
}

func (s *Simulation) endRun(diverged bool) {
	e := RunEnd{Duration: s.now().Sub(s.runStart), Diverged: diverged}
	for _, o := range s.observers {
		o.OnRunEnd(e)
	}
	s.initialize()
}

// AddObserver subscribes o to run-ended events.
func (s *Simulation) AddObserver(o Observer) {
	s.observers = append(s.observers, o)
}

// Bodies exposes the current body set for rendering. The slice is
// replaced wholesale on reset; callers must not hold it across steps.
func (s *Simulation) Bodies() []*physics.Body { return s.bodies }

func (s *Simulation) Camera() Camera { return s.cam }

// SetZoom overrides the camera zoom. Values at or below zero are
// ignored.
func (s *Simulation) SetZoom(zoom float64) {
	if zoom > 0 {
		s.cam.Zoom = zoom
	}
}

// Size returns the viewport dimensions after clamping.
func (s *Simulation) Size() (width, height float64) { return s.width, s.height }

// RunElapsed is the wall-clock time since the current run started.
func (s *Simulation) RunElapsed() time.Duration { return s.now().Sub(s.runStart) }

// Runs counts initializations, including the first.
func (s *Simulation) Runs() int { return s.runs }

func (s *Simulation) liveBodies() []*physics.Body {
	live := make([]*physics.Body, 0, len(s.bodies))
	for _, b := range s.bodies {
		if b.Alive() {
			live = append(live, b)
		}
	}
	return live
}

func positions(bodies []*physics.Body) []physics.Vec2 {
	ps := make([]physics.Vec2, len(bodies))
	for i, b := range bodies {
		ps[i] = b.Pos
	}
	return ps
}

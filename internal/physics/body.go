package physics

import "math"

// Body is a point mass with a bounded history of recent positions.
// Bodies are owned by a single simulation and are not safe for
// concurrent use.
type Body struct {
	Pos  Vec2
	Vel  Vec2
	Mass float64

	// Color is assigned by the renderer side and carried along so a
	// frame can be drawn from the body alone. The core never computes it.
	Color string

	// Trail holds recent positions, most recent first. Its length never
	// exceeds the capacity given at creation.
	Trail []Vec2

	trailCap int
	dead     bool
}

// NewBody creates a body with the given trail capacity. Mass is fixed
// for the body's lifetime.
func NewBody(pos, vel Vec2, mass float64, trailCap int) *Body {
	if trailCap < 0 {
		trailCap = 0
	}
	return &Body{
		Pos:      pos,
		Vel:      vel,
		Mass:     mass,
		Trail:    make([]Vec2, 0, trailCap),
		trailCap: trailCap,
	}
}

// ApplyForce adds f to the body's velocity.
func (b *Body) ApplyForce(f Vec2) {
	b.Vel = b.Vel.Add(f)
}

// Advance records the current position at the head of the trail and
// moves the body by its velocity. Dead bodies stay where they are and
// stop recording.
func (b *Body) Advance() {
	if b.dead {
		return
	}
	if b.trailCap > 0 {
		if len(b.Trail) < b.trailCap {
			b.Trail = append(b.Trail, Vec2{})
		}
		copy(b.Trail[1:], b.Trail)
		b.Trail[0] = b.Pos
	}
	b.Pos = b.Pos.Add(b.Vel)
}

// Radius is the visual radius derived from mass. Renderers clamp it to
// their own minimum at the current zoom.
func (b *Body) Radius() float64 {
	return math.Sqrt(b.Mass)
}

func (b *Body) Kill()       { b.dead = true }
func (b *Body) Alive() bool { return !b.dead }

package physics

import (
	"testing"
)

func TestBodyApplyForce(t *testing.T) {
	b := NewBody(Vec2{}, Vec2{X: 1, Y: 0}, 40, 60)

	b.ApplyForce(Vec2{X: 0.5, Y: -0.25})

	if b.Vel.X != 1.5 || b.Vel.Y != -0.25 {
		t.Errorf("expected velocity (1.5,-0.25), got (%f,%f)", b.Vel.X, b.Vel.Y)
	}
	if b.Pos.X != 0 || b.Pos.Y != 0 {
		t.Error("force must not move the body")
	}
}

func TestBodyAdvance(t *testing.T) {
	b := NewBody(Vec2{X: 10, Y: 20}, Vec2{X: 1, Y: -2}, 40, 60)

	b.Advance()

	if b.Pos.X != 11 || b.Pos.Y != 18 {
		t.Errorf("expected position (11,18), got (%f,%f)", b.Pos.X, b.Pos.Y)
	}
	if len(b.Trail) != 1 {
		t.Fatalf("expected 1 trail sample, got %d", len(b.Trail))
	}
	if b.Trail[0].X != 10 || b.Trail[0].Y != 20 {
		t.Error("trail should hold the pre-advance position")
	}
}

func TestBodyTrailMostRecentFirst(t *testing.T) {
	b := NewBody(Vec2{}, Vec2{X: 1}, 40, 60)

	b.Advance() // records (0,0), moves to (1,0)
	b.Advance() // records (1,0), moves to (2,0)
	b.Advance() // records (2,0), moves to (3,0)

	if len(b.Trail) != 3 {
		t.Fatalf("expected 3 trail samples, got %d", len(b.Trail))
	}
	if b.Trail[0].X != 2 || b.Trail[1].X != 1 || b.Trail[2].X != 0 {
		t.Errorf("expected trail x [2 1 0], got [%f %f %f]",
			b.Trail[0].X, b.Trail[1].X, b.Trail[2].X)
	}
}

func TestBodyTrailNeverExceedsCapacity(t *testing.T) {
	const trailCap = 5
	b := NewBody(Vec2{}, Vec2{X: 1}, 40, trailCap)

	for i := 0; i < 100; i++ {
		b.Advance()
		if len(b.Trail) > trailCap {
			t.Fatalf("trail length %d exceeds capacity %d after %d steps",
				len(b.Trail), trailCap, i+1)
		}
	}

	if len(b.Trail) != trailCap {
		t.Errorf("expected full trail of %d, got %d", trailCap, len(b.Trail))
	}
	// newest sample first, oldest evicted
	if b.Trail[0].X != 99 || b.Trail[trailCap-1].X != 95 {
		t.Errorf("expected trail head 99 and tail 95, got %f and %f",
			b.Trail[0].X, b.Trail[trailCap-1].X)
	}
}

func TestBodyZeroTrailCapacity(t *testing.T) {
	b := NewBody(Vec2{}, Vec2{X: 1}, 40, 0)

	b.Advance()

	if len(b.Trail) != 0 {
		t.Errorf("expected empty trail, got %d samples", len(b.Trail))
	}
	if b.Pos.X != 1 {
		t.Error("body should still move with no trail")
	}
}

func TestDeadBodyStops(t *testing.T) {
	b := NewBody(Vec2{X: 5}, Vec2{X: 1}, 40, 60)
	b.Advance()

	b.Kill()
	if b.Alive() {
		t.Fatal("expected body to be dead")
	}

	trailLen := len(b.Trail)
	b.Advance()

	if b.Pos.X != 6 {
		t.Errorf("dead body moved, position %f", b.Pos.X)
	}
	if len(b.Trail) != trailLen {
		t.Error("dead body should stop recording trail")
	}
}

package physics

import (
	"math"
	"testing"
)

func TestVecAddSub(t *testing.T) {
	a := Vec2{X: 1, Y: 2}
	b := Vec2{X: 3, Y: -4}

	sum := a.Add(b)
	if sum.X != 4 || sum.Y != -2 {
		t.Errorf("expected (4,-2), got (%f,%f)", sum.X, sum.Y)
	}

	diff := a.Sub(b)
	if diff.X != -2 || diff.Y != 6 {
		t.Errorf("expected (-2,6), got (%f,%f)", diff.X, diff.Y)
	}

	// operands untouched
	if a.X != 1 || b.Y != -4 {
		t.Error("operands should not be mutated")
	}
}

func TestVecScaleMul(t *testing.T) {
	v := Vec2{X: 2, Y: -3}

	s := v.Scale(0.5)
	if s.X != 1 || s.Y != -1.5 {
		t.Errorf("expected (1,-1.5), got (%f,%f)", s.X, s.Y)
	}

	m := v.Mul(Vec2{X: 10, Y: 100})
	if m.X != 20 || m.Y != -300 {
		t.Errorf("expected (20,-300), got (%f,%f)", m.X, m.Y)
	}
}

func TestVecLength(t *testing.T) {
	v := Vec2{X: 3, Y: 4}
	if v.Length() != 5 {
		t.Errorf("expected length 5, got %f", v.Length())
	}

	if (Vec2{}).Length() != 0 {
		t.Error("zero vector should have zero length")
	}
}

func TestFromPolar(t *testing.T) {
	v := FromPolar(2, math.Pi/2)
	if math.Abs(v.X) > 1e-12 {
		t.Errorf("expected x 0, got %f", v.X)
	}
	if math.Abs(v.Y-2) > 1e-12 {
		t.Errorf("expected y 2, got %f", v.Y)
	}

	if math.Abs(FromPolar(3, 0).X-3) > 1e-12 {
		t.Error("expected magnitude along x at angle 0")
	}
}

func TestVecIsValid(t *testing.T) {
	if !(Vec2{X: 1, Y: 2}).IsValid() {
		t.Error("finite vector should be valid")
	}
	if (Vec2{X: math.NaN()}).IsValid() {
		t.Error("NaN vector should be invalid")
	}
	if (Vec2{Y: math.Inf(1)}).IsValid() {
		t.Error("Inf vector should be invalid")
	}
}

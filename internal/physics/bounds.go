package physics

// Bounds is the axis-aligned extent of a set of positions. Top is the
// minimum Y and Bottom the maximum, matching screen coordinates.
type Bounds struct {
	Left, Right float64
	Top, Bottom float64
}

func (b Bounds) Width() float64  { return b.Right - b.Left }
func (b Bounds) Height() float64 { return b.Bottom - b.Top }

func (b Bounds) Center() Vec2 {
	return Vec2{X: (b.Left + b.Right) / 2, Y: (b.Top + b.Bottom) / 2}
}

// ComputeBounds folds min/max over the given positions. The input must
// be non-empty; callers guarantee at least one live body.
func ComputeBounds(positions []Vec2) Bounds {
	b := Bounds{
		Left:   positions[0].X,
		Right:  positions[0].X,
		Top:    positions[0].Y,
		Bottom: positions[0].Y,
	}
	for _, p := range positions[1:] {
		if p.X < b.Left {
			b.Left = p.X
		}
		if p.X > b.Right {
			b.Right = p.X
		}
		if p.Y < b.Top {
			b.Top = p.Y
		}
		if p.Y > b.Bottom {
			b.Bottom = p.Y
		}
	}
	return b
}

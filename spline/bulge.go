package spline

import (
	"github.com/seamly/drafter"
)

// Quad is a quadratic arc between two pattern points, the construction
// drafting books phrase as "curve out from the straight line by d cm".
// Its single control point sits at the perpendicular offset Bulge from
// the chord midpoint; a positive bulge offsets to the left of the
// from→to direction.
type Quad struct {
	From, Control, To drafter.Pair
}

// BulgeControl returns the control point of the quadratic arc from a to
// b with the given perpendicular bulge. Coincident endpoints are
// degenerate input.
func BulgeControl(a, b drafter.Pair, bulge float64) (drafter.Pair, error) {
	ccw, _, err := drafter.PerpDir(a, b)
	if err != nil {
		return drafter.Origin, err
	}
	return (drafter.Midpoint(a, b) + ccw.Scaled(bulge)).Zap(), nil
}

// Arc constructs the quadratic arc from a to b with the given bulge.
func Arc(a, b drafter.Pair, bulge float64) (Quad, error) {
	ctrl, err := BulgeControl(a, b, bulge)
	if err != nil {
		return Quad{}, err
	}
	return Quad{From: a, Control: ctrl, To: b}, nil
}

// Reverse returns the same arc walked in the opposite direction.
func (q Quad) Reverse() Quad {
	return Quad{From: q.To, Control: q.Control, To: q.From}
}

// Point evaluates the arc at parameter t in [0,1].
func (q Quad) Point(t float64) drafter.Pair {
	u := 1 - t
	x := u*u*q.From.X() + 2*u*t*q.Control.X() + t*t*q.To.X()
	y := u*u*q.From.Y() + 2*u*t*q.Control.Y() + t*t*q.To.Y()
	return drafter.P(x, y)
}

// Cubic elevates the arc to a cubic segment, for drawing surfaces that
// only speak cubic curve operations.
func (q Quad) Cubic() Segment {
	c1 := q.From + (q.Control - q.From).Scaled(2.0/3.0)
	c2 := q.To + (q.Control - q.To).Scaled(2.0/3.0)
	return Segment{From: q.From, C1: c1, C2: c2, To: q.To}
}

// Samples returns n interpolated steps of the arc, endpoints included.
// Deterministic for identical input.
func (q Quad) Samples(n int) []drafter.Pair {
	if n < 1 {
		n = 1
	}
	pts := make([]drafter.Pair, 0, n+1)
	for j := 0; j <= n; j++ {
		t := float64(j) / float64(n)
		pts = append(pts, q.Point(t))
	}
	return pts
}

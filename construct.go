package drafter

import (
	"fmt"
	"math"
	"math/cmplx"
)

// === Drafting Constructions ================================================
//
// Pattern-drafting instructions ("square down", "mark a point 1cm along",
// "come up 4.5cm on the diagonal") reduce to a handful of constructions on
// pairs. All of them are pure; ill-conditioned input yields an error
// wrapping ErrDegenerateInput, never a substitute point.

// Midpoint returns the arithmetic mean of two pairs.
func Midpoint(a, b Pair) Pair {
	return ((a + b) / 2).Zap()
}

// PointAtDistance returns the point at the given signed distance from
// origin along the ray toward the direction point. A negative distance
// walks away from the direction point. The distance may exceed the
// origin-direction separation, extending beyond the direction point.
func PointAtDistance(origin, toward Pair, dist float64) (Pair, error) {
	delta := toward - origin
	length := cmplx.Abs(delta.C())
	if Is0(length) {
		return Origin, fmt.Errorf("%w: origin equals direction point %s", ErrDegenerateInput, origin)
	}
	unit := Pair(delta.C() / complex(length, 0))
	return (origin + unit.Scaled(dist)).Zap(), nil
}

// PointAtFixedX returns the point on the infinite line through a and b
// whose x-coordinate is x. Vertical lines are rejected; a caller with a
// vertical construction line must use a distance-based construction
// instead.
func PointAtFixedX(a, b Pair, x float64) (Pair, error) {
	dx := b.X() - a.X()
	if Is0(dx) {
		return Origin, fmt.Errorf("%w: line through %s and %s is vertical", ErrDegenerateInput, a, b)
	}
	t := (x - a.X()) / dx
	y := a.Y() + t*(b.Y()-a.Y())
	return P(x, y).Zap(), nil
}

// PointAtFixedY returns the point at the given distance from origin whose
// y-coordinate equals that of yRef, choosing the positive-x branch. The
// distance must reach the target ordinate.
func PointAtFixedY(origin, yRef Pair, dist float64) (Pair, error) {
	dy := yRef.Y() - origin.Y()
	if dy*dy > dist*dist {
		return Origin, fmt.Errorf("%w: distance %g cannot reach y=%g from %s",
			ErrDegenerateInput, dist, yRef.Y(), origin)
	}
	dx := math.Sqrt(dist*dist - dy*dy)
	return P(origin.X()+dx, yRef.Y()).Zap(), nil
}

// DiagonalPoint returns the point at polar offset (dist, angle in degrees)
// from p. Drafting systems phrase crotch extensions this way ("4.5cm on
// the 45° diagonal").
func DiagonalPoint(p Pair, dist, angleDeg float64) Pair {
	theta := angleDeg * Deg2Rad
	return (p + P(dist*math.Cos(theta), dist*math.Sin(theta))).Zap()
}

// PerpDir returns the two unit vectors perpendicular to the line a-b,
// counterclockwise first. Used to drop darts from a waist line.
func PerpDir(a, b Pair) (Pair, Pair, error) {
	delta := b - a
	length := cmplx.Abs(delta.C())
	if Is0(length) {
		return Origin, Origin, fmt.Errorf("%w: no direction between coincident points %s", ErrDegenerateInput, a)
	}
	unit := Pair(delta.C() / complex(length, 0))
	ccw := P(-unit.Y(), unit.X())
	cw := P(unit.Y(), -unit.X())
	return ccw, cw, nil
}

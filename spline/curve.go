package spline

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"github.com/npillmayer/schuko/tracing"
	"github.com/seamly/drafter"
)

// tracer writes to trace with key 'graphics'
func tracer() tracing.Trace {
	return tracing.Select("graphics")
}

const pi float64 = 3.14159265
const pi2 float64 = 6.28318530
const _epsilon = 0.0000001

var (
	// ErrNilCurve indicates a nil curve pointer.
	ErrNilCurve = errors.New("curve must not be nil")
	// ErrTooFewKnots indicates knot count is insufficient for solving.
	ErrTooFewKnots = errors.New("curve has too few knots")
	// ErrInvalidKnot indicates a knot coordinate contains NaN/Inf.
	ErrInvalidKnot = errors.New("curve has invalid knot coordinate")
	// ErrDegenerateSegment indicates two consecutive knots collapse to one point.
	ErrDegenerateSegment = errors.New("curve has degenerate segment")
	// ErrCycleHasDuplicateTerminalKnot indicates a closed curve redundantly
	// repeats its first knot as last knot.
	ErrCycleHasDuplicateTerminalKnot = errors.New("closed curve must not repeat first knot as terminal knot")
	// ErrNotSolved indicates control points were requested before Solve.
	ErrNotSolved = errors.New("curve has not been solved")
)

// Curve is a smooth curve through a fixed sequence of anchor knots.
// Construct one with Through or Closed, then call Solve to find the
// spline control points.
type Curve struct {
	knots    []drafter.Pair // anchor point i
	bias     float64        // uniform tension, clamped to [3/4, 4]
	cycle    bool           // closed curve?
	startDir drafter.Pair   // explicit tangent at the first knot, open curves only
	endDir   drafter.Pair   // explicit tangent at the last knot, open curves only
	hasStart bool
	hasEnd   bool
	prec     []drafter.Pair // control point i-, filled by Solve
	postc    []drafter.Pair // control point i+, filled by Solve
	solved   bool
}

// Segment is one cubic piece of a solved curve.
type Segment struct {
	From, C1, C2, To drafter.Pair
}

// DefaultBias is the neutral tension of a smooth curve.
const DefaultBias = 1.0

func newCurve(bias float64, cycle bool, knots []drafter.Pair) *Curve {
	if bias < 0.75 {
		bias = 0.75
	} else if bias > 4.0 {
		bias = 4.0
	}
	c := &Curve{
		knots: make([]drafter.Pair, len(knots)),
		bias:  bias,
		cycle: cycle,
	}
	copy(c.knots, knots)
	return c
}

// Through creates an open curve through the given knots. A bias of 1 is
// neutral; biases are clamped to lie between 3/4 and 4.
func Through(bias float64, knots ...drafter.Pair) *Curve {
	return newCurve(bias, false, knots)
}

// Closed creates a cyclic curve through the given knots. The first knot
// must not be repeated as terminal knot.
func Closed(bias float64, knots ...drafter.Pair) *Curve {
	return newCurve(bias, true, knots)
}

// SetStartDir fixes the tangent direction at the first knot of an open
// curve; without it the curve starts with neutral curl. A zero vector
// clears the direction. Cyclic curves and two-knot chords ignore
// boundary directions.
func (c *Curve) SetStartDir(dir drafter.Pair) *Curve {
	c.startDir = dir
	c.hasStart = !dir.IsOrigin()
	c.solved = false
	return c
}

// SetEndDir fixes the tangent direction at the last knot of an open
// curve. See SetStartDir.
func (c *Curve) SetEndDir(dir drafter.Pair) *Curve {
	c.endDir = dir
	c.hasEnd = !dir.IsOrigin()
	c.solved = false
	return c
}

// N returns the knot count. For closed curves the first and last knot
// count as one.
func (c *Curve) N() int {
	return len(c.knots)
}

// IsCycle is a predicate: is this curve closed?
func (c *Curve) IsCycle() bool {
	return c.cycle
}

// Bias returns the (clamped) tension of the curve.
func (c *Curve) Bias() float64 {
	return c.bias
}

// Knot returns the anchor at position (i mod N).
func (c *Curve) Knot(i int) drafter.Pair {
	if i < 0 || i >= c.N() {
		i = ((i % c.N()) + c.N()) % c.N()
	}
	return c.knots[i]
}

// PreControl returns the incoming control point at knot i of a solved curve.
func (c *Curve) PreControl(i int) drafter.Pair {
	if !c.solved || i >= len(c.prec) {
		return drafter.Pair(cmplx.NaN())
	}
	return c.prec[i]
}

// PostControl returns the outgoing control point at knot i of a solved curve.
func (c *Curve) PostControl(i int) drafter.Pair {
	if !c.solved || i >= len(c.postc) {
		return drafter.Pair(cmplx.NaN())
	}
	return c.postc[i]
}

// Validate checks if the curve is solvable by Hobby interpolation.
func (c *Curve) Validate() error {
	if c == nil {
		return ErrNilCurve
	}
	n := c.N()
	if c.cycle {
		if n < 3 {
			return fmt.Errorf("%w: closed curve needs at least 3 knots, got %d", ErrTooFewKnots, n)
		}
		if cmplx.Abs((c.knots[0] - c.knots[n-1]).C()) <= _epsilon {
			return ErrCycleHasDuplicateTerminalKnot
		}
	} else if n < 2 {
		return fmt.Errorf("%w: open curve needs at least 2 knots, got %d", ErrTooFewKnots, n)
	}
	for i := 0; i < n; i++ {
		x, y := c.knots[i].F()
		if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
			return fmt.Errorf("%w at knot %d", ErrInvalidKnot, i)
		}
	}
	limit := n - 1
	if c.cycle {
		limit = n
	}
	for i := 0; i < limit; i++ {
		j := (i + 1) % n
		if cmplx.Abs((c.knots[j] - c.knots[i]).C()) <= _epsilon {
			return fmt.Errorf("%w between knots %d and %d", ErrDegenerateSegment, i, j)
		}
	}
	return nil
}

// segments returns the number of cubic pieces of the curve.
func (c *Curve) segments() int {
	if c.cycle {
		return c.N()
	}
	return c.N() - 1
}

// Segments returns the cubic pieces of a solved curve in knot order.
// Calling it on an unsolved curve returns nil.
func (c *Curve) Segments() []Segment {
	if !c.solved {
		return nil
	}
	segs := make([]Segment, c.segments())
	for i := range segs {
		j := (i + 1) % c.N()
		segs[i] = Segment{
			From: c.Knot(i),
			C1:   c.PostControl(i),
			C2:   c.PreControl(j),
			To:   c.Knot(j),
		}
	}
	return segs
}

// Point evaluates a cubic segment at parameter t in [0,1].
func (s Segment) Point(t float64) drafter.Pair {
	u := 1 - t
	b0 := u * u * u
	b1 := 3 * u * u * t
	b2 := 3 * u * t * t
	b3 := t * t * t
	x := b0*s.From.X() + b1*s.C1.X() + b2*s.C2.X() + b3*s.To.X()
	y := b0*s.From.Y() + b1*s.C1.Y() + b2*s.C2.Y() + b3*s.To.Y()
	return drafter.P(x, y)
}

// Samples returns a polyline approximation of a solved curve with
// perSegment interpolated steps per cubic piece, endpoints included.
// The sequence is finite, restartable and strictly deterministic:
// identical knots and bias reproduce the identical samples.
func (c *Curve) Samples(perSegment int) ([]drafter.Pair, error) {
	if !c.solved {
		return nil, ErrNotSolved
	}
	if perSegment < 1 {
		perSegment = 1
	}
	segs := c.Segments()
	pts := make([]drafter.Pair, 0, len(segs)*perSegment+1)
	pts = append(pts, c.Knot(0))
	for _, seg := range segs {
		for j := 1; j <= perSegment; j++ {
			t := float64(j) / float64(perSegment)
			pts = append(pts, seg.Point(t))
		}
	}
	return pts, nil
}

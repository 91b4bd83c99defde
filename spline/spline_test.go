package spline

import (
	"errors"
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/seamly/drafter"
)

func mustSolve(t *testing.T, c *Curve) *Curve {
	t.Helper()
	if err := c.Solve(); err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	return c
}

func testcurve() *Curve {
	return Through(1.0, drafter.P(1, 1), drafter.P(2, 2), drafter.P(3, 1))
}

func TestCreateCurve(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := testcurve()
	if c.N() != 3 {
		t.Fail()
	}
	if c.IsCycle() {
		t.Fail()
	}
}

func TestBiasClamped(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	if Through(0.1, drafter.P(0, 0), drafter.P(1, 1)).Bias() != 0.75 {
		t.Errorf("Expected low bias clamped to 0.75")
	}
	if Through(9, drafter.P(0, 0), drafter.P(1, 1)).Bias() != 4.0 {
		t.Errorf("Expected high bias clamped to 4.0")
	}
}

func TestAsStringSnapshot(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	if got, want := AsString(testcurve()), "(1,1) .. (2,2) .. (3,1)"; got != want {
		t.Fatalf("AsString mismatch:\n got: %s\nwant: %s", got, want)
	}
}

func TestValidateRejectsNil(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	var c *Curve
	if err := c.Validate(); !errors.Is(err, ErrNilCurve) {
		t.Errorf("Expected ErrNilCurve, got %v", err)
	}
}

func TestValidateRejectsTooFewKnots(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	if err := Through(1, drafter.P(0, 0)).Solve(); !errors.Is(err, ErrTooFewKnots) {
		t.Errorf("Expected ErrTooFewKnots, got %v", err)
	}
	if err := Closed(1, drafter.P(0, 0), drafter.P(1, 1)).Solve(); !errors.Is(err, ErrTooFewKnots) {
		t.Errorf("Expected ErrTooFewKnots for short cycle, got %v", err)
	}
}

func TestValidateRejectsDegenerateSegment(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := Through(1, drafter.P(0, 0), drafter.P(0, 0), drafter.P(1, 1))
	if err := c.Solve(); !errors.Is(err, ErrDegenerateSegment) {
		t.Errorf("Expected ErrDegenerateSegment, got %v", err)
	}
}

func TestValidateRejectsInvalidKnot(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := Through(1, drafter.P(0, 0), drafter.P(math.NaN(), 1))
	if err := c.Solve(); !errors.Is(err, ErrInvalidKnot) {
		t.Errorf("Expected ErrInvalidKnot, got %v", err)
	}
}

func TestValidateRejectsCycleDuplicateTerminalKnot(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := Closed(1, drafter.P(0, 0), drafter.P(1, 1), drafter.P(0, 0))
	if err := c.Solve(); !errors.Is(err, ErrCycleHasDuplicateTerminalKnot) {
		t.Errorf("Expected ErrCycleHasDuplicateTerminalKnot, got %v", err)
	}
}

func TestMustSolvePanicsOnInvalidCurve(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic, got none")
		}
	}()
	MustSolve(Through(1, drafter.P(0, 0)))
}

func TestChordCase(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := mustSolve(t, Through(1, drafter.P(0, 0), drafter.P(3, 0)))
	if !c.PostControl(0).Equal(drafter.P(1, 0)) {
		t.Errorf("Expected chord control at (1,0), is %v", c.PostControl(0))
	}
	if !c.PreControl(1).Equal(drafter.P(2, 0)) {
		t.Errorf("Expected chord control at (2,0), is %v", c.PreControl(1))
	}
}

func TestOpenCurveControls(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := mustSolve(t, testcurve())
	segs := c.Segments()
	if len(segs) != 2 {
		t.Fatalf("Expected 2 segments, got %d", len(segs))
	}
	// controls must lie between their anchors in x and bend the curve upward
	if segs[0].C1.X() < 1 || segs[0].C1.X() > 2 {
		t.Errorf("control 0+ out of range: %v", segs[0].C1)
	}
	if segs[0].C1.Y() < 1 {
		t.Errorf("expected upward bend at first control, got %v", segs[0].C1)
	}
	// symmetric input: apex stays the curve's highest anchor
	apex := segs[0].Point(1)
	if !apex.Equal(drafter.P(2, 2)) {
		t.Errorf("segment end should interpolate the middle knot, got %v", apex)
	}
}

func TestSolveDeterministic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	a := mustSolve(t, Through(0.6, drafter.P(0, 0), drafter.P(2, 3), drafter.P(5, 3), drafter.P(3, -1)))
	b := mustSolve(t, Through(0.6, drafter.P(0, 0), drafter.P(2, 3), drafter.P(5, 3), drafter.P(3, -1)))
	if AsString(a) != AsString(b) {
		t.Fatalf("identical input must solve to identical controls:\n%s\n%s", AsString(a), AsString(b))
	}
	sa, err := a.Samples(16)
	if err != nil {
		t.Fatal(err)
	}
	sb, _ := b.Samples(16)
	for i := range sa {
		if sa[i] != sb[i] {
			t.Fatalf("sample %d differs: %v vs %v", i, sa[i], sb[i])
		}
	}
}

func TestCycleSolve(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := mustSolve(t, Closed(1, drafter.P(1, 1), drafter.P(2, 2), drafter.P(3, 1), drafter.P(2, 0)))
	segs := c.Segments()
	if len(segs) != 4 {
		t.Fatalf("Expected 4 segments for a 4-knot cycle, got %d", len(segs))
	}
	// a symmetric diamond solves to a closed convex oval: all controls finite
	for i, seg := range segs {
		for _, p := range []drafter.Pair{seg.C1, seg.C2} {
			if math.IsNaN(p.X()) || math.IsNaN(p.Y()) {
				t.Errorf("segment %d has NaN control %v", i, p)
			}
		}
	}
}

func TestSamplesEndpoints(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := mustSolve(t, testcurve())
	pts, err := c.Samples(8)
	if err != nil {
		t.Fatal(err)
	}
	if len(pts) != 2*8+1 {
		t.Fatalf("Expected 17 samples, got %d", len(pts))
	}
	if !pts[0].Equal(drafter.P(1, 1)) || !pts[len(pts)-1].Equal(drafter.P(3, 1)) {
		t.Errorf("samples must start and end at the terminal knots")
	}
}

func TestSamplesRequireSolve(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	if _, err := testcurve().Samples(4); !errors.Is(err, ErrNotSolved) {
		t.Errorf("Expected ErrNotSolved, got %v", err)
	}
}

func TestBulgeControl(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	ctrl, err := BulgeControl(drafter.P(0, 0), drafter.P(4, 0), 2)
	if err != nil {
		t.Fatal(err)
	}
	if !ctrl.Equal(drafter.P(2, 2)) {
		t.Errorf("Expected control at (2,2), is %v", ctrl)
	}
	_, err = BulgeControl(drafter.P(1, 1), drafter.P(1, 1), 2)
	if !errors.Is(err, drafter.ErrDegenerateInput) {
		t.Errorf("Expected ErrDegenerateInput, got %v", err)
	}
}

func TestQuadArc(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	q, err := Arc(drafter.P(0, 0), drafter.P(4, 0), 2)
	if err != nil {
		t.Fatal(err)
	}
	if !q.Point(0).Equal(q.From) || !q.Point(1).Equal(q.To) {
		t.Errorf("arc must interpolate its endpoints")
	}
	if !q.Point(0.5).Equal(drafter.P(2, 1)) {
		t.Errorf("Expected apex (2,1), is %v", q.Point(0.5))
	}
	r := q.Reverse()
	if !r.Point(0.5).Equal(q.Point(0.5)) {
		t.Errorf("reversed arc must trace the same midpoint")
	}
	cub := q.Cubic()
	if !cub.Point(0.5).Equal(q.Point(0.5)) {
		t.Errorf("elevated cubic must match the quadratic at t=0.5")
	}
}

func TestDirectedStart(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	knots := []drafter.Pair{drafter.P(0, 0), drafter.P(3, 2), drafter.P(6, -1), drafter.P(9, 3)}
	want := 80.0 * math.Pi / 180
	c := Through(1.0, knots...).SetStartDir(drafter.P(math.Cos(want), math.Sin(want)))
	mustSolve(t, c)
	out := c.PostControl(0) - c.Knot(0)
	if got := math.Atan2(out.Y(), out.X()); math.Abs(got-want) > 1e-9 {
		t.Errorf("start tangent = %.6g rad, want %.6g", got, want)
	}
}

func TestDirectedEnd(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	knots := []drafter.Pair{drafter.P(0, 0), drafter.P(3, 2), drafter.P(6, -1), drafter.P(9, 3)}
	want := -30.0 * math.Pi / 180
	c := Through(1.0, knots...).SetEndDir(drafter.P(math.Cos(want), math.Sin(want)))
	mustSolve(t, c)
	in := c.Knot(3) - c.PreControl(3)
	if got := math.Atan2(in.Y(), in.X()); math.Abs(got-want) > 1e-9 {
		t.Errorf("end tangent = %.6g rad, want %.6g", got, want)
	}
}

func TestDirectionClearedByZeroVector(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	knots := []drafter.Pair{drafter.P(0, 0), drafter.P(3, 2), drafter.P(6, -1)}
	free := mustSolve(t, Through(1.0, knots...))
	cleared := Through(1.0, knots...).SetStartDir(drafter.P(0, 1)).SetStartDir(drafter.Origin)
	mustSolve(t, cleared)
	if !free.PostControl(0).Equal(cleared.PostControl(0)) {
		t.Errorf("cleared direction must restore the neutral-curl solution")
	}
}

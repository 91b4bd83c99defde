package render

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/seamly/drafter"
	"github.com/seamly/drafter/draft"
	"github.com/stretchr/testify/assert"
)

// recorder captures every canvas operation as a formatted string, so
// tests can compare full operation sequences.
type recorder struct {
	ops []string
}

func (r *recorder) MoveTo(p drafter.Pair) {
	r.ops = append(r.ops, fmt.Sprintf("M %s", p))
}

func (r *recorder) LineTo(p drafter.Pair) {
	r.ops = append(r.ops, fmt.Sprintf("L %s", p))
}

func (r *recorder) CurveTo(c1, c2, to drafter.Pair) {
	r.ops = append(r.ops, fmt.Sprintf("C %s %s %s", c1, c2, to))
}

func (r *recorder) Label(p drafter.Pair, text string) {
	r.ops = append(r.ops, fmt.Sprintf("T %s %s", p, text))
}

func refMeasurements() draft.Measurements {
	return draft.Measurements{
		Waist:          100.33,
		Seat:           107.95,
		BodyRise:       29.21,
		Inseam:         86.36,
		BottomWidth:    22.6,
		WaistbandDepth: 4,
	}
}

func refFront(t *testing.T) *draft.PointSet {
	t.Helper()
	ps, err := draft.Front(refMeasurements())
	if err != nil {
		t.Fatalf("front draft failed: %v", err)
	}
	return ps
}

func refBack(t *testing.T) *draft.PointSet {
	t.Helper()
	ps, err := draft.Back(refMeasurements(), refFront(t))
	if err != nil {
		t.Fatalf("back draft failed: %v", err)
	}
	return ps
}

func TestRenderFrontPanel(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	rec := &recorder{}
	panel := FrontPanel(refFront(t))
	if err := Render(panel, rec, Options{}); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	// one MoveTo, then exactly one op per traversal step
	assert.Equal(t, 1+len(panel.steps), len(rec.ops))
	assert.Equal(t, "M", rec.ops[0][:1])
	for _, op := range rec.ops[1:] {
		assert.Contains(t, "LC", op[:1])
	}
	// the outline closes on its starting point
	start, _ := panel.Start()
	last := rec.ops[len(rec.ops)-1]
	assert.Contains(t, last, start.String())
}

func TestRenderBackPanelHasMarks(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	rec := &recorder{}
	panel := BackPanel(refBack(t))
	if err := Render(panel, rec, Options{}); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	// the fork spline expands into multiple cubics, so ops exceed steps;
	// the three dart marks contribute a MoveTo+LineTo pair each
	moves := 0
	for _, op := range rec.ops {
		if op[:1] == "M" {
			moves++
		}
	}
	assert.Equal(t, 1+len(panel.marks), moves)
}

func TestRenderDeterministic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	a, b := &recorder{}, &recorder{}
	if err := Render(BackPanel(refBack(t)), a, Options{}); err != nil {
		t.Fatal(err)
	}
	if err := Render(BackPanel(refBack(t)), b, Options{}); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, a.ops, b.ops)
}

func TestDebugLabelsAreAdditive(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	plain, labeled := &recorder{}, &recorder{}
	if err := Render(FrontPanel(refFront(t)), plain, Options{}); err != nil {
		t.Fatal(err)
	}
	if err := Render(FrontPanel(refFront(t)), labeled, Options{DebugLabels: true}); err != nil {
		t.Fatal(err)
	}
	if assert.Greater(t, len(labeled.ops), len(plain.ops)) {
		assert.Equal(t, plain.ops, labeled.ops[:len(plain.ops)])
		for _, op := range labeled.ops[len(plain.ops):] {
			assert.Equal(t, "T", op[:1])
		}
	}
}

func TestRenderMissingPoint(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	rec := &recorder{}
	err := Render(BackPanel(refFront(t)), rec, Options{}) // front set lacks back points
	var missing draft.MissingPointError
	assert.True(t, errors.As(err, &missing))
	assert.True(t, errors.Is(err, draft.ErrMissingPoint))
}

func TestOutlineFrontIsSimple(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pts, err := Outline(FrontPanel(refFront(t)), 16)
	if err != nil {
		t.Fatalf("outline failed: %v", err)
	}
	assert.Greater(t, len(pts), 10)
	assert.NoError(t, ValidateOutline(pts))
	// implicit closure: the terminal sample must not repeat the start
	assert.False(t, pts[0].Equal(pts[len(pts)-1]))
}

func TestOutlineBackIsSimple(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pts, err := Outline(BackPanel(refBack(t)), 16)
	if err != nil {
		t.Fatalf("outline failed: %v", err)
	}
	assert.NoError(t, ValidateOutline(pts))
}

func TestOutlineZeroBottomWidth(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	m := refMeasurements()
	m.BottomWidth = 0
	front, err := draft.Front(m)
	if err != nil {
		t.Fatal(err)
	}
	pts, err := Outline(FrontPanel(front), 16)
	if err != nil {
		t.Fatalf("outline failed: %v", err)
	}
	// the hem collapses to a single vertex but the wedge stays simple
	for i, p := range pts {
		if i > 0 {
			assert.False(t, p.Equal(pts[i-1]), "duplicate consecutive sample at %d", i)
		}
	}
	assert.NoError(t, ValidateOutline(pts))

	back, err := draft.Back(m, front)
	if err != nil {
		t.Fatal(err)
	}
	pts, err = Outline(BackPanel(back), 16)
	if err != nil {
		t.Fatalf("back outline failed: %v", err)
	}
	assert.NoError(t, ValidateOutline(pts))
}

// On narrow hems the fork curve runs close to the inseam's final arc
// into its start knot; the outline must stay a simple contour.
func TestOutlineNarrowBottomWidths(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for _, bw := range []float64{0, 5, 10} {
		m := refMeasurements()
		m.BottomWidth = bw
		front, err := draft.Front(m)
		if err != nil {
			t.Fatal(err)
		}
		back, err := draft.Back(m, front)
		if err != nil {
			t.Fatal(err)
		}
		for _, panel := range []Panel{FrontPanel(front), BackPanel(back)} {
			pts, err := Outline(panel, 16)
			if err != nil {
				t.Fatalf("outline of %s at width %g failed: %v", panel.Name, bw, err)
			}
			assert.NoError(t, ValidateOutline(pts), "%s panel, bottom width %g", panel.Name, bw)
		}
	}
}

// The fork spline must leave its start knot along the chord to the
// first anchor, not swing below it.
func TestForkLeavesJunctionTowardAnchor(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	panel := BackPanel(refBack(t))
	start, err := panel.Points.Get(draft.P23)
	if err != nil {
		t.Fatal(err)
	}
	anchor, err := panel.Points.Get(draft.BackFork)
	if err != nil {
		t.Fatal(err)
	}
	st := panel.steps[len(panel.steps)-1]
	segs, err := panel.forkSegments(start, st)
	if err != nil {
		t.Fatal(err)
	}
	out := segs[0].C1 - segs[0].From
	chord := anchor - start
	assert.InDelta(t, math.Atan2(chord.Y(), chord.X()), math.Atan2(out.Y(), out.X()), 1e-9)
}

func TestValidateOutlineRejectsDegenerate(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	err := ValidateOutline([]drafter.Pair{drafter.P(0, 0), drafter.P(1, 1)})
	assert.True(t, errors.Is(err, ErrBadOutline))
	// collinear points enclose no area
	err = ValidateOutline([]drafter.Pair{drafter.P(0, 0), drafter.P(1, 1), drafter.P(2, 2)})
	assert.True(t, errors.Is(err, ErrBadOutline))
}

func TestValidateOutlineRejectsSelfIntersection(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	// a bowtie crosses itself at the origin
	bowtie := []drafter.Pair{
		drafter.P(-2, -1), drafter.P(2, 1), drafter.P(2, -1), drafter.P(-2, 1),
	}
	assert.Error(t, ValidateOutline(bowtie))
}

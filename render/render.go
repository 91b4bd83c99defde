package render

import (
	"fmt"

	"github.com/seamly/drafter"
	"github.com/seamly/drafter/spline"
)

// Render walks the panel's traversal table and emits its closed outline
// onto the canvas, followed by interior marks and (optionally) debug
// labels. Any unresolved point reference or degenerate construction
// aborts the panel; no partial outline handling is attempted beyond
// what the canvas has already consumed.
//
// Rendering is deterministic: identical point sets produce identical
// operation sequences.
func Render(p Panel, c Canvas, opts Options) error {
	cur, err := p.Start()
	if err != nil {
		return err
	}
	c.MoveTo(cur)
	for i, st := range p.steps {
		to, err := p.Points.Get(st.to)
		if err != nil {
			return err
		}
		switch st.kind {
		case stepLine:
			c.LineTo(to)
		case stepBulge:
			q, err := spline.Arc(cur, to, st.bulge)
			if err != nil {
				return fmt.Errorf("panel %s, step %d: %w", p.Name, i, err)
			}
			seg := q.Cubic()
			c.CurveTo(seg.C1, seg.C2, seg.To)
		case stepFork:
			segs, err := p.forkSegments(cur, st)
			if err != nil {
				return fmt.Errorf("panel %s, step %d: %w", p.Name, i, err)
			}
			for _, seg := range segs {
				c.CurveTo(seg.C1, seg.C2, seg.To)
			}
		}
		cur = to
	}
	for _, mk := range p.marks {
		from, err := p.Points.Get(mk.from)
		if err != nil {
			return err
		}
		to, err := p.Points.Get(mk.to)
		if err != nil {
			return err
		}
		c.MoveTo(from)
		c.LineTo(to)
	}
	if opts.DebugLabels {
		for _, id := range p.Points.IDs() {
			pt, err := p.Points.Get(id)
			if err != nil {
				return err
			}
			c.Label(pt, id.String())
		}
	}
	tracer().Infof("rendered panel %s: %d steps, %d marks", p.Name, len(p.steps), len(p.marks))
	return nil
}

// forkSegments solves the spline of a stepFork entry starting at cur.
func (p Panel) forkSegments(cur drafter.Pair, st step) ([]spline.Segment, error) {
	knots := make([]drafter.Pair, 0, len(st.via)+2)
	knots = append(knots, cur)
	for _, id := range st.via {
		pt, err := p.Points.Get(id)
		if err != nil {
			return nil, err
		}
		knots = append(knots, pt)
	}
	to, err := p.Points.Get(st.to)
	if err != nil {
		return nil, err
	}
	knots = append(knots, to)
	curve := spline.Through(st.bias, knots...)
	// The curve leaves the seam junction along the chord to its first
	// anchor. Left to the neutral-curl boundary, the spline swings
	// below the junction and can cross the incoming seam on narrow
	// hems.
	curve.SetStartDir(knots[1] - knots[0])
	if err := curve.Solve(); err != nil {
		return nil, err
	}
	return curve.Segments(), nil
}

// Outline samples the panel's closed outline into a polyline with the
// given number of interpolation steps per curved seam. Consecutive
// duplicate samples (a hem collapsed to a doubled vertex, say) are
// removed; the terminal sample is dropped when it repeats the start, so
// the result is a closed contour in implicit form.
func Outline(p Panel, samplesPerCurve int) ([]drafter.Pair, error) {
	if samplesPerCurve < 1 {
		samplesPerCurve = 8
	}
	cur, err := p.Start()
	if err != nil {
		return nil, err
	}
	pts := []drafter.Pair{cur}
	push := func(more ...drafter.Pair) {
		for _, pt := range more {
			if !pts[len(pts)-1].Equal(pt) {
				pts = append(pts, pt)
			}
		}
	}
	for i, st := range p.steps {
		to, err := p.Points.Get(st.to)
		if err != nil {
			return nil, err
		}
		switch st.kind {
		case stepLine:
			push(to)
		case stepBulge:
			q, err := spline.Arc(cur, to, st.bulge)
			if err != nil {
				return nil, fmt.Errorf("panel %s, step %d: %w", p.Name, i, err)
			}
			push(q.Samples(samplesPerCurve)[1:]...)
		case stepFork:
			segs, err := p.forkSegments(cur, st)
			if err != nil {
				return nil, fmt.Errorf("panel %s, step %d: %w", p.Name, i, err)
			}
			for _, seg := range segs {
				for j := 1; j <= samplesPerCurve; j++ {
					push(seg.Point(float64(j) / float64(samplesPerCurve)))
				}
			}
		}
		cur = to
	}
	if len(pts) > 1 && pts[len(pts)-1].Equal(pts[0]) {
		pts = pts[:len(pts)-1]
	}
	if len(pts) < 3 {
		return nil, fmt.Errorf("%w: only %d distinct samples", ErrBadOutline, len(pts))
	}
	return pts, nil
}

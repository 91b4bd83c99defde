package render

import (
	"github.com/seamly/drafter"
	"github.com/seamly/drafter/draft"
)

// stepKind discriminates the entries of a traversal table.
type stepKind uint8

const (
	stepLine  stepKind = iota // straight segment to a point
	stepBulge                 // quadratic arc to a point, control at a perpendicular offset
	stepFork                  // smooth spline through intermediate anchors to a point
)

// step is one entry of a panel's traversal table.
type step struct {
	kind  stepKind
	to    draft.PointID
	bulge float64         // perpendicular offset, stepBulge only
	via   []draft.PointID // intermediate anchors, stepFork only
	bias  float64         // spline tension, stepFork only
}

// mark is an interior line (dart legs, grain lines) drawn inside the
// outline. Marks never contribute to the closed contour.
type mark struct {
	from, to draft.PointID
}

// Panel is one garment piece: a point set plus the fixed traversal
// order defining its closed outline. Panels are value objects; they own
// no mutable state.
type Panel struct {
	Name   string
	Points *draft.PointSet
	start  draft.PointID
	steps  []step
	marks  []mark
}

// The spline tension of the back fork seam. The fork needs a soft
// curve, so it uses the lowest tension the solver supports; values
// near 1 flatten the curve against its chords.
const forkBias = 0.75

// FrontPanel assembles the front trouser panel over a drafted front
// point set. The outline runs waistband → hip curve → side seam → hem →
// inseam → fly curve → fly line.
func FrontPanel(ps *draft.PointSet) Panel {
	return Panel{
		Name:   "front",
		Points: ps,
		start:  draft.WaistA,
		steps: []step{
			{kind: stepBulge, to: draft.P11, bulge: -0.2}, // waistband, slight dip
			{kind: stepBulge, to: draft.P8, bulge: 0.75},  // hip curve
			{kind: stepLine, to: draft.P14},               // side seam to knee
			{kind: stepLine, to: draft.P12},               // side seam to hem
			{kind: stepLine, to: draft.P13},               // hem
			{kind: stepBulge, to: draft.P9, bulge: -4.5},  // inseam curve
			{kind: stepBulge, to: draft.P6, bulge: -4.5},  // fly curve
			{kind: stepLine, to: draft.WaistA},            // fly line, closes
		},
	}
}

// BackPanel assembles the back trouser panel over a drafted back point
// set. The outline runs waistband → side seam → hem → inseam → back
// fork curve; the dart is drawn as interior marks.
func BackPanel(ps *draft.PointSet) Panel {
	return Panel{
		Name:   "back",
		Points: ps,
		start:  draft.P21,
		steps: []step{
			{kind: stepLine, to: draft.P24},               // waistband
			{kind: stepLine, to: draft.P26},               // side seam to hip
			{kind: stepBulge, to: draft.P29, bulge: -0.3}, // side seam, inward
			{kind: stepLine, to: draft.P27},               // side seam to hem
			{kind: stepBulge, to: draft.P28, bulge: 1.0},  // hem, curving down
			{kind: stepLine, to: draft.P30},               // inseam to knee
			{kind: stepBulge, to: draft.P23, bulge: -1.2}, // inseam, inward
			{kind: stepFork, to: draft.P21, bias: forkBias, // back fork, closes
				via: []draft.PointID{draft.BackFork, draft.P19}},
		},
		marks: []mark{
			{from: draft.P25, to: draft.DartApex},
			{from: draft.DartApex, to: draft.DartLeft},
			{from: draft.DartApex, to: draft.DartRight},
		},
	}
}

// Start returns the outline's starting point.
func (p Panel) Start() (drafter.Pair, error) {
	return p.Points.Get(p.start)
}

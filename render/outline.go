package render

import (
	"errors"
	"fmt"
	"math"

	"github.com/akavel/polyclip-go"
	"github.com/seamly/drafter"
)

// ErrBadOutline flags a sampled panel outline that does not form a
// single simple closed contour. Wrapped with detail by Outline and
// ValidateOutline.
var ErrBadOutline = errors.New("panel outline is not a simple closed contour")

// ValidateOutline checks that a sampled outline is usable as a cutting
// contour: it must enclose a non-trivial area and must not
// self-intersect. A seam crossing over another seam (a fork curve
// overshooting the hem, say) splits the clipped polygon into multiple
// contours, which is what we test for. Intended as a sanity gate after
// Outline, before export.
func ValidateOutline(pts []drafter.Pair) error {
	if len(pts) < 3 {
		return fmt.Errorf("%w: %d points", ErrBadOutline, len(pts))
	}
	area := signedArea(pts)
	if math.Abs(area) < drafter.Epsilon {
		return fmt.Errorf("%w: enclosed area is zero", ErrBadOutline)
	}
	contour := make(polyclip.Contour, len(pts))
	minx, miny := math.Inf(1), math.Inf(1)
	maxx, maxy := math.Inf(-1), math.Inf(-1)
	for i, pt := range pts {
		contour[i] = polyclip.Point{X: pt.X(), Y: pt.Y()}
		minx, maxx = math.Min(minx, pt.X()), math.Max(maxx, pt.X())
		miny, maxy = math.Min(miny, pt.Y()), math.Max(maxy, pt.Y())
	}
	// Clipping against an inflated bounding box normalizes the contour
	// without the coincident-edge degeneracies a self-union would hit.
	pad := math.Max(maxx-minx, maxy-miny)*0.5 + 1
	clip := polyclip.Polygon{{
		{X: minx - pad, Y: miny - pad},
		{X: maxx + pad, Y: miny - pad},
		{X: maxx + pad, Y: maxy + pad},
		{X: minx - pad, Y: maxy + pad},
	}}
	normalized := polyclip.Polygon{contour}.Construct(polyclip.INTERSECTION, clip)
	if n := len(normalized); n != 1 {
		return fmt.Errorf("%w: resolves to %d contours", ErrBadOutline, n)
	}
	return nil
}

// signedArea is the shoelace sum of a closed polyline given in
// implicit-closure form. Positive for counter-clockwise winding.
func signedArea(pts []drafter.Pair) float64 {
	var sum float64
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		sum += p.X()*q.Y() - q.X()*p.Y()
	}
	return sum / 2
}

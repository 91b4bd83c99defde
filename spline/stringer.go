package spline

import (
	"fmt"
	"math/cmplx"

	"github.com/seamly/drafter"
)

// AsString returns a curve -- including spline control points once
// solved -- as a (debugging) string. The string contains newlines if
// control point information is present. Otherwise it will include the
// knot coordinates in one line.
//
// The format is not fully equivalent to MetaFont's, but close.
func AsString(c *Curve) string {
	var s string
	for i := 0; i < c.N(); i++ {
		pt := c.Knot(i)
		if i > 0 {
			if c.solved {
				s += fmt.Sprintf(" and %s\n  .. ", ptstring(c.PreControl(i), true))
			} else {
				s += " .. "
			}
		}
		s += ptstring(pt, false)
		if c.solved && (i < c.N()-1 || c.IsCycle()) {
			s += fmt.Sprintf(" .. controls %s", ptstring(c.PostControl(i), true))
		}
	}
	if c.IsCycle() {
		if c.solved {
			s += fmt.Sprintf(" and %s\n ", ptstring(c.PreControl(0), true))
		}
		s += " .. cycle"
	}
	return s
}

func ptstring(p drafter.Pair, iscontrol bool) string {
	if cmplx.IsNaN(p.C()) {
		return "(<unknown>)"
	}
	if iscontrol {
		return fmt.Sprintf("(%.4f,%.4f)", round(p.X()), round(p.Y()))
	}
	return fmt.Sprintf("(%.4g,%.4g)", round(p.X()), round(p.Y()))
}

func round(x float64) float64 {
	if x >= 0 {
		return float64(int64(x*10000.0+0.5)) / 10000.0
	}
	return float64(int64(x*10000.0-0.5)) / 10000.0
}

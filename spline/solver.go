package spline

import (
	"math"
	"math/cmplx"

	"github.com/seamly/drafter"
)

// Solve finds the spline control points for the curve, following John
// Hobby's algorithm as used by MetaFont. It validates the curve first
// and returns an error for empty/invalid geometry; degenerate knot
// sequences never yield substitute control points.
//
// Solving is deterministic and idempotent. A two-knot open curve
// degenerates to its chord.
func (c *Curve) Solve() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.solved {
		return nil
	}
	n := c.N()
	c.prec = make([]drafter.Pair, n)
	c.postc = make([]drafter.Pair, n)
	if !c.cycle && n == 2 {
		// chord case: no interior angles to solve for
		third := (c.knots[1] - c.knots[0]).Scaled(1.0 / 3.0)
		c.postc[0] = c.knots[0] + third
		c.prec[1] = c.knots[1] - third
		c.solved = true
		return nil
	}
	u := make([]float64, n+2)
	v := make([]float64, n+2)
	theta := make([]float64, n+2)
	if c.cycle {
		w := make([]float64, n+2)
		c.solveCycle(theta, u, v, w)
	} else {
		c.solveOpen(theta, u, v)
	}
	c.setControls(theta)
	c.solved = true
	tracer().Infof("solved spline through %d knots, bias %.4g", n, c.bias)
	return nil
}

// MustSolve is a compatibility helper which panics on validation errors.
func MustSolve(c *Curve) *Curve {
	if err := c.Solve(); err != nil {
		panic(err)
	}
	return c
}

func (c *Curve) delta(i int) drafter.Pair {
	return c.Knot(i+1) - c.Knot(i)
}

func (c *Curve) d(i int) float64 {
	r, _ := cmplx.Polar(c.delta(i).C())
	return r
}

// Turning angle at knot i.
func (c *Curve) psi(i int) float64 {
	psi := 0.0
	if c.cycle || (i > 0 && i < c.N()-1) {
		psi = cmplx.Phase(c.delta(i).C()) - cmplx.Phase(c.delta(i-1).C())
	}
	return reduceAngle(psi)
}

func (c *Curve) solveOpen(theta, u, v []float64) {
	c.startOpen(theta, u, v)
	c.buildEqs(u, v, nil)
	c.endOpen(theta, u, v)
}

func (c *Curve) solveCycle(theta, u, v, w []float64) {
	u[0], v[0], w[0] = 0, 0, 1
	c.buildEqs(u, v, w)
	c.endCycle(theta, u, v, w)
}

// Open curves end with neutral curl (curl = 1), which collapses the
// MetaFont boundary condition to u.0 = 1. An explicit start direction
// replaces the curl condition: theta.0 becomes the known deviation of
// the direction from the first chord, eliminated with u.0 = 0.
func (c *Curve) startOpen(theta, u, v []float64) {
	if c.hasStart {
		u[0] = 0
		v[0] = reduceAngle(cmplx.Phase(c.startDir.C()) - cmplx.Phase(c.delta(0).C()))
	} else {
		u[0] = 1
		v[0] = -u[0] * c.psi(1)
	}
	tracer().Debugf("u.0 = %.4g, v.0 = %.4g", u[0], v[0])
}

func (c *Curve) endOpen(theta, u, v []float64) {
	last := c.N() - 1
	if c.hasEnd {
		theta[last] = reduceAngle(cmplx.Phase(c.endDir.C()) - cmplx.Phase(c.delta(last-1).C()))
	} else {
		u[last] = 1
		theta[last] = v[last-1] / (u[last-1] - u[last])
	}
	tracer().Debugf("theta.%d = %.4g", last, rad2deg(theta[last]))
	for i := last - 1; i >= 0; i-- {
		theta[i] = v[i] - u[i]*theta[i+1]
		tracer().Debugf("theta.%d = %.4g", i, rad2deg(theta[i]))
	}
}

func (c *Curve) endCycle(theta, u, v, w []float64) {
	n := c.N()
	var a, b float64 = 0, 1
	for i := n; i > 0; i-- {
		a = v[i] - a*u[i]
		b = w[i] - b*u[i]
	}
	t0 := (v[n] - a*u[n]) / (1 - (w[n] - b*u[n]))
	v[0] = t0
	for i := 1; i <= n; i++ {
		v[i] += w[i] * t0
	}
	theta[0], theta[n] = t0, t0
	for i := n - 1; i > 0; i-- {
		theta[i] = v[i] - u[i]*theta[i+1]
	}
}

func (c *Curve) buildEqs(u, v, w []float64) {
	n := c.N()
	r := recip(c.bias)
	for i := 1; i <= n; i++ {
		A := r / (square(r) * c.d(i-1))
		B := (3 - r) / (square(r) * c.d(i-1))
		C := (3 - r) / (square(r) * c.d(i))
		D := r / (square(r) * c.d(i))
		t := B - u[i-1]*A + C
		u[i] = D / t
		v[i] = (-B*c.psi(i) - D*c.psi(i+1) - A*v[i-1]) / t
		if c.cycle {
			w[i] = -A * w[i-1] / t
		}
		tracer().Debugf("u.%d = %.4g, v.%d = %.4g", i, u[i], i, v[i])
	}
}

func (c *Curve) setControls(theta []float64) {
	n := c.N()
	r := recip(c.bias)
	for i := 0; i < c.segments(); i++ {
		phi := -c.psi(i+1) - theta[i+1]
		p2, p3 := controlPoints(phi, theta[i], r, r, c.delta(i))
		c.postc[i%n] = c.Knot(i) + p2
		c.prec[(i+1)%n] = c.Knot(i+1) - p3
	}
}

func hobbyParamsAlphaBeta(theta, phi float64) (float64, float64) {
	constA := 1.41421356     // sqrt(2) -- empiric constants, as explained by J.Hobby
	constB := 0.0625         // 1/16
	constC := 0.38196601125  // (3 - sqrt(5)) / 2
	constCC := 0.61803398875 // 1 - c
	st := math.Sin(theta)    // in-angle
	ct := math.Cos(theta)
	sf := math.Sin(phi) // out-angle
	cf := math.Cos(phi)
	alpha := constA * (st - constB*sf) * (sf - constB*st) * (ct - cf)
	beta := 1 + constCC*ct + constC*cf
	return alpha, beta
}

func hobbyParamsRhoSigma(alpha, beta float64) (float64, float64) {
	rho := (2 + alpha) / beta
	sigma := (2 - alpha) / beta
	return rho, sigma
}

func cunitvecs(theta, phi float64, dvec drafter.Pair) (drafter.Pair, drafter.Pair) {
	st := math.Sin(theta)
	ct := math.Cos(theta)
	sf := math.Sin(phi)
	cf := math.Cos(phi)
	dx, dy := real(dvec), imag(dvec)
	uv1 := drafter.P(dx*ct-dy*st, dx*st+dy*ct)
	uv2 := drafter.P(dx*cf+dy*sf, -dx*sf+dy*cf)
	return uv1, uv2
}

// Calculate control points between z.i and z.[i+1].
func controlPoints(phi, theta, a, b float64, dvec drafter.Pair) (drafter.Pair, drafter.Pair) {
	alpha, beta := hobbyParamsAlphaBeta(theta, phi)
	rho, sigma := hobbyParamsRhoSigma(alpha, beta)
	uv1, uv2 := cunitvecs(theta, phi, dvec)
	crho := drafter.P(a/3*rho, 0)
	csigma := drafter.P(b/3*sigma, 0)
	p2 := crho * uv1
	p3 := csigma * uv2
	return p2, p3
}

// Reduce an angle to fit into -pi .. pi.
func reduceAngle(a float64) float64 {
	if math.Abs(a) > pi {
		if a > 0 {
			a -= pi2
		} else {
			a += pi2
		}
	}
	return a
}

// Return 1/a for a.
func recip(a float64) float64 {
	if math.IsNaN(a) {
		return 1.0
	}
	return 1.0 / a
}

// Return a^2 for a.
func square(a float64) float64 {
	return math.Pow(a, 2.0)
}

func rad2deg(a float64) float64 {
	return a * 180 / pi
}

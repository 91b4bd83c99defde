/*
Package drafter implements the 2D geometry underlying garment pattern
drafting: points, affine transformations, and the small set of
constructions (midpoints, points along rays, polar offsets) that
pattern-drafting instructions are written in.

# BSD License

# Copyright (c) the drafter authors

All rights reserved.

Please refer to the license file for more information.
*/
package drafter

import (
	"errors"
	"math"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'drafter'
func tracer() tracing.Trace {
	return tracing.Select("drafter")
}

// === Numeric Data Type =====================================================

// Deg2Rad is a constant for converting from DEG to RAD or vice versa
var Deg2Rad float64 = 0.01745329251

// Epsilon : numbers below ε are considered 0
var Epsilon float64 = 0.0000001

// ErrDegenerateInput flags a geometric construction with ill-conditioned
// input, e.g. a zero-length direction vector. Constructions never fall
// back to a default point.
var ErrDegenerateInput = errors.New("degenerate input for geometric construction")

// Is0 is a predicate: is n = 0 ?
func Is0(n float64) bool {
	return math.Abs(n) <= Epsilon
}

// Is1 is a predicate: is n = 1.0 ?
func Is1(n float64) bool {
	return math.Abs(1-n) <= Epsilon
}

// Zap makes n = 0 if n "means" to be zero
func Zap(n float64) float64 {
	if Is0(n) {
		n = 0
	}
	return n
}

// Round to ε.
func Round(n float64) float64 {
	return math.Round(n/Epsilon) * Epsilon
}

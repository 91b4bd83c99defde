// Package render walks a drafted panel's point set in garment
// construction order and emits the closed outline as draw operations
// onto an abstract drawing surface.
//
// The traversal order is a static, hand-authored table per panel
// (waistband, side seam, hem, inseam, crotch curve, back to the
// waistband), matching the paper drafting method. The renderer never
// infers ordering from coordinates, and it resolves every referenced
// point eagerly: a table entry naming a point absent from the point set
// aborts the panel with a MissingPointError.
package render

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/seamly/drafter"
)

// tracer writes to trace with key 'render'
func tracer() tracing.Trace {
	return tracing.Select("render")
}

// Canvas is the capability set a drawing surface must offer. There is
// no ambient default surface; renderer and exporter always receive an
// explicit Canvas.
//
// Coordinates are pattern coordinates (centimeters, y up); a Canvas
// implementation owns the mapping onto its device.
type Canvas interface {
	// MoveTo starts a new subpath at p.
	MoveTo(p drafter.Pair)
	// LineTo extends the current subpath with a straight segment.
	LineTo(p drafter.Pair)
	// CurveTo extends the current subpath with a cubic segment.
	CurveTo(c1, c2, to drafter.Pair)
	// Label places an annotation at p. Purely additive; a Canvas may
	// ignore it.
	Label(p drafter.Pair, text string)
}

// Options control rendering side effects.
type Options struct {
	// DebugLabels emits each point's identifier next to its position,
	// to aid manual verification against the paper drafting method.
	// Never affects geometry.
	DebugLabels bool
}

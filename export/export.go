// Package export turns rendered pattern panels into paged vector
// documents (PDF, SVG) and raster previews (PNG). One panel per page;
// every page carries the document title, a seam allowance note and a
// 10 cm scale bar so a print can be verified with a ruler.
//
// Exporters are pure: they write to the supplied writer and never
// retry or persist anything themselves. Pattern coordinates are
// centimeters with the y axis pointing up; each exporter owns the
// mapping onto its device.
package export

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/npillmayer/schuko/tracing"
	"github.com/seamly/drafter"
	"github.com/seamly/drafter/render"
)

// tracer writes to trace with key 'export'
func tracer() tracing.Trace {
	return tracing.Select("export")
}

// Document is the metadata printed onto every page.
type Document struct {
	Title       string
	Units       string // measurement unit label, normally "cm"
	GeneratedAt time.Time
}

// ErrEmptyOutline flags a panel whose outline produced no usable
// geometry.
var ErrEmptyOutline = errors.New("panel outline is empty")

// RenderError wraps a failure while exporting one panel, carrying the
// panel name.
type RenderError struct {
	Panel string
	Err   error
}

func (e RenderError) Error() string {
	return fmt.Sprintf("exporting panel %s: %v", e.Panel, e.Err)
}

func (e RenderError) Unwrap() error {
	return e.Err
}

// Options control page decoration.
type Options struct {
	// DebugLabels prints each drafting point's identifier next to its
	// position.
	DebugLabels bool
	// SamplesPerCurve controls how finely curved seams are sampled
	// where an output format has no native curves. Zero means a
	// sensible default.
	SamplesPerCurve int
}

func (o Options) samples() int {
	if o.SamplesPerCurve < 1 {
		return 16
	}
	return o.SamplesPerCurve
}

// SuggestedName derives a filename from the document metadata, e.g.
// "trousers-draft-20260831.pdf".
func SuggestedName(doc Document, ext string) string {
	slug := strings.ToLower(strings.TrimSpace(doc.Title))
	slug = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		default:
			return '-'
		}
	}, slug)
	for strings.Contains(slug, "--") {
		slug = strings.ReplaceAll(slug, "--", "-")
	}
	slug = strings.Trim(slug, "-")
	if slug == "" {
		slug = "pattern"
	}
	when := doc.GeneratedAt
	if when.IsZero() {
		when = time.Now()
	}
	return fmt.Sprintf("%s-%s.%s", slug, when.Format("20060102"), ext)
}

// label is a buffered text annotation in device coordinates. Canvas
// adapters collect labels during the path walk and place them after
// the path is finished.
type label struct {
	at   drafter.Pair
	text string
}

// box is an axis-aligned bounding box in pattern coordinates.
type box struct {
	minx, miny, maxx, maxy float64
}

func (b box) w() float64 { return b.maxx - b.minx }
func (b box) h() float64 { return b.maxy - b.miny }

func bounds(pts []drafter.Pair) (box, error) {
	if len(pts) == 0 {
		return box{}, ErrEmptyOutline
	}
	b := box{math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)}
	for _, p := range pts {
		b.minx = math.Min(b.minx, p.X())
		b.miny = math.Min(b.miny, p.Y())
		b.maxx = math.Max(b.maxx, p.X())
		b.maxy = math.Max(b.maxy, p.Y())
	}
	return b, nil
}

// panelBounds samples the panel outline, validates it and returns its
// bounding box. All exporters gate on this before emitting a page.
func panelBounds(p render.Panel, samples int) (box, error) {
	pts, err := render.Outline(p, samples)
	if err != nil {
		return box{}, RenderError{Panel: p.Name, Err: err}
	}
	if err := render.ValidateOutline(pts); err != nil {
		return box{}, RenderError{Panel: p.Name, Err: err}
	}
	return bounds(pts)
}

// fitTransform maps the pattern box into a device rectangle of the
// given size, preserving aspect ratio and centering. flipY mirrors the
// pattern's y-up convention onto devices with y growing downward.
// Returns the transform and the resulting device units per centimeter.
func fitTransform(b box, devW, devH float64, flipY bool) (drafter.AT, float64) {
	scale := math.Min(devW/b.w(), devH/b.h())
	sy := scale
	if flipY {
		sy = -scale
	}
	// center of the pattern box onto the center of the device rect
	cx, cy := (b.minx+b.maxx)/2, (b.miny+b.maxy)/2
	t := drafter.Translation(drafter.P(-cx, -cy)).
		Combine(drafter.Scaling(scale, sy)).
		Combine(drafter.Translation(drafter.P(devW/2, devH/2)))
	return t, scale
}

package export

import (
	"fmt"
	"io"
	"strings"

	svg "github.com/ajstarks/svgo/float"

	"github.com/seamly/drafter"
	"github.com/seamly/drafter/render"
)

// SVG page geometry, in pixels at 10 px per pattern centimeter.
const (
	svgPxPerCm = 10.0
	svgMargin  = 40.0
	svgHeader  = 60.0
	svgGap     = 40.0
)

const svgSeamStyle = "fill:none;stroke:black;stroke-width:1.5"

// SVG writes all panels into a single SVG document, laid out side by
// side at a fixed 10 px per centimeter. Seams become one path per
// panel; dart marks and debug labels follow as separate elements.
func SVG(w io.Writer, doc Document, panels []render.Panel, opts Options) error {
	if len(panels) == 0 {
		return ErrEmptyOutline
	}
	boxes := make([]box, len(panels))
	totalW, maxH := svgMargin, 0.0
	for i, panel := range panels {
		b, err := panelBounds(panel, opts.samples())
		if err != nil {
			return err
		}
		boxes[i] = b
		totalW += b.w()*svgPxPerCm + svgGap
		if h := b.h() * svgPxPerCm; h > maxH {
			maxH = h
		}
	}
	totalW += svgMargin - svgGap
	totalH := maxH + svgHeader + 2*svgMargin

	canvas := svg.New(w)
	canvas.Start(totalW, totalH)
	canvas.Title(doc.Title)
	canvas.Text(svgMargin, 24, doc.Title, "font-family:sans-serif;font-size:16px")
	canvas.Text(svgMargin, 42,
		fmt.Sprintf("units %s, drafted %s, seam allowance not included",
			doc.Units, doc.GeneratedAt.Format("2006-01-02")),
		"font-family:sans-serif;font-size:10px;fill:gray")

	x := svgMargin
	for i, panel := range panels {
		b := boxes[i]
		devW, devH := b.w()*svgPxPerCm, b.h()*svgPxPerCm
		fit, _ := fitTransform(b, devW, devH, true)
		fit = fit.Combine(drafter.Translation(drafter.P(x, svgHeader+svgMargin)))

		pc := &svgCanvas{fit: fit}
		if err := render.Render(panel, pc, render.Options{DebugLabels: opts.DebugLabels}); err != nil {
			return RenderError{Panel: panel.Name, Err: err}
		}
		canvas.Path(pc.path.String(), svgSeamStyle)
		for _, l := range pc.labels {
			canvas.Text(l.at.X()+2, l.at.Y()-2, l.text,
				"font-family:sans-serif;font-size:7px;fill:gray")
		}
		canvas.Text(x, svgHeader+svgMargin+devH+16, panel.Name,
			"font-family:sans-serif;font-size:11px")
		x += devW + svgGap
	}

	// 10 cm reference bar under the leftmost panel
	barY := totalH - svgMargin/2
	canvas.Line(svgMargin, barY, svgMargin+10*svgPxPerCm, barY, "stroke:black;stroke-width:1")
	for i := 0; i <= 10; i++ {
		bx := svgMargin + float64(i)*svgPxPerCm
		canvas.Line(bx, barY, bx, barY-4, "stroke:black;stroke-width:1")
	}
	canvas.Text(svgMargin+10*svgPxPerCm+6, barY, "10 cm",
		"font-family:sans-serif;font-size:9px")

	canvas.End()
	tracer().Infof("wrote SVG %q with %d panels", doc.Title, len(panels))
	return nil
}

// svgCanvas accumulates a panel's seams as SVG path data. Labels are
// collected for the caller to place as text elements.
type svgCanvas struct {
	fit    drafter.AT
	path   strings.Builder
	labels []label
}

func (c *svgCanvas) MoveTo(p drafter.Pair) {
	q := c.fit.Transform(p)
	fmt.Fprintf(&c.path, "M%.3f,%.3f ", q.X(), q.Y())
}

func (c *svgCanvas) LineTo(p drafter.Pair) {
	q := c.fit.Transform(p)
	fmt.Fprintf(&c.path, "L%.3f,%.3f ", q.X(), q.Y())
}

func (c *svgCanvas) CurveTo(c1, c2, to drafter.Pair) {
	q1, q2, q3 := c.fit.Transform(c1), c.fit.Transform(c2), c.fit.Transform(to)
	fmt.Fprintf(&c.path, "C%.3f,%.3f %.3f,%.3f %.3f,%.3f ",
		q1.X(), q1.Y(), q2.X(), q2.Y(), q3.X(), q3.Y())
}

func (c *svgCanvas) Label(p drafter.Pair, text string) {
	c.labels = append(c.labels, label{at: c.fit.Transform(p), text: text})
}

var _ render.Canvas = (*svgCanvas)(nil)

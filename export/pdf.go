package export

import (
	"fmt"
	"io"

	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/font"
	"seehuhn.de/go/pdf/font/standard"
	"seehuhn.de/go/pdf/graphics/color"

	"github.com/seamly/drafter"
	"github.com/seamly/drafter/render"
)

// A4 page geometry, in PDF points.
const (
	pageW      = 595.28
	pageH      = 841.89
	pageMargin = 50.0
	headerH    = 60.0 // title block at the top of the content area
	footerH    = 40.0 // scale bar strip at the bottom
)

// PDF writes one A4 page per panel. Each page carries the document
// title, the panel name, a seam allowance note and a 10 cm scale bar;
// the outline is scaled to fit the page, preserving aspect ratio.
func PDF(w io.Writer, doc Document, panels []render.Panel, opts Options) error {
	if len(panels) == 0 {
		return ErrEmptyOutline
	}
	multi, err := document.WriteMultiPage(w, document.A4, pdf.V1_7, nil)
	if err != nil {
		return err
	}
	helv, err := standard.Helvetica.New()
	if err != nil {
		return err
	}
	for _, panel := range panels {
		if err := pdfPage(multi, helv, doc, panel, opts); err != nil {
			return err
		}
	}
	if err := multi.Close(); err != nil {
		return err
	}
	tracer().Infof("wrote PDF %q with %d pages", doc.Title, len(panels))
	return nil
}

func pdfPage(multi *document.MultiPage, helv font.Layouter, doc Document, panel render.Panel, opts Options) error {
	b, err := panelBounds(panel, opts.samples())
	if err != nil {
		return err
	}
	contentW := pageW - 2*pageMargin
	contentH := pageH - 2*pageMargin - headerH - footerH
	fit, ptPerCm := fitTransform(b, contentW, contentH, false)
	// shift the centered fit into the content area
	fit = fit.Combine(drafter.Translation(drafter.P(pageMargin, pageMargin+footerH)))

	page := multi.AddPage()

	// title block
	page.TextSetFont(helv, 14)
	page.TextBegin()
	page.TextFirstLine(pageMargin, pageH-pageMargin)
	page.TextShow(doc.Title)
	page.TextEnd()
	page.TextSetFont(helv, 9)
	page.TextBegin()
	page.TextFirstLine(pageMargin, pageH-pageMargin-16)
	page.TextShow(fmt.Sprintf("%s panel, units %s, drafted %s",
		panel.Name, doc.Units, doc.GeneratedAt.Format("2006-01-02")))
	page.TextEnd()
	page.TextBegin()
	page.TextFirstLine(pageMargin, pageH-pageMargin-28)
	page.TextShow("Seam allowance not included. Verify the scale bar before cutting.")
	page.TextEnd()

	// panel outline and marks
	canvas := &pdfCanvas{page: page, fit: fit}
	page.SetLineWidth(0.8)
	page.SetStrokeColor(color.DeviceGray(0))
	if err := render.Render(panel, canvas, render.Options{DebugLabels: opts.DebugLabels}); err != nil {
		return RenderError{Panel: panel.Name, Err: err}
	}
	page.Stroke()
	canvas.flushLabels(helv)

	pdfScaleBar(page, helv, ptPerCm)
	return page.Close()
}

// pdfScaleBar draws a 10 cm reference bar with centimeter ticks in the
// footer strip.
func pdfScaleBar(page *document.Page, helv font.Layouter, ptPerCm float64) {
	x0, y := pageMargin, pageMargin+10.0
	page.SetLineWidth(1)
	page.SetStrokeColor(color.DeviceGray(0))
	page.MoveTo(x0, y)
	page.LineTo(x0+10*ptPerCm, y)
	for i := 0; i <= 10; i++ {
		x := x0 + float64(i)*ptPerCm
		page.MoveTo(x, y)
		page.LineTo(x, y+4)
	}
	page.Stroke()
	page.TextSetFont(helv, 8)
	page.TextBegin()
	page.TextFirstLine(x0+10*ptPerCm+6, y-2)
	page.TextShow("10 cm")
	page.TextEnd()
}

// pdfCanvas adapts a PDF page to the renderer's drawing surface. Path
// operators are emitted directly; labels are buffered because text
// cannot be interleaved with an open path, and flushed after the
// stroke.
type pdfCanvas struct {
	page   *document.Page
	fit    drafter.AT
	labels []label
}

func (c *pdfCanvas) MoveTo(p drafter.Pair) {
	q := c.fit.Transform(p)
	c.page.MoveTo(q.X(), q.Y())
}

func (c *pdfCanvas) LineTo(p drafter.Pair) {
	q := c.fit.Transform(p)
	c.page.LineTo(q.X(), q.Y())
}

func (c *pdfCanvas) CurveTo(c1, c2, to drafter.Pair) {
	q1, q2, q3 := c.fit.Transform(c1), c.fit.Transform(c2), c.fit.Transform(to)
	c.page.CurveTo(q1.X(), q1.Y(), q2.X(), q2.Y(), q3.X(), q3.Y())
}

func (c *pdfCanvas) Label(p drafter.Pair, text string) {
	c.labels = append(c.labels, label{at: c.fit.Transform(p), text: text})
}

func (c *pdfCanvas) flushLabels(helv font.Layouter) {
	if len(c.labels) == 0 {
		return
	}
	c.page.TextSetFont(helv, 6)
	for _, l := range c.labels {
		c.page.TextBegin()
		c.page.TextFirstLine(l.at.X()+2, l.at.Y()+2)
		c.page.TextShow(l.text)
		c.page.TextEnd()
	}
	c.labels = c.labels[:0]
}

var _ render.Canvas = (*pdfCanvas)(nil)

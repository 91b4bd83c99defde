package export

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/seamly/drafter"
	"github.com/seamly/drafter/render"
)

// Raster preview geometry, in pixels at 4 px per pattern centimeter.
const (
	pngPxPerCm = 4.0
	pngMargin  = 20
	pngHeader  = 30
	pngGap     = 20
)

// PNGPreview rasterizes the panels side by side into an image: filled
// silhouettes with the title on top. This is a quick-look preview, not
// a cutting document; the vector exporters carry the scale guarantees.
func PNGPreview(doc Document, panels []render.Panel, opts Options) (image.Image, error) {
	if len(panels) == 0 {
		return nil, ErrEmptyOutline
	}
	boxes := make([]box, len(panels))
	totalW, maxH := float64(pngMargin), 0.0
	for i, panel := range panels {
		b, err := panelBounds(panel, opts.samples())
		if err != nil {
			return nil, err
		}
		boxes[i] = b
		totalW += b.w()*pngPxPerCm + pngGap
		if h := b.h() * pngPxPerCm; h > maxH {
			maxH = h
		}
	}
	totalW += pngMargin - pngGap
	imgW := int(math.Ceil(totalW))
	imgH := int(math.Ceil(maxH)) + pngHeader + 2*pngMargin

	dst := image.NewRGBA(image.Rect(0, 0, imgW, imgH))
	draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)

	x := float64(pngMargin)
	for i, panel := range panels {
		b := boxes[i]
		devW, devH := b.w()*pngPxPerCm, b.h()*pngPxPerCm
		fit, _ := fitTransform(b, devW, devH, true)
		fit = fit.Combine(drafter.Translation(drafter.P(x, pngHeader+pngMargin)))

		rast := vector.NewRasterizer(imgW, imgH)
		pc := &rasterCanvas{fit: fit, rast: rast}
		if err := render.Render(panel, pc, render.Options{}); err != nil {
			return nil, RenderError{Panel: panel.Name, Err: err}
		}
		rast.ClosePath()
		rast.Draw(dst, dst.Bounds(), image.NewUniform(color.Gray{Y: 0xb0}), image.Point{})

		drawText(dst, int(x), imgH-pngMargin/2, panel.Name)
		x += devW + pngGap
	}
	drawText(dst, pngMargin, pngHeader-10, doc.Title)

	tracer().Infof("rasterized preview %q, %dx%d px", doc.Title, imgW, imgH)
	return dst, nil
}

// PNG writes the rasterized preview as a PNG stream.
func PNG(w io.Writer, doc Document, panels []render.Panel, opts Options) error {
	img, err := PNGPreview(doc, panels, opts)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

func drawText(dst draw.Image, x, y int, s string) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.Black,
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

// rasterCanvas feeds the renderer's ops into a scanline rasterizer.
// The rasterizer fills; interior marks contribute no area and labels
// are ignored.
type rasterCanvas struct {
	fit  drafter.AT
	rast *vector.Rasterizer
}

func (c *rasterCanvas) MoveTo(p drafter.Pair) {
	q := c.fit.Transform(p)
	c.rast.MoveTo(float32(q.X()), float32(q.Y()))
}

func (c *rasterCanvas) LineTo(p drafter.Pair) {
	q := c.fit.Transform(p)
	c.rast.LineTo(float32(q.X()), float32(q.Y()))
}

func (c *rasterCanvas) CurveTo(c1, c2, to drafter.Pair) {
	q1, q2, q3 := c.fit.Transform(c1), c.fit.Transform(c2), c.fit.Transform(to)
	c.rast.CubeTo(float32(q1.X()), float32(q1.Y()),
		float32(q2.X()), float32(q2.Y()),
		float32(q3.X()), float32(q3.Y()))
}

func (c *rasterCanvas) Label(drafter.Pair, string) {}

var _ render.Canvas = (*rasterCanvas)(nil)

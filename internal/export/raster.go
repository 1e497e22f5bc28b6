package export

import (
	"image"
	"image/color"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/san-kum/epicycle/internal/fourier"
)

// painter strokes scene geometry into an RGBA image. Each call fills one
// rasterizer pass so overlapping segments of the same stroke do not
// double their alpha.
type painter struct {
	dst   *image.RGBA
	view  fourier.Viewport
	scale float64
	z     *vector.Rasterizer
}

func newPainter(dst *image.RGBA, view fourier.Viewport, scale float64) *painter {
	b := dst.Bounds()
	return &painter{dst: dst, view: view, scale: scale, z: vector.NewRasterizer(b.Dx(), b.Dy())}
}

func (p *painter) begin() {
	b := p.dst.Bounds()
	p.z.Reset(b.Dx(), b.Dy())
}

func (p *painter) flush(c color.Color) {
	p.z.Draw(p.dst, p.dst.Bounds(), image.NewUniform(c), image.Point{})
}

// segment adds a quad of the given half width around a-b, extended by the
// half width at both ends so consecutive segments join without gaps.
func (p *painter) segment(a, b fourier.Point, hw float64) {
	dx, dy := b.X-a.X, b.Y-a.Y
	l := math.Hypot(dx, dy)
	if l < 1e-9 {
		dx, dy, l = 1, 0, 1
	}
	ux, uy := dx/l*hw, dy/l*hw
	nx, ny := -uy, ux
	a = fourier.Pt(a.X-ux, a.Y-uy)
	b = fourier.Pt(b.X+ux, b.Y+uy)
	p.z.MoveTo(float32(a.X+nx), float32(a.Y+ny))
	p.z.LineTo(float32(b.X+nx), float32(b.Y+ny))
	p.z.LineTo(float32(b.X-nx), float32(b.Y-ny))
	p.z.LineTo(float32(a.X-nx), float32(a.Y-ny))
	p.z.ClosePath()
}

func (p *painter) polyline(pts []fourier.Point, closed bool, lineWidth float64) {
	if len(pts) == 0 {
		return
	}
	hw := lineWidth * p.scale / 2
	prev := p.view.ToPixel(pts[0])
	first := prev
	if len(pts) == 1 {
		p.segment(prev, prev, hw)
		return
	}
	for _, pt := range pts[1:] {
		q := p.view.ToPixel(pt)
		p.segment(prev, q, hw)
		prev = q
	}
	if closed {
		p.segment(prev, first, hw)
	}
}

func (p *painter) stroke(pts []fourier.Point, closed bool, c color.Color, lineWidth float64) {
	p.begin()
	p.polyline(pts, closed, lineWidth)
	p.flush(c)
}

// ring adds a circle outline centred on c (pixel space).
func (p *painter) ring(c fourier.Point, r, lineWidth float64) {
	const segments = 48
	hw := lineWidth * p.scale / 2
	prev := fourier.Pt(c.X+r, c.Y)
	for i := 1; i <= segments; i++ {
		a := 2 * math.Pi * float64(i) / segments
		q := fourier.Pt(c.X+r*math.Cos(a), c.Y+r*math.Sin(a))
		p.segment(prev, q, hw)
		prev = q
	}
}

func (p *painter) disc(c fourier.Point, r float64, col color.Color) {
	const segments = 24
	p.begin()
	p.z.MoveTo(float32(c.X+r), float32(c.Y))
	for i := 1; i < segments; i++ {
		a := 2 * math.Pi * float64(i) / segments
		p.z.LineTo(float32(c.X+r*math.Cos(a)), float32(c.Y+r*math.Sin(a)))
	}
	p.z.ClosePath()
	p.flush(col)
}

func (p *painter) label(text string, x, y int, col color.Color) {
	d := &font.Drawer{
		Dst:  p.dst,
		Src:  image.NewUniform(col),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}

// Render rasterises the scene at width*scale by height*scale pixels.
func Render(scene Scene, width, height int, scale float64) *image.RGBA {
	if scale <= 0 {
		scale = 1
	}
	w := int(math.Round(float64(width) * scale))
	h := int(math.Round(float64(height) * scale))
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(Background), image.Point{}, draw.Src)

	view := scene.viewport(float64(w), float64(h))
	p := newPainter(img, view, scale)

	p.begin()
	hw := scale / 2
	p.segment(fourier.Pt(0, float64(h)/2), fourier.Pt(float64(w), float64(h)/2), hw)
	p.segment(fourier.Pt(float64(w)/2, 0), fourier.Pt(float64(w)/2, float64(h)), hw)
	p.flush(AxisColor)

	if scene.Frame == nil {
		p.stroke(scene.Reference, true, ReferenceColor, 2.2)
		for i, pc := range scene.Partials {
			p.stroke(pc.Points, false, PartialColor(i), 2)
		}
		for i, pc := range scene.Partials {
			p.label(pc.Label(), int(12*scale), int((20+16*float64(i))*scale), PartialColor(i))
		}
		return img
	}

	p.stroke(scene.Reference, true, FaintReference, 1.2)

	p.begin()
	for _, link := range scene.Frame.Chain {
		c0, c1 := view.ToPixel(link.From), view.ToPixel(link.To)
		if r := view.Length(link.Radius); r >= 0.5 {
			p.ring(c0, r, 1)
		}
		p.segment(c0, c1, scale/2)
	}
	p.flush(CircleColor)

	p.stroke(scene.Tail, false, TailColor, 2.5)
	p.disc(view.ToPixel(scene.Frame.Point), 4.5*scale, TipColor)
	return img
}

// PNG encodes the rendered scene. A scale of 3 matches a high-resolution
// export of a width x height view.
func PNG(w io.Writer, scene Scene, width, height int, scale float64) error {
	return png.Encode(w, Render(scene, width, height, scale))
}

// GIF encodes scenes as a looping animation; delay is per frame in
// hundredths of a second.
func GIF(w io.Writer, scenes []Scene, width, height, delay int) error {
	anim := gif.GIF{LoopCount: 0}
	for _, scene := range scenes {
		img := Render(scene, width, height, 1)
		frame := image.NewPaletted(img.Bounds(), palette.Plan9)
		draw.FloydSteinberg.Draw(frame, img.Bounds(), img, image.Point{})
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, delay)
	}
	return gif.EncodeAll(w, &anim)
}

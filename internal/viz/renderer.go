package viz

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/epicycle/internal/fourier"
)

// Renderer draws engine outputs. Implementations own their surface.
type Renderer interface {
	DrawReference(curve fourier.Curve)
	DrawPartial(pc fourier.PartialCurve)
	DrawFrame(frame fourier.EpicycleFrame, tail fourier.Curve)
}

type layer struct {
	canvas *Canvas
	style  lipgloss.Style
}

// CanvasRenderer draws onto stacked braille canvases, one per element kind,
// and composes them with later layers taking the cell color.
type CanvasRenderer struct {
	view     fourier.Viewport
	theme    Theme
	cols     int
	rows     int
	layers   []*layer
	partials int

	reference *layer
	circles   *layer
	vectors   *layer
	tail      *layer
	tip       *layer
}

var _ Renderer = (*CanvasRenderer)(nil)

// NewCanvasRenderer fits ref into a cols x rows character grid.
func NewCanvasRenderer(cols, rows int, ref []fourier.Point, theme Theme) *CanvasRenderer {
	r := &CanvasRenderer{
		view:  fourier.BuildTransform(float64(cols*2), float64(rows*4), ref),
		theme: theme,
		cols:  cols,
		rows:  rows,
	}
	r.reference = r.addLayer(theme.Reference)
	r.circles = r.addLayer(theme.Circles)
	r.vectors = r.addLayer(theme.Vectors)
	return r
}

func (r *CanvasRenderer) addLayer(c lipgloss.Color) *layer {
	l := &layer{canvas: NewCanvas(r.cols, r.rows), style: lipgloss.NewStyle().Foreground(c)}
	r.layers = append(r.layers, l)
	return l
}

// Viewport exposes the transform used for drawing.
func (r *CanvasRenderer) Viewport() fourier.Viewport {
	return r.view
}

func (r *CanvasRenderer) pixel(p fourier.Point) (int, int) {
	q := r.view.ToPixel(p)
	return int(math.Round(q.X)), int(math.Round(q.Y))
}

func (r *CanvasRenderer) polyline(l *layer, pts []fourier.Point, closed bool) {
	if len(pts) == 0 {
		return
	}
	x0, y0 := r.pixel(pts[0])
	l.canvas.Set(x0, y0)
	px, py := x0, y0
	for _, p := range pts[1:] {
		x, y := r.pixel(p)
		l.canvas.DrawLine(px, py, x, y)
		px, py = x, y
	}
	if closed {
		l.canvas.DrawLine(px, py, x0, y0)
	}
}

func (r *CanvasRenderer) DrawReference(curve fourier.Curve) {
	r.polyline(r.reference, curve, true)
}

// DrawPartial draws each call on its own layer in the next palette color.
func (r *CanvasRenderer) DrawPartial(pc fourier.PartialCurve) {
	l := r.addLayer(r.theme.PartialColor(r.partials))
	r.partials++
	r.polyline(l, pc.Points, false)
}

func (r *CanvasRenderer) DrawFrame(frame fourier.EpicycleFrame, tail fourier.Curve) {
	if r.tail == nil {
		r.tail = r.addLayer(r.theme.Tail)
		r.tip = r.addLayer(r.theme.Tip)
	}

	for _, link := range frame.Chain {
		cx, cy := r.pixel(link.From)
		radius := int(math.Round(r.view.Length(link.Radius)))
		if radius >= 1 {
			r.circles.canvas.DrawCircle(cx, cy, radius)
		}
		tx, ty := r.pixel(link.To)
		r.vectors.canvas.DrawLine(cx, cy, tx, ty)
	}

	r.polyline(r.tail, tail, false)

	x, y := r.pixel(frame.Point)
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			r.tip.canvas.Set(x+dx, y+dy)
		}
	}
}

// String composes the layers into styled braille rows.
func (r *CanvasRenderer) String() string {
	var b strings.Builder
	for row := 0; row < r.rows; row++ {
		for col := 0; col < r.cols; col++ {
			var dots rune
			var top *layer
			for _, l := range r.layers {
				if d := l.canvas.Dots(row, col); d != 0 {
					dots |= d
					top = l
				}
			}
			cell := string(blank + dots)
			if top != nil {
				cell = top.style.Render(cell)
			}
			b.WriteString(cell)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Plain composes the layers without color, for logs and tests.
func (r *CanvasRenderer) Plain() string {
	merged := NewCanvas(r.cols, r.rows)
	for _, l := range r.layers {
		for row := range merged.Grid {
			for col := range merged.Grid[row] {
				merged.Grid[row][col] |= l.canvas.Dots(row, col)
			}
		}
	}
	return merged.String()
}

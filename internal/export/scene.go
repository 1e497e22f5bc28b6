// Package export writes epicycle scenes as SVG, PNG and animated GIF.
package export

import (
	"image/color"
	"math"

	"github.com/san-kum/epicycle/internal/fourier"
)

// Scene is everything one exported image shows. Frame is nil for a
// static partial-sum plot.
type Scene struct {
	Reference fourier.Curve
	Partials  []fourier.PartialCurve
	Frame     *fourier.EpicycleFrame
	Tail      fourier.Curve
}

var (
	Background     = color.NRGBA{0x0b, 0x0f, 0x14, 0xff}
	AxisColor      = color.NRGBA{0xff, 0xff, 0xff, 0x0f}
	ReferenceColor = color.NRGBA{0xe6, 0xee, 0xf8, 0xf2}
	FaintReference = color.NRGBA{0xff, 0xff, 0xff, 0x0f}
	CircleColor    = color.NRGBA{0x5a, 0xa0, 0xff, 0x99}
	TailColor      = color.NRGBA{0xff, 0x78, 0x5a, 0xf2}
	TipColor       = color.NRGBA{0xff, 0x3c, 0x3c, 0xff}
)

// viewport fits the reference plus every drawn curve, so partial sums
// that overshoot the reference stay on the image.
func (s Scene) viewport(width, height float64) fourier.Viewport {
	all := make([]fourier.Point, 0, len(s.Reference)+len(s.Tail))
	all = append(all, s.Reference...)
	if s.Frame != nil {
		all = append(all, s.Tail...)
	} else {
		for _, pc := range s.Partials {
			all = append(all, pc.Points...)
		}
	}
	if len(all) == 0 {
		all = s.Reference
	}
	return fourier.BuildTransform(width, height, all)
}

// PartialColor is hsl(idx*72 mod 360, 70%, 60%).
func PartialColor(idx int) color.NRGBA {
	h := math.Mod(float64(idx)*72, 360)
	if h < 0 {
		h += 360
	}
	return HSL(h, 0.7, 0.6)
}

// HSL converts hue in degrees and saturation, lightness in [0,1].
func HSL(h, s, l float64) color.NRGBA {
	c := (1 - math.Abs(2*l-1)) * s
	hp := h / 60
	x := c * (1 - math.Abs(math.Mod(hp, 2)-1))
	var r, g, b float64
	switch {
	case hp < 1:
		r, g = c, x
	case hp < 2:
		r, g = x, c
	case hp < 3:
		g, b = c, x
	case hp < 4:
		g, b = x, c
	case hp < 5:
		r, b = x, c
	default:
		r, b = c, x
	}
	m := l - c/2
	to8 := func(v float64) uint8 { return uint8(math.Round((v + m) * 255)) }
	return color.NRGBA{to8(r), to8(g), to8(b), 0xff}
}

func hex(c color.NRGBA) string {
	return "#" + hex2(c.R) + hex2(c.G) + hex2(c.B)
}

func hex2(v uint8) string {
	const digits = "0123456789abcdef"
	return string([]byte{digits[v>>4], digits[v&0x0f]})
}

func opacity(c color.NRGBA) float64 {
	return float64(c.A) / 255
}

package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/epicycle/internal/fourier"
)

// SVG renders the scene as a standalone SVG document.
func SVG(scene Scene, width, height int) string {
	view := scene.viewport(float64(width), float64(height))

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, hex(Background)))

	sb.WriteString(fmt.Sprintf(`<path stroke="#ffffff" stroke-opacity="%.2f" stroke-width="1" d="M0,%.1f H%d M%.1f,0 V%d"/>
`, opacity(AxisColor), float64(height)/2, width, float64(width)/2, height))

	if scene.Frame == nil {
		if len(scene.Reference) > 0 {
			sb.WriteString(svgPath(view, scene.Reference, true, hex(ReferenceColor), opacity(ReferenceColor), 2.2))
		}
		for i, pc := range scene.Partials {
			if len(pc.Points) == 0 {
				continue
			}
			sb.WriteString(svgPath(view, pc.Points, false, hex(PartialColor(i)), 1, 2))
		}
		for i, pc := range scene.Partials {
			sb.WriteString(fmt.Sprintf(`<text x="12" y="%d" fill="%s" font-family="monospace" font-size="12">%s</text>
`, 20+16*i, hex(PartialColor(i)), pc.Label()))
		}
		sb.WriteString("</svg>\n")
		return sb.String()
	}

	if len(scene.Reference) > 0 {
		sb.WriteString(svgPath(view, scene.Reference, true, "#ffffff", opacity(FaintReference), 1.2))
	}
	sb.WriteString(fmt.Sprintf(`<g fill="none" stroke="%s" stroke-opacity="%.2f" stroke-width="1">
`, hex(CircleColor), opacity(CircleColor)))
	for _, link := range scene.Frame.Chain {
		c0, c1 := view.ToPixel(link.From), view.ToPixel(link.To)
		sb.WriteString(fmt.Sprintf(`<circle cx="%.2f" cy="%.2f" r="%.2f"/>
<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f"/>
`, c0.X, c0.Y, view.Length(link.Radius), c0.X, c0.Y, c1.X, c1.Y))
	}
	sb.WriteString("</g>\n")
	if len(scene.Tail) > 0 {
		sb.WriteString(svgPath(view, scene.Tail, false, hex(TailColor), opacity(TailColor), 2.5))
	}
	tip := view.ToPixel(scene.Frame.Point)
	sb.WriteString(fmt.Sprintf(`<circle cx="%.2f" cy="%.2f" r="4.5" fill="%s"/>
`, tip.X, tip.Y, hex(TipColor)))
	sb.WriteString("</svg>\n")
	return sb.String()
}

func svgPath(view fourier.Viewport, pts fourier.Curve, closed bool, stroke string, alpha, lineWidth float64) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-opacity="%.2f" stroke-width="%.1f" stroke-linejoin="round" d="`, stroke, alpha, lineWidth))
	for i, p := range pts {
		q := view.ToPixel(p)
		if i == 0 {
			sb.WriteString(fmt.Sprintf("M%.2f,%.2f", q.X, q.Y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.2f,%.2f", q.X, q.Y))
		}
	}
	if closed {
		sb.WriteString(" Z")
	}
	sb.WriteString(`"/>
`)
	return sb.String()
}

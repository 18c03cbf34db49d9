package render

import (
	"bytes"
	"fmt"

	"github.com/dashu-baba/architect-layout-solver/pkg/plan"
)

// DefaultScale is the SVG resolution in pixels per metre.
const DefaultScale = 40.0

// svgMargin is the frame padding around the boundary, in pixels.
const svgMargin = 20.0

// roomPalette cycles across rooms in placement order.
var roomPalette = [...]string{
	"#8dd3c7", "#ffffb3", "#bebada", "#fb8072",
	"#80b1d3", "#fdb462", "#b3de69", "#fccde5",
}

// RenderSVG draws the solved floor plan as a standalone SVG document.
//
// The drawing uses architectural orientation: the plan's origin is the
// lower-left corner of the boundary with +y pointing up, so room
// coordinates are flipped into SVG's top-left space.
func RenderSVG(sol plan.Solution, p plan.Plan, opts Options) []byte {
	scale := opts.Scale
	if scale <= 0 {
		scale = DefaultScale
	}

	frameW := p.Boundary.Width*scale + 2*svgMargin
	frameH := p.Boundary.Height*scale + 2*svgMargin

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		frameW, frameH, frameW, frameH)
	buf.WriteString(`  <rect width="100%" height="100%" fill="#fafafa"/>` + "\n")

	// Site boundary.
	fmt.Fprintf(&buf, `  <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="white" stroke="#333" stroke-width="2"/>`+"\n",
		svgMargin, svgMargin, p.Boundary.Width*scale, p.Boundary.Height*scale)

	for i, room := range sol.PlacedRooms {
		x := svgMargin + room.X*scale
		y := svgMargin + (p.Boundary.Height-room.Y-room.Height)*scale
		w := room.Width * scale
		h := room.Height * scale
		fill := roomPalette[i%len(roomPalette)]

		fmt.Fprintf(&buf, `  <g id="room-%s">`+"\n", escapeXML(room.ID))
		fmt.Fprintf(&buf, `    <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s" stroke="#555" stroke-width="1.5"/>`+"\n",
			x, y, w, h, fill)

		label := escapeXML(room.ID)
		fmt.Fprintf(&buf, `    <text x="%.1f" y="%.1f" text-anchor="middle" font-family="sans-serif" font-size="12" fill="#222">%s</text>`+"\n",
			x+w/2, y+h/2-4, label)

		detail := fmt.Sprintf("%.1f×%.1f m", room.Width, room.Height)
		if opts.ShowScore {
			detail = fmt.Sprintf("%s · %.1f", detail, room.Score)
		}
		fmt.Fprintf(&buf, `    <text x="%.1f" y="%.1f" text-anchor="middle" font-family="sans-serif" font-size="10" fill="#666">%s</text>`+"\n",
			x+w/2, y+h/2+10, detail)
		buf.WriteString("  </g>\n")
	}

	if opts.ShowScore {
		fmt.Fprintf(&buf, `  <text x="%.1f" y="%.1f" font-family="sans-serif" font-size="11" fill="#444">total score %.1f · solved in %.1f ms</text>`+"\n",
			svgMargin, frameH-6, sol.TotalScore, sol.ComputationTimeMS)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// escapeXML escapes the five XML special characters in text content.
func escapeXML(s string) string {
	var buf bytes.Buffer
	for _, r := range s {
		switch r {
		case '&':
			buf.WriteString("&amp;")
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		case '\'':
			buf.WriteString("&apos;")
		case '"':
			buf.WriteString("&quot;")
		default:
			buf.WriteRune(r)
		}
	}
	return buf.String()
}

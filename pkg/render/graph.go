package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/dashu-baba/architect-layout-solver/pkg/geometry"
	"github.com/dashu-baba/architect-layout-solver/pkg/plan"
)

// ToDOT converts the solved layout's adjacency relation to Graphviz DOT
// format. Every placed room becomes a node; every realized adjacency
// becomes an edge. Edges that satisfy a required adjacency from the plan
// are drawn bold, so a glance shows which contacts were demanded and which
// merely happened.
func ToDOT(sol plan.Solution, p plan.Plan) string {
	required := requiredPairs(p)

	var buf bytes.Buffer
	buf.WriteString("graph floorplan {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  overlap=false;\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=12];\n")
	buf.WriteString("\n")

	for _, room := range sol.PlacedRooms {
		label := fmt.Sprintf("%s\\n%.1f×%.1f m", room.ID, room.Width, room.Height)
		fmt.Fprintf(&buf, "  %q [label=%q];\n", room.ID, label)
	}

	buf.WriteString("\n")
	for i := range sol.PlacedRooms {
		for j := i + 1; j < len(sol.PlacedRooms); j++ {
			a, b := sol.PlacedRooms[i], sol.PlacedRooms[j]
			if !geometry.Adjacent(rectOf(a), rectOf(b)) {
				continue
			}
			if required[pairKey(a.ID, b.ID)] {
				fmt.Fprintf(&buf, "  %q -- %q [penwidth=2.5];\n", a.ID, b.ID)
			} else {
				fmt.Fprintf(&buf, "  %q -- %q [color=grey];\n", a.ID, b.ID)
			}
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderGraphSVG renders the adjacency graph to SVG using Graphviz.
func RenderGraphSVG(sol plan.Solution, p plan.Plan) ([]byte, error) {
	return renderGraph(sol, p, graphviz.SVG)
}

// RenderGraphPNG renders the adjacency graph to PNG using Graphviz.
func RenderGraphPNG(sol plan.Solution, p plan.Plan) ([]byte, error) {
	return renderGraph(sol, p, graphviz.PNG)
}

func renderGraph(sol plan.Solution, p plan.Plan, format graphviz.Format) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(ToDOT(sol, p)))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}

// requiredPairs collects the unordered room pairs with a declared
// adjacency requirement, keyed by [pairKey].
func requiredPairs(p plan.Plan) map[string]bool {
	pairs := make(map[string]bool)
	for _, room := range p.Rooms {
		for _, other := range room.AdjacentTo {
			if other != room.ID {
				pairs[pairKey(room.ID, other)] = true
			}
		}
	}
	return pairs
}

func pairKey(a, b string) string {
	if a > b {
		a, b = b, a
	}
	return a + "\x00" + b
}

func rectOf(r plan.PlacedRoom) geometry.Rect {
	return geometry.Rect{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
}

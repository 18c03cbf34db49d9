package render

import (
	"bytes"
	"fmt"

	"github.com/dashu-baba/architect-layout-solver/pkg/geometry"
	"github.com/dashu-baba/architect-layout-solver/pkg/plan"
)

// RenderText draws the solved floor plan as a character grid, one cell per
// half metre, rows printed top-down. Each room is marked with a letter in
// placement order; a legend maps letters back to rooms.
func RenderText(sol plan.Solution, p plan.Plan) []byte {
	cols := int(p.Boundary.Width/geometry.Step + 0.5)
	rows := int(p.Boundary.Height/geometry.Step + 0.5)

	grid := make([][]byte, rows)
	for i := range grid {
		grid[i] = bytes.Repeat([]byte{'.'}, cols)
	}

	for i, room := range sol.PlacedRooms {
		mark := roomMark(i)
		x0 := int(room.X / geometry.Step)
		y0 := int(room.Y / geometry.Step)
		x1 := int((room.X + room.Width) / geometry.Step)
		y1 := int((room.Y + room.Height) / geometry.Step)

		for y := y0; y < y1 && y < rows; y++ {
			for x := x0; x < x1 && x < cols; x++ {
				grid[y][x] = mark
			}
		}
	}

	var buf bytes.Buffer
	buf.WriteByte('+')
	buf.Write(bytes.Repeat([]byte{'-'}, cols))
	buf.WriteString("+\n")

	// Plan rows go bottom-up; terminal rows go top-down.
	for y := rows - 1; y >= 0; y-- {
		buf.WriteByte('|')
		buf.Write(grid[y])
		buf.WriteString("|\n")
	}

	buf.WriteByte('+')
	buf.Write(bytes.Repeat([]byte{'-'}, cols))
	buf.WriteString("+\n")

	for i, room := range sol.PlacedRooms {
		fmt.Fprintf(&buf, "%c  %-16s (%.1f, %.1f)  %.1f×%.1f m  score %.1f\n",
			roomMark(i), room.ID, room.X, room.Y, room.Width, room.Height, room.Score)
	}
	fmt.Fprintf(&buf, "total score %.1f\n", sol.TotalScore)

	return buf.Bytes()
}

// roomMark returns the grid letter for the i-th placed room, wrapping
// through the alphabet for very large plans.
func roomMark(i int) byte {
	return byte('A' + i%26)
}

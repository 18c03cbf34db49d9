package solver

import (
	"math"

	"github.com/dashu-baba/architect-layout-solver/pkg/geometry"
)

// aspectRatios is the fixed width/height sweep used to derive candidate
// sizes from a minimum area. The set is part of the solver's contract:
// completeness claims are relative to it.
var aspectRatios = [...]float64{0.5, 0.67, 0.8, 1.0, 1.2, 1.5, 2.0}

// roomSize is a candidate (width, height) pair, grid-snapped.
type roomSize struct {
	width  float64
	height float64
}

// sizeCandidates derives the grid-snapped sizes for a room from its minimum
// area. For each aspect ratio r the exact solution w·h = minArea with
// w/h = r is computed, then both extents are snapped upward to the next
// multiple of the grid step, guaranteeing the snapped area still covers
// minArea. Sizes exceeding the boundary are discarded; duplicates arising
// from different ratios are dropped, first occurrence wins.
func sizeCandidates(minArea float64, b geometry.Boundary) []roomSize {
	sizes := make([]roomSize, 0, len(aspectRatios))
	seen := make(map[roomSize]bool, len(aspectRatios))

	for _, ratio := range aspectRatios {
		h := math.Sqrt(minArea / ratio)
		w := ratio * h

		size := roomSize{
			width:  geometry.SnapUp(w),
			height: geometry.SnapUp(h),
		}

		if size.width > b.Width || size.height > b.Height {
			continue
		}
		if seen[size] {
			continue
		}
		seen[size] = true
		sizes = append(sizes, size)
	}

	return sizes
}

// Candidates enumerates every candidate rectangle for spec on the grid:
// each surviving size translated to every grid-aligned position inside the
// boundary. The enumeration order is deterministic - sizes in aspect-ratio
// order, x ascending, then y ascending - and free of duplicates.
//
// No filtering against already-placed rooms happens here; admissibility is
// the scorer's job.
func Candidates(spec RoomSpec, b geometry.Boundary) []geometry.Rect {
	var rects []geometry.Rect

	for _, size := range sizeCandidates(spec.MinArea, b) {
		xSteps := geometry.GridSteps(size.width, b.Width)
		ySteps := geometry.GridSteps(size.height, b.Height)

		for xi := 0; xi < xSteps; xi++ {
			for yi := 0; yi < ySteps; yi++ {
				rects = append(rects, geometry.Rect{
					X:      float64(xi) * geometry.Step,
					Y:      float64(yi) * geometry.Step,
					Width:  size.width,
					Height: size.height,
				})
			}
		}
	}

	return rects
}

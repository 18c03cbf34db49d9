// Package geometry provides the axis-aligned rectangle primitives used by the
// layout solver.
//
// All rectangles use closed-open semantics: a rectangle at (x, y) with size
// (w, h) occupies [x, x+w) × [y, y+h). Coordinates originate from grid
// snapping (see [Step]), so exact equality is expected in practice; a small
// epsilon absorbs accumulated float error.
//
// The package has no dependencies and performs no allocation beyond locals.
package geometry

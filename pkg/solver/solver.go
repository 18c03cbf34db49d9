package solver

import (
	"context"
	"sort"

	"github.com/dashu-baba/architect-layout-solver/pkg/errors"
	"github.com/dashu-baba/architect-layout-solver/pkg/geometry"
)

// scoredCandidate pairs a candidate rectangle with its score for the
// best-first sibling ordering.
type scoredCandidate struct {
	rect  geometry.Rect
	score PositionScore
}

// solve runs the backtracking search over the ordered room sequence.
// It returns the completed placement, or (nil, nil) when the candidate
// space is exhausted without a complete layout. The only error it produces
// is a TIMEOUT when the context expires mid-search.
func solve(ctx context.Context, remaining []RoomSpec, placed []Placed, b geometry.Boundary) ([]PlacedRoom, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeTimeout, err, "search interrupted after placing %d rooms", len(placed))
	}

	if len(remaining) == 0 {
		// Freeze the partial layout: the caller keeps mutating the
		// backing array while backtracking.
		out := make([]PlacedRoom, len(placed))
		for i := range placed {
			out[i] = placed[i].Room
		}
		return out, nil
	}

	spec := remaining[0]
	scored := admissibleCandidates(spec, placed, b)

	for _, c := range scored {
		next := append(placed, Placed{
			Room: PlacedRoom{ID: spec.ID, Rect: c.rect, Score: c.score.Total},
			Spec: spec,
		})

		result, err := solve(ctx, remaining[1:], next, b)
		if err != nil {
			return nil, err
		}
		if result != nil {
			return result, nil
		}
		// Dead branch: drop the placement and try the next candidate.
	}

	return nil, nil
}

// admissibleCandidates generates, scores, and orders the candidates for one
// room against the partial layout. Violation-bearing candidates are pruned
// here, before any recursion. The sort is stable and descending by total
// score, so equal-scoring candidates keep their enumeration order.
func admissibleCandidates(spec RoomSpec, placed []Placed, b geometry.Boundary) []scoredCandidate {
	candidates := Candidates(spec, b)

	scored := make([]scoredCandidate, 0, len(candidates))
	for _, rect := range candidates {
		s := Score(rect, spec, placed, b)
		if s.Valid() {
			scored = append(scored, scoredCandidate{rect: rect, score: s})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score.Total > scored[j].score.Total
	})

	return scored
}

// verifyLayout re-checks the solver's own invariants on a completed
// placement: every rectangle in bounds and no two overlapping. A failure
// here is a bug in the search, not a property of the input, and surfaces as
// INTERNAL_INVARIANT with enough context to reproduce.
func verifyLayout(rooms []PlacedRoom, b geometry.Boundary) error {
	for i := range rooms {
		if !geometry.Contains(b, rooms[i].Rect) {
			return errors.New(errors.ErrCodeInternalInvariant,
				"placed room %q escapes the boundary at (%.1f, %.1f)", rooms[i].ID, rooms[i].Rect.X, rooms[i].Rect.Y)
		}
		for j := i + 1; j < len(rooms); j++ {
			if geometry.Overlaps(rooms[i].Rect, rooms[j].Rect) {
				return errors.New(errors.ErrCodeInternalInvariant,
					"placed rooms %q and %q overlap", rooms[i].ID, rooms[j].ID)
			}
		}
	}
	return nil
}

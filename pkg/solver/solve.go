package solver

import (
	"context"
	"math"
	"time"

	"github.com/dashu-baba/architect-layout-solver/pkg/errors"
	"github.com/dashu-baba/architect-layout-solver/pkg/geometry"
)

// SolveLayout is the engine's entry point: validate the requirements, order
// them most-constrained-first, and run the backtracking search inside the
// given boundary.
//
// On success the returned layout contains every input room exactly once,
// positioned on the 0.5 m grid with all hard constraints satisfied, together
// with the summed quality score and the wall-clock time the search took.
// The measured time is observational only - it never influences the search
// path.
//
// Failures are structured: INVALID_INPUT for malformed requirements
// (detected before any search), NO_SOLUTION when the bounded candidate
// space is exhausted, and TIMEOUT when ctx expires mid-search. The call
// keeps no state between invocations.
func SolveLayout(ctx context.Context, rooms []RoomSpec, boundaryWidth, boundaryHeight float64) (*Layout, error) {
	if err := ValidateInput(rooms, boundaryWidth, boundaryHeight); err != nil {
		return nil, err
	}

	boundary := geometry.Boundary{Width: boundaryWidth, Height: boundaryHeight}
	ordered := OrderByConstraints(rooms)

	start := time.Now()
	placed, err := solve(ctx, ordered, make([]Placed, 0, len(ordered)), boundary)
	elapsed := time.Since(start)

	if err != nil {
		return nil, err
	}
	if placed == nil {
		return nil, errors.New(errors.ErrCodeNoSolution,
			"no layout satisfies all constraints for %d rooms in a %.1fx%.1f boundary",
			len(rooms), boundaryWidth, boundaryHeight)
	}

	if err := verifyLayout(placed, boundary); err != nil {
		return nil, err
	}

	var total float64
	for i := range placed {
		total += placed[i].Score
	}

	return &Layout{
		Rooms:           placed,
		TotalScore:      total,
		ComputationTime: elapsed,
	}, nil
}

// ValidateInput checks the requirements the search assumes: positive finite
// boundary dimensions, well-formed unique room ids, positive finite minimum
// areas, and disjoint neighbour relations per room. Self-references in
// neighbour lists are ignored rather than rejected.
func ValidateInput(rooms []RoomSpec, boundaryWidth, boundaryHeight float64) error {
	if !positiveFinite(boundaryWidth) {
		return errors.New(errors.ErrCodeInvalidInput, "boundary width must be positive and finite, got %v", boundaryWidth)
	}
	if !positiveFinite(boundaryHeight) {
		return errors.New(errors.ErrCodeInvalidInput, "boundary height must be positive and finite, got %v", boundaryHeight)
	}

	seen := make(map[string]bool, len(rooms))
	for _, room := range rooms {
		if err := errors.ValidateRoomID(room.ID); err != nil {
			return err
		}
		if seen[room.ID] {
			return errors.New(errors.ErrCodeInvalidInput, "duplicate room id: %s", room.ID)
		}
		seen[room.ID] = true

		if !positiveFinite(room.MinArea) {
			return errors.New(errors.ErrCodeInvalidInput, "room %s: min_area must be positive and finite, got %v", room.ID, room.MinArea)
		}

		required := make(map[string]bool, len(room.AdjacentTo))
		for _, id := range room.AdjacentTo {
			if id != room.ID {
				required[id] = true
			}
		}
		for _, id := range room.NotAdjacentTo {
			if id != room.ID && required[id] {
				return errors.New(errors.ErrCodeInvalidInput,
					"room %s: %s appears in both adjacent_to and not_adjacent_to", room.ID, id)
			}
		}
	}

	return nil
}

func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

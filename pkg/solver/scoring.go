package solver

import (
	"slices"

	"github.com/dashu-baba/architect-layout-solver/pkg/geometry"
)

// Scoring weights. These coefficients are part of the solver's contract:
// callers and test vectors depend on the exact values.
const (
	hardConstraintPoints  = 20.0 // all hard constraints pass
	adjacencyBonus        = 5.0  // per confirmed required adjacency
	exteriorWallBonus     = 3.0  // exterior-wall requirement satisfied
	spaceEfficiencyPoints = 10.0 // perfect fit (area == min area)
	validityBonus         = 5.0  // no violations at all
)

// Violation reasons emitted by [Score]. Relational violations carry the
// partner room id after a colon, e.g. "overlaps:kitchen".
const (
	ViolationOutsideBoundary    = "outside_boundary"
	ViolationOverlaps           = "overlaps"
	ViolationMissingAdjacency   = "missing_adjacency"
	ViolationForbiddenAdjacency = "forbidden_adjacency"
	ViolationNoExteriorWall     = "no_exterior_wall"
)

// Placed pairs a placed room with the spec it satisfied. The scorer needs
// both: neighbour relations are enforced in either direction, so the specs
// of earlier placements constrain later ones.
type Placed struct {
	Room PlacedRoom
	Spec RoomSpec
}

// PositionScore is the scorer's verdict on one candidate rectangle.
// Violations is non-empty exactly when a hard constraint failed; such a
// placement is inadmissible and the solver never recurses into it.
type PositionScore struct {
	HardConstraint  float64  `json:"hard_constraint_score"`
	SoftPreference  float64  `json:"soft_preference_score"`
	SpaceEfficiency float64  `json:"space_efficiency_score"`
	Total           float64  `json:"total_score"`
	Violations      []string `json:"violations,omitempty"`
}

// Valid reports whether the scored placement satisfies every hard
// constraint.
func (s PositionScore) Valid() bool {
	return len(s.Violations) == 0
}

// Score rates rect as a placement for spec against the rooms already
// placed, inside the given boundary.
//
// The hard component is all-or-nothing: 20 points when the rectangle is in
// bounds, overlap-free, adjacent to every placed room the relation graph
// requires, clear of every placed room it forbids, and on the exterior wall
// when required; 0 otherwise. Relations are symmetric: a requirement
// declared by either side of a pair binds whichever room is placed second.
// Required or forbidden neighbours that are not yet placed (or never appear
// in the room list) impose no constraint.
//
// Soft preferences reward the candidate's own confirmed adjacencies and a
// satisfied exterior-wall requirement on top of the hard pass - the
// exterior bonus intentionally double-counts, weighting exterior-wall rooms
// higher overall. Space efficiency rewards tight fits.
func Score(rect geometry.Rect, spec RoomSpec, placed []Placed, b geometry.Boundary) PositionScore {
	var score PositionScore

	if !geometry.Contains(b, rect) {
		score.Violations = append(score.Violations, ViolationOutsideBoundary)
	}

	for i := range placed {
		other := &placed[i]
		if other.Room.ID == spec.ID {
			continue
		}

		if geometry.Overlaps(rect, other.Room.Rect) {
			score.Violations = append(score.Violations, ViolationOverlaps+":"+other.Room.ID)
		}

		adjacent := geometry.Adjacent(rect, other.Room.Rect)

		wants := requires(spec, other.Room.ID)
		wanted := requires(other.Spec, spec.ID)
		if wants || wanted {
			if adjacent {
				if wants {
					score.SoftPreference += adjacencyBonus
				}
			} else {
				score.Violations = append(score.Violations, ViolationMissingAdjacency+":"+other.Room.ID)
			}
		}

		if adjacent && (forbids(spec, other.Room.ID) || forbids(other.Spec, spec.ID)) {
			score.Violations = append(score.Violations, ViolationForbiddenAdjacency+":"+other.Room.ID)
		}
	}

	if spec.HasExteriorWall {
		if geometry.TouchesExterior(rect, b) {
			score.SoftPreference += exteriorWallBonus
		} else {
			score.Violations = append(score.Violations, ViolationNoExteriorWall)
		}
	}

	if len(score.Violations) == 0 {
		score.HardConstraint = hardConstraintPoints
	}

	if area := rect.Area(); area > 0 {
		efficiency := spec.MinArea / area
		if efficiency > 1 {
			efficiency = 1
		}
		score.SpaceEfficiency = spaceEfficiencyPoints * efficiency
	}

	score.Total = score.HardConstraint + score.SoftPreference + score.SpaceEfficiency
	if len(score.Violations) == 0 {
		score.Total += validityBonus
	}
	if score.Total < 0 {
		score.Total = 0
	}

	return score
}

// requires reports whether spec names id as a required neighbour.
// Self-references never count.
func requires(spec RoomSpec, id string) bool {
	return id != spec.ID && slices.Contains(spec.AdjacentTo, id)
}

// forbids reports whether spec names id as a forbidden neighbour.
func forbids(spec RoomSpec, id string) bool {
	return id != spec.ID && slices.Contains(spec.NotAdjacentTo, id)
}

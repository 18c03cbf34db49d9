package solver

import "sort"

// OrderByConstraints returns the rooms sorted by decreasing constraint
// count. The sort is stable, so rooms with equal counts keep their input
// order - this is what makes the whole search deterministic.
//
// Most-constrained-first fails dead branches early and gives hard-to-satisfy
// rooms the still-empty site, where they have the most freedom.
func OrderByConstraints(rooms []RoomSpec) []RoomSpec {
	ordered := make([]RoomSpec, len(rooms))
	copy(ordered, rooms)

	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].ConstraintCount() > ordered[j].ConstraintCount()
	})

	return ordered
}

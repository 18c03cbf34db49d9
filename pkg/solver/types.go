package solver

import (
	"time"

	"github.com/dashu-baba/architect-layout-solver/pkg/geometry"
)

// RoomSpec is the immutable requirement set for one room.
//
// AdjacentTo and NotAdjacentTo name other rooms by id. Ids that never appear
// in the room list are vacuously satisfied: they will never be placed, so
// there is no constraint to evaluate. Self-references are ignored.
type RoomSpec struct {
	ID              string   `json:"id" bson:"id"`
	MinArea         float64  `json:"min_area" bson:"min_area"`
	AdjacentTo      []string `json:"adjacent_to,omitempty" bson:"adjacent_to,omitempty"`
	NotAdjacentTo   []string `json:"not_adjacent_to,omitempty" bson:"not_adjacent_to,omitempty"`
	HasExteriorWall bool     `json:"has_exterior_wall,omitempty" bson:"has_exterior_wall,omitempty"`
}

// ConstraintCount returns the number of declared constraints: one per named
// neighbour relation plus one when an exterior wall is required. The room
// orderer sorts by this value, descending.
func (s RoomSpec) ConstraintCount() int {
	count := len(s.AdjacentTo) + len(s.NotAdjacentTo)
	if s.HasExteriorWall {
		count++
	}
	return count
}

// PlacedRoom is a room with its chosen geometry and the score that geometry
// earned against the rooms placed before it.
type PlacedRoom struct {
	ID    string        `json:"id"`
	Rect  geometry.Rect `json:"rect"`
	Score float64       `json:"score"`
}

// Layout is a complete assignment of rectangles to every input room
// satisfying all hard constraints.
type Layout struct {
	Rooms           []PlacedRoom  `json:"rooms"`
	TotalScore      float64       `json:"total_score"`
	ComputationTime time.Duration `json:"computation_time"`
}

// Room returns the placed room with the given id, or nil if absent.
func (l *Layout) Room(id string) *PlacedRoom {
	for i := range l.Rooms {
		if l.Rooms[i].ID == id {
			return &l.Rooms[i]
		}
	}
	return nil
}

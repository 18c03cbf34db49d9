package plan

import (
	"encoding/json"

	"github.com/dashu-baba/architect-layout-solver/pkg/errors"
	"github.com/dashu-baba/architect-layout-solver/pkg/solver"
)

// PlacedRoom is the wire form of one placed room.
type PlacedRoom struct {
	ID     string  `json:"id" bson:"id"`
	X      float64 `json:"x" bson:"x"`
	Y      float64 `json:"y" bson:"y"`
	Width  float64 `json:"width" bson:"width"`
	Height float64 `json:"height" bson:"height"`
	Score  float64 `json:"score" bson:"score"`
}

// Solution is the wire form of a solved layout.
type Solution struct {
	PlacedRooms       []PlacedRoom `json:"placed_rooms" bson:"placed_rooms"`
	TotalScore        float64      `json:"total_score" bson:"total_score"`
	ComputationTimeMS float64      `json:"computation_time_ms" bson:"computation_time_ms"`
}

// FromLayout converts a solver layout to its wire form. Placement order is
// preserved.
func FromLayout(l *solver.Layout) Solution {
	s := Solution{
		PlacedRooms:       make([]PlacedRoom, len(l.Rooms)),
		TotalScore:        l.TotalScore,
		ComputationTimeMS: float64(l.ComputationTime.Microseconds()) / 1000.0,
	}
	for i, r := range l.Rooms {
		s.PlacedRooms[i] = PlacedRoom{
			ID:     r.ID,
			X:      r.Rect.X,
			Y:      r.Rect.Y,
			Width:  r.Rect.Width,
			Height: r.Rect.Height,
			Score:  r.Score,
		}
	}
	return s
}

// MarshalSolution serializes a solution to JSON.
func MarshalSolution(s Solution) ([]byte, error) {
	return json.Marshal(s)
}

// UnmarshalSolution deserializes JSON bytes to a Solution.
func UnmarshalSolution(data []byte) (Solution, error) {
	var s Solution
	if err := json.Unmarshal(data, &s); err != nil {
		return Solution{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse solution document")
	}
	return s, nil
}

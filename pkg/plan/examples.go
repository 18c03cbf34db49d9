package plan

import (
	"github.com/dashu-baba/architect-layout-solver/pkg/geometry"
	"github.com/dashu-baba/architect-layout-solver/pkg/solver"
)

// Example is a ready-made plan document shipped with the tool.
type Example struct {
	Name        string
	Description string
	Plan        Plan
}

// Examples returns the built-in example plans in display order.
func Examples() []Example {
	return []Example{
		{
			Name:        "apartment",
			Description: "Four-room residential apartment with mixed constraints",
			Plan: Plan{
				Boundary: geometry.Boundary{Width: 15, Height: 15},
				Rooms: []solver.RoomSpec{
					{ID: "living_room", MinArea: 20, AdjacentTo: []string{"kitchen"}, NotAdjacentTo: []string{"bathroom"}, HasExteriorWall: true},
					{ID: "kitchen", MinArea: 12},
					{ID: "bedroom", MinArea: 14, HasExteriorWall: true},
					{ID: "bathroom", MinArea: 6, AdjacentTo: []string{"bedroom"}},
				},
			},
		},
		{
			Name:        "studio",
			Description: "Compact studio: one main space with a bathroom kept apart",
			Plan: Plan{
				Boundary: geometry.Boundary{Width: 8, Height: 8},
				Rooms: []solver.RoomSpec{
					{ID: "main", MinArea: 24, HasExteriorWall: true},
					{ID: "bathroom", MinArea: 4, NotAdjacentTo: []string{"main"}},
				},
			},
		},
		{
			Name:        "office",
			Description: "Small office floor: two exterior offices around a meeting room",
			Plan: Plan{
				Boundary: geometry.Boundary{Width: 20, Height: 12},
				Rooms: []solver.RoomSpec{
					{ID: "office_a", MinArea: 16, HasExteriorWall: true, AdjacentTo: []string{"meeting"}},
					{ID: "office_b", MinArea: 16, HasExteriorWall: true, AdjacentTo: []string{"meeting"}},
					{ID: "meeting", MinArea: 20},
					{ID: "storage", MinArea: 6, NotAdjacentTo: []string{"office_a", "office_b"}},
				},
			},
		},
	}
}

// ExampleByName returns the built-in example with the given name, or nil.
func ExampleByName(name string) *Example {
	for _, ex := range Examples() {
		if ex.Name == name {
			e := ex
			return &e
		}
	}
	return nil
}

package solver

import "testing"

func TestConstraintCount(t *testing.T) {
	tests := []struct {
		name string
		spec RoomSpec
		want int
	}{
		{
			name: "all constraint kinds",
			spec: RoomSpec{
				ID:              "room1",
				MinArea:         20,
				AdjacentTo:      []string{"room2", "room3"},
				NotAdjacentTo:   []string{"room4"},
				HasExteriorWall: true,
			},
			want: 4,
		},
		{
			name: "no constraints",
			spec: RoomSpec{ID: "room1", MinArea: 20},
			want: 0,
		},
		{
			name: "adjacency only",
			spec: RoomSpec{ID: "room1", MinArea: 20, AdjacentTo: []string{"room2", "room3"}},
			want: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.spec.ConstraintCount(); got != tt.want {
				t.Errorf("ConstraintCount() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestOrderByConstraintsMostConstrainedFirst(t *testing.T) {
	rooms := []RoomSpec{
		{ID: "room1", MinArea: 20, AdjacentTo: []string{"room2", "room3"}, NotAdjacentTo: []string{"room4"}, HasExteriorWall: true},
		{ID: "room2", MinArea: 15, AdjacentTo: []string{"room1"}},
		{ID: "room3", MinArea: 18, AdjacentTo: []string{"room1", "room2"}},
	}

	ordered := OrderByConstraints(rooms)

	want := []string{"room1", "room3", "room2"}
	for i, id := range want {
		if ordered[i].ID != id {
			t.Errorf("ordered[%d] = %s, want %s", i, ordered[i].ID, id)
		}
	}
}

func TestOrderByConstraintsStableOnTies(t *testing.T) {
	rooms := []RoomSpec{
		{ID: "first", MinArea: 20, AdjacentTo: []string{"second", "third"}},
		{ID: "second", MinArea: 15, AdjacentTo: []string{"first"}, HasExteriorWall: true},
	}

	ordered := OrderByConstraints(rooms)

	// Both rooms count 2; input order must survive.
	if ordered[0].ID != "first" || ordered[1].ID != "second" {
		t.Errorf("tie order changed: got %s, %s", ordered[0].ID, ordered[1].ID)
	}
}

func TestOrderByConstraintsIsPermutation(t *testing.T) {
	rooms := []RoomSpec{
		{ID: "a", MinArea: 10},
		{ID: "b", MinArea: 10, HasExteriorWall: true},
		{ID: "c", MinArea: 10, AdjacentTo: []string{"a", "b"}},
		{ID: "d", MinArea: 10, NotAdjacentTo: []string{"a"}},
	}

	ordered := OrderByConstraints(rooms)
	if len(ordered) != len(rooms) {
		t.Fatalf("length changed: %d != %d", len(ordered), len(rooms))
	}

	seen := make(map[string]bool)
	for _, r := range ordered {
		seen[r.ID] = true
	}
	for _, r := range rooms {
		if !seen[r.ID] {
			t.Errorf("room %s missing from ordered output", r.ID)
		}
	}

	for i := 1; i < len(ordered); i++ {
		if ordered[i].ConstraintCount() > ordered[i-1].ConstraintCount() {
			t.Errorf("constraint count increases at index %d", i)
		}
	}

	// Input slice untouched.
	if rooms[0].ID != "a" {
		t.Error("OrderByConstraints mutated its input")
	}
}

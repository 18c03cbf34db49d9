package solver

import (
	"context"
	"math"
	"reflect"
	"testing"

	"github.com/dashu-baba/architect-layout-solver/pkg/errors"
	"github.com/dashu-baba/architect-layout-solver/pkg/geometry"
)

// checkLayoutInvariants asserts the universal layout properties: every input
// room placed exactly once, in bounds, overlap-free, on the grid, with the
// total score matching the per-room sum.
func checkLayoutInvariants(t *testing.T, layout *Layout, rooms []RoomSpec, b geometry.Boundary) {
	t.Helper()

	if len(layout.Rooms) != len(rooms) {
		t.Fatalf("placed %d rooms, want %d", len(layout.Rooms), len(rooms))
	}

	for _, spec := range rooms {
		if layout.Room(spec.ID) == nil {
			t.Errorf("room %s missing from layout", spec.ID)
		}
	}

	var sum float64
	for i, pr := range layout.Rooms {
		if !geometry.Contains(b, pr.Rect) {
			t.Errorf("room %s escapes the boundary: %v", pr.ID, pr.Rect)
		}
		for _, v := range []float64{pr.Rect.X, pr.Rect.Y, pr.Rect.Width, pr.Rect.Height} {
			if !geometry.OnGrid(v) {
				t.Errorf("room %s has off-grid value %v", pr.ID, v)
			}
		}
		for j := i + 1; j < len(layout.Rooms); j++ {
			if geometry.Overlaps(pr.Rect, layout.Rooms[j].Rect) {
				t.Errorf("rooms %s and %s overlap", pr.ID, layout.Rooms[j].ID)
			}
		}
		sum += pr.Score
	}

	if math.Abs(sum-layout.TotalScore) > 1e-9 {
		t.Errorf("TotalScore = %v, want sum of room scores %v", layout.TotalScore, sum)
	}
}

func TestSolveTwoUnconstrainedRooms(t *testing.T) {
	rooms := []RoomSpec{
		{ID: "room1", MinArea: 9},
		{ID: "room2", MinArea: 9},
	}

	layout, err := SolveLayout(context.Background(), rooms, 10, 10)
	if err != nil {
		t.Fatalf("SolveLayout: %v", err)
	}

	checkLayoutInvariants(t, layout, rooms, geometry.Boundary{Width: 10, Height: 10})
	if layout.TotalScore <= 0 {
		t.Errorf("TotalScore = %v, want > 0", layout.TotalScore)
	}
}

func TestSolveRequiredAdjacency(t *testing.T) {
	rooms := []RoomSpec{
		{ID: "A", MinArea: 10, AdjacentTo: []string{"B"}},
		{ID: "B", MinArea: 10},
	}

	layout, err := SolveLayout(context.Background(), rooms, 10, 10)
	if err != nil {
		t.Fatalf("SolveLayout: %v", err)
	}
	checkLayoutInvariants(t, layout, rooms, geometry.Boundary{Width: 10, Height: 10})

	a, b := layout.Room("A"), layout.Room("B")
	if !geometry.Adjacent(a.Rect, b.Rect) {
		t.Errorf("A %v and B %v should be adjacent", a.Rect, b.Rect)
	}
}

func TestSolveForbiddenAdjacency(t *testing.T) {
	rooms := []RoomSpec{
		{ID: "A", MinArea: 9, NotAdjacentTo: []string{"B"}},
		{ID: "B", MinArea: 9},
	}

	layout, err := SolveLayout(context.Background(), rooms, 10, 10)
	if err != nil {
		t.Fatalf("SolveLayout: %v", err)
	}
	checkLayoutInvariants(t, layout, rooms, geometry.Boundary{Width: 10, Height: 10})

	a, b := layout.Room("A"), layout.Room("B")
	if geometry.Adjacent(a.Rect, b.Rect) {
		t.Errorf("A %v and B %v must not share an edge", a.Rect, b.Rect)
	}
}

func TestSolveExteriorWall(t *testing.T) {
	rooms := []RoomSpec{
		{ID: "room1", MinArea: 16, HasExteriorWall: true},
	}

	layout, err := SolveLayout(context.Background(), rooms, 8, 8)
	if err != nil {
		t.Fatalf("SolveLayout: %v", err)
	}

	b := geometry.Boundary{Width: 8, Height: 8}
	checkLayoutInvariants(t, layout, rooms, b)

	if !geometry.TouchesExterior(layout.Rooms[0].Rect, b) {
		t.Errorf("room %v should touch the exterior", layout.Rooms[0].Rect)
	}
}

func TestSolveInfeasible(t *testing.T) {
	rooms := []RoomSpec{
		{ID: "room1", MinArea: 60},
		{ID: "room2", MinArea: 60},
	}

	_, err := SolveLayout(context.Background(), rooms, 10, 10)
	if err == nil {
		t.Fatal("expected failure for two 60 m2 rooms in a 10x10 site")
	}
	if !errors.Is(err, errors.ErrCodeNoSolution) {
		t.Errorf("error code = %s, want NO_SOLUTION", errors.GetCode(err))
	}
}

func TestSolveApartment(t *testing.T) {
	rooms := []RoomSpec{
		{ID: "living", MinArea: 20, AdjacentTo: []string{"kitchen"}, NotAdjacentTo: []string{"bathroom"}, HasExteriorWall: true},
		{ID: "kitchen", MinArea: 12},
		{ID: "bedroom", MinArea: 12, HasExteriorWall: true},
		{ID: "bathroom", MinArea: 6, AdjacentTo: []string{"bedroom"}},
	}

	layout, err := SolveLayout(context.Background(), rooms, 15, 15)
	if err != nil {
		t.Fatalf("SolveLayout: %v", err)
	}

	b := geometry.Boundary{Width: 15, Height: 15}
	checkLayoutInvariants(t, layout, rooms, b)

	living := layout.Room("living")
	kitchen := layout.Room("kitchen")
	bedroom := layout.Room("bedroom")
	bathroom := layout.Room("bathroom")

	if !geometry.TouchesExterior(living.Rect, b) {
		t.Error("living room must touch the exterior")
	}
	if !geometry.TouchesExterior(bedroom.Rect, b) {
		t.Error("bedroom must touch the exterior")
	}
	if !geometry.Adjacent(living.Rect, kitchen.Rect) {
		t.Error("living room and kitchen must be adjacent")
	}
	if !geometry.Adjacent(bathroom.Rect, bedroom.Rect) {
		t.Error("bathroom and bedroom must be adjacent")
	}
	if geometry.Adjacent(living.Rect, bathroom.Rect) {
		t.Error("living room and bathroom must not share an edge")
	}
}

func TestSolveDeterministic(t *testing.T) {
	rooms := []RoomSpec{
		{ID: "living", MinArea: 20, AdjacentTo: []string{"kitchen"}, HasExteriorWall: true},
		{ID: "kitchen", MinArea: 12},
		{ID: "bathroom", MinArea: 6, NotAdjacentTo: []string{"living"}},
	}

	first, err := SolveLayout(context.Background(), rooms, 15, 15)
	if err != nil {
		t.Fatalf("SolveLayout: %v", err)
	}
	second, err := SolveLayout(context.Background(), rooms, 15, 15)
	if err != nil {
		t.Fatalf("SolveLayout: %v", err)
	}

	if !reflect.DeepEqual(first.Rooms, second.Rooms) {
		t.Errorf("layouts differ across identical calls:\n%v\n%v", first.Rooms, second.Rooms)
	}
	if first.TotalScore != second.TotalScore {
		t.Errorf("scores differ: %v vs %v", first.TotalScore, second.TotalScore)
	}
}

func TestSolveTimeout(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rooms := []RoomSpec{{ID: "room1", MinArea: 9}}
	_, err := SolveLayout(ctx, rooms, 10, 10)
	if err == nil {
		t.Fatal("expected a timeout error with a cancelled context")
	}
	if !errors.Is(err, errors.ErrCodeTimeout) {
		t.Errorf("error code = %s, want TIMEOUT", errors.GetCode(err))
	}
}

func TestSolveValidatesInput(t *testing.T) {
	tests := []struct {
		name   string
		rooms  []RoomSpec
		width  float64
		height float64
	}{
		{
			name:   "non-positive boundary",
			rooms:  []RoomSpec{{ID: "a", MinArea: 9}},
			width:  0,
			height: 10,
		},
		{
			name:   "non-finite boundary",
			rooms:  []RoomSpec{{ID: "a", MinArea: 9}},
			width:  math.Inf(1),
			height: 10,
		},
		{
			name:   "duplicate room ids",
			rooms:  []RoomSpec{{ID: "a", MinArea: 9}, {ID: "a", MinArea: 9}},
			width:  10,
			height: 10,
		},
		{
			name:   "non-positive min area",
			rooms:  []RoomSpec{{ID: "a", MinArea: 0}},
			width:  10,
			height: 10,
		},
		{
			name:   "nan min area",
			rooms:  []RoomSpec{{ID: "a", MinArea: math.NaN()}},
			width:  10,
			height: 10,
		},
		{
			name: "intersecting relations",
			rooms: []RoomSpec{
				{ID: "a", MinArea: 9, AdjacentTo: []string{"b"}, NotAdjacentTo: []string{"b"}},
				{ID: "b", MinArea: 9},
			},
			width:  10,
			height: 10,
		},
		{
			name:   "empty room id",
			rooms:  []RoomSpec{{ID: "", MinArea: 9}},
			width:  10,
			height: 10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SolveLayout(context.Background(), tt.rooms, tt.width, tt.height)
			if err == nil {
				t.Fatal("expected a validation error")
			}
			if !errors.Is(err, errors.ErrCodeInvalidInput) {
				t.Errorf("error code = %s, want INVALID_INPUT", errors.GetCode(err))
			}
		})
	}
}

// Self-references in relation lists are ignored, not rejected.
func TestSolveIgnoresSelfReferences(t *testing.T) {
	rooms := []RoomSpec{
		{ID: "a", MinArea: 9, AdjacentTo: []string{"a"}, NotAdjacentTo: []string{"a"}},
	}

	layout, err := SolveLayout(context.Background(), rooms, 10, 10)
	if err != nil {
		t.Fatalf("SolveLayout: %v", err)
	}
	if len(layout.Rooms) != 1 {
		t.Fatalf("placed %d rooms, want 1", len(layout.Rooms))
	}
}

func TestSolveMostConstrainedPlacedFirst(t *testing.T) {
	rooms := []RoomSpec{
		{ID: "simple", MinArea: 9},
		{ID: "complex", MinArea: 9, AdjacentTo: []string{"simple"}, HasExteriorWall: true},
	}

	layout, err := SolveLayout(context.Background(), rooms, 10, 10)
	if err != nil {
		t.Fatalf("SolveLayout: %v", err)
	}

	// The layout lists rooms in placement order: complex first.
	if layout.Rooms[0].ID != "complex" {
		t.Errorf("first placed room = %s, want complex", layout.Rooms[0].ID)
	}

	b := geometry.Boundary{Width: 10, Height: 10}
	complexRoom := layout.Room("complex")
	if !geometry.TouchesExterior(complexRoom.Rect, b) {
		t.Error("complex room must touch the exterior")
	}
	if !geometry.Adjacent(complexRoom.Rect, layout.Room("simple").Rect) {
		t.Error("complex and simple must be adjacent")
	}
}

package plan

import (
	"bytes"
	"context"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/dashu-baba/architect-layout-solver/pkg/errors"
	"github.com/dashu-baba/architect-layout-solver/pkg/geometry"
	"github.com/dashu-baba/architect-layout-solver/pkg/solver"
)

func samplePlan() Plan {
	return Plan{
		Boundary: geometry.Boundary{Width: 10, Height: 10},
		Rooms: []solver.RoomSpec{
			{ID: "living", MinArea: 20, AdjacentTo: []string{"kitchen"}, HasExteriorWall: true},
			{ID: "kitchen", MinArea: 12},
		},
	}
}

func TestPlanRoundTrip(t *testing.T) {
	p := samplePlan()

	data, err := Marshal(p)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	back, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if !reflect.DeepEqual(p, back) {
		t.Errorf("round trip changed the plan:\n%+v\n%+v", p, back)
	}
}

func TestMarshalCanonical(t *testing.T) {
	p := samplePlan()

	first, err := Marshal(p)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	second, err := Marshal(p)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	if !bytes.Equal(first, second) {
		t.Error("canonical encoding is not deterministic")
	}
}

func TestUnmarshalRejectsUnknownFields(t *testing.T) {
	data := []byte(`{"boundary":{"width":10,"height":10},"rooms":[{"id":"a","min_area":9,"min_aera":9}]}`)

	_, err := Unmarshal(data)
	if err == nil {
		t.Fatal("expected an error for an unknown field")
	}
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("error code = %s, want INVALID_FORMAT", errors.GetCode(err))
	}
}

func TestUnmarshalDefaults(t *testing.T) {
	data := []byte(`{"boundary":{"width":10,"height":10},"rooms":[{"id":"a","min_area":9}]}`)

	p, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	room := p.Rooms[0]
	if len(room.AdjacentTo) != 0 || len(room.NotAdjacentTo) != 0 || room.HasExteriorWall {
		t.Errorf("omitted fields should default to empty: %+v", room)
	}
}

func TestValidate(t *testing.T) {
	p := samplePlan()
	if err := p.Validate(); err != nil {
		t.Errorf("Validate on a good plan: %v", err)
	}

	bad := samplePlan()
	bad.Rooms[1].ID = "living"
	if err := bad.Validate(); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("duplicate id should fail validation, got %v", err)
	}
}

func TestPlanFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.json")
	p := samplePlan()

	if err := WriteFile(p, path); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	back, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !reflect.DeepEqual(p, back) {
		t.Errorf("file round trip changed the plan")
	}
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "nope.json"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("error code = %s, want FILE_NOT_FOUND", errors.GetCode(err))
	}
}

func TestFromLayout(t *testing.T) {
	layout, err := solver.SolveLayout(context.Background(), samplePlan().Rooms, 10, 10)
	if err != nil {
		t.Fatalf("SolveLayout: %v", err)
	}

	sol := FromLayout(layout)

	if len(sol.PlacedRooms) != len(layout.Rooms) {
		t.Fatalf("placed_rooms length = %d, want %d", len(sol.PlacedRooms), len(layout.Rooms))
	}
	for i, pr := range sol.PlacedRooms {
		src := layout.Rooms[i]
		if pr.ID != src.ID || pr.X != src.Rect.X || pr.Y != src.Rect.Y ||
			pr.Width != src.Rect.Width || pr.Height != src.Rect.Height || pr.Score != src.Score {
			t.Errorf("placed room %d does not match layout: %+v vs %+v", i, pr, src)
		}
	}
	if sol.TotalScore != layout.TotalScore {
		t.Errorf("TotalScore = %v, want %v", sol.TotalScore, layout.TotalScore)
	}
	if sol.ComputationTimeMS < 0 {
		t.Errorf("ComputationTimeMS = %v, want >= 0", sol.ComputationTimeMS)
	}
}

func TestSolutionFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.json")
	sol := Solution{
		PlacedRooms: []PlacedRoom{
			{ID: "a", X: 0, Y: 0, Width: 3, Height: 3, Score: 35},
		},
		TotalScore:        35,
		ComputationTimeMS: 1.25,
	}

	if err := WriteSolutionFile(sol, path); err != nil {
		t.Fatalf("WriteSolutionFile: %v", err)
	}
	back, err := ReadSolutionFile(path)
	if err != nil {
		t.Fatalf("ReadSolutionFile: %v", err)
	}
	if !reflect.DeepEqual(sol, back) {
		t.Errorf("round trip changed the solution")
	}
}

func TestExamplesAreValid(t *testing.T) {
	examples := Examples()
	if len(examples) == 0 {
		t.Fatal("no built-in examples")
	}

	seen := make(map[string]bool)
	for _, ex := range examples {
		if ex.Name == "" || ex.Description == "" {
			t.Errorf("example %q needs a name and description", ex.Name)
		}
		if seen[ex.Name] {
			t.Errorf("duplicate example name %q", ex.Name)
		}
		seen[ex.Name] = true

		if err := ex.Plan.Validate(); err != nil {
			t.Errorf("example %q is invalid: %v", ex.Name, err)
		}
	}

	if ExampleByName("apartment") == nil {
		t.Error("apartment example missing")
	}
	if ExampleByName("no-such") != nil {
		t.Error("ExampleByName should return nil for unknown names")
	}
}

// Every built-in example must actually be solvable; they are the first
// thing new users run.
func TestExamplesSolve(t *testing.T) {
	for _, ex := range Examples() {
		ex := ex
		t.Run(ex.Name, func(t *testing.T) {
			layout, err := solver.SolveLayout(context.Background(), ex.Plan.Rooms, ex.Plan.Boundary.Width, ex.Plan.Boundary.Height)
			if err != nil {
				t.Fatalf("SolveLayout: %v", err)
			}
			if len(layout.Rooms) != len(ex.Plan.Rooms) {
				t.Errorf("placed %d rooms, want %d", len(layout.Rooms), len(ex.Plan.Rooms))
			}
		})
	}
}

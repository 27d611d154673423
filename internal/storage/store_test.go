package storage

import (
	"testing"
)

func testRecords() []ConstraintRecord {
	return []ConstraintRecord{
		{Name: "h", Loc: "final", Output: "final_value:h", Shape: []int{1}, Units: "m", Equals: []float64{20000}},
		{Name: "gam", Loc: "final", Output: "final_value:gam", Shape: []int{2}, Units: "rad", Lower: []float64{-1.5, -1.0}, Upper: []float64{1.0e30}},
	}
}

func TestSaveAndLoad(t *testing.T) {
	store := New(t.TempDir())
	if err := store.Init(); err != nil {
		t.Fatal(err)
	}

	values := map[string][]float64{
		"final_value:h":   {19500},
		"final_value:gam": {-0.05, 0.02},
	}

	runID, err := store.Save("climb", testRecords(), values)
	if err != nil {
		t.Fatal(err)
	}

	meta, err := store.Load(runID)
	if err != nil {
		t.Fatal(err)
	}
	if meta.Phase != "climb" {
		t.Errorf("phase = %q", meta.Phase)
	}
	if len(meta.Constraints) != 2 {
		t.Fatalf("constraints = %d, want 2", len(meta.Constraints))
	}
	h := meta.Constraints[0]
	if len(h.Equals) != 1 || h.Equals[0] != 20000 {
		t.Errorf("h.equals = %v", h.Equals)
	}
	gam := meta.Constraints[1]
	if len(gam.Lower) != 2 || gam.Lower[0] != -1.5 {
		t.Errorf("gam.lower = %v", gam.Lower)
	}

	loaded, err := store.LoadValues(runID)
	if err != nil {
		t.Fatal(err)
	}
	if got := loaded["final_value:gam"]; len(got) != 2 || got[0] != -0.05 || got[1] != 0.02 {
		t.Errorf("values = %v", got)
	}
}

func TestList(t *testing.T) {
	store := New(t.TempDir())
	if err := store.Init(); err != nil {
		t.Fatal(err)
	}

	if _, err := store.Save("a", testRecords(), nil); err != nil {
		t.Fatal(err)
	}
	if _, err := store.Save("b", testRecords(), nil); err != nil {
		t.Fatal(err)
	}

	runs, err := store.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 2 {
		t.Errorf("runs = %d, want 2", len(runs))
	}
}

func TestSave_SamePhaseSameSecond(t *testing.T) {
	store := New(t.TempDir())
	if err := store.Init(); err != nil {
		t.Fatal(err)
	}

	id1, err := store.Save("climb", testRecords(), nil)
	if err != nil {
		t.Fatal(err)
	}
	id2, err := store.Save("climb", testRecords(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if id1 == id2 {
		t.Fatalf("back-to-back saves produced the same run ID %s", id1)
	}

	runs, err := store.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 2 {
		t.Errorf("runs = %d, want 2", len(runs))
	}
}

func TestList_NoDir(t *testing.T) {
	store := New(t.TempDir() + "/missing")
	runs, err := store.List()
	if err != nil {
		t.Fatalf("List on missing dir: %v", err)
	}
	if runs != nil {
		t.Errorf("runs = %v, want nil", runs)
	}
}

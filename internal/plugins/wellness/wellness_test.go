package wellness

import "testing"

func TestExercises_Catalog(t *testing.T) {
	exs := Exercises()
	if len(exs) != 3 {
		t.Fatalf("expected 3 exercises, got %d", len(exs))
	}

	byID := map[string]Exercise{}
	for _, ex := range exs {
		if ex.ID == "" || ex.Title == "" || ex.Description == "" {
			t.Errorf("exercise %q is missing fields: %+v", ex.ID, ex)
		}
		if ex.DurationSeconds <= 0 {
			t.Errorf("exercise %q has no duration", ex.ID)
		}
		if len(ex.Steps) == 0 {
			t.Errorf("exercise %q has no steps", ex.ID)
		}
		byID[ex.ID] = ex
	}

	if byID["box-breathing"].DurationSeconds != 60 {
		t.Errorf("box-breathing should run 60s, got %d", byID["box-breathing"].DurationSeconds)
	}
	if len(byID["5-4-3-2-1"].Steps) != 5 {
		t.Errorf("grounding should have 5 steps, got %d", len(byID["5-4-3-2-1"].Steps))
	}
	if byID["body-scan"].DurationSeconds != 180 {
		t.Errorf("body-scan should run 180s, got %d", byID["body-scan"].DurationSeconds)
	}
}

func TestResources_EmergencyFirst(t *testing.T) {
	res := Resources()
	if len(res) != 3 {
		t.Fatalf("expected 3 resources, got %d", len(res))
	}
	if !res[0].Emergency || res[0].Contact != "112" {
		t.Errorf("the emergency number must come first, got %+v", res[0])
	}
	for _, r := range res[1:] {
		if r.Emergency {
			t.Errorf("only the first resource is the emergency line, got %+v", r)
		}
		if r.Contact == "" || r.Description == "" {
			t.Errorf("resource %q is missing fields", r.Name)
		}
	}
}

package state_test

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/kallmejoe/Pulseyapp/internal/state"
)

func TestSnapshotRoundTrip(t *testing.T) {
	t.Parallel()
	app := newTestApp(t)

	if _, err := app.AddMeal(state.MealInput{Name: "Dinner", Calories: 520}); err != nil {
		t.Fatalf("add meal: %v", err)
	}
	if err := app.EnrollInChallenge("2", "201"); err != nil {
		t.Fatalf("enroll: %v", err)
	}
	if err := app.SetWaterIntake(2.5); err != nil {
		t.Fatalf("set water: %v", err)
	}
	snap := app.Export()

	// Through the JSON encoding, into a fresh store.
	raw, err := json.Marshal(snap)
	if err != nil {
		t.Fatalf("marshal snapshot: %v", err)
	}
	var decoded state.Snapshot
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal snapshot: %v", err)
	}

	target := newTestApp(t)
	if err := target.Import(decoded); err != nil {
		t.Fatalf("import: %v", err)
	}
	if diff := cmp.Diff(app.Meals(), target.Meals()); diff != "" {
		t.Fatalf("meals mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(app.Communities(), target.Communities()); diff != "" {
		t.Fatalf("communities mismatch (-want +got):\n%s", diff)
	}
	if target.WaterIntake() != 2.5 {
		t.Fatalf("expected water 2.5, got %v", target.WaterIntake())
	}
}

func TestImportPersists(t *testing.T) {
	t.Parallel()
	kv := newTestStore(t)
	app := openApp(t, kv)

	donor := newTestApp(t)
	if _, err := donor.AddMeal(state.MealInput{Name: "Imported Meal", Calories: 111}); err != nil {
		t.Fatalf("add donor meal: %v", err)
	}
	if err := app.Import(donor.Export()); err != nil {
		t.Fatalf("import: %v", err)
	}

	rehydrated := openApp(t, kv)
	if diff := cmp.Diff(donor.Meals(), rehydrated.Meals()); diff != "" {
		t.Fatalf("imported meals not persisted (-want +got):\n%s", diff)
	}
}

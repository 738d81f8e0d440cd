package state_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/kallmejoe/Pulseyapp/internal/state"
)

func TestSeededCollections(t *testing.T) {
	t.Parallel()
	app := newTestApp(t)

	if len(app.Meals()) != 2 {
		t.Fatalf("expected 2 seed meals, got %d", len(app.Meals()))
	}
	if len(app.Workouts()) != 3 {
		t.Fatalf("expected 3 seed workouts, got %d", len(app.Workouts()))
	}
	if len(app.Communities()) != 3 {
		t.Fatalf("expected 3 seed communities, got %d", len(app.Communities()))
	}
	if len(app.Achievements()) != 5 {
		t.Fatalf("expected 5 seed achievements, got %d", len(app.Achievements()))
	}
	if len(app.WeeklyStats()) != 7 {
		t.Fatalf("expected 7 weekly stat entries, got %d", len(app.WeeklyStats()))
	}
	if app.WaterIntake() != 1.5 {
		t.Fatalf("expected seed water intake 1.5, got %v", app.WaterIntake())
	}
	if app.TotalCalories() != 800 {
		t.Fatalf("expected seed total 800 kcal, got %d", app.TotalCalories())
	}
	checkAchievementInvariants(t, app)

	last := app.WeeklyStats()[6]
	if last.Date != testNow.Format("2006-01-02") {
		t.Fatalf("expected weekly window to end today, got %s", last.Date)
	}
	for _, d := range app.WeeklyStats() {
		if d.Target != state.CalorieTarget {
			t.Fatalf("expected target %d, got %d", state.CalorieTarget, d.Target)
		}
	}
}

func TestHydrationRoundTrip(t *testing.T) {
	t.Parallel()
	kv := newTestStore(t)
	app := openApp(t, kv)

	if _, err := app.AddMeal(state.MealInput{
		Name: "Dinner", Time: "7:30 PM", Foods: []string{"Salmon", "Rice"}, Calories: 620,
	}); err != nil {
		t.Fatalf("add meal: %v", err)
	}
	if err := app.ToggleWorkoutEnrollment("2"); err != nil {
		t.Fatalf("toggle workout: %v", err)
	}
	if err := app.CompleteWorkout("2"); err != nil {
		t.Fatalf("complete workout: %v", err)
	}
	if err := app.JoinCommunity("3"); err != nil {
		t.Fatalf("join community: %v", err)
	}
	if err := app.EnrollInChallenge("3", "301"); err != nil {
		t.Fatalf("enroll challenge: %v", err)
	}
	if err := app.SetWaterIntake(2.0); err != nil {
		t.Fatalf("set water: %v", err)
	}

	rehydrated := openApp(t, kv)
	if diff := cmp.Diff(app.Meals(), rehydrated.Meals()); diff != "" {
		t.Fatalf("meals round-trip mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(app.Workouts(), rehydrated.Workouts()); diff != "" {
		t.Fatalf("workouts round-trip mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(app.Communities(), rehydrated.Communities()); diff != "" {
		t.Fatalf("communities round-trip mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(app.Achievements(), rehydrated.Achievements()); diff != "" {
		t.Fatalf("achievements round-trip mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(app.WeeklyStats(), rehydrated.WeeklyStats()); diff != "" {
		t.Fatalf("weekly stats round-trip mismatch (-want +got):\n%s", diff)
	}
	if rehydrated.WaterIntake() != 2.0 {
		t.Fatalf("expected water 2.0 after rehydrate, got %v", rehydrated.WaterIntake())
	}
}

func TestCorruptDocumentFailsOpen(t *testing.T) {
	t.Parallel()
	kv := newTestStore(t)

	if err := kv.Set("meals", "{definitely not json"); err != nil {
		t.Fatalf("set corrupt doc: %v", err)
	}
	if _, err := state.Open(kv); err == nil {
		t.Fatal("expected open to fail on corrupt meals document")
	}
}

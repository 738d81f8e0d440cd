package state_test

import (
	"testing"

	"github.com/kallmejoe/Pulseyapp/internal/model"
)

func TestDoctorCleanOnSeededStore(t *testing.T) {
	t.Parallel()
	app := newTestApp(t)

	report := app.Doctor()
	if !report.Clean() {
		t.Fatalf("expected clean report, got %+v", report)
	}
}

func TestDoctorFlagsViolations(t *testing.T) {
	t.Parallel()
	app := newTestApp(t)

	snap := app.Export()
	snap.Meals = append(snap.Meals, model.Meal{ID: snap.Meals[0].ID, Name: "Dup", Calories: -10})
	snap.Achievements[0].Progress = snap.Achievements[0].Total + 5
	snap.Communities[0].Challenges[0].Progress = 250
	if err := app.Import(snap); err != nil {
		t.Fatalf("import: %v", err)
	}

	report := app.Doctor()
	if report.Clean() {
		t.Fatal("expected violations to be reported")
	}
	if report.DuplicateMealIDs != 1 {
		t.Fatalf("expected 1 duplicate meal id, got %d", report.DuplicateMealIDs)
	}
	if report.NegativeMealCalories != 1 {
		t.Fatalf("expected 1 negative-calorie meal, got %d", report.NegativeMealCalories)
	}
	if report.AchievementViolations == 0 {
		t.Fatal("expected achievement violations")
	}
	if report.ChallengeProgressBounds != 1 {
		t.Fatalf("expected 1 out-of-range challenge, got %d", report.ChallengeProgressBounds)
	}
}

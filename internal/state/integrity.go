package state

// DoctorReport counts invariant violations in the hydrated state. All
// counters zero means the store contents are internally consistent.
type DoctorReport struct {
	DuplicateMealIDs        int `json:"duplicate_meal_ids"`
	DuplicateWorkoutIDs     int `json:"duplicate_workout_ids"`
	DuplicateCommunityIDs   int `json:"duplicate_community_ids"`
	AchievementViolations   int `json:"achievement_violations"`
	ChallengeProgressBounds int `json:"challenge_progress_out_of_range"`
	NegativeMealCalories    int `json:"negative_meal_calories"`
}

func (r DoctorReport) Clean() bool {
	return r == DoctorReport{}
}

// Doctor inspects the live collections for violated invariants: duplicate
// identifiers within a collection, achievements whose completed flag or
// progress range drifted, and challenge progress outside [0, 100].
func (a *App) Doctor() DoctorReport {
	var r DoctorReport

	mealIDs := map[string]bool{}
	for _, m := range a.meals {
		if mealIDs[m.ID] {
			r.DuplicateMealIDs++
		}
		mealIDs[m.ID] = true
		if m.Calories < 0 {
			r.NegativeMealCalories++
		}
	}

	workoutIDs := map[string]bool{}
	for _, w := range a.workouts {
		if workoutIDs[w.ID] {
			r.DuplicateWorkoutIDs++
		}
		workoutIDs[w.ID] = true
	}

	communityIDs := map[string]bool{}
	for _, c := range a.communities {
		if communityIDs[c.ID] {
			r.DuplicateCommunityIDs++
		}
		communityIDs[c.ID] = true
		for _, ch := range c.Challenges {
			if ch.Progress < 0 || ch.Progress > 100 {
				r.ChallengeProgressBounds++
			}
		}
	}

	for _, ach := range a.achievements {
		if ach.Progress < 0 || ach.Progress > ach.Total {
			r.AchievementViolations++
		}
		if ach.Completed != (ach.Progress >= ach.Total) {
			r.AchievementViolations++
		}
	}

	return r
}

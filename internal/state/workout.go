package state

import "go.uber.org/zap"

// ToggleWorkoutEnrollment flips the workout's enrollment flag and resets the
// Workout Warrior achievement to the live count of enrolled workouts.
// A no-op if the identifier is absent.
func (a *App) ToggleWorkoutEnrollment(id string) error {
	for i := range a.workouts {
		if a.workouts[i].ID != id {
			continue
		}
		a.workouts[i].Enrolled = !a.workouts[i].Enrolled
		if err := saveDoc(a.kv, keyWorkouts, a.workouts); err != nil {
			return err
		}
		a.log.Debug("workout enrollment toggled",
			zap.String("id", id), zap.Bool("enrolled", a.workouts[i].Enrolled))
		return a.setAchievementProgress(achievementWorkoutWarrior, EnrolledWorkouts(a.workouts))
	}
	return nil
}

// CompleteWorkout increments the workout's completed count and resets the
// Workout Warrior achievement to the total completions across all workouts.
// A no-op if the identifier is absent.
func (a *App) CompleteWorkout(id string) error {
	for i := range a.workouts {
		if a.workouts[i].ID != id {
			continue
		}
		a.workouts[i].CompletedCount++
		if err := saveDoc(a.kv, keyWorkouts, a.workouts); err != nil {
			return err
		}
		a.log.Debug("workout completed",
			zap.String("id", id), zap.Int("count", a.workouts[i].CompletedCount))
		return a.setAchievementProgress(achievementWorkoutWarrior, CompletedWorkouts(a.workouts))
	}
	return nil
}

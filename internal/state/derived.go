package state

import (
	"math"

	"github.com/kallmejoe/Pulseyapp/internal/model"
)

// Derived aggregates. Pure functions over the current collections; nothing
// here is persisted.

func TotalCalories(meals []model.Meal) int {
	total := 0
	for _, m := range meals {
		total += m.Calories
	}
	return total
}

// TotalProtein estimates protein grams as 15% of calories at 4 kcal/g. A
// fixed macro-ratio heuristic, not a nutrition-accurate figure.
func TotalProtein(meals []model.Meal) int {
	return int(math.Round(float64(TotalCalories(meals)) * 0.15 / 4))
}

func EnrolledWorkouts(workouts []model.Workout) int {
	count := 0
	for _, w := range workouts {
		if w.Enrolled {
			count++
		}
	}
	return count
}

func CompletedWorkouts(workouts []model.Workout) int {
	total := 0
	for _, w := range workouts {
		total += w.CompletedCount
	}
	return total
}

func EnrolledChallenges(communities []model.Community) int {
	count := 0
	for _, c := range communities {
		for _, ch := range c.Challenges {
			if ch.Enrolled {
				count++
			}
		}
	}
	return count
}

// GoalProgress reports value against target as a percentage clamped to
// [0, 100]. A zero target reads as fully met.
func GoalProgress(value, target float64) int {
	if target <= 0 {
		return 100
	}
	pct := value / target * 100
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return int(math.Round(pct))
}

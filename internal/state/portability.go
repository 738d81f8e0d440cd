package state

import (
	"time"

	"github.com/kallmejoe/Pulseyapp/internal/model"
)

// Snapshot is a portable JSON dump of every domain document. Session and
// preference keys are deliberately excluded; a snapshot moves tracked data,
// not accounts.
type Snapshot struct {
	ExportedAt   string              `json:"exported_at"`
	Meals        []model.Meal        `json:"meals"`
	Workouts     []model.Workout     `json:"workouts"`
	Communities  []model.Community   `json:"communities"`
	Achievements []model.Achievement `json:"achievements"`
	WeeklyStats  []model.DailyStat   `json:"weekly_stats"`
	WaterIntake  float64             `json:"water_intake"`
}

func (a *App) Export() Snapshot {
	return Snapshot{
		ExportedAt:   a.now().Format(time.RFC3339),
		Meals:        a.meals,
		Workouts:     a.workouts,
		Communities:  a.communities,
		Achievements: a.achievements,
		WeeklyStats:  a.weeklyStats,
		WaterIntake:  a.waterIntake,
	}
}

// Import replaces every domain collection wholesale and persists each one.
// No merging; the snapshot wins.
func (a *App) Import(s Snapshot) error {
	a.meals = s.Meals
	a.workouts = s.Workouts
	a.communities = s.Communities
	a.achievements = s.Achievements
	a.weeklyStats = s.WeeklyStats
	a.waterIntake = s.WaterIntake

	if err := saveDoc(a.kv, keyMeals, a.meals); err != nil {
		return err
	}
	if err := saveDoc(a.kv, keyWorkouts, a.workouts); err != nil {
		return err
	}
	if err := saveDoc(a.kv, keyCommunities, a.communities); err != nil {
		return err
	}
	if err := saveDoc(a.kv, keyAchievements, a.achievements); err != nil {
		return err
	}
	if err := saveDoc(a.kv, keyWeeklyStats, a.weeklyStats); err != nil {
		return err
	}
	return a.kv.Set(keyWaterIntake, formatWater(a.waterIntake))
}

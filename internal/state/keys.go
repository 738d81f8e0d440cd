package state

// Storage keys. Each collection is an independently stored JSON document;
// there is no atomicity across keys.
const (
	keyMeals           = "meals"
	keyWorkouts        = "workouts"
	keyCommunities     = "communities"
	keyWaterIntake     = "waterIntake"
	keyWeeklyStats     = "weeklyStats"
	keyAchievements    = "achievements"
	keyIsAuthenticated = "isAuthenticated"
	keyUser            = "user"
	keyCredentials     = "validCredentials"

	userKeyPrefix = "user_"
)

const (
	// CalorieTarget is the fixed daily calorie target carried by every
	// weekly stat entry.
	CalorieTarget = 2000

	// WaterTargetLitres is the daily water intake goal.
	WaterTargetLitres = 2.5
)

// Achievement identifiers advanced by domain events.
const (
	achievementWorkoutWarrior  = "4"
	achievementCommunityLeader = "5"
)

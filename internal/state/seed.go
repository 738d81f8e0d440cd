package state

import (
	"math/rand/v2"
	"time"

	"github.com/kallmejoe/Pulseyapp/internal/model"
)

// Seed data materialized the first time no persisted value exists for a key.

func seedMeals() []model.Meal {
	return []model.Meal{
		{
			ID:       "1",
			Time:     "8:00 AM",
			Name:     "Breakfast",
			Foods:    []string{"Oatmeal", "Banana", "Coffee"},
			Calories: 350,
		},
		{
			ID:       "2",
			Time:     "1:00 PM",
			Name:     "Lunch",
			Foods:    []string{"Grilled Chicken Salad", "Apple"},
			Calories: 450,
		},
	}
}

func seedWorkouts() []model.Workout {
	return []model.Workout{
		{
			ID:         "1",
			Title:      "Full Body Strength",
			Duration:   "45 min",
			Difficulty: "Intermediate",
			Calories:   "400-500",
			Exercises:  []string{"Squats", "Push-ups", "Deadlifts", "Planks"},
			Image:      "https://images.pexels.com/photos/1552242/pexels-photo-1552242.jpeg",
		},
		{
			ID:         "2",
			Title:      "HIIT Cardio",
			Duration:   "30 min",
			Difficulty: "Advanced",
			Calories:   "300-400",
			Exercises:  []string{"Burpees", "Mountain Climbers", "Jump Rope", "High Knees"},
			Image:      "https://images.pexels.com/photos/999309/pexels-photo-999309.jpeg",
		},
		{
			ID:         "3",
			Title:      "Yoga Flow",
			Duration:   "60 min",
			Difficulty: "Beginner",
			Calories:   "200-250",
			Exercises:  []string{"Downward Dog", "Warrior Pose", "Child's Pose", "Sun Salutation"},
			Image:      "https://images.pexels.com/photos/1812964/pexels-photo-1812964.jpeg",
		},
	}
}

func seedCommunities() []model.Community {
	return []model.Community{
		{
			ID:          "1",
			Name:        "Weight Loss Warriors",
			Members:     1243,
			Description: "Community focused on healthy and sustainable weight loss",
			Image:       "https://images.pexels.com/photos/4761663/pexels-photo-4761663.jpeg",
			Challenges: []model.Challenge{
				{
					ID:           "101",
					Title:        "10k Steps Challenge",
					Description:  "Complete 10,000 steps every day for a week",
					Rewards:      "50 Fitness Points",
					Participants: 387,
					EndDate:      "2025-05-15",
				},
				{
					ID:           "102",
					Title:        "Calorie Deficit Month",
					Description:  "Maintain a 500 calorie deficit daily for 30 days",
					Rewards:      "100 Fitness Points + Badge",
					Participants: 215,
					EndDate:      "2025-05-30",
				},
			},
		},
		{
			ID:          "2",
			Name:        "Muscle Builders",
			Members:     876,
			Description: "For those looking to gain muscle and strength",
			Image:       "https://images.pexels.com/photos/1229356/pexels-photo-1229356.jpeg",
			Challenges: []model.Challenge{
				{
					ID:           "201",
					Title:        "100 Push-up Challenge",
					Description:  "Work up to 100 push-ups in a single session",
					Rewards:      "75 Fitness Points + Protein Sample",
					Participants: 156,
					EndDate:      "2025-05-20",
				},
			},
		},
		{
			ID:          "3",
			Name:        "Mindful Eaters",
			Members:     654,
			Description: "Focus on mindful eating and healthy nutrition habits",
			Image:       "https://images.pexels.com/photos/5749148/pexels-photo-5749148.jpeg",
			Challenges: []model.Challenge{
				{
					ID:           "301",
					Title:        "Meal Prep Master",
					Description:  "Prepare all meals for 5 days straight",
					Rewards:      "Digital Cookbook",
					Participants: 98,
					EndDate:      "2025-05-25",
				},
			},
		},
	}
}

func seedAchievements() []model.Achievement {
	return []model.Achievement{
		{ID: "1", Title: "7-Day Streak", Description: "Logged meals for 7 days straight", Progress: 5, Total: 7},
		{ID: "2", Title: "Protein Champion", Description: "Hit protein goals 5 days in a row", Progress: 3, Total: 5},
		{ID: "3", Title: "Water Warrior", Description: "Met daily water intake goal", Progress: 4, Total: 5},
		{ID: "4", Title: "Workout Warrior", Description: "Complete 10 workouts", Progress: 0, Total: 10},
		{ID: "5", Title: "Community Leader", Description: "Join 3 community challenges", Progress: 0, Total: 3},
	}
}

// seedWeeklyStats generates the rolling week ending on now's date. Entries
// carry placeholder calories until real totals overwrite today's entry.
func seedWeeklyStats(now time.Time) []model.DailyStat {
	stats := make([]model.DailyStat, 0, 7)
	for i := 6; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		stats = append(stats, model.DailyStat{
			Day:      day.Format("Mon"),
			Date:     day.Format("2006-01-02"),
			Calories: 1500 + rand.IntN(800),
			Target:   CalorieTarget,
		})
	}
	return stats
}

const (
	defaultWaterIntake = 1.5
	defaultAvatar      = "https://images.pexels.com/photos/415829/pexels-photo-415829.jpeg"
	defaultBio         = "Fitness Enthusiast"

	adminEmail = "admin@pulse.com"
)

func seedCredentials() []model.Credential {
	return []model.Credential{
		{Email: "user@example.com", Password: "password"},
		{Email: adminEmail, Password: "admin123"},
	}
}

func defaultUser() model.User {
	return model.User{
		ID:             "1",
		Name:           "John Doe",
		Email:          "user@example.com",
		Avatar:         defaultAvatar,
		Bio:            defaultBio,
		MembershipType: "Premium",
	}
}

package state

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/kallmejoe/Pulseyapp/internal/model"
)

type MealInput struct {
	Name     string
	Time     string
	Foods    []string
	Calories int
}

func (in *MealInput) validate() error {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return fmt.Errorf("meal name is required")
	}
	if in.Calories < 0 {
		return fmt.Errorf("calories must be >= 0")
	}
	return nil
}

// AddMeal appends a meal with a freshly generated identifier and persists
// the collection.
func (a *App) AddMeal(in MealInput) (model.Meal, error) {
	if err := in.validate(); err != nil {
		return model.Meal{}, err
	}
	meal := model.Meal{
		ID:       a.newID(),
		Time:     in.Time,
		Name:     in.Name,
		Foods:    in.Foods,
		Calories: in.Calories,
	}
	a.meals = append(a.meals, meal)
	if err := saveDoc(a.kv, keyMeals, a.meals); err != nil {
		return model.Meal{}, err
	}
	a.log.Debug("meal added", zap.String("id", meal.ID), zap.Int("calories", meal.Calories))
	return meal, a.syncTodayStat()
}

// UpdateMeal replaces the matching meal's mutable fields. A no-op if the
// identifier is absent.
func (a *App) UpdateMeal(id string, in MealInput) error {
	if err := in.validate(); err != nil {
		return err
	}
	for i := range a.meals {
		if a.meals[i].ID != id {
			continue
		}
		a.meals[i].Time = in.Time
		a.meals[i].Name = in.Name
		a.meals[i].Foods = in.Foods
		a.meals[i].Calories = in.Calories
		if err := saveDoc(a.kv, keyMeals, a.meals); err != nil {
			return err
		}
		a.log.Debug("meal updated", zap.String("id", id))
		return a.syncTodayStat()
	}
	return nil
}

// DeleteMeal removes the matching meal. A no-op if the identifier is absent.
func (a *App) DeleteMeal(id string) error {
	for i := range a.meals {
		if a.meals[i].ID != id {
			continue
		}
		a.meals = append(a.meals[:i], a.meals[i+1:]...)
		if err := saveDoc(a.kv, keyMeals, a.meals); err != nil {
			return err
		}
		a.log.Debug("meal deleted", zap.String("id", id))
		return a.syncTodayStat()
	}
	return nil
}

// SetWaterIntake replaces the water intake value verbatim. Callers clamp to
// [0, WaterTargetLitres] where they want the goal ceiling respected.
func (a *App) SetWaterIntake(litres float64) error {
	if litres < 0 {
		return fmt.Errorf("water intake must be >= 0")
	}
	a.waterIntake = litres
	if err := a.kv.Set(keyWaterIntake, formatWater(litres)); err != nil {
		return err
	}
	a.log.Debug("water intake set", zap.Float64("litres", litres))
	return nil
}

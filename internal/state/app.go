// Package state holds the in-memory application state and the mutation
// operations over it. Every mutation pushes the touched collection back to
// the store; derived figures are recomputed from the live collections and
// never stored redundantly.
package state

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kallmejoe/Pulseyapp/internal/model"
	"github.com/kallmejoe/Pulseyapp/internal/store"
)

type options struct {
	log   *zap.Logger
	now   func() time.Time
	newID func() string
}

type Option func(*options)

func WithLogger(log *zap.Logger) Option {
	return func(o *options) { o.log = log }
}

// WithClock overrides the time source. Tests pin it to a fixed day so the
// weekly-stat window is deterministic.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithIDGenerator overrides identifier generation for new records.
func WithIDGenerator(newID func() string) Option {
	return func(o *options) { o.newID = newID }
}

func buildOptions(opts []Option) options {
	o := options{
		log:   zap.NewNop(),
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// App is the domain state container: meals, workouts, communities,
// achievements, water intake, and the weekly stat window.
type App struct {
	kv  *store.Store
	log *zap.Logger

	now   func() time.Time
	newID func() string

	meals        []model.Meal
	workouts     []model.Workout
	communities  []model.Community
	achievements []model.Achievement
	weeklyStats  []model.DailyStat
	waterIntake  float64
}

// Open hydrates the container from the store, seeding any collection whose
// key is missing. A non-parseable document aborts the open.
func Open(kv *store.Store, opts ...Option) (*App, error) {
	o := buildOptions(opts)
	a := &App{kv: kv, log: o.log, now: o.now, newID: o.newID}

	var err error
	if a.meals, err = loadDoc(kv, keyMeals, seedMeals); err != nil {
		return nil, err
	}
	if a.workouts, err = loadDoc(kv, keyWorkouts, seedWorkouts); err != nil {
		return nil, err
	}
	if a.communities, err = loadDoc(kv, keyCommunities, seedCommunities); err != nil {
		return nil, err
	}
	if a.achievements, err = loadDoc(kv, keyAchievements, seedAchievements); err != nil {
		return nil, err
	}
	if a.weeklyStats, err = loadDoc(kv, keyWeeklyStats, func() []model.DailyStat {
		return seedWeeklyStats(a.now())
	}); err != nil {
		return nil, err
	}
	if err = a.loadWaterIntake(); err != nil {
		return nil, err
	}

	a.log.Info("state hydrated",
		zap.Int("meals", len(a.meals)),
		zap.Int("workouts", len(a.workouts)),
		zap.Int("communities", len(a.communities)))
	return a, nil
}

// loadDoc reads and decodes the JSON document under key. A missing key
// materializes and persists the seed value; a corrupt document fails loudly.
func loadDoc[T any](kv *store.Store, key string, seed func() T) (T, error) {
	var value T
	raw, ok, err := kv.Get(key)
	if err != nil {
		return value, err
	}
	if !ok {
		value = seed()
		if err := saveDoc(kv, key, value); err != nil {
			return value, err
		}
		return value, nil
	}
	if err := decodeDoc(key, raw, &value); err != nil {
		return value, err
	}
	return value, nil
}

func decodeDoc(key, raw string, v any) error {
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return fmt.Errorf("decode %s document: %w", key, err)
	}
	return nil
}

func saveDoc(kv *store.Store, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s document: %w", key, err)
	}
	return kv.Set(key, string(raw))
}

func (a *App) loadWaterIntake() error {
	raw, ok, err := a.kv.Get(keyWaterIntake)
	if err != nil {
		return err
	}
	if !ok {
		a.waterIntake = defaultWaterIntake
		return a.kv.Set(keyWaterIntake, formatWater(a.waterIntake))
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("decode %s value %q: %w", keyWaterIntake, raw, err)
	}
	a.waterIntake = value
	return nil
}

func formatWater(litres float64) string {
	return strconv.FormatFloat(litres, 'g', -1, 64)
}

// Accessors return the live collections; callers must not mutate them.

func (a *App) Meals() []model.Meal { return a.meals }

func (a *App) Workouts() []model.Workout { return a.workouts }

func (a *App) Communities() []model.Community { return a.communities }

func (a *App) Achievements() []model.Achievement { return a.achievements }

func (a *App) WeeklyStats() []model.DailyStat { return a.weeklyStats }

func (a *App) WaterIntake() float64 { return a.waterIntake }

// TotalCalories is the derived calorie total of the current meal collection.
func (a *App) TotalCalories() int { return TotalCalories(a.meals) }

// TotalProtein is the derived protein estimate of the current meal collection.
func (a *App) TotalProtein() int { return TotalProtein(a.meals) }

// syncTodayStat overwrites the weekly stat entry matching today's date with
// the current derived calorie total. Keyed off the derived total, not the
// raw mutation: the entry is rewritten only when the total actually changed.
func (a *App) syncTodayStat() error {
	total := TotalCalories(a.meals)
	today := a.now().Format("2006-01-02")
	changed := false
	for i := range a.weeklyStats {
		if a.weeklyStats[i].Date == today && a.weeklyStats[i].Calories != total {
			a.weeklyStats[i].Calories = total
			changed = true
		}
	}
	if !changed {
		return nil
	}
	return saveDoc(a.kv, keyWeeklyStats, a.weeklyStats)
}

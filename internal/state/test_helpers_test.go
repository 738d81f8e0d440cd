package state_test

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/kallmejoe/Pulseyapp/internal/state"
	"github.com/kallmejoe/Pulseyapp/internal/store"
)

var testNow = time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pulse.db")
	kv, err := store.Open(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { kv.Close() })
	return kv
}

func testOptions() []state.Option {
	n := 0
	return []state.Option{
		state.WithClock(func() time.Time { return testNow }),
		state.WithIDGenerator(func() string {
			n++
			return fmt.Sprintf("test-%d", n)
		}),
	}
}

func openApp(t *testing.T, kv *store.Store) *state.App {
	t.Helper()
	app, err := state.Open(kv, testOptions()...)
	if err != nil {
		t.Fatalf("open app: %v", err)
	}
	return app
}

func newTestApp(t *testing.T) *state.App {
	t.Helper()
	return openApp(t, newTestStore(t))
}

func openSession(t *testing.T, kv *store.Store) *state.Session {
	t.Helper()
	sess, err := state.OpenSession(kv, testOptions()...)
	if err != nil {
		t.Fatalf("open session: %v", err)
	}
	return sess
}

// checkAchievementInvariants verifies completed == (progress >= total) and
// 0 <= progress <= total for every achievement.
func checkAchievementInvariants(t *testing.T, app *state.App) {
	t.Helper()
	for _, a := range app.Achievements() {
		if a.Progress < 0 || a.Progress > a.Total {
			t.Fatalf("achievement %s progress %d out of [0, %d]", a.ID, a.Progress, a.Total)
		}
		if a.Completed != (a.Progress >= a.Total) {
			t.Fatalf("achievement %s completed=%v with progress %d/%d", a.ID, a.Completed, a.Progress, a.Total)
		}
	}
}

func achievementByID(t *testing.T, app *state.App, id string) (progress, total int, completed bool) {
	t.Helper()
	for _, a := range app.Achievements() {
		if a.ID == id {
			return a.Progress, a.Total, a.Completed
		}
	}
	t.Fatalf("achievement %s not found", id)
	return 0, 0, false
}

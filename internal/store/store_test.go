package store_test

import (
	"path/filepath"
	"testing"

	"github.com/kallmejoe/Pulseyapp/internal/store"
)

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

func TestGetMissingKey(t *testing.T) {
	t.Parallel()
	kv := newTestStore(t)

	value, ok, err := kv.Get("meals")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ok || value != "" {
		t.Fatalf("expected missing key, got ok=%v value=%q", ok, value)
	}
}

func TestSetGetDelete(t *testing.T) {
	t.Parallel()
	kv := newTestStore(t)

	if err := kv.Set("waterIntake", "1.5"); err != nil {
		t.Fatalf("set: %v", err)
	}
	value, ok, err := kv.Get("waterIntake")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok || value != "1.5" {
		t.Fatalf("expected 1.5, got ok=%v value=%q", ok, value)
	}

	if err := kv.Set("waterIntake", "2.0"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	value, _, err = kv.Get("waterIntake")
	if err != nil {
		t.Fatalf("get after overwrite: %v", err)
	}
	if value != "2.0" {
		t.Fatalf("expected overwritten value 2.0, got %q", value)
	}

	if err := kv.Delete("waterIntake"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	_, ok, err = kv.Get("waterIntake")
	if err != nil {
		t.Fatalf("get after delete: %v", err)
	}
	if ok {
		t.Fatal("expected key to be gone after delete")
	}
}

func TestValuesSurviveReopen(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "pulse.db")

	kv, err := store.Open(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	if err := kv.Set("theme", "dark"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := kv.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopened, err := store.Open(path)
	if err != nil {
		t.Fatalf("reopen store: %v", err)
	}
	defer reopened.Close()

	value, ok, err := reopened.Get("theme")
	if err != nil {
		t.Fatalf("get after reopen: %v", err)
	}
	if !ok || value != "dark" {
		t.Fatalf("expected persisted value dark, got ok=%v value=%q", ok, value)
	}
}

func TestKeysSorted(t *testing.T) {
	t.Parallel()
	kv := newTestStore(t)

	for _, key := range []string{"workouts", "meals", "achievements"} {
		if err := kv.Set(key, "[]"); err != nil {
			t.Fatalf("set %s: %v", key, err)
		}
	}
	keys, err := kv.Keys()
	if err != nil {
		t.Fatalf("keys: %v", err)
	}
	want := []string{"achievements", "meals", "workouts"}
	if len(keys) != len(want) {
		t.Fatalf("expected %d keys, got %v", len(want), keys)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("expected keys %v, got %v", want, keys)
		}
	}
}

func TestEmptyKeyRejected(t *testing.T) {
	t.Parallel()
	kv := newTestStore(t)

	if err := kv.Set("", "x"); err == nil {
		t.Fatal("expected error for empty key on set")
	}
	if _, _, err := kv.Get(""); err == nil {
		t.Fatal("expected error for empty key on get")
	}
	if err := kv.Delete(""); err == nil {
		t.Fatal("expected error for empty key on delete")
	}
}

package store_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kallmejoe/Pulseyapp/internal/store"
)

func TestBackupAndRestore(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	storePath := filepath.Join(dir, "pulse.db")

	kv, err := store.Open(storePath)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	if err := kv.Set("meals", `[{"id":"1"}]`); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := kv.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	backupPath := filepath.Join(dir, "backups", "pulse.db")
	info, err := store.CreateBackup(storePath, backupPath)
	if err != nil {
		t.Fatalf("create backup: %v", err)
	}
	if info.SizeBytes == 0 {
		t.Fatal("expected non-empty backup")
	}
	sidecar, err := os.ReadFile(backupPath + ".sha256")
	if err != nil {
		t.Fatalf("read checksum sidecar: %v", err)
	}
	if strings.TrimSpace(string(sidecar)) != info.Checksum {
		t.Fatal("sidecar checksum does not match reported checksum")
	}

	restorePath := filepath.Join(dir, "restored", "pulse.db")
	if err := store.RestoreBackup(backupPath, restorePath, false); err != nil {
		t.Fatalf("restore: %v", err)
	}
	restored, err := store.Open(restorePath)
	if err != nil {
		t.Fatalf("open restored store: %v", err)
	}
	defer restored.Close()
	value, ok, err := restored.Get("meals")
	if err != nil {
		t.Fatalf("get from restored store: %v", err)
	}
	if !ok || value != `[{"id":"1"}]` {
		t.Fatalf("restored store missing data: ok=%v value=%q", ok, value)
	}
}

func TestRestoreRefusesOverwriteWithoutForce(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	storePath := filepath.Join(dir, "pulse.db")

	kv, err := store.Open(storePath)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	kv.Close()

	backupPath := filepath.Join(dir, "backup.db")
	if _, err := store.CreateBackup(storePath, backupPath); err != nil {
		t.Fatalf("create backup: %v", err)
	}
	if err := store.RestoreBackup(backupPath, storePath, false); err == nil {
		t.Fatal("expected refusal to overwrite existing store")
	}
	if err := store.RestoreBackup(backupPath, storePath, true); err != nil {
		t.Fatalf("forced restore: %v", err)
	}
}

func TestRestoreDetectsChecksumMismatch(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	storePath := filepath.Join(dir, "pulse.db")

	kv, err := store.Open(storePath)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	kv.Close()

	backupPath := filepath.Join(dir, "backup.db")
	if _, err := store.CreateBackup(storePath, backupPath); err != nil {
		t.Fatalf("create backup: %v", err)
	}
	if err := os.WriteFile(backupPath+".sha256", []byte("deadbeef\n"), 0o644); err != nil {
		t.Fatalf("tamper sidecar: %v", err)
	}
	if err := store.RestoreBackup(backupPath, filepath.Join(dir, "elsewhere.db"), false); err == nil {
		t.Fatal("expected checksum mismatch error")
	}
}

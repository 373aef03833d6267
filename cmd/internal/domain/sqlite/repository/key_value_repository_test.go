package repository

import (
	"barbershop/cmd/internal/domain/sqlite"
	"path/filepath"
	"testing"
)

func newTestRepository(t *testing.T) *DefaultKeyValueRepository {
	t.Helper()
	db, err := sqlite.Init(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to init database: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return NewKeyValueRepository(db)
}

func TestKeyValueRepositoryGetMissing(t *testing.T) {
	repo := newTestRepository(t)

	value, found, err := repo.Get("absent")
	if err != nil || found || value != "" {
		t.Fatalf("expected missing key, got %q %v %v", value, found, err)
	}
}

func TestKeyValueRepositorySetReplaces(t *testing.T) {
	repo := newTestRepository(t)

	if err := repo.Set("doc", `{"days":{}}`); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if err := repo.Set("doc", `{"days":{"2025-01-05":[]}}`); err != nil {
		t.Fatalf("overwrite failed: %v", err)
	}
	_ = repo.Set("device", "abc")

	value, found, err := repo.Get("doc")
	if err != nil || !found || value != `{"days":{"2025-01-05":[]}}` {
		t.Fatalf("expected replaced value, got %q %v %v", value, found, err)
	}
	device, _, _ := repo.Get("device")
	if device != "abc" {
		t.Fatalf("expected device key to be independent, got %q", device)
	}
}

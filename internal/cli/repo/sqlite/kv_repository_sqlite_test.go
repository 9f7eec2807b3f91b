package sqlite

import (
	"GuardaSenha/internal/cli/repo"
	"context"
	"os"
	"path/filepath"
	"testing"
)

func openTemp(t *testing.T) (*KVRepositorySQLite, string) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "nested", "vault.sqlite")
	r, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = r.Close() })
	if err := r.Migrate(context.Background()); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	return r, dbPath
}

func TestOpen_And_Migrate(t *testing.T) {
	_, dbPath := openTemp(t)
	if _, err := os.Stat(dbPath); err != nil {
		t.Fatalf("db file not created: %v", err)
	}
	if _, err := Open(""); err == nil {
		t.Fatalf("empty path must fail")
	}
}

func TestGetSet_RoundTripAndOverwrite(t *testing.T) {
	r, _ := openTemp(t)
	ctx := context.Background()

	// пустая БД → ключа нет, ошибки нет
	v, ok, err := r.Get(ctx, "vault:logins")
	if err != nil || ok || v != "" {
		t.Fatalf("absent key: v=%q ok=%v err=%v", v, ok, err)
	}

	if err := r.Set(ctx, "vault:logins", "c1"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := r.Set(ctx, "vault:logins", "c2"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	v, ok, err = r.Get(ctx, "vault:logins")
	if err != nil || !ok || v != "c2" {
		t.Fatalf("after overwrite: v=%q ok=%v err=%v", v, ok, err)
	}
}

func TestSetBatch_AllOrNothing(t *testing.T) {
	r, _ := openTemp(t)
	ctx := context.Background()

	if err := r.SetBatch(ctx, []repo.KV{{Key: "a", Value: "1"}, {Key: "b", Value: "2"}}); err != nil {
		t.Fatalf("batch: %v", err)
	}
	// пустой ключ во второй паре: откат всей транзакции
	err := r.SetBatch(ctx, []repo.KV{{Key: "a", Value: "changed"}, {Key: "", Value: "x"}})
	if err == nil {
		t.Fatalf("expected error for empty key")
	}
	v, _, _ := r.Get(ctx, "a")
	if v != "1" {
		t.Fatalf("failed batch must not change stored values, got %q", v)
	}
	if err := r.SetBatch(ctx, nil); err != nil {
		t.Fatalf("empty batch: %v", err)
	}
}

func TestMigrate_CancelledContext(t *testing.T) {
	r, err := Open(filepath.Join(t.TempDir(), "vault.sqlite"))
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := r.Migrate(ctx); err == nil {
		t.Fatalf("migrate with cancelled context must fail")
	}
	// после отмены миграция с живым контекстом проходит
	if err := r.Migrate(context.Background()); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
}

func TestPersistsAcrossReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "vault.sqlite")
	r, err := Open(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	if err := r.Migrate(context.Background()); err != nil {
		t.Fatal(err)
	}
	if err := r.Set(context.Background(), "k", "v"); err != nil {
		t.Fatal(err)
	}
	_ = r.Close()

	r2, err := Open(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	defer r2.Close()
	if err := r2.Migrate(context.Background()); err != nil {
		t.Fatal(err)
	}
	v, ok, err := r2.Get(context.Background(), "k")
	if err != nil || !ok || v != "v" {
		t.Fatalf("after reopen: v=%q ok=%v err=%v", v, ok, err)
	}
}

func TestClosedDB_ReturnsErrors(t *testing.T) {
	r, _ := openTemp(t)
	_ = r.Close()
	if _, _, err := r.Get(context.Background(), "k"); err == nil {
		t.Fatalf("get on closed db must fail")
	}
	if err := r.Set(context.Background(), "k", "v"); err == nil {
		t.Fatalf("set on closed db must fail")
	}
	var nilRepo *KVRepositorySQLite
	if err := nilRepo.Close(); err != nil {
		t.Fatalf("nil Close: %v", err)
	}
}

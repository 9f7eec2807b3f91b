package sqlite

import (
	"GuardaSenha/internal/cli/repo"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// KVRepositorySQLite: хранилище ключ/значение хранилища паролей в локальной БД SQLite.
type KVRepositorySQLite struct {
	db *sql.DB
}

var _ repo.KVStore = (*KVRepositorySQLite)(nil)

// Open открывает (и создаёт при необходимости) файл БД по указанному пути.
func Open(dbPath string) (*KVRepositorySQLite, error) {
	if dbPath == "" {
		return nil, errors.New("empty vault db path")
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o700); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}
	// один писатель на файл
	db.SetMaxOpenConns(1)
	return &KVRepositorySQLite{db: db}, nil
}

// Close закрывает соединение с БД.
func (r *KVRepositorySQLite) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}

// Migrate гарантирует наличие необходимых таблиц. Скрипты идемпотентны.
func (r *KVRepositorySQLite) Migrate(ctx context.Context) error {
	scripts, err := migrationScripts()
	if err != nil {
		return fmt.Errorf("load migrations: %w", err)
	}
	for i, ddl := range scripts {
		if _, err := r.db.ExecContext(ctx, ddl); err != nil {
			return fmt.Errorf("migration %d: %w", i+1, err)
		}
	}
	return nil
}

// Get читает значение по ключу. Отсутствие ключа не является ошибкой.
func (r *KVRepositorySQLite) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("read %q: %w", key, err)
	}
	return value, true, nil
}

// Set записывает значение ключа (insert or replace).
func (r *KVRepositorySQLite) Set(ctx context.Context, key, value string) error {
	return r.SetBatch(ctx, []repo.KV{{Key: key, Value: value}})
}

// SetBatch записывает все пары в одной транзакции.
func (r *KVRepositorySQLite) SetBatch(ctx context.Context, entries []repo.KV) error {
	if len(entries) == 0 {
		return nil
	}
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		// в случае panic или некоммита: откат
		_ = tx.Rollback()
	}()

	now := time.Now().Unix()
	for _, e := range entries {
		if e.Key == "" {
			return errors.New("empty key")
		}
		if _, err := tx.ExecContext(ctx, `INSERT INTO kv(key, value, updated_at) VALUES(?, ?, ?)
        ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
			e.Key, e.Value, now); err != nil {
			return fmt.Errorf("write %q: %w", e.Key, err)
		}
	}
	return tx.Commit()
}

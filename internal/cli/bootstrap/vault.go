package bootstrap

import (
	"GuardaSenha/internal/cli/crypto"
	reposqlite "GuardaSenha/internal/cli/repo/sqlite"
	"GuardaSenha/internal/cli/service"
	"GuardaSenha/internal/config"
	"context"
	"errors"
	"fmt"

	"github.com/gofrs/flock"
	"go.uber.org/zap"
)

// ErrVaultBusy: хранилище уже открыто другим процессом.
var ErrVaultBusy = errors.New("vault is in use by another process")

// OpenVault захватывает блокировку файла хранилища, открывает БД, выполняет миграции
// и собирает Vault. Возвращает (vault, cleanup, error).
// cleanup необходимо вызвать после окончания работы: он закрывает БД и снимает блокировку.
func OpenVault(ctx context.Context, cfg *config.Config, log *zap.SugaredLogger) (*service.Vault, func() error, error) {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	lockPath := cfg.VaultDBPath + ".lock"
	lock := flock.New(lockPath)

	r, err := reposqlite.Open(cfg.VaultDBPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open vault db: %w", err)
	}
	locked, err := lock.TryLock()
	if err != nil {
		_ = r.Close()
		return nil, nil, fmt.Errorf("lock vault: %w", err)
	}
	if !locked {
		_ = r.Close()
		return nil, nil, fmt.Errorf("%s: %w", cfg.VaultDBPath, ErrVaultBusy)
	}
	if err := r.Migrate(ctx); err != nil {
		_ = r.Close()
		_ = lock.Unlock()
		return nil, nil, fmt.Errorf("migrate vault db: %w", err)
	}
	log.Debugw("vault opened", "path", cfg.VaultDBPath)

	store := service.NewVaultStore(r, crypto.NewCipher(cfg.AppSecret), log)
	closed := false
	cleanup := func() error {
		if closed {
			return nil
		}
		closed = true
		errClose := r.Close()
		errUnlock := lock.Unlock()
		return errors.Join(errClose, errUnlock)
	}
	return service.NewVault(store, log), cleanup, nil
}

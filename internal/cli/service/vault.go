package service

import (
	"GuardaSenha/internal/cli/model"
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Vault: единственный владелец хранилища: все операции с записями и настройками
// мастер-пароля выполняются под одним мьютексом, поэтому транзакция смены ключа
// не может перемежаться с другими записями.
type Vault struct {
	mu    sync.Mutex
	store *VaultStore
	log   *zap.SugaredLogger
	now   func() time.Time
}

// NewVault создаёт хранилище паролей поверх VaultStore; log может быть nil.
func NewVault(store *VaultStore, log *zap.SugaredLogger) *Vault {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Vault{store: store, log: log, now: time.Now}
}

// loadSettings читает настройки мастер-пароля (всегда под ключом без мастер-пароля).
// nil без ошибки: настроек ещё нет.
func (v *Vault) loadSettings(ctx context.Context) (*model.MasterSettings, error) {
	var s model.MasterSettings
	found, err := v.store.decrypt(ctx, KeyMasterPassword, nil, false, &s)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &s, nil
}

// loadCredentials строго читает список записей под ключом из settings.
func (v *Vault) loadCredentials(ctx context.Context, settings *model.MasterSettings) ([]model.Credential, bool, error) {
	var creds []model.Credential
	found, err := v.store.decrypt(ctx, KeyLogins, settings, true, &creds)
	if err != nil {
		return nil, found, err
	}
	if creds == nil {
		creds = []model.Credential{}
	}
	return creds, found, nil
}

// saveCredentials строго записывает список под ключом из settings.
func (v *Vault) saveCredentials(ctx context.Context, settings *model.MasterSettings, creds []model.Credential) error {
	kv, err := v.store.seal(KeyLogins, creds, settings, true)
	if err != nil {
		return err
	}
	return v.store.putBatch(ctx, kv)
}

func isDecryptionFailed(err error) bool {
	return errors.Is(err, model.ErrDecryptionFailed)
}

package service

import (
	"GuardaSenha/internal/cli/crypto"
	"GuardaSenha/internal/cli/model"
	"GuardaSenha/internal/cli/repo"
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Логические ключи хранилища.
const (
	KeyMasterPassword = "vault:masterPassword"
	KeyLogins         = "vault:logins"
)

// VaultStore: типизированное зашифрованное хранилище поверх носителя ключ/значение.
// Не синхронизирован: вызывающий сериализует записи (см. Vault).
type VaultStore struct {
	kv     repo.KVStore
	cipher *crypto.Cipher
	log    *zap.SugaredLogger
}

// NewVaultStore создаёт хранилище; log может быть nil.
func NewVaultStore(kv repo.KVStore, cipher *crypto.Cipher, log *zap.SugaredLogger) *VaultStore {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &VaultStore{kv: kv, cipher: cipher, log: log}
}

// SaveEncrypted шифрует value и записывает под key. Ошибка носителя логируется
// и не возвращается; возвращаются только ошибки сериализации/шифрования.
func (s *VaultStore) SaveEncrypted(ctx context.Context, key string, value any, settings *model.MasterSettings, useMasterPassword bool) error {
	ct, err := s.cipher.Encrypt(value, settings, useMasterPassword)
	if err != nil {
		return err
	}
	if err := s.kv.Set(ctx, key, ct); err != nil {
		s.log.Warnw("failed to save encrypted data", "key", key, "error", err)
	}
	return nil
}

// GetDecrypted читает и расшифровывает key в out. Отсутствие ключа и ошибка носителя
// дают found=false без ошибки; model.ErrDecryptionFailed пробрасывается.
func (s *VaultStore) GetDecrypted(ctx context.Context, key string, settings *model.MasterSettings, useMasterPassword bool, out any) (bool, error) {
	found, err := s.decrypt(ctx, key, settings, useMasterPassword, out)
	if err != nil && !isDecryptionFailed(err) {
		s.log.Warnw("failed to read encrypted data", "key", key, "error", err)
		return false, nil
	}
	return found, err
}

// GetRawCiphertext возвращает сохранённый шифртекст без расшифровки.
func (s *VaultStore) GetRawCiphertext(ctx context.Context, key string) (string, bool) {
	ct, ok, err := s.get(ctx, key)
	if err != nil {
		s.log.Warnw("failed to read raw ciphertext", "key", key, "error", err)
		return "", false
	}
	return ct, ok
}

// get: строгое чтение: ошибки носителя оборачиваются в model.ErrStorageUnavailable.
func (s *VaultStore) get(ctx context.Context, key string) (string, bool, error) {
	ct, ok, err := s.kv.Get(ctx, key)
	if err != nil {
		return "", false, fmt.Errorf("%w: %w", model.ErrStorageUnavailable, err)
	}
	return ct, ok, nil
}

// decrypt: строгий вариант GetDecrypted.
func (s *VaultStore) decrypt(ctx context.Context, key string, settings *model.MasterSettings, useMasterPassword bool, out any) (bool, error) {
	ct, ok, err := s.get(ctx, key)
	if err != nil || !ok {
		return false, err
	}
	if err := s.cipher.Decrypt(ct, settings, useMasterPassword, out); err != nil {
		return true, fmt.Errorf("%s: %w", key, err)
	}
	return true, nil
}

// seal шифрует value в пару для пакетной записи.
func (s *VaultStore) seal(key string, value any, settings *model.MasterSettings, useMasterPassword bool) (repo.KV, error) {
	ct, err := s.cipher.Encrypt(value, settings, useMasterPassword)
	if err != nil {
		return repo.KV{}, fmt.Errorf("encrypt %s: %w", key, err)
	}
	return repo.KV{Key: key, Value: ct}, nil
}

// putBatch: строгая атомарная запись нескольких ключей.
func (s *VaultStore) putBatch(ctx context.Context, entries ...repo.KV) error {
	if err := s.kv.SetBatch(ctx, entries); err != nil {
		return fmt.Errorf("%w: %w", model.ErrStorageUnavailable, err)
	}
	return nil
}

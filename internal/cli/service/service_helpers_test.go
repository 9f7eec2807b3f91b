package service

import (
	"GuardaSenha/internal/cli/crypto"
	"GuardaSenha/internal/cli/model"
	"GuardaSenha/internal/cli/repo/memory"
	"testing"
	"time"
)

const testSecret = "guardasenha-dev-secret"

type testEnv struct {
	vault  *Vault
	store  *VaultStore
	kv     *memory.KVStore
	cipher *crypto.Cipher
}

// newTestEnv собирает Vault поверх памяти с фиксированными часами.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	kv := memory.NewKVStore()
	c := crypto.NewCipher(testSecret)
	store := NewVaultStore(kv, c, nil)
	v := NewVault(store, nil)
	v.now = func() time.Time { return time.UnixMilli(1700000000000) }
	return &testEnv{vault: v, store: store, kv: kv, cipher: c}
}

// rawLogins расшифровывает сохранённый список напрямую, минуя Vault.
func (e *testEnv) rawLogins(t *testing.T, s *model.MasterSettings) ([]model.Credential, error) {
	t.Helper()
	ct, ok := e.kv.Raw(KeyLogins)
	if !ok {
		t.Fatalf("logins are not stored")
	}
	var out []model.Credential
	err := e.cipher.Decrypt(ct, s, true, &out)
	return out, err
}

func enabledSettings(pw string) *model.MasterSettings {
	return &model.MasterSettings{Enabled: true, Key: pw, QuestionAsked: true}
}

package service

import (
	"GuardaSenha/internal/cli/model"
	"context"
	"encoding/json"
	"fmt"
)

// ImportResult: итог импорта: добавленные записи с новыми id и общее число записей.
type ImportResult struct {
	Imported []model.Credential
	Total    int
}

// Export собирает пакет экспорта: флаг мастер-пароля и сырой шифртекст записей.
// Записи не расшифровываются, поэтому экспорт работает без мастер-пароля.
func (v *Vault) Export(ctx context.Context) (string, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	// флаг определяет ключ для импортёра: без настроек пакет не собираем
	settings, err := v.loadSettings(ctx)
	if err != nil {
		return "", err
	}
	bundle := model.ExportBundle{MasterPassword: model.StateOf(settings) == model.MasterEnabled}
	if ct, ok := v.store.GetRawCiphertext(ctx, KeyLogins); ok {
		bundle.Logins = &ct
	}
	b, err := json.MarshalIndent(bundle, "", "  ")
	if err != nil {
		return "", err
	}
	v.log.Infow("vault exported", "masterPassword", bundle.MasterPassword, "hasLogins", bundle.Logins != nil)
	return string(b), nil
}

// Import расшифровывает пакет под текущим ключом хранилища и добавляет записи
// с новыми id. Дубликаты не отбрасываются. При любой ошибке хранилище не меняется.
func (v *Vault) Import(ctx context.Context, data []byte) (ImportResult, error) {
	var bundle model.ExportBundle
	if err := json.Unmarshal(data, &bundle); err != nil {
		return ImportResult{}, fmt.Errorf("%w: %v", model.ErrInvalidBundle, err)
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	settings, creds, err := v.loadForUpdate(ctx)
	if err != nil {
		return ImportResult{}, err
	}
	if bundle.Logins == nil {
		return ImportResult{Imported: []model.Credential{}, Total: len(creds)}, nil
	}

	var incoming []model.Credential
	if err := v.store.cipher.Decrypt(*bundle.Logins, settings, true, &incoming); err != nil {
		current := model.StateOf(settings) == model.MasterEnabled
		if bundle.MasterPassword != current {
			return ImportResult{}, fmt.Errorf("bundle master password %s, vault master password %s: %w",
				onOff(bundle.MasterPassword), onOff(current), err)
		}
		return ImportResult{}, err
	}

	ids := newIDAllocator(creds, v.now())
	imported := make([]model.Credential, 0, len(incoming))
	for _, c := range incoming {
		c.ID = ids.next()
		imported = append(imported, c)
	}
	merged := append(creds, imported...)
	if err := v.saveCredentials(ctx, settings, merged); err != nil {
		return ImportResult{}, err
	}
	v.log.Infow("vault imported", "imported", len(imported), "total", len(merged))
	return ImportResult{Imported: imported, Total: len(merged)}, nil
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

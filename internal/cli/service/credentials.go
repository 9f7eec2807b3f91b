package service

import (
	"GuardaSenha/internal/cli/model"
	"context"
	"fmt"
	"strings"
	"time"
)

// Credentials возвращает все записи хранилища. Ошибка носителя даёт пустой список
// (записана в лог), ошибка расшифровки пробрасывается.
func (v *Vault) Credentials(ctx context.Context) ([]model.Credential, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	// без настроек ключ неизвестен: угадывать его нельзя
	settings, err := v.loadSettings(ctx)
	if err != nil {
		if isDecryptionFailed(err) {
			return nil, err
		}
		v.log.Warnw("failed to read master password settings", "error", err)
		return []model.Credential{}, nil
	}
	var creds []model.Credential
	if _, err := v.store.GetDecrypted(ctx, KeyLogins, settings, true, &creds); err != nil {
		return nil, err
	}
	if creds == nil {
		creds = []model.Credential{}
	}
	return creds, nil
}

// Credential возвращает запись по id.
func (v *Vault) Credential(ctx context.Context, id int64) (model.Credential, error) {
	creds, err := v.Credentials(ctx)
	if err != nil {
		return model.Credential{}, err
	}
	for _, c := range creds {
		if c.ID == id {
			return c, nil
		}
	}
	return model.Credential{}, fmt.Errorf("id %d: %w", id, model.ErrNotFound)
}

// AddCredential добавляет новую запись с id, выведенным из времени создания.
func (v *Vault) AddCredential(ctx context.Context, system, login, password string) (model.Credential, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	settings, creds, err := v.loadForUpdate(ctx)
	if err != nil {
		return model.Credential{}, err
	}
	c := model.Credential{System: system, Login: login, Password: password}
	if err := validateCredential(c, creds); err != nil {
		return model.Credential{}, err
	}
	c.ID = newIDAllocator(creds, v.now()).next()
	creds = append(creds, c)
	if err := v.saveCredentials(ctx, settings, creds); err != nil {
		return model.Credential{}, err
	}
	v.log.Infow("credential added", "id", c.ID, "count", len(creds))
	return c, nil
}

// EditCredential полностью заменяет запись с тем же id.
func (v *Vault) EditCredential(ctx context.Context, c model.Credential) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	settings, creds, err := v.loadForUpdate(ctx)
	if err != nil {
		return err
	}
	idx := indexOf(creds, c.ID)
	if idx < 0 {
		return fmt.Errorf("id %d: %w", c.ID, model.ErrNotFound)
	}
	if err := validateCredential(c, creds); err != nil {
		return err
	}
	creds[idx] = c
	if err := v.saveCredentials(ctx, settings, creds); err != nil {
		return err
	}
	v.log.Infow("credential updated", "id", c.ID)
	return nil
}

// DeleteCredential удаляет запись по id.
func (v *Vault) DeleteCredential(ctx context.Context, id int64) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	settings, creds, err := v.loadForUpdate(ctx)
	if err != nil {
		return err
	}
	idx := indexOf(creds, id)
	if idx < 0 {
		return fmt.Errorf("id %d: %w", id, model.ErrNotFound)
	}
	creds = append(creds[:idx], creds[idx+1:]...)
	if err := v.saveCredentials(ctx, settings, creds); err != nil {
		return err
	}
	v.log.Infow("credential deleted", "id", id, "count", len(creds))
	return nil
}

// loadForUpdate строго читает настройки и записи перед изменением: молча потерянное
// чтение превратилось бы в перезапись списка.
func (v *Vault) loadForUpdate(ctx context.Context) (*model.MasterSettings, []model.Credential, error) {
	settings, err := v.loadSettings(ctx)
	if err != nil {
		return nil, nil, err
	}
	creds, _, err := v.loadCredentials(ctx, settings)
	if err != nil {
		return nil, nil, err
	}
	return settings, creds, nil
}

// validateCredential проверяет обязательные поля и уникальность пары система+логин.
func validateCredential(c model.Credential, existing []model.Credential) error {
	switch {
	case strings.TrimSpace(c.System) == "":
		return fmt.Errorf("%w: system is required", model.ErrInvalidConfiguration)
	case strings.TrimSpace(c.Login) == "":
		return fmt.Errorf("%w: login is required", model.ErrInvalidConfiguration)
	case c.Password == "":
		return fmt.Errorf("%w: password is required", model.ErrInvalidConfiguration)
	}
	for _, e := range existing {
		if e.ID != c.ID && strings.EqualFold(e.System, c.System) && e.Login == c.Login {
			return fmt.Errorf("%w: %s/%s already exists (id %d)", model.ErrInvalidConfiguration, c.System, c.Login, e.ID)
		}
	}
	return nil
}

func indexOf(creds []model.Credential, id int64) int {
	for i, c := range creds {
		if c.ID == id {
			return i
		}
	}
	return -1
}

// idAllocator выдаёт монотонные id: миллисекунды времени создания,
// но всегда больше уже существующих.
type idAllocator struct {
	last int64
}

func newIDAllocator(existing []model.Credential, now time.Time) *idAllocator {
	a := &idAllocator{last: now.UnixMilli() - 1}
	for _, c := range existing {
		if c.ID > a.last {
			a.last = c.ID
		}
	}
	return a
}

func (a *idAllocator) next() int64 {
	a.last++
	return a.last
}

package service

import (
	"GuardaSenha/internal/cli/model"
	"GuardaSenha/internal/cli/repo"
	"context"
	"fmt"
)

// Transition: результат смены состояния мастер-пароля. Credentials: записи,
// перешифрованные под новый ключ; потребитель списка перечитывает их отсюда.
type Transition struct {
	From        model.MasterState
	To          model.MasterState
	Credentials []model.Credential
}

// MasterState возвращает текущее состояние мастер-пароля.
func (v *Vault) MasterState(ctx context.Context) (model.MasterState, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	settings, err := v.loadSettings(ctx)
	if err != nil {
		return model.MasterUnset, err
	}
	return model.StateOf(settings), nil
}

// DeclineMasterPassword фиксирует отказ от мастер-пароля (Unset → Disabled).
// Если настройки уже есть, ничего не меняет.
func (v *Vault) DeclineMasterPassword(ctx context.Context) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	settings, err := v.loadSettings(ctx)
	if err != nil {
		return err
	}
	if settings != nil {
		return nil
	}
	kv, err := v.store.seal(KeyMasterPassword, disabledSettings(), nil, false)
	if err != nil {
		return err
	}
	if err := v.store.putBatch(ctx, kv); err != nil {
		return err
	}
	v.log.Infow("master password declined")
	return nil
}

// EnableMasterPassword включает мастер-пароль (Unset/Disabled → Enabled)
// и перешифровывает записи под новый ключ.
func (v *Vault) EnableMasterPassword(ctx context.Context, password string) (Transition, error) {
	if password == "" {
		return Transition{}, fmt.Errorf("%w: master password is empty", model.ErrInvalidConfiguration)
	}
	v.mu.Lock()
	defer v.mu.Unlock()

	old, err := v.loadSettings(ctx)
	if err != nil {
		return Transition{}, err
	}
	if model.StateOf(old) == model.MasterEnabled {
		return Transition{}, fmt.Errorf("%w: master password is already enabled", model.ErrInvalidConfiguration)
	}
	return v.switchRecipe(ctx, old, model.MasterSettings{Enabled: true, Key: password, QuestionAsked: true})
}

// DisableMasterPassword выключает мастер-пароль (Enabled → Disabled).
func (v *Vault) DisableMasterPassword(ctx context.Context) (Transition, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	old, err := v.loadSettings(ctx)
	if err != nil {
		return Transition{}, err
	}
	if model.StateOf(old) != model.MasterEnabled {
		return Transition{}, fmt.Errorf("%w: master password is not enabled", model.ErrInvalidConfiguration)
	}
	return v.switchRecipe(ctx, old, disabledSettings())
}

// ChangeMasterPassword меняет мастер-пароль (Enabled → Enabled). Эквивалентно
// выключению и включению с новым значением, но за одну транзакцию.
func (v *Vault) ChangeMasterPassword(ctx context.Context, password string) (Transition, error) {
	if password == "" {
		return Transition{}, fmt.Errorf("%w: master password is empty", model.ErrInvalidConfiguration)
	}
	v.mu.Lock()
	defer v.mu.Unlock()

	old, err := v.loadSettings(ctx)
	if err != nil {
		return Transition{}, err
	}
	if model.StateOf(old) != model.MasterEnabled {
		return Transition{}, fmt.Errorf("%w: master password is not enabled", model.ErrInvalidConfiguration)
	}
	return v.switchRecipe(ctx, old, model.MasterSettings{Enabled: true, Key: password, QuestionAsked: true})
}

// switchRecipe: транзакция перешифрования. Порядок не менять:
// сначала расшифровка под старым ключом, и только потом запись новых настроек.
// Вызывается под v.mu.
func (v *Vault) switchRecipe(ctx context.Context, old *model.MasterSettings, next model.MasterSettings) (Transition, error) {
	// (a) расшифровать под старым ключом; при ошибке хранилище не трогаем
	creds, found, err := v.loadCredentials(ctx, old)
	if err != nil {
		return Transition{}, fmt.Errorf("read credentials under current key: %w", err)
	}

	// (b) новые настройки, (c) записи под новым ключом: одной атомарной записью
	batch := make([]repo.KV, 0, 2)
	settingsKV, err := v.store.seal(KeyMasterPassword, next, nil, false)
	if err != nil {
		return Transition{}, err
	}
	batch = append(batch, settingsKV)
	if found {
		credsKV, err := v.store.seal(KeyLogins, creds, &next, true)
		if err != nil {
			return Transition{}, err
		}
		batch = append(batch, credsKV)
	}
	if err := v.store.putBatch(ctx, batch...); err != nil {
		return Transition{}, err
	}

	t := Transition{From: model.StateOf(old), To: model.StateOf(&next)}
	if found {
		t.Credentials = creds
	}
	v.log.Infow("master password state changed", "from", t.From, "to", t.To, "reencrypted", len(t.Credentials))
	// (d) сигнал "записи изменились": возвращаемое значение
	return t, nil
}

func disabledSettings() model.MasterSettings {
	return model.MasterSettings{Enabled: false, Key: "", QuestionAsked: true}
}

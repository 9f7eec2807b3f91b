package bootstrap

import (
	"GuardaSenha/internal/config"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// helper: конфиг с БД во временном каталоге
func tempCfg(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	return &config.Config{
		VaultDBPath: filepath.Join(dir, "GuardaSenha", "vault.sqlite"),
		AppSecret:   "test-secret",
		ExportDir:   filepath.Join(dir, "exports"),
		LogLevel:    "warn",
	}
}

func TestOpenVault_SuccessAndCleanup(t *testing.T) {
	cfg := tempCfg(t)
	v, done, err := OpenVault(context.Background(), cfg, nil)
	require.NoError(t, err)

	// хранилище должно быть рабочим
	c, err := v.AddCredential(context.Background(), "Mail", "a@b.com", "x")
	require.NoError(t, err)
	require.NoError(t, done())
	// повторный вызов cleanup не должен падать
	require.NoError(t, done())

	_, err = os.Stat(cfg.VaultDBPath)
	require.NoError(t, err)

	v2, done2, err := OpenVault(context.Background(), cfg, nil)
	require.NoError(t, err)
	defer done2()
	got, err := v2.Credential(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Equal(t, c, got)
}

func TestOpenVault_BusyWhileOpen(t *testing.T) {
	cfg := tempCfg(t)
	_, done, err := OpenVault(context.Background(), cfg, nil)
	require.NoError(t, err)

	_, _, err = OpenVault(context.Background(), cfg, nil)
	assert.True(t, errors.Is(err, ErrVaultBusy), "got %v", err)

	require.NoError(t, done())
	_, done3, err := OpenVault(context.Background(), cfg, nil)
	require.NoError(t, err)
	require.NoError(t, done3())
}

func TestOpenVault_DifferentSecretCannotRead(t *testing.T) {
	cfg := tempCfg(t)
	v, done, err := OpenVault(context.Background(), cfg, nil)
	require.NoError(t, err)
	_, err = v.AddCredential(context.Background(), "Mail", "a@b.com", "x")
	require.NoError(t, err)
	require.NoError(t, done())

	cfg.AppSecret = "another-secret"
	v2, done2, err := OpenVault(context.Background(), cfg, nil)
	require.NoError(t, err)
	defer done2()
	_, err = v2.Credentials(context.Background())
	assert.Error(t, err)
}

// Каталог БД занят обычным файлом: открыть нельзя.
func TestOpenVault_FailsWhenDirIsFile(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "not_dir")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	cfg := &config.Config{VaultDBPath: filepath.Join(blocker, "vault.sqlite"), AppSecret: "s"}
	_, _, err := OpenVault(context.Background(), cfg, nil)
	assert.Error(t, err)
}

func TestOpenVault_CancelledContext(t *testing.T) {
	cfg := tempCfg(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := OpenVault(ctx, cfg, nil)
	require.Error(t, err)

	// блокировка снята, повторное открытие проходит
	v, done, err := OpenVault(context.Background(), cfg, nil)
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.NoError(t, done())
}

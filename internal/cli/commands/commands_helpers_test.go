package commands

import (
	"GuardaSenha/internal/config"
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"
)

// withTempConfig возвращает конфиг, у которого база и папка экспорта лежат в temp.
func withTempConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	return &config.Config{
		VaultDBPath: filepath.Join(dir, "GuardaSenha", "vault.sqlite"),
		AppSecret:   "test-secret",
		ExportDir:   filepath.Join(dir, "exports"),
		LogLevel:    "warn",
	}
}

// перехват stdout на время теста
func withStdoutCapture(t *testing.T, fn func()) string {
	t.Helper()
	old := Out
	var buf bytes.Buffer
	Out = &buf
	defer func() { Out = old }()
	fn()
	return buf.String()
}

// withStdin подменяет построчный ввод на время теста.
func withStdin(t *testing.T, s string) {
	t.Helper()
	old := In
	In = strings.NewReader(s)
	t.Cleanup(func() { In = old })
}

// mockPasswords: PasswordReader на testify/mock.
type mockPasswords struct {
	mock.Mock
}

func (m *mockPasswords) ReadPassword(prompt string) (string, error) {
	args := m.Called(prompt)
	return args.String(0), args.Error(1)
}

// withPasswords подставляет мок ввода паролей и проверяет ожидания в конце теста.
func withPasswords(t *testing.T) *mockPasswords {
	t.Helper()
	m := &mockPasswords{}
	old := Passwords
	Passwords = m
	t.Cleanup(func() {
		Passwords = old
		m.AssertExpectations(t)
	})
	return m
}

// run выполняет команду через Dispatch и возвращает код выхода и вывод.
func run(t *testing.T, cfg *config.Config, args ...string) (int, string) {
	t.Helper()
	var code int
	out := withStdoutCapture(t, func() { code = Dispatch(context.Background(), cfg, args) })
	return code, out
}

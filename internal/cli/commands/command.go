package commands

import (
	"GuardaSenha/internal/config"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/howeyc/gopass"
)

// ErrUsage is returned by a command when arguments are invalid and usage should be shown.
var ErrUsage = errors.New("usage")

// Command represents a CLI subcommand.
type Command interface {
	// Name returns the command name as typed by the user, e.g. "add".
	Name() string
	// Description is a short human-readable description shown in help.
	Description() string
	// Usage returns the exact usage string, e.g. "get <id>".
	Usage() string
	// Run executes the command with provided args (without the command name).
	Run(ctx context.Context, cfg *config.Config, args []string) error
}

// PasswordReader reads a secret from the user without echo.
type PasswordReader interface {
	ReadPassword(prompt string) (string, error)
}

type terminalPasswords struct{}

func (terminalPasswords) ReadPassword(prompt string) (string, error) {
	fmt.Fprint(Out, prompt)
	b, err := gopass.GetPasswd()
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return string(b), nil
}

// registry holds available commands by name.
var registry = map[string]Command{}

// Out: общий writer для вывода CLI. По умолчанию os.Stdout, но в тестах может переназначаться.
var Out io.Writer = os.Stdout

// In: источник построчного ввода (путь к файлу импорта и т.п.).
var In io.Reader = os.Stdin

// Passwords: источник секретов; в тестах подменяется.
var Passwords PasswordReader = terminalPasswords{}

// RegisterCmd adds a command to the registry. Should be called from init() of each command.
func RegisterCmd(cmd Command) {
	registry[cmd.Name()] = cmd
}

// Get returns a command by name.
func Get(name string) (Command, bool) {
	c, ok := registry[name]
	return c, ok
}

// List returns all registered commands sorted by name.
func List() []Command {
	list := make([]Command, 0, len(registry))
	for _, c := range registry {
		list = append(list, c)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name() < list[j].Name() })
	return list
}

// FormatGlobalUsage builds a help text for all commands.
func FormatGlobalUsage() string {
	lines := []string{
		"GuardaSenha CLI",
		"",
		"Usage:",
		"  guardasenha [-db <path>] [-export-dir <dir>] [-log-level <level>] <command> [args]",
		"",
		"Commands:",
	}
	for _, c := range List() {
		lines = append(lines, fmt.Sprintf("  %-44s %s", c.Usage(), c.Description()))
	}
	return strings.Join(lines, "\n") + "\n"
}

// readNewPassword запрашивает новый пароль дважды.
func readNewPassword(what string) (string, error) {
	first, err := Passwords.ReadPassword(fmt.Sprintf("New %s: ", what))
	if err != nil {
		return "", err
	}
	if first == "" {
		return "", fmt.Errorf("%s must not be empty", what)
	}
	second, err := Passwords.ReadPassword(fmt.Sprintf("Repeat %s: ", what))
	if err != nil {
		return "", err
	}
	if first != second {
		return "", fmt.Errorf("%s values do not match", what)
	}
	return first, nil
}

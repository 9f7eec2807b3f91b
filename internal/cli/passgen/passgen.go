// Package passgen генерирует случайные пароли и оценивает их надёжность.
package passgen

import (
	"GuardaSenha/internal/cli/model"
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

// Class: набор классов символов.
type Class uint8

const (
	Lower Class = 1 << iota
	Upper
	Digit
	Special
)

// Параметры генератора по умолчанию.
const (
	DefaultLength = 8
	MinLength     = 1
	MaxLength     = 32
	DefaultClass  = Lower
)

const (
	lowerChars   = "abcdefghijklmnopqrstuvwxyz"
	upperChars   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitChars   = "0123456789"
	specialChars = `!@#$%^&*()_+-=[]{};':"\|,.<>/?`
)

var classChars = []struct {
	class Class
	chars string
}{
	{Lower, lowerChars},
	{Upper, upperChars},
	{Digit, digitChars},
	{Special, specialChars},
}

// Generate возвращает пароль длины length из символов классов classes.
// Каждый запрошенный класс представлен хотя бы одним символом, если хватает длины.
func Generate(length int, classes Class) (string, error) {
	if length < 1 {
		return "", fmt.Errorf("%w: password length must be positive", model.ErrInvalidConfiguration)
	}
	var sets []string
	for _, cc := range classChars {
		if classes&cc.class != 0 {
			sets = append(sets, cc.chars)
		}
	}
	if len(sets) == 0 {
		return "", fmt.Errorf("%w: no character classes selected", model.ErrInvalidConfiguration)
	}

	all := strings.Join(sets, "")
	password := make([]byte, 0, length)
	for _, set := range sets {
		if len(password) == length {
			break
		}
		ch, err := pick(set)
		if err != nil {
			return "", err
		}
		password = append(password, ch)
	}
	for len(password) < length {
		ch, err := pick(all)
		if err != nil {
			return "", err
		}
		password = append(password, ch)
	}

	// Fisher-Yates
	for i := len(password) - 1; i > 0; i-- {
		j, err := randInt(i + 1)
		if err != nil {
			return "", err
		}
		password[i], password[j] = password[j], password[i]
	}
	return string(password), nil
}

func pick(set string) (byte, error) {
	i, err := randInt(len(set))
	if err != nil {
		return 0, err
	}
	return set[i], nil
}

func randInt(n int) (int, error) {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("read random: %w", err)
	}
	return int(v.Int64()), nil
}

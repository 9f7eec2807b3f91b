package passgen

import (
	"strings"
	"unicode"
)

// Strength: оценка надёжности пароля.
type Strength int

const (
	Empty Strength = iota
	Weak
	Medium
	Strong
)

func (s Strength) String() string {
	switch s {
	case Weak:
		return "weak"
	case Medium:
		return "medium"
	case Strong:
		return "strong"
	default:
		return "empty"
	}
}

const minClassifiedLength = 6

// Classify оценивает пароль только по его содержимому.
func Classify(password string) Strength {
	if password == "" {
		return Empty
	}
	var hasUpper, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		case strings.ContainsRune(specialChars, r):
			hasSpecial = true
		}
	}
	if len([]rune(password)) < minClassifiedLength || !hasUpper || !hasDigit {
		return Weak
	}
	if hasSpecial {
		return Strong
	}
	return Medium
}

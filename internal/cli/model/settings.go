package model

// MasterSettings: настройки мастер-пароля. Key хранится только внутри
// зашифрованной записи настроек.
type MasterSettings struct {
	Enabled       bool   `json:"enabled"`
	Key           string `json:"key"`
	QuestionAsked bool   `json:"questionAsked"`
}

// MasterState: состояние жизненного цикла мастер-пароля.
type MasterState int

const (
	// MasterUnset: записи настроек ещё нет, пользователя нужно спросить.
	MasterUnset MasterState = iota
	MasterDisabled
	MasterEnabled
)

func (s MasterState) String() string {
	switch s {
	case MasterDisabled:
		return "disabled"
	case MasterEnabled:
		return "enabled"
	default:
		return "unset"
	}
}

// StateOf возвращает состояние для настроек; nil означает отсутствие записи.
func StateOf(s *MasterSettings) MasterState {
	switch {
	case s == nil:
		return MasterUnset
	case s.Enabled:
		return MasterEnabled
	default:
		return MasterDisabled
	}
}

// ExportBundle: переносимый пакет экспорта. Пароль не передаётся, только флаг.
type ExportBundle struct {
	MasterPassword bool    `json:"masterPassword"`
	Logins         *string `json:"logins,omitempty"`
}

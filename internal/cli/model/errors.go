package model

import "errors"

var (
	// ErrDecryptionFailed: шифртекст не даёт корректного JSON под выбранным ключом
	// (неверный мастер-пароль, повреждённые данные или другой рецепт ключа).
	ErrDecryptionFailed = errors.New("decryption failed")
	// ErrStorageUnavailable: ошибка чтения/записи носителя.
	ErrStorageUnavailable = errors.New("storage unavailable")
	// ErrInvalidConfiguration: некорректные параметры операции (пустой набор классов,
	// пустые или дублирующиеся поля записи и т.п.).
	ErrInvalidConfiguration = errors.New("invalid configuration")
	// ErrImportCancelled: пользователь отменил выбор файла. Это не ошибка данных.
	ErrImportCancelled = errors.New("import cancelled")
	// ErrInvalidBundle: файл импорта не является JSON-пакетом экспорта.
	ErrInvalidBundle = errors.New("invalid export bundle")
	// ErrNotFound: запись с указанным id отсутствует.
	ErrNotFound = errors.New("credential not found")
)

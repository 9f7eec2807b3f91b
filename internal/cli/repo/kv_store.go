package repo

import "context"

// KV: пара ключ/значение для пакетной записи.
type KV struct {
	Key   string
	Value string
}

// KVStore: порт долговременного строкового хранилища ключ/значение.
// Значения здесь уже зашифрованы: носитель хранит непрозрачные строки.
type KVStore interface {
	// Get возвращает значение и признак наличия ключа.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set записывает значение ключа.
	Set(ctx context.Context, key, value string) error
	// SetBatch записывает несколько ключей атомарно: либо все, либо ни одного.
	SetBatch(ctx context.Context, entries []KV) error
}

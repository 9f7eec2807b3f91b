// Package memory реализует repo.KVStore в памяти процесса.
// Поддерживает внедрение ошибок для проверки мягких отказов хранилища.
package memory

import (
	"GuardaSenha/internal/cli/repo"
	"context"
	"errors"
	"sync"
)

// ErrInjected возвращается хранилищем, настроенным на отказ.
var ErrInjected = errors.New("injected storage failure")

// KVStore: носитель на map, безопасен для конкурентного доступа.
// FailGetKeys отказывает в чтении только перечисленных ключей.
type KVStore struct {
	mu          sync.Mutex
	data        map[string]string
	FailGet     bool
	FailGetKeys map[string]bool
	FailSet     bool
	SetCalls    int
}

var _ repo.KVStore = (*KVStore)(nil)

// NewKVStore создаёт пустое хранилище.
func NewKVStore() *KVStore {
	return &KVStore{data: map[string]string{}}
}

func (s *KVStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailGet || s.FailGetKeys[key] {
		return "", false, ErrInjected
	}
	v, ok := s.data[key]
	return v, ok, nil
}

func (s *KVStore) Set(ctx context.Context, key, value string) error {
	return s.SetBatch(ctx, []repo.KV{{Key: key, Value: value}})
}

func (s *KVStore) SetBatch(_ context.Context, entries []repo.KV) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.SetCalls++
	if s.FailSet {
		return ErrInjected
	}
	for _, e := range entries {
		if e.Key == "" {
			return errors.New("empty key")
		}
	}
	for _, e := range entries {
		s.data[e.Key] = e.Value
	}
	return nil
}

// Raw возвращает сохранённое значение как есть.
func (s *KVStore) Raw(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.data[key]
	return v, ok
}

// Put записывает значение в обход внедрённых ошибок.
func (s *KVStore) Put(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
}

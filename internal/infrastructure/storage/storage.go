package storage

import (
	"context"
)

// Ключи сохраняемого состояния приложения.
const (
	KeyProfile  = "address"
	KeyVisitors = "addresses"
	KeyExported = "exported"
)

// Store - строковое key-value хранилище. Значения переживают перезапуск,
// транзакций и гарантий между ключами нет.
type Store interface {
	// Get возвращает false, если ключа нет.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	// Удаление отсутствующего ключа не ошибка.
	Remove(ctx context.Context, key string) error
	Close() error
}

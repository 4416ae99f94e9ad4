package repository

import (
	"context"
)

// KeyValueRepository хранилище строк по ключу.
// Get возвращает storage.ErrKeyNotFound, если ключ не записан.
type KeyValueRepository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

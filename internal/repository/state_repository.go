package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"gallery_shallery/internal/lib/logger/sl"
	"gallery_shallery/internal/storage"
)

// Ключи, под которыми сохраняется состояние приложения
const (
	KeyAlbums            = "albums"
	KeyAppTheme          = "appTheme"
	KeyHomeCustomization = "homeCustomization"
	KeyCustomFont        = "customFont"
	KeyCloudClientID     = "google_client_id"
	KeyCloudAPIKey       = "google_api_key"
)

// PersistenceError ошибка записи или чтения локального хранилища
type PersistenceError struct {
	Op  string
	Key string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// StateRepository сохраняет значения в JSON поверх хранилища ключ-значение.
// При записи побеждает последнее значение; чтение испорченного значения дает "нет значения".
type StateRepository struct {
	log *slog.Logger
	kv  KeyValueRepository
}

func NewStateRepository(log *slog.Logger, kv KeyValueRepository) *StateRepository {
	return &StateRepository{
		log: log,
		kv:  kv,
	}
}

// Save сериализует value и перезаписывает значение по ключу
func (r *StateRepository) Save(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return &PersistenceError{Op: "save", Key: key, Err: err}
	}

	if err := r.kv.Set(ctx, key, string(data)); err != nil {
		return &PersistenceError{Op: "save", Key: key, Err: err}
	}

	return nil
}

// Delete удаляет значение по ключу
func (r *StateRepository) Delete(ctx context.Context, key string) error {
	if err := r.kv.Delete(ctx, key); err != nil {
		return &PersistenceError{Op: "delete", Key: key, Err: err}
	}
	return nil
}

// LoadRaw возвращает сохраненный JSON по ключу; ok=false, если значения нет
// или хранилище недоступно
func (r *StateRepository) LoadRaw(ctx context.Context, key string) ([]byte, bool) {
	const op = "repository.StateRepository.LoadRaw"

	val, err := r.kv.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, storage.ErrKeyNotFound) {
			r.log.Warn("failed to read stored value",
				slog.String("op", op),
				slog.String("key", key),
				sl.Err(&PersistenceError{Op: "load", Key: key, Err: err}),
			)
		}
		return nil, false
	}

	return []byte(val), true
}

// LoadInto разбирает сохраненное значение в dst. Отсутствующее и неразборчивое
// значения одинаково дают false: старт приложения не должен падать из-за них.
func (r *StateRepository) LoadInto(ctx context.Context, key string, dst any) bool {
	const op = "repository.StateRepository.LoadInto"

	data, ok := r.LoadRaw(ctx, key)
	if !ok {
		return false
	}

	if err := json.Unmarshal(data, dst); err != nil {
		r.log.Warn("stored value is malformed, treating as absent",
			slog.String("op", op),
			slog.String("key", key),
			sl.Err(err),
		)
		return false
	}

	return true
}

// StateLoader читает сохраненные значения
type StateLoader interface {
	LoadInto(ctx context.Context, key string, dst any) bool
}

// Load читает типизированное значение по ключу; ok=false означает "нет значения"
func Load[T any](ctx context.Context, r StateLoader, key string) (T, bool) {
	var value T
	if !r.LoadInto(ctx, key, &value) {
		var zero T
		return zero, false
	}

	return value, true
}

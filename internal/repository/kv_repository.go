package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gallery_shallery/internal/storage"
	memoryapp "gallery_shallery/internal/storage/memory"
	redisapp "gallery_shallery/internal/storage/redis"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/redis/go-redis/v9"
)

// MemoryKVRepo хранит значения в памяти процесса
type MemoryKVRepo struct {
	Client *memoryapp.Client
}

func NewMemoryKVRepo(client *memoryapp.Client) *MemoryKVRepo {
	return &MemoryKVRepo{Client: client}
}

func (r *MemoryKVRepo) Get(_ context.Context, key string) (string, error) {
	val, ok := r.Client.Get(key)
	if !ok {
		return "", storage.ErrKeyNotFound
	}

	s, ok := val.(string)
	if !ok {
		return "", fmt.Errorf("repository.MemoryKVRepo.Get: unexpected value type %T", val)
	}

	return s, nil
}

func (r *MemoryKVRepo) Set(_ context.Context, key, value string) error {
	r.Client.Set(key, value, 0)
	return nil
}

func (r *MemoryKVRepo) Delete(_ context.Context, key string) error {
	r.Client.Delete(key)
	return nil
}

// RedisKVRepo хранит значения в Redis без срока жизни
type RedisKVRepo struct {
	Client *redisapp.Client
}

func NewRedisKVRepo(client *redisapp.Client) *RedisKVRepo {
	return &RedisKVRepo{Client: client}
}

func (r *RedisKVRepo) Get(ctx context.Context, key string) (string, error) {
	val, err := r.Client.Get(ctx, redisKey(key)).Result()
	if err == redis.Nil {
		return "", storage.ErrKeyNotFound
	}
	return val, err
}

func (r *RedisKVRepo) Set(ctx context.Context, key, value string) error {
	return r.Client.Set(ctx, redisKey(key), value, 0).Err()
}

func (r *RedisKVRepo) Delete(ctx context.Context, key string) error {
	return r.Client.Del(ctx, redisKey(key)).Err()
}

func redisKey(key string) string {
	return "gallery:" + key
}

// PostgresKVRepo хранит значения в таблице kv_store
type PostgresKVRepo struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

func NewPostgresKVRepo(db *pgxpool.Pool) *PostgresKVRepo {
	return &PostgresKVRepo{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func (r *PostgresKVRepo) Get(ctx context.Context, key string) (string, error) {
	const op = "repository.PostgresKVRepo.Get"

	query, args, err := r.sb.Select("value").
		From("kv_store").
		Where(squirrel.Eq{"key": key}).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	var value string
	err = r.db.QueryRow(ctx, query, args...).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", storage.ErrKeyNotFound
		}
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return value, nil
}

func (r *PostgresKVRepo) Set(ctx context.Context, key, value string) error {
	const op = "repository.PostgresKVRepo.Set"

	query, args, err := r.sb.Insert("kv_store").
		Columns("key", "value", "updated_at").
		Values(key, value, time.Now().UTC()).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if _, err = r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *PostgresKVRepo) Delete(ctx context.Context, key string) error {
	const op = "repository.PostgresKVRepo.Delete"

	query, args, err := r.sb.Delete("kv_store").
		Where(squirrel.Eq{"key": key}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if _, err = r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

package repository

import (
	"context"
	"fmt"
	"log/slog"

	memoryapp "gallery_shallery/internal/storage/memory"
	"gallery_shallery/internal/storage/postgresql"
	redisapp "gallery_shallery/internal/storage/redis"
)

const (
	BackendMemory   = "memory"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

// Options описывает выбранный бэкенд хранилища
type Options struct {
	Backend       string
	DSN           string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

type Repository struct {
	KV    KeyValueRepository
	State *StateRepository
	close func()
}

func NewRepository(ctx context.Context, log *slog.Logger, opts Options) (*Repository, error) {
	const op = "repository.NewRepository"

	var (
		kv     KeyValueRepository
		closer = func() {}
	)

	switch opts.Backend {
	case "", BackendMemory:
		kv = NewMemoryKVRepo(memoryapp.NewClient())
	case BackendRedis:
		client := redisapp.NewClient(opts.RedisAddr, opts.RedisPassword, opts.RedisDB)
		if err := client.HealthCheck(ctx); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("%s: failed to connect to redis: %w", op, err)
		}
		kv = NewRedisKVRepo(client)
		closer = func() { _ = client.Close() }
	case BackendPostgres:
		pg, err := postgresql.New(ctx, opts.DSN)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to connect to database: %w", op, err)
		}
		kv = NewPostgresKVRepo(pg.Pool())
		closer = pg.Stop
	default:
		return nil, fmt.Errorf("%s: unknown storage backend %q", op, opts.Backend)
	}

	return &Repository{
		KV:    kv,
		State: NewStateRepository(log, kv),
		close: closer,
	}, nil
}

func (r *Repository) Close() {
	r.close()
}

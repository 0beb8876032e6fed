package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Arun225295196/SIT725/config"
	"github.com/Arun225295196/SIT725/internal/projects/domain"
	"github.com/Arun225295196/SIT725/internal/projects/repository"
)

// Store is an opened project store plus whatever must be closed with it.
type Store struct {
	repository.Store
	Backend string
	close   func()
}

func (s *Store) Close() {
	if s.close != nil {
		s.close()
	}
}

// OpenStore builds the backend named by cfg.Store.Backend. The memory
// backend starts with samples; external backends keep their data and are
// only seeded on demand.
func OpenStore(ctx context.Context, cfg *config.Config, samples []domain.CreateInput) (*Store, error) {
	switch cfg.Store.Backend {
	case config.BackendMemory:
		mem, err := repository.NewMemoryStore(cfg.Store.IDSeed, samples)
		if err != nil {
			return nil, fmt.Errorf("memory store: %w", err)
		}
		return &Store{Store: mem, Backend: config.BackendMemory}, nil

	case config.BackendRedis:
		client, err := OpenRedis(ctx, RedisOptions{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return nil, err
		}
		rs, err := repository.NewRedisStore(ctx, client, cfg.Store.IDSeed)
		if err != nil {
			_ = client.Close()
			return nil, err
		}
		slog.Info("redis store ready", "addr", cfg.Redis.Addr, "db", cfg.Redis.DB)
		return &Store{Store: rs, Backend: config.BackendRedis, close: func() { _ = client.Close() }}, nil

	case config.BackendPostgres:
		pool, err := OpenDB(ctx, DBOptions{
			DSN:      cfg.Database.DSN,
			MaxConns: cfg.Database.MaxConns,
			MinConns: cfg.Database.MinConns,
		})
		if err != nil {
			return nil, err
		}
		ps := repository.NewPostgresStore(pool)
		if err := ps.EnsureSchema(ctx, cfg.Store.IDSeed); err != nil {
			pool.Close()
			return nil, err
		}
		slog.Info("postgres store ready")
		return &Store{Store: ps, Backend: config.BackendPostgres, close: pool.Close}, nil
	}

	return nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
}

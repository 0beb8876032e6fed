package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Arun225295196/SIT725/internal/projects/domain"
)

const (
	projectKeyPrefix = "sit725:project:"        // Project JSON: sit725:project:{id}
	projectIndexKey  = "sit725:projects"        // Sorted set of ids, score = id
	projectNextIDKey = "sit725:projects:nextid" // Last issued id, advanced with INCR
)

// RedisStore keeps each project as a JSON string and an ordered id index.
type RedisStore struct {
	client *redis.Client
	now    func() time.Time
}

// NewRedisStore creates a RedisStore and makes sure the id counter starts at
// seed. An existing counter is left alone so ids survive restarts.
func NewRedisStore(ctx context.Context, client *redis.Client, seed int64) (*RedisStore, error) {
	if err := client.SetNX(ctx, projectNextIDKey, seed-1, 0).Err(); err != nil {
		return nil, fmt.Errorf("failed to initialise project id counter: %w", err)
	}
	return &RedisStore{client: client, now: time.Now}, nil
}

func (r *RedisStore) List(ctx context.Context) ([]domain.Project, error) {
	ids, err := r.client.ZRange(ctx, projectIndexKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list project ids: %w", err)
	}
	if len(ids) == 0 {
		return []domain.Project{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = projectKeyPrefix + id
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load projects: %w", err)
	}

	out := make([]domain.Project, 0, len(values))
	for _, v := range values {
		// A key can vanish between ZRANGE and MGET when a delete races the list.
		s, ok := v.(string)
		if !ok {
			continue
		}
		var p domain.Project
		if err := json.Unmarshal([]byte(s), &p); err != nil {
			return nil, fmt.Errorf("failed to unmarshal project: %w", err)
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *RedisStore) Get(ctx context.Context, id int64) (*domain.Project, error) {
	data, err := r.client.Get(ctx, r.projectKey(id)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	var p domain.Project
	if err := json.Unmarshal([]byte(data), &p); err != nil {
		return nil, fmt.Errorf("failed to unmarshal project: %w", err)
	}
	return &p, nil
}

func (r *RedisStore) Create(ctx context.Context, in domain.CreateInput) (*domain.Project, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	id, err := r.client.Incr(ctx, projectNextIDKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to allocate project id: %w", err)
	}

	p := domain.NewProject(id, in, r.now())
	if err := r.save(ctx, &p); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	return &p, nil
}

func (r *RedisStore) Update(ctx context.Context, id int64, in domain.UpdateInput) (*domain.Project, error) {
	p, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	in.Apply(p)

	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal project: %w", err)
	}
	// XX so an update racing a delete does not resurrect the record.
	ok, err := r.client.SetXX(ctx, r.projectKey(id), data, 0).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}
	if !ok {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

func (r *RedisStore) Delete(ctx context.Context, id int64) (bool, error) {
	var del *redis.IntCmd
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		del = pipe.Del(ctx, r.projectKey(id))
		pipe.ZRem(ctx, projectIndexKey, strconv.FormatInt(id, 10))
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to delete project: %w", err)
	}
	return del.Val() > 0, nil
}

func (r *RedisStore) ListByCategory(ctx context.Context, category string) ([]domain.Project, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Project, 0)
	for _, p := range all {
		if p.MatchesCategory(category) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *RedisStore) Reset(ctx context.Context, samples []domain.CreateInput) error {
	for _, in := range samples {
		if err := in.Validate(); err != nil {
			return err
		}
	}

	ids, err := r.client.ZRange(ctx, projectIndexKey, 0, -1).Result()
	if err != nil {
		return fmt.Errorf("failed to list project ids: %w", err)
	}

	pipe := r.client.TxPipeline()
	for _, id := range ids {
		pipe.Del(ctx, projectKeyPrefix+id)
	}
	pipe.Del(ctx, projectIndexKey)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to clear projects: %w", err)
	}

	for _, in := range samples {
		if _, err := r.Create(ctx, in); err != nil {
			return err
		}
	}
	return nil
}

func (r *RedisStore) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RedisStore) save(ctx context.Context, p *domain.Project) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal project: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, r.projectKey(p.ID), data, 0)
	pipe.ZAdd(ctx, projectIndexKey, redis.Z{Score: float64(p.ID), Member: strconv.FormatInt(p.ID, 10)})
	_, err = pipe.Exec(ctx)
	return err
}

func (r *RedisStore) projectKey(id int64) string {
	return fmt.Sprintf("%s%d", projectKeyPrefix, id)
}

var _ Store = (*RedisStore)(nil)

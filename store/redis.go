package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/speakwise/analyzer/orchestrator"
)

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration // zero keeps reports forever
}

// RedisStore keeps each report under report:<id> and indexes it in a
// per-user sorted set scored by creation time.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(c RedisConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     c.Addr,
		Password: c.Password,
		DB:       c.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return &RedisStore{client: client, ttl: c.TTL}, nil
}

func reportKey(id string) string   { return "report:" + id }
func userKey(userID string) string { return "user:" + userID + ":reports" }

func (s *RedisStore) Save(ctx context.Context, r orchestrator.Report) (string, error) {
	r.ID = newID()
	body, err := json.Marshal(r)
	if err != nil {
		return "", fmt.Errorf("failed to marshal report: %w", err)
	}

	_, err = s.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.Set(ctx, reportKey(r.ID), body, s.ttl)
		p.ZAdd(ctx, userKey(r.UserID), redis.Z{
			Score:  float64(r.CreatedAt.UnixNano()),
			Member: r.ID,
		})
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("error saving report: %w", err)
	}
	return r.ID, nil
}

func (s *RedisStore) Get(ctx context.Context, id string) (orchestrator.Report, error) {
	body, err := s.client.Get(ctx, reportKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return orchestrator.Report{}, ErrNotFound
	}
	if err != nil {
		return orchestrator.Report{}, fmt.Errorf("error reading report: %w", err)
	}
	var r orchestrator.Report
	if err := json.Unmarshal(body, &r); err != nil {
		return orchestrator.Report{}, fmt.Errorf("failed to decode report %s: %w", id, err)
	}
	return r, nil
}

// ListByUser skips index entries whose report has expired and prunes them.
func (s *RedisStore) ListByUser(ctx context.Context, userID string, limit int) ([]orchestrator.Report, error) {
	ids, err := s.client.ZRevRange(ctx, userKey(userID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("error listing reports: %w", err)
	}

	out := make([]orchestrator.Report, 0, len(ids))
	var stale []any
	for _, id := range ids {
		if limit > 0 && len(out) == limit {
			break
		}
		r, err := s.Get(ctx, id)
		if errors.Is(err, ErrNotFound) {
			stale = append(stale, id)
			continue
		}
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	if len(stale) > 0 {
		if err := s.client.ZRem(ctx, userKey(userID), stale...).Err(); err != nil {
			return nil, fmt.Errorf("error pruning index: %w", err)
		}
	}
	newestFirst(out)
	return out, nil
}

func (s *RedisStore) Ping(ctx context.Context) error { return s.client.Ping(ctx).Err() }

func (s *RedisStore) Close() error { return s.client.Close() }

package viewstate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "dashboard:state:"

// RedisStore shares records between dashboard instances through Redis.
// TTL zero keeps keys forever.
type RedisStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisStore(addr, password string, db int) *RedisStore {
	return &RedisStore{Client: redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})}
}

func redisKey(name string) string {
	return redisKeyPrefix + name
}

func (s *RedisStore) Load(ctx context.Context, name string) (Record, bool, error) {
	if s == nil || s.Client == nil {
		return Record{}, false, nil
	}
	payload, err := s.Client.Get(ctx, redisKey(name)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return Record{}, false, nil
		}
		return Record{}, false, fmt.Errorf("redis get state: %w", err)
	}
	var rec Record
	if err := json.Unmarshal(payload, &rec); err != nil {
		return Record{}, false, fmt.Errorf("parse state %s: %w", name, err)
	}
	return rec, true, nil
}

func (s *RedisStore) Save(ctx context.Context, name string, rec Record) error {
	if s == nil || s.Client == nil {
		return nil
	}
	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}
	if err := s.Client.Set(ctx, redisKey(name), payload, s.TTL).Err(); err != nil {
		return fmt.Errorf("redis set state: %w", err)
	}
	return nil
}

func (s *RedisStore) Close() error {
	if s == nil || s.Client == nil {
		return nil
	}
	return s.Client.Close()
}

package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// keyPrefix namespaces session keys so the service can share a Redis database
// with other tenants.
const keyPrefix = "stc:session:"

// RedisStore keeps sessions in Redis with a TTL refreshed on every access,
// so replicas behind a load balancer see the same session state.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore creates a Redis-backed store from a redis:// URL.
func NewRedisStore(url string, ttl time.Duration) (*RedisStore, error) {
	options, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	return &RedisStore{
		client: redis.NewClient(options),
		ttl:    ttl,
	}, nil
}

// Ping verifies connectivity; called once at startup so a bad REDIS_URL fails
// fast instead of on the first request.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *RedisStore) Create(ctx context.Context) (*Session, error) {
	now := time.Now().UTC()
	created := &Session{
		ID:         uuid.NewString(),
		CreatedAt:  now,
		LastActive: now,
	}
	if err := s.save(ctx, created); err != nil {
		return nil, err
	}
	return created, nil
}

func (s *RedisStore) Get(ctx context.Context, id string) (*Session, error) {
	sess, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	sess.LastActive = time.Now().UTC()
	if err := s.save(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

func (s *RedisStore) Track(ctx context.Context, id string, action Action) error {
	if action.Timestamp.IsZero() {
		action.Timestamp = time.Now().UTC()
	}

	sess, err := s.load(ctx, id)
	if err != nil {
		return err
	}
	sess.Actions = append(sess.Actions, action)
	sess.LastActive = time.Now().UTC()
	return s.save(ctx, sess)
}

func (s *RedisStore) Actions(ctx context.Context, id string) ([]Action, error) {
	sess, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return sess.Actions, nil
}

func (s *RedisStore) Clear(ctx context.Context, id string) error {
	removed, err := s.client.Del(ctx, keyPrefix+id).Result()
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if removed == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *RedisStore) load(ctx context.Context, id string) (*Session, error) {
	raw, err := s.client.Get(ctx, keyPrefix+id).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}

	var sess Session
	if err := json.Unmarshal([]byte(raw), &sess); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &sess, nil
}

func (s *RedisStore) save(ctx context.Context, sess *Session) error {
	encoded, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := s.client.Set(ctx, keyPrefix+sess.ID, encoded, s.ttl).Err(); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

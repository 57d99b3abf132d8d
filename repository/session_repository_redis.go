package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"finance-guide/domain"
)

const sessionKeyPrefix = "m3:session:"

// SessionRepositoryRedis stores each session as one JSON value whose expiry is
// refreshed on every save.
type SessionRepositoryRedis struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSessionRepositoryRedis(client *redis.Client, ttl time.Duration) *SessionRepositoryRedis {
	return &SessionRepositoryRedis{
		client: client,
		ttl:    ttl,
	}
}

func (r *SessionRepositoryRedis) Get(ctx context.Context, id string) (domain.Session, bool, error) {
	raw, err := r.client.Get(ctx, sessionKeyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.Session{}, false, nil
	}
	if err != nil {
		return domain.Session{}, false, fmt.Errorf("load session %s: %w", id, err)
	}

	var s domain.Session
	if err := json.Unmarshal(raw, &s); err != nil {
		return domain.Session{}, false, fmt.Errorf("decode session %s: %w", id, err)
	}
	return s, true, nil
}

func (r *SessionRepositoryRedis) Save(ctx context.Context, session domain.Session) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session %s: %w", session.ID, err)
	}
	return r.client.Set(ctx, sessionKeyPrefix+session.ID, raw, r.ttl).Err()
}

func (r *SessionRepositoryRedis) Delete(ctx context.Context, id string) error {
	return r.client.Del(ctx, sessionKeyPrefix+id).Err()
}

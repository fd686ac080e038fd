package sheets

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/spellwright/wizard-forge/internal/domain/character"
	forgeerr "github.com/spellwright/wizard-forge/internal/errors"
)

// redisRepo implements the Repository interface using Redis
type redisRepo struct {
	client redis.UniversalClient
	ttl    time.Duration
}

// RedisConfig holds the dependencies for the Redis repository
type RedisConfig struct {
	Client redis.UniversalClient
	// TTL for stored sheets; zero means no expiry
	TTL time.Duration
}

// NewRedis creates a Redis-backed sheet repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if cfg == nil {
		return nil, forgeerr.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return nil, forgeerr.InvalidArgument("redis client cannot be nil")
	}

	return &redisRepo{
		client: cfg.Client,
		ttl:    cfg.TTL,
	}, nil
}

func sheetKey(sessionID string) string {
	return fmt.Sprintf("sheet:%s", sessionID)
}

func (r *redisRepo) Get(ctx context.Context, sessionID string) (*character.Sheet, error) {
	if sessionID == "" {
		return nil, forgeerr.InvalidArgument("session ID is required")
	}

	data, err := r.client.Get(ctx, sheetKey(sessionID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return character.NewSheet(), nil
		}
		return nil, forgeerr.Wrapf(err, "failed to get sheet for session '%s'", sessionID).
			WithMeta("session_id", sessionID)
	}

	var sheet character.Sheet
	if err := json.Unmarshal(data, &sheet); err != nil {
		return nil, forgeerr.Wrapf(err, "failed to unmarshal sheet for session '%s'", sessionID).
			WithMeta("session_id", sessionID)
	}

	return &sheet, nil
}

func (r *redisRepo) Save(ctx context.Context, sessionID string, sheet *character.Sheet) error {
	if sessionID == "" {
		return forgeerr.InvalidArgument("session ID is required")
	}
	if sheet == nil {
		return forgeerr.InvalidArgument("sheet cannot be nil")
	}

	data, err := json.Marshal(sheet)
	if err != nil {
		return forgeerr.Wrapf(err, "failed to marshal sheet for session '%s'", sessionID).
			WithMeta("session_id", sessionID)
	}

	if err := r.client.Set(ctx, sheetKey(sessionID), data, r.ttl).Err(); err != nil {
		return forgeerr.Wrapf(err, "failed to save sheet for session '%s'", sessionID).
			WithMeta("session_id", sessionID)
	}

	return nil
}

func (r *redisRepo) Delete(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return forgeerr.InvalidArgument("session ID is required")
	}

	if err := r.client.Del(ctx, sheetKey(sessionID)).Err(); err != nil {
		return forgeerr.Wrapf(err, "failed to delete sheet for session '%s'", sessionID).
			WithMeta("session_id", sessionID)
	}

	return nil
}

package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/fittracker/pkg"

	"github.com/go-redis/redis/v8"
)

const (
	oauthStateTTL       = 10 * time.Minute
	oauthStateKeyPrefix = "fittracker-oauth-state||"
	oauthStateLength    = 32
)

// StateStore holds the single-use OAuth state values between login and callback.
type StateStore struct {
	redisClient    *redis.Client
	RandStringFunc func(s int) (string, error)
}

func NewStateStore(redisClient *redis.Client) *StateStore {
	return &StateStore{
		redisClient:    redisClient,
		RandStringFunc: pkg.GenerateRandomString,
	}
}

func (s *StateStore) New(ctx context.Context) (string, error) {
	state, err := s.RandStringFunc(oauthStateLength)
	if err != nil {
		return "", fmt.Errorf("generate oauth state: %w", err)
	}
	if err := s.redisClient.Set(ctx, oauthStateKeyPrefix+state, 1, oauthStateTTL).Err(); err != nil {
		return "", fmt.Errorf("store oauth state: %w", err)
	}
	return state, nil
}

// Consume reports whether the state was issued by New and not used yet.
func (s *StateStore) Consume(ctx context.Context, state string) (bool, error) {
	if state == "" {
		return false, nil
	}
	deleted, err := s.redisClient.Del(ctx, oauthStateKeyPrefix+state).Result()
	if err != nil {
		return false, fmt.Errorf("consume oauth state: %w", err)
	}
	return deleted == 1, nil
}

package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/fittracker/internal/telemetry/tracing"
	"github.com/2beens/fittracker/pkg"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
)

const (
	DefaultSessionTTL = 24 * time.Hour
	SessionCookieName = "fittracker_session"

	sessionKeyPrefix = "fittracker-session||"
	sessionsSetKey   = "fittracker-sessions"
	sessionIDLength  = 40
)

var ErrSessionNotFound = fmt.Errorf("%w: session not found or expired", pkg.ErrUnauthenticated)

type sessionData struct {
	Identity  Identity `json:"identity"`
	CreatedAt int64    `json:"createdAt"`
}

// SessionStore keeps cookie sessions in redis. Every session id is also kept
// in a redis set, so stale entries can be found by ScanAndClean.
type SessionStore struct {
	redisClient *redis.Client
	ttl         time.Duration
	now         func() time.Time
	// ability to inject random string generator func for session ids (for unit and dev testing)
	RandStringFunc func(s int) (string, error)
}

func NewSessionStore(ttl time.Duration, redisClient *redis.Client) *SessionStore {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &SessionStore{
		ttl:            ttl,
		redisClient:    redisClient,
		now:            time.Now,
		RandStringFunc: pkg.GenerateRandomString,
	}
}

func (s *SessionStore) TTL() time.Duration {
	return s.ttl
}

func (s *SessionStore) Create(ctx context.Context, identity Identity) (_ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "auth.sessions.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	sessionID, err := s.RandStringFunc(sessionIDLength)
	if err != nil {
		return "", fmt.Errorf("generate session id: %w", err)
	}

	data, err := json.Marshal(sessionData{
		Identity:  identity,
		CreatedAt: s.now().Unix(),
	})
	if err != nil {
		return "", fmt.Errorf("marshal session: %w", err)
	}

	if err := s.redisClient.Set(ctx, sessionKeyPrefix+sessionID, string(data), s.ttl).Err(); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}

	// add session id to the set of sessions
	if err := s.redisClient.SAdd(ctx, sessionsSetKey, sessionID).Err(); err != nil {
		return "", fmt.Errorf("track session: %w", err)
	}

	return sessionID, nil
}

func (s *SessionStore) Get(ctx context.Context, sessionID string) (_ *Identity, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "auth.sessions.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if sessionID == "" {
		return nil, ErrSessionNotFound
	}

	raw, err := s.redisClient.Get(ctx, sessionKeyPrefix+sessionID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("get session: %w", err)
	}

	var data sessionData
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}
	if s.expired(data.CreatedAt) {
		return nil, ErrSessionNotFound
	}

	return &data.Identity, nil
}

func (s *SessionStore) Delete(ctx context.Context, sessionID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "auth.sessions.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := s.redisClient.Del(ctx, sessionKeyPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if err := s.redisClient.SRem(ctx, sessionsSetKey, sessionID).Err(); err != nil {
		return fmt.Errorf("untrack session: %w", err)
	}
	return nil
}

func (s *SessionStore) expired(createdAtUnix int64) bool {
	return s.now().Sub(time.Unix(createdAtUnix, 0)) > s.ttl
}

// ScanAndClean runs through all tracked sessions and removes the ones that are
// gone from redis or older than the TTL. Returns the number of removed sessions.
func (s *SessionStore) ScanAndClean(ctx context.Context) int {
	sessionIDs, err := s.redisClient.SMembers(ctx, sessionsSetKey).Result()
	if err != nil {
		log.Errorf("!!! session store, scan and clean, get sessions: %s", err)
		return 0
	}

	if len(sessionIDs) == 0 {
		log.Debugln("=> session store, scan and clean abort, no sessions")
		return 0
	}

	log.Debugf("=> session store, scan and clean [%d sessions] start ...", len(sessionIDs))
	var toRemove []string
	for _, sessionID := range sessionIDs {
		raw, err := s.redisClient.Get(ctx, sessionKeyPrefix+sessionID).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				toRemove = append(toRemove, sessionID)
				continue
			}
			log.Errorf("=> session store, scan and clean session %s: %s", sessionID, err)
			continue
		}

		var data sessionData
		if err := json.Unmarshal([]byte(raw), &data); err != nil {
			log.Errorf("=> session store, scan and clean session %s: %s", sessionID, err)
			toRemove = append(toRemove, sessionID)
			continue
		}
		if s.expired(data.CreatedAt) {
			toRemove = append(toRemove, sessionID)
		}
	}

	removed := 0
	for _, sessionID := range toRemove {
		if err := s.Delete(ctx, sessionID); err != nil {
			log.Errorf("=> session store, clean session %s: %s", sessionID, err)
			continue
		}
		removed++
	}

	log.Debugf("=> session store, scan and clean done, removed %d sessions", removed)
	return removed
}

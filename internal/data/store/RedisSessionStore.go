package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/avasari/GraderAPI/internal/config"
	"github.com/avasari/GraderAPI/internal/data/redisStore"
	"github.com/avasari/GraderAPI/internal/domain/sessionModel"
	"github.com/avasari/GraderAPI/pkg/logger_i"
)

// RedisSessionStore keeps one JSON blob per session under "session:{id}"
// with a sliding TTL. Used when Redis is reachable at startup; the
// in-memory store is the fallback.
type RedisSessionStore struct {
	store  *redisStore.Store
	ttl    time.Duration
	logger *logger_i.Logger
}

func NewRedisSessionStore(ctx context.Context) *RedisSessionStore {
	kv := redisStore.GetRedisStore(ctx, config.RedisSessionStore)
	if kv == nil {
		return nil
	}
	return &RedisSessionStore{
		store:  kv,
		ttl:    config.RedisSessionStoreTTL,
		logger: logger_i.NewLogger("Redis Session Store"),
	}
}

// TestSessionStore builds a store over an externally constructed KV layer;
// test use only.
func TestSessionStore(kv *redisStore.Store) *RedisSessionStore {
	return &RedisSessionStore{
		store:  kv,
		ttl:    config.RedisSessionStoreTTL,
		logger: logger_i.NewLogger("Redis Session Store"),
	}
}

func sessionKey(sessionId string) string {
	return "session:" + sessionId
}

func (r *RedisSessionStore) GetSession(ctx context.Context, sessionId string) (sessionModel.GradingSession, bool) {
	raw, err := r.store.Get(ctx, sessionKey(sessionId))
	if err != nil {
		if !redisStore.IsNil(err) {
			r.logger.Error("Error reading session", "sessionId", sessionId, "error", err)
		}
		return sessionModel.GradingSession{}, false
	}

	var session sessionModel.GradingSession
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		r.logger.Error("Corrupt session payload, dropping", "sessionId", sessionId, "error", err)
		_ = r.store.Del(ctx, sessionKey(sessionId))
		return sessionModel.GradingSession{}, false
	}
	return session, true
}

func (r *RedisSessionStore) SaveSession(ctx context.Context, session sessionModel.GradingSession) error {
	session.TouchedAt = time.Now()
	raw, err := json.Marshal(session)
	if err != nil {
		return err
	}
	if err := r.store.Set(ctx, sessionKey(session.Id), string(raw), r.ttl); err != nil {
		r.logger.Error("Error saving session", "sessionId", session.Id, "error", err)
		return err
	}
	return nil
}

func (r *RedisSessionStore) DeleteSession(ctx context.Context, sessionId string) {
	if err := r.store.Del(ctx, sessionKey(sessionId)); err != nil {
		r.logger.Error("Error deleting session", "sessionId", sessionId, "error", err)
	}
}

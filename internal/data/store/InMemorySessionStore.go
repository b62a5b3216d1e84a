package store

import (
	"context"
	"sync"
	"time"

	"github.com/avasari/GraderAPI/internal/domain/sessionModel"
	"github.com/avasari/GraderAPI/pkg/logger_i"
)

// InMemorySessionStore is the single-process fallback used when Redis is
// offline. Sessions vanish on restart; the janitor calls SweepExpired to
// keep the map from growing without bound.
type InMemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]sessionModel.GradingSession
	logger   *logger_i.Logger
}

func NewInMemorySessionStore() *InMemorySessionStore {
	return &InMemorySessionStore{
		sessions: make(map[string]sessionModel.GradingSession),
		logger:   logger_i.NewLogger("In-Memory Session Store"),
	}
}

func (m *InMemorySessionStore) GetSession(_ context.Context, sessionId string) (sessionModel.GradingSession, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	session, exists := m.sessions[sessionId]
	return session, exists
}

func (m *InMemorySessionStore) SaveSession(_ context.Context, session sessionModel.GradingSession) error {
	session.TouchedAt = time.Now()
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[session.Id] = session
	return nil
}

func (m *InMemorySessionStore) DeleteSession(_ context.Context, sessionId string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, sessionId)
}

// SweepExpired drops sessions untouched for longer than maxAge and returns
// how many were removed.
func (m *InMemorySessionStore) SweepExpired(maxAge time.Duration) int {
	cutoff := time.Now().Add(-maxAge)
	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for id, session := range m.sessions {
		if session.TouchedAt.Before(cutoff) {
			delete(m.sessions, id)
			removed++
		}
	}
	if removed > 0 {
		m.logger.Info("Swept expired sessions", "count", removed)
	}
	return removed
}

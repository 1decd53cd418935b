package lobby

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/vytor/chessroyale/internal/logger"
	"github.com/vytor/chessroyale/internal/metrics"
)

// Manager owns one Session per client. Sessions are never shared between
// clients.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session
	idle     time.Duration
	now      func() time.Time
}

func NewManager(idleTimeout time.Duration) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		idle:     idleTimeout,
		now:      time.Now,
	}
}

// Get returns the session for id, if it exists.
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	return s, ok
}

// Create starts a new session under a fresh id.
func (m *Manager) Create() *Session {
	s := newSession(uuid.NewString(), m.now)

	m.mu.Lock()
	m.sessions[s.ID] = s
	n := len(m.sessions)
	m.mu.Unlock()

	metrics.ActiveSessions.Set(float64(n))
	logger.Default().WithPrefix("lobby").Debug("session created: id=%s, active=%d", s.ID, n)
	return s
}

// GetOrCreate returns the session for id, or a new one when id is unknown.
// created reports whether a new session was made.
func (m *Manager) GetOrCreate(id string) (s *Session, created bool) {
	if id != "" {
		if s, ok := m.Get(id); ok {
			return s, false
		}
	}
	return m.Create(), true
}

func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Sweep drops sessions idle longer than the idle timeout and returns how
// many were removed.
func (m *Manager) Sweep() int {
	now := m.now()

	m.mu.Lock()
	removed := 0
	for id, s := range m.sessions {
		if s.idleSince(now) > m.idle {
			delete(m.sessions, id)
			removed++
		}
	}
	n := len(m.sessions)
	m.mu.Unlock()

	metrics.ActiveSessions.Set(float64(n))
	return removed
}

// Run sweeps idle sessions every interval until ctx is done.
func (m *Manager) Run(ctx context.Context, interval time.Duration) {
	log := logger.FromContext(ctx).WithPrefix("lobby")
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Debug("session sweeper stopped")
			return
		case <-ticker.C:
			if n := m.Sweep(); n > 0 {
				log.Info("swept %d idle sessions", n)
			}
		}
	}
}

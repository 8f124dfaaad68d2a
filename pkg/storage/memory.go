package storage

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/energyadvisor/energyadvisor/pkg/types"
	"github.com/levenlabs/go-lflag"
)

// MemoryProvider implements the Database interface with a process-local
// map. Sessions disappear on restart, matching the ephemeral-per-session
// data model.
type MemoryProvider struct {
	mu       sync.Mutex
	sessions map[string]types.Session
	ttl      time.Duration

	// now is swappable for expiry tests
	now func() time.Time
}

// configuredMemory sets up the in-memory provider. A zero TTL disables
// expiry.
func configuredMemory() *MemoryProvider {
	ttl := lflag.Duration("session-ttl", 0, "Expire sessions after this duration (e.g. 1h). 0 disables expiry.")

	m := &MemoryProvider{
		sessions: make(map[string]types.Session),
		now:      time.Now,
	}
	lflag.Do(func() {
		m.ttl = *ttl
	})
	return m
}

// NewMemoryProvider returns a provider with no expiry, for tests and the
// offline CLI.
func NewMemoryProvider() *MemoryProvider {
	return &MemoryProvider{
		sessions: make(map[string]types.Session),
		now:      time.Now,
	}
}

// expired reports whether a session is past its TTL. Callers hold mu.
func (m *MemoryProvider) expired(s types.Session) bool {
	return m.ttl > 0 && m.now().Sub(s.CreatedAt) > m.ttl
}

// purge drops expired sessions. Called lazily on writes so an idle process
// doesn't hold sessions forever. Callers hold mu.
func (m *MemoryProvider) purge() {
	for id, s := range m.sessions {
		if m.expired(s) {
			delete(m.sessions, id)
		}
	}
}

func (m *MemoryProvider) CreateSession(ctx context.Context, session types.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.purge()
	m.sessions[session.ID] = session
	return nil
}

func (m *MemoryProvider) GetSession(ctx context.Context, id string) (types.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok || m.expired(s) {
		return types.Session{}, ErrSessionNotFound
	}
	return s, nil
}

func (m *MemoryProvider) UpdateAppliances(ctx context.Context, id string, appliances []types.ApplianceRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok || m.expired(s) {
		return ErrSessionNotFound
	}
	s.Appliances = appliances
	m.sessions[id] = s
	return nil
}

func (m *MemoryProvider) UpdateBill(ctx context.Context, id string, bill types.BillRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok || m.expired(s) {
		return ErrSessionNotFound
	}
	s.Bill = &bill
	m.sessions[id] = s
	return nil
}

func (m *MemoryProvider) ListSessions(ctx context.Context) ([]types.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.purge()
	sessions := make([]types.Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		sessions = append(sessions, s)
	}
	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].CreatedAt.After(sessions[j].CreatedAt)
	})
	return sessions, nil
}

func (m *MemoryProvider) DeleteSession(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}

func (m *MemoryProvider) Close() error {
	return nil
}

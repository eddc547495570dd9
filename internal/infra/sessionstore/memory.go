package sessionstore

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/szekelyhub/transit-permit-service/internal/domain"
)

// MemoryStore keeps sessions in process memory. Used when Redis is not
// configured and in tests. Sessions are stored as marshalled JSON so no
// caller ever aliases another caller's record.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string][]byte)}
}

func (s *MemoryStore) Load(_ context.Context, id string) (*domain.Session, error) {
	s.mu.RLock()
	data, ok := s.sessions[id]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrSessionNotFound
	}

	var session domain.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("%w: Load - unmarshal session: %v", ErrInternal, err)
	}
	return &session, nil
}

func (s *MemoryStore) Save(_ context.Context, session *domain.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("%w: Save - marshal session: %v", ErrInternal, err)
	}

	s.mu.Lock()
	s.sessions[session.ID] = data
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
	return nil
}

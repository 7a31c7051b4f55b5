package session

import (
	"context"
	"sync"
	"time"

	"hoteldesk/models"
)

type memoryEntry struct {
	sess      *models.ConversationSession
	expiresAt time.Time
}

// MemoryStore keeps sessions in process memory. Used for tests and for
// running without Redis; sessions do not survive a restart.
type MemoryStore struct {
	mu    sync.RWMutex
	items map[string]memoryEntry
	ttl   time.Duration
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{items: make(map[string]memoryEntry), ttl: ttl}
}

// Get and Put copy the session on the way in and out, matching the JSON
// round-trip of the Redis store. Callers never alias the stored value, so a
// history read never races a turn being appended by another goroutine.
func (s *MemoryStore) Get(_ context.Context, id string) (*models.ConversationSession, error) {
	s.mu.RLock()
	entry, ok := s.items[id]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrUnknownSession
	}
	if time.Now().After(entry.expiresAt) {
		s.mu.Lock()
		delete(s.items, id)
		s.mu.Unlock()
		return nil, ErrUnknownSession
	}
	return cloneSession(entry.sess), nil
}

func (s *MemoryStore) Put(_ context.Context, sess *models.ConversationSession) error {
	s.mu.Lock()
	s.items[sess.SessionID] = memoryEntry{sess: cloneSession(sess), expiresAt: time.Now().Add(s.ttl)}
	s.mu.Unlock()
	return nil
}

func cloneSession(sess *models.ConversationSession) *models.ConversationSession {
	cp := *sess
	cp.Turns = append([]models.Turn(nil), sess.Turns...)
	cp.Criteria.Amenities = append([]string(nil), sess.Criteria.Amenities...)
	return &cp
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	delete(s.items, id)
	s.mu.Unlock()
	return nil
}

// PurgeExpired drops idle sessions past their TTL and returns how many were
// removed. main runs this on a ticker when the memory store is selected.
func (s *MemoryStore) PurgeExpired() int {
	now := time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, entry := range s.items {
		if now.After(entry.expiresAt) {
			delete(s.items, id)
			removed++
		}
	}
	return removed
}

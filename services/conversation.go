package services

import (
	"sync"

	"zulu-bot/models"
)

// ConversationStore keeps per-session message history. Implementations are
// append-only within a session, the handler is the only writer.
type ConversationStore interface {
	History(sessionID string) []models.Turn
	Append(sessionID string, turn models.Turn)
}

// MemoryStore is the in-process ConversationStore. State is volatile and
// lives for the process lifetime only.
type MemoryStore struct {
	mu            sync.RWMutex
	conversations map[string][]models.Turn
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		conversations: make(map[string][]models.Turn),
	}
}

// History returns a copy of the session's turns, oldest first.
func (s *MemoryStore) History(sessionID string) []models.Turn {
	s.mu.RLock()
	defer s.mu.RUnlock()

	turns := s.conversations[sessionID]
	out := make([]models.Turn, len(turns))
	copy(out, turns)
	return out
}

// Append adds a turn to the session, creating the conversation if absent.
func (s *MemoryStore) Append(sessionID string, turn models.Turn) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.conversations[sessionID] = append(s.conversations[sessionID], turn)
}

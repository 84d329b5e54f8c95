// Package memory is an in-process store for local runs and tests.
package memory

import (
	"bitbucket.org/sotavant/alexa-skill/internal/store"
	"context"
	"fmt"
	"sync"
)

var _ store.Store = (*Store)(nil)

type Store struct {
	mu         sync.RWMutex
	seq        int64
	recipients map[string]string
	messages   map[int64]store.Message
	inbox      map[string][]int64
}

func New() *Store {
	return &Store{
		recipients: make(map[string]string),
		messages:   make(map[int64]store.Message),
		inbox:      make(map[string][]int64),
	}
}

func (s *Store) FindRecipient(_ context.Context, username string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.recipients[username]
	if !ok {
		return "", fmt.Errorf("recipient %q: %w", username, store.ErrNotFound)
	}
	return id, nil
}

func (s *Store) RegisterRecipient(_ context.Context, username, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.recipients[username] = userID
	return nil
}

func (s *Store) ListMessages(_ context.Context, userID string) ([]store.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := s.inbox[userID]
	out := make([]store.Message, 0, len(ids))
	for _, id := range ids {
		out = append(out, s.messages[id])
	}
	return out, nil
}

func (s *Store) GetMessage(_ context.Context, id int64) (*store.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	msg, ok := s.messages[id]
	if !ok {
		return nil, fmt.Errorf("message %d: %w", id, store.ErrNotFound)
	}
	return &msg, nil
}

func (s *Store) SaveMessage(_ context.Context, userID string, msg store.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	msg.ID = s.seq
	s.messages[msg.ID] = msg
	s.inbox[userID] = append(s.inbox[userID], msg.ID)
	return nil
}

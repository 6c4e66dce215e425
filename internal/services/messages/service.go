package messages

import (
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"deaddrop/internal/domain"
)

// Service is the in-memory message store. It is the sole owner of stored
// messages; nothing mutates a message after insertion.
type Service struct {
	mu        sync.Mutex
	max       int
	maxBytes  int
	retention time.Duration
	now       func() time.Time
	messages  []domain.Message
}

// New returns a store holding at most max messages, each with a payload of
// at most maxPayloadBytes, kept no longer than retention.
func New(max, maxPayloadBytes int, retention time.Duration) *Service {
	return &Service{
		max:       max,
		maxBytes:  maxPayloadBytes,
		retention: retention,
		now:       time.Now,
	}
}

// NewID returns a store-unique message id: a time prefix for rough ordering
// plus a UUID so two messages created in the same instant cannot collide.
func NewID(t time.Time) string {
	return strconv.FormatInt(t.UnixNano(), 10) + "-" + uuid.NewString()
}

// Append validates and stores m, preserving arrival order, and returns the
// assigned id. The store is left untouched on any rejection.
func (s *Service) Append(m domain.Message) (string, error) {
	if !domain.ValidFrom(m.From) {
		return "", errors.Wrap(domain.ErrInvalidInput, "malformed sender")
	}
	if m.To != "" && !domain.ValidHash(m.To) {
		return "", errors.Wrap(domain.ErrInvalidInput, "malformed recipient hash")
	}
	if m.Payload == "" && m.File == nil {
		return "", errors.Wrap(domain.ErrInvalidInput, "empty message")
	}
	if len(m.Payload) > s.maxBytes {
		return "", errors.Wrap(domain.ErrInvalidInput, "payload exceeds size limit")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.messages) >= s.max {
		return "", errors.Wrap(domain.ErrCapacityExceeded, "message store full")
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = s.now()
	}
	if m.ID == "" {
		m.ID = NewID(m.CreatedAt)
	}
	s.messages = append(s.messages, m)
	return m.ID, nil
}

// ListForJournalist returns a copy of every stored message, oldest first.
func (s *Service) ListForJournalist() []domain.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// ListForUser returns the messages sent by or addressed to hash, in store
// order.
func (s *Service) ListForUser(hash string) []domain.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Message, 0)
	for _, m := range s.messages {
		if m.From == hash || m.To == hash {
			out = append(out, m)
		}
	}
	return out
}

// PurgeSender removes every message whose From equals hash and returns how
// many were dropped.
func (s *Service) PurgeSender(hash string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.messages[:0]
	removed := 0
	for _, m := range s.messages {
		if m.From == hash {
			removed++
			continue
		}
		kept = append(kept, m)
	}
	s.releaseTail(len(kept))
	s.messages = kept
	return removed
}

// SweepExpired evicts messages older than the retention horizon at now and
// returns how many were dropped.
func (s *Service) SweepExpired(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.messages[:0]
	removed := 0
	for _, m := range s.messages {
		if now.Sub(m.CreatedAt) > s.retention {
			removed++
			continue
		}
		kept = append(kept, m)
	}
	s.releaseTail(len(kept))
	s.messages = kept
	return removed
}

// releaseTail clears the slice entries past n so evicted payloads do not
// stay reachable through the backing array. Caller holds the lock.
func (s *Service) releaseTail(n int) {
	for i := n; i < len(s.messages); i++ {
		s.messages[i] = domain.Message{}
	}
}

// Len reports the number of stored messages.
func (s *Service) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.messages)
}

// Compile-time assertion that Service implements domain.MessageStore.
var _ domain.MessageStore = (*Service)(nil)

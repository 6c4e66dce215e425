package registry

import (
	"crypto/subtle"
	"sync"
	"time"

	"github.com/pkg/errors"

	"deaddrop/internal/domain"
)

// Service is the in-memory participant registry.
type Service struct {
	mu     sync.Mutex
	max    int
	secret string
	now    func() time.Time

	participants  map[string]*domain.Participant
	journalistKey string
}

// New returns a registry bounded to max participants. secret guards
// journalist key replacement once a key has been claimed.
func New(max int, secret string) *Service {
	return &Service{
		max:          max,
		secret:       secret,
		now:          time.Now,
		participants: make(map[string]*domain.Participant),
	}
}

// RegisterUser creates a participant record on first sight and refreshes
// LastActiveAt on every call after that. A new hash is refused when the
// registry is at capacity; re-registration of a known hash always succeeds.
// The current journalist key is returned so new participants can encrypt to
// it ("" when none is set).
func (s *Service) RegisterUser(hash string) (string, error) {
	if !domain.ValidHash(hash) {
		return "", errors.Wrap(domain.ErrInvalidInput, "malformed participant hash")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.participants[hash]
	if !ok {
		if len(s.participants) >= s.max {
			return "", errors.Wrap(domain.ErrCapacityExceeded, "participant registry full")
		}
		p = &domain.Participant{Hash: hash}
		s.participants[hash] = p
	}
	p.LastActiveAt = s.now()
	return s.journalistKey, nil
}

// RegisterJournalist stores publicKey as the journalist key. The first claim
// needs no secret; replacing an existing key requires the configured shared
// secret, compared in constant time. With no secret configured the key is
// claim-once: rotation is disabled entirely, never open to an empty match.
func (s *Service) RegisterJournalist(publicKey, secret string) error {
	if publicKey == "" {
		return errors.Wrap(domain.ErrInvalidInput, "empty journalist public key")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.journalistKey != "" {
		if s.secret == "" {
			return errors.Wrap(domain.ErrUnauthorized, "journalist key rotation disabled")
		}
		if subtle.ConstantTimeCompare([]byte(secret), []byte(s.secret)) != 1 {
			return errors.Wrap(domain.ErrUnauthorized, "journalist key already claimed")
		}
	}
	s.journalistKey = publicKey
	return nil
}

// JournalistKey returns the current journalist key, if any.
func (s *Service) JournalistKey() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.journalistKey, s.journalistKey != ""
}

// Forget removes the record for hash. No error if it was never registered.
func (s *Service) Forget(hash string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.participants, hash)
}

// Len reports the number of registered participants.
func (s *Service) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.participants)
}

// LastActiveAt returns when hash last registered, if it is known.
func (s *Service) LastActiveAt(hash string) (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.participants[hash]
	if !ok {
		return time.Time{}, false
	}
	return p.LastActiveAt, true
}

// Compile-time assertion that Service implements domain.Registry.
var _ domain.Registry = (*Service)(nil)

package admission

import (
	"sync"
	"time"

	"deaddrop/internal/domain"
)

// record is one client's counter for the current window.
type record struct {
	count   int
	resetAt time.Time
}

// Service is a fixed-window request counter keyed by client.
//
// The window is fixed rather than sliding, for O(1) memory and update cost
// per client. A client can burst up to twice the limit across a window edge;
// strict fairness is a non-goal here.
type Service struct {
	mu      sync.Mutex
	limit   int
	window  time.Duration
	now     func() time.Time
	records map[string]*record
}

// New returns an admission controller allowing limit requests per window.
func New(limit int, window time.Duration) *Service {
	return &Service{
		limit:   limit,
		window:  window,
		now:     time.Now,
		records: make(map[string]*record),
	}
}

// Admit records one request for clientKey. The first sighting of a key opens
// a fresh window; within a live window calls are allowed until the count
// exceeds the limit, after which every call is rejected until the window
// expires. A call after expiry resets the record as if first seen.
func (s *Service) Admit(clientKey string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	r, ok := s.records[clientKey]
	if !ok || now.After(r.resetAt) {
		s.records[clientKey] = &record{count: 1, resetAt: now.Add(s.window)}
		return nil
	}
	r.count++
	if r.count > s.limit {
		return domain.ErrTooManyRequests
	}
	return nil
}

// SweepExpired drops records whose window has already elapsed and returns
// how many were removed. Live windows are left alone.
func (s *Service) SweepExpired(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for k, r := range s.records {
		if now.After(r.resetAt) {
			delete(s.records, k)
			removed++
		}
	}
	return removed
}

// Compile-time assertion that Service implements domain.Admitter.
var _ domain.Admitter = (*Service)(nil)

package reassembly

import (
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"

	"deaddrop/internal/domain"
)

// chunkSet is one in-flight upload.
type chunkSet struct {
	fileName  string
	fileType  string
	declared  int64
	total     int
	chunks    map[int]string
	updatedAt time.Time
	completed bool
}

// Service reassembles chunked uploads.
type Service struct {
	mu         sync.Mutex
	maxChunk   int
	maxNameLen int
	staleAfter time.Duration
	grace      time.Duration
	now        func() time.Time
	sink       domain.MessageSink
	sets       map[string]*chunkSet
}

// New returns a reassembler emitting completed files into sink. Sets idle
// longer than staleAfter are eligible for sweeping; completed sets are
// dropped after grace.
func New(sink domain.MessageSink, maxChunkBytes, maxFileNameLen int, staleAfter, grace time.Duration) *Service {
	return &Service{
		maxChunk:   maxChunkBytes,
		maxNameLen: maxFileNameLen,
		staleAfter: staleAfter,
		grace:      grace,
		now:        time.Now,
		sink:       sink,
		sets:       make(map[string]*chunkSet),
	}
}

// Submit stores one chunk and reports progress as (received, total).
//
// The first chunk for a (sender, file name) key seeds the set with its
// declared metadata; later chunks are bounds-checked against that. A
// duplicate index overwrites silently. When every index 0..total-1 is
// present the chunks are joined in order, appended to the message store as
// one message with HasFiles set, and the set is scheduled for removal after
// the grace period. A chunk arriving for an already-completed set re-reports
// completion without emitting a second message.
func (s *Service) Submit(c domain.Chunk) (int, int, error) {
	if !domain.ValidHash(c.From) {
		return 0, 0, errors.Wrap(domain.ErrInvalidInput, "malformed sender hash")
	}
	if c.FileName == "" || len(c.FileName) > s.maxNameLen {
		return 0, 0, errors.Wrap(domain.ErrInvalidInput, "bad file name")
	}
	if len(c.Data) > s.maxChunk {
		return 0, 0, errors.Wrap(domain.ErrInvalidInput, "chunk exceeds size limit")
	}
	if c.Total < 1 {
		return 0, 0, errors.Wrap(domain.ErrInvalidInput, "bad chunk count")
	}
	if c.Index < 0 || c.Index >= c.Total {
		return 0, 0, errors.Wrap(domain.ErrInvalidInput, "chunk index out of range")
	}

	s.mu.Lock()
	key := setKey(c.From, c.FileName)
	set, ok := s.sets[key]
	if !ok {
		set = &chunkSet{
			fileName: c.FileName,
			fileType: c.FileType,
			declared: c.FileSize,
			total:    c.Total,
			chunks:   make(map[int]string, c.Total),
		}
		s.sets[key] = set
	}
	if set.completed {
		total := set.total
		s.mu.Unlock()
		return total, total, nil
	}
	// The first chunk's declared count is authoritative for the set.
	if c.Index >= set.total {
		s.mu.Unlock()
		return 0, 0, errors.Wrap(domain.ErrInvalidInput, "chunk index out of range")
	}

	set.chunks[c.Index] = c.Data // last write wins
	set.updatedAt = s.now()

	received, total := len(set.chunks), set.total
	if received < total {
		s.mu.Unlock()
		return received, total, nil
	}

	set.completed = true
	msg := s.assemble(c.From, set)
	s.mu.Unlock()

	// The store takes its own lock; append outside ours. On failure the
	// set reverts to pending so a retry of the final chunk can complete
	// the transfer for real instead of reporting a file that was never
	// stored.
	if _, err := s.sink.Append(msg); err != nil {
		s.mu.Lock()
		set.completed = false
		s.mu.Unlock()
		return received, total, err
	}
	time.AfterFunc(s.grace, func() { s.drop(key) })
	return received, total, nil
}

// assemble joins the set's chunks in index order into a file message.
// Caller holds the lock.
func (s *Service) assemble(from string, set *chunkSet) domain.Message {
	var b strings.Builder
	for i := 0; i < set.total; i++ {
		b.WriteString(set.chunks[i])
	}
	size := set.declared
	if size == 0 {
		size = int64(b.Len())
	}
	return domain.Message{
		From:      from,
		CreatedAt: s.now(),
		HasFiles:  true,
		File: &domain.FileBundle{
			FileName: set.fileName,
			FileType: set.fileType,
			FileSize: size,
			Content:  b.String(),
		},
	}
}

// DropSender discards every chunk set belonging to hash, completed or not.
func (s *Service) DropSender(hash string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prefix := hash + "/"
	for k := range s.sets {
		if strings.HasPrefix(k, prefix) {
			delete(s.sets, k)
		}
	}
}

// SweepStale evicts sets whose last update is older than the staleness
// threshold at now and returns how many were dropped.
func (s *Service) SweepStale(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for k, set := range s.sets {
		if now.Sub(set.updatedAt) > s.staleAfter {
			delete(s.sets, k)
			removed++
		}
	}
	return removed
}

// Pending reports the number of in-flight chunk sets.
func (s *Service) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sets)
}

func (s *Service) drop(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sets, key)
}

func setKey(from, fileName string) string { return from + "/" + fileName }

// Compile-time assertion that Service implements domain.Reassembler.
var _ domain.Reassembler = (*Service)(nil)

package sweeper

import (
	"context"
	"time"

	"go.uber.org/zap"

	"deaddrop/internal/domain"
)

// Service is the background retention sweeper.
type Service struct {
	interval time.Duration
	store    domain.MessageStore
	chunks   domain.Reassembler
	admitter domain.Admitter
	log      *zap.Logger
}

// New returns a sweeper over the three evictable structures.
func New(
	interval time.Duration,
	store domain.MessageStore,
	chunks domain.Reassembler,
	admitter domain.Admitter,
	log *zap.Logger,
) *Service {
	return &Service{
		interval: interval,
		store:    store,
		chunks:   chunks,
		admitter: admitter,
		log:      log,
	}
}

// Run sweeps on a fixed period until ctx is cancelled.
func (s *Service) Run(ctx context.Context) {
	t := time.NewTicker(s.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-t.C:
			s.SweepOnce(now)
		}
	}
}

// SweepOnce runs a single eviction pass at now.
func (s *Service) SweepOnce(now time.Time) {
	expired := s.store.SweepExpired(now)
	stale := s.chunks.SweepStale(now)
	windows := s.admitter.SweepExpired(now)

	if expired+stale+windows > 0 {
		s.log.Info("sweep complete",
			zap.Int("expiredMessages", expired),
			zap.Int("staleChunkSets", stale),
			zap.Int("expiredWindows", windows))
	}
}

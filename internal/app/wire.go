package app

import (
	"go.uber.org/zap"

	"deaddrop/internal/relay"
	"deaddrop/internal/services/admission"
	"deaddrop/internal/services/messages"
	"deaddrop/internal/services/reassembly"
	"deaddrop/internal/services/registry"
	"deaddrop/internal/services/sweeper"
)

// Wire bundles the built services for the daemon.
type Wire struct {
	Admitter *admission.Service
	Registry *registry.Service
	Store    *messages.Service
	Chunks   *reassembly.Service
	Sweeper  *sweeper.Service
	Server   *relay.Server
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config, log *zap.Logger) *Wire {
	l := cfg.Limits

	admitter := admission.New(l.RateLimit, l.RateWindow)
	reg := registry.New(l.MaxParticipants, cfg.JournalistSecret)
	store := messages.New(l.MaxMessages, l.MaxPayloadBytes, l.Retention)
	chunks := reassembly.New(store, l.MaxChunkBytes, l.MaxFileNameLen, l.ChunkStaleAfter, l.CompletedGrace)
	sweep := sweeper.New(l.SweepInterval, store, chunks, admitter, log)
	srv := relay.NewServer(admitter, reg, store, chunks, log)

	return &Wire{
		Admitter: admitter,
		Registry: reg,
		Store:    store,
		Chunks:   chunks,
		Sweeper:  sweep,
		Server:   srv,
	}
}

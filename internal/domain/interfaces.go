package domain

import (
	"context"
	"time"
)

// Admitter gates every inbound request with a per-client rate limit.
type Admitter interface {
	// Admit records one request for clientKey. It returns
	// ErrTooManyRequests once the client exceeds its window limit.
	Admit(clientKey string) error

	// SweepExpired drops rate records whose window has elapsed and
	// returns how many were removed.
	SweepExpired(now time.Time) int
}

// Registry tracks participant records and the single journalist key.
type Registry interface {
	// RegisterUser creates or refreshes the participant record for hash
	// and returns the current journalist key ("" when unset).
	RegisterUser(hash string) (journalistKey string, err error)

	// RegisterJournalist stores or replaces the journalist key.
	// Replacement requires the configured shared secret.
	RegisterJournalist(publicKey, secret string) error

	// Forget removes the participant record for hash. Idempotent.
	Forget(hash string)
}

// MessageStore owns the bounded, time-ordered message collection.
type MessageStore interface {
	// Append validates and stores m, returning its assigned id.
	Append(m Message) (id string, err error)

	// ListForJournalist returns every stored message, oldest first.
	ListForJournalist() []Message

	// ListForUser returns messages sent by or addressed to hash,
	// preserving store order.
	ListForUser(hash string) []Message

	// PurgeSender removes every message from hash and returns the count.
	PurgeSender(hash string) int

	// SweepExpired evicts messages past the retention horizon.
	SweepExpired(now time.Time) int
}

// MessageSink is the narrow store view the reassembler needs to emit a
// completed file message.
type MessageSink interface {
	Append(m Message) (id string, err error)
}

// Reassembler accumulates chunked uploads until they complete.
type Reassembler interface {
	// Submit stores one chunk and reports progress. When the final
	// distinct index arrives the finished file is appended to the message
	// store as a single message with HasFiles set.
	Submit(c Chunk) (received, total int, err error)

	// DropSender discards every in-flight chunk set belonging to hash.
	DropSender(hash string)

	// SweepStale evicts chunk sets not touched within the staleness
	// threshold.
	SweepStale(now time.Time) int
}

// RelayClient is how a CLI client talks to a relay server.
type RelayClient interface {
	RegisterUser(ctx context.Context, hash string) (journalistKey string, err error)
	RegisterJournalist(ctx context.Context, publicKey, secret string) error
	SendMessage(ctx context.Context, m Message) (id string, err error)
	SendChunk(ctx context.Context, c Chunk) (received, total int, err error)
	FetchMessages(ctx context.Context, userType, hash string) ([]Message, error)
	Nuke(ctx context.Context, hash string) error
	Health(ctx context.Context) error
}

// IdentityStore persists the local client identity.
type IdentityStore interface {
	Save(passphrase string, id Identity) error
	Load(passphrase string) (Identity, error)
}

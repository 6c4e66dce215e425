package domain

import "time"

// HashLength is the length of a participant identifier: 16 random bytes
// rendered as lowercase hex.
const HashLength = 32

// Limits is the relay's validation and retention policy. It is applied
// uniformly before any mutation; nothing enters a store that violates it.
type Limits struct {
	MaxMessages     int           // message store capacity
	MaxParticipants int           // participant registry capacity
	MaxPayloadBytes int           // per-message encrypted payload bound
	MaxChunkBytes   int           // per-chunk payload bound
	MaxFileNameLen  int           // file name length bound
	RateLimit       int           // requests allowed per admission window
	RateWindow      time.Duration // admission window length
	Retention       time.Duration // message retention horizon
	ChunkStaleAfter time.Duration // abandoned-upload staleness threshold
	CompletedGrace  time.Duration // how long a finished chunk set lingers
	SweepInterval   time.Duration // retention sweeper period
}

// DefaultLimits returns the stock policy.
func DefaultLimits() Limits {
	return Limits{
		MaxMessages:     1000,
		MaxParticipants: 500,
		MaxPayloadBytes: 100000,
		MaxChunkBytes:   100000,
		MaxFileNameLen:  255,
		RateLimit:       100,
		RateWindow:      time.Minute,
		Retention:       24 * time.Hour,
		ChunkStaleAfter: 30 * time.Minute,
		CompletedGrace:  10 * time.Second,
		SweepInterval:   time.Minute,
	}
}

// ValidHash reports whether s is a well-formed participant identifier:
// exactly HashLength lowercase hex characters.
func ValidHash(s string) bool {
	if len(s) != HashLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}

// ValidFrom reports whether s is acceptable as a message sender: a
// participant hash or the journalist role.
func ValidFrom(s string) bool {
	return s == JournalistFrom || ValidHash(s)
}

// Package messages holds the bounded, time-ordered in-memory message store.
//
// Messages are immutable once appended and are only ever removed by an
// explicit sender purge or by the retention sweeper. Eviction is periodic,
// not on read: a message may be returned up to one sweep interval past its
// nominal expiry. That staleness is accepted.
package messages

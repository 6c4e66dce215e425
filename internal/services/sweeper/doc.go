// Package sweeper runs the periodic eviction pass: expired messages, stale
// chunk sets and dead rate-limit windows. The three scans are independent
// and order-insensitive; each takes the owning service's own lock.
package sweeper

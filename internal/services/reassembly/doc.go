// Package reassembly accumulates file chunks keyed by (sender, file name)
// until a declared chunk count is reached, then hands the finished file to
// the message store as a single file-bearing message.
//
// Chunk sets are transient: abandoned uploads are evicted by the retention
// sweeper, and completed sets linger only for a short grace period so late
// duplicate chunks cannot resurrect a finished transfer.
package reassembly

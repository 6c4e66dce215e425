// Package registry tracks participant records and the single journalist key.
//
// Participants are known only by their 32-char hex hash. The journalist key
// is process-wide: zero or one value, replaceable only with the configured
// shared secret once set.
package registry

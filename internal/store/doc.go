// Package store persists the client's local identity on disk, encrypted
// under a passphrase. Nothing here runs on the relay server; the server keeps
// all state in memory by design.
package store

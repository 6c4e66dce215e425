package crypto

import "runtime"

// Zero overwrites b in place. Best effort: the aim is to reduce the chance
// of the compiler eliding the writes, not to guarantee no copy survives.
//
//go:noinline
func Zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
	// Ensure b is considered live until after the loop.
	runtime.KeepAlive(&b)
}

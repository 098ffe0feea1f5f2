// Package session caches the key store password for the lifetime of one
// process so that repeated signing does not prompt every time.
//
// The cached password is bound to the fingerprint of the key store it was
// verified against. A call with a different fingerprint drops the entry and
// prompts again, which covers the store being edited by another process
// between two signing calls.
//
// A Cache is created once per process (the root command owns it) and passed
// to whoever needs it. Every call runs in a single critical section: prompt,
// verification, and caching happen under the same lock, and nothing in this
// package calls back into the cache while holding it.
package session

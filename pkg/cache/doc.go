// Package cache provides a generic, thread-safe LRU cache with optional
// per-entry expiry.
//
// The scan service uses it to remember recently scanned payloads so a camera
// that reads the same code several times in a row creates one record.
//
// # Usage
//
//	recent := cache.NewLRUCache[string, time.Time](256, cache.WithTTL(30*time.Second))
//	if !recent.PutIfAbsent(key, time.Now()) {
//	    // seen within the last 30 seconds
//	}
//
// Get, Put, PutIfAbsent and Remove are O(1). Expired entries are dropped when
// they are next looked up and otherwise age out through LRU eviction.
package cache

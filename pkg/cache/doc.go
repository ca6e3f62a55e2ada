// Package cache provides a generic, thread-safe LRU (Least Recently Used) cache.
//
// The engine keeps compiled date/time converters here, keyed by pattern,
// locale, type and offset, because building a converter generates all of its
// pattern variants up front.
//
// # Usage
//
//	converters := cache.NewLRUCache[key, *datetime.Converter](128)
//
//	conv, hit, err := converters.GetOrLoad(k, func() (*datetime.Converter, error) {
//		return datetime.New(p, symbols)
//	})
//
// Get and Put mark an entry as recently used. When a Put exceeds the capacity
// the least recently used entry is evicted, and the callback set with
// SetEvictCallback runs for it. Stats reports hits, misses and size.
//
// All operations are O(1) and safe for concurrent use.
package cache

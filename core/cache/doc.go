// Package cache provides a thread-safe, generic LRU cache.
//
//	c := cache.NewLRUCache[string, *User](100)
//	c.Put("user:123", &User{ID: 123})
//	if u, found := c.Get("user:123"); found {
//		fmt.Println(u.ID)
//	}
//
// Eviction callbacks fire only when an item is pushed out for capacity:
//
//	c.SetEvictCallback(func(key string, u *User) {
//		log.Printf("evicted %s", key)
//	})
//
// The sentiment interpreter uses it to memoize verdicts for identical
// (text, context, sarcasm) requests within a process. Nothing is persisted.
//
// Get, Put and Remove are O(1); the implementation pairs a map with a
// doubly-linked list.
package cache

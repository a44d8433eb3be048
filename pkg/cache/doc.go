// Package cache provides a generic Cache interface with in-memory and Redis
// implementations, and a Loader that fills a cache on demand.
//
// It backs memoizing slugifiers: slugs are pure functions of their input,
// so a bounded LRU with no expiry is usually all that is needed.
//
// # In-Memory Cache
//
//	c := cache.NewMemory[string](
//	    cache.WithMaxEntries(50000),
//	)
//	defer c.Close()
//
// TTL semantics for Set:
//   - Positive duration: item expires after this duration
//   - Zero: use the configured default TTL (never, unless WithDefaultTTL is set)
//   - Negative: item never expires
//
// # Redis Cache
//
// Redis shares slugs between processes. Values are stored as plain strings
// under "{prefix}:{key}":
//
//	client := redis.NewClient(&redis.Options{Addr: "localhost:6379"})
//	c := cache.NewRedis(client,
//	    cache.WithPrefix("slugs"),
//	    cache.WithRedisDefaultTTL(time.Hour),
//	)
//
// Clear deletes only the keys under the prefix. Close does not close the
// client.
//
// # Loading
//
// A [Loader] computes missing values and deduplicates concurrent misses for
// the same key with singleflight:
//
//	l := cache.NewLoader[string](c, 0)
//	slug, err := l.Load(ctx, title, func() (string, error) {
//	    return slugify.Slugify(title)
//	})
//
// Errors returned by the callback are passed through and never cached.
//
// # Error Handling
//
//   - [ErrNotFound]: key does not exist or has expired
//   - [ErrClosed]: write on a closed cache
package cache

package cache

import "time"

// RedisOption configures the Redis cache.
type RedisOption func(*redisOptions)

type redisOptions struct {
	prefix     string
	defaultTTL time.Duration
}

func defaultRedisOptions() *redisOptions {
	return &redisOptions{
		prefix:     "slugify",
		defaultTTL: 24 * time.Hour,
	}
}

// WithRedisDefaultTTL sets the expiration used when Set is called with a
// zero TTL. A negative value keeps entries until Redis evicts them.
// Default: 24 hours.
func WithRedisDefaultTTL(d time.Duration) RedisOption {
	return func(o *redisOptions) {
		o.defaultTTL = d
	}
}

// WithPrefix sets the key namespace. Keys are stored as "{prefix}:{key}";
// an empty prefix stores keys as they are.
// Default: "slugify".
func WithPrefix(prefix string) RedisOption {
	return func(o *redisOptions) {
		o.prefix = prefix
	}
}

package galleria

import (
	"time"

	"go.uber.org/zap"
)

// Option configures the embedded client.
type Option func(*clientConfig)

type clientConfig struct {
	addrs     []string
	username  string
	password  string
	keyPrefix string

	cacheTTL         time.Duration
	defaultLimit     int
	maxLimit         int
	enrichWorkers    int
	comparableLimit  int
	imageTimeout     time.Duration
	readinessTimeout time.Duration

	logger *zap.Logger
}

// WithRedis sets the Redis addresses of the artwork store.
func WithRedis(addrs ...string) Option {
	return func(c *clientConfig) {
		c.addrs = addrs
	}
}

// WithAuth sets the store credentials.
func WithAuth(username, password string) Option {
	return func(c *clientConfig) {
		c.username = username
		c.password = password
	}
}

// WithCacheTTL overrides the result cache TTL (default 5 minutes).
func WithCacheTTL(ttl time.Duration) Option {
	return func(c *clientConfig) {
		c.cacheTTL = ttl
	}
}

// WithKeyPrefix moves all store keys to another namespace (default "galleria:").
func WithKeyPrefix(prefix string) Option {
	return func(c *clientConfig) {
		c.keyPrefix = prefix
	}
}

// WithDefaultLimit overrides the per-search result limit used when the
// caller passes limit <= 0.
func WithDefaultLimit(n int) Option {
	return func(c *clientConfig) {
		c.defaultLimit = n
	}
}

// WithMaxLimit overrides the hard cap on a caller-requested limit.
func WithMaxLimit(n int) Option {
	return func(c *clientConfig) {
		c.maxLimit = n
	}
}

// WithComparableLimit bounds the price baseline set fetched per artwork.
func WithComparableLimit(n int) Option {
	return func(c *clientConfig) {
		c.comparableLimit = n
	}
}

// WithEnrichWorkers sets the worker pool size for result enrichment.
func WithEnrichWorkers(n int) Option {
	return func(c *clientConfig) {
		c.enrichWorkers = n
	}
}

// WithImageFetchTimeout bounds image download during visual search.
func WithImageFetchTimeout(d time.Duration) Option {
	return func(c *clientConfig) {
		c.imageTimeout = d
	}
}

// WithReadinessTimeout bounds the initial wait for the store.
func WithReadinessTimeout(d time.Duration) Option {
	return func(c *clientConfig) {
		c.readinessTimeout = d
	}
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *clientConfig) {
		c.logger = l
	}
}

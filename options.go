package dirsearch

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/kailas-cloud/dirsearch/internal/config"
)

// Option configures the Engine and the Client.
type Option interface {
	apply(*engineConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*engineConfig)

func (f optionFunc) apply(c *engineConfig) { f(c) }

type engineConfig struct {
	monospace bool
	stages    []Stage

	driver    string // "valkey" or "redis"
	addrs     []string
	password  string
	keyPrefix string
	cacheTTL  time.Duration

	logger     *zap.Logger
	metricsReg prometheus.Registerer
}

func newEngineConfig(opts []Option) *engineConfig {
	cfg := &engineConfig{keyPrefix: config.DefaultKeyPrefix}
	for _, o := range opts {
		o.apply(cfg)
	}
	return cfg
}

// WithMonospace adds the Mathematical Monospace block to the normalization table.
func WithMonospace() Option {
	return optionFunc(func(c *engineConfig) {
		c.monospace = true
	})
}

// WithStrategies restricts the resolver to the given stages, evaluated in the
// given order. Unknown stages make New fail with ErrUnknownStage.
func WithStrategies(stages ...Stage) Option {
	return optionFunc(func(c *engineConfig) {
		c.stages = stages
	})
}

// WithValkey configures the client to connect to a Valkey instance.
func WithValkey(addr, password string) Option {
	return optionFunc(func(c *engineConfig) {
		c.driver = config.DriverValkey
		c.addrs = []string{addr}
		c.password = password
	})
}

// WithRedis configures the client to connect to a Redis instance.
func WithRedis(addr, password string) Option {
	return optionFunc(func(c *engineConfig) {
		c.driver = config.DriverRedis
		c.addrs = []string{addr}
		c.password = password
	})
}

// WithKeyPrefix sets the prefix of the snapshot keys. Default: "dirsearch:".
func WithKeyPrefix(prefix string) Option {
	return optionFunc(func(c *engineConfig) {
		c.keyPrefix = prefix
	})
}

// WithCacheTTL enables client-side caching of snapshot reads for ttl.
// Zero (default) reads from the server every time.
func WithCacheTTL(ttl time.Duration) Option {
	return optionFunc(func(c *engineConfig) {
		c.cacheTTL = ttl
	})
}

// WithLogger enables structured logging for client operations.
// Pass nil to disable (default).
func WithLogger(l *zap.Logger) Option {
	return optionFunc(func(c *engineConfig) {
		c.logger = l
	})
}

// WithPrometheus registers client metrics (operation counts and durations)
// on the given registerer. Pass nil to disable (default).
func WithPrometheus(reg prometheus.Registerer) Option {
	return optionFunc(func(c *engineConfig) {
		c.metricsReg = reg
	})
}

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/kailas-cloud/dirsearch/internal/domain/search/request"
)

// Supported database drivers. Both speak RESP and share one rueidis store.
const (
	DriverRedis  = "redis"
	DriverValkey = "valkey"
)

// DefaultKeyPrefix prefixes snapshot keys when storage.key_prefix is unset.
const DefaultKeyPrefix = "dirsearch:"

// Config holds the dirsearch API configuration.
type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	Search   SearchConfig   `yaml:"search"`
	Storage  StorageConfig  `yaml:"storage"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error (default: determined by env)
}

// AuthConfig holds API authentication settings.
type AuthConfig struct {
	APIKeys []string `yaml:"api_keys"`
}

// HTTPConfig holds HTTP server settings.
type HTTPConfig struct {
	Port            int `yaml:"port"`
	ReadTimeoutSec  int `yaml:"read_timeout_sec"`
	WriteTimeoutSec int `yaml:"write_timeout_sec"`
	ShutdownSec     int `yaml:"shutdown_timeout_sec"`
}

// DatabaseConfig holds snapshot store connection settings.
type DatabaseConfig struct {
	Driver           string   `yaml:"driver"` // valkey, redis (default: valkey)
	Addrs            []string `yaml:"addrs"`
	Username         string   `yaml:"username"`
	Password         string   `yaml:"password"`
	DB               int      `yaml:"db"`
	ReadinessTimeout int      `yaml:"readiness_timeout_sec"`
	CacheTTLSec      int      `yaml:"cache_ttl_sec"` // client-side cache; 0 disables
}

// SearchConfig holds query limits and normalization settings.
type SearchConfig struct {
	MaxQueryLength int  `yaml:"max_query_length"`
	DefaultLimit   int  `yaml:"default_limit"`
	MaxLimit       int  `yaml:"max_limit"`
	FoldMonospace  bool `yaml:"fold_monospace"`
}

// StorageConfig holds storage settings.
type StorageConfig struct {
	KeyPrefix string `yaml:"key_prefix"`
}

// Bounds converts the limits for request validation.
func (s SearchConfig) Bounds() request.Bounds {
	return request.Bounds{
		MaxQueryLength: s.MaxQueryLength,
		DefaultLimit:   s.DefaultLimit,
		MaxLimit:       s.MaxLimit,
	}
}

// CacheTTL returns the client-side cache TTL as a duration.
func (d DatabaseConfig) CacheTTL() time.Duration {
	return time.Duration(d.CacheTTLSec) * time.Second
}

// Load reads configuration from a YAML file by environment name (local, dev, prod).
func Load(env string) (Config, error) {
	configPath := findConfigPath(env)

	data, err := os.ReadFile(filepath.Clean(configPath))
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", configPath, err)
	}

	// Substitute env variables of the form ${VAR}
	data = expandEnvVars(data)

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics.
func MustLoad(env string) Config {
	cfg, err := Load(env)
	if err != nil {
		panic(err)
	}
	return cfg
}

// GetEnv returns the current environment from the ENV variable, defaulting to "local".
func GetEnv() string {
	if env := os.Getenv("ENV"); env != "" {
		return env
	}
	return "local"
}

// ApplyDefaults fills empty fields with default values.
func (c *Config) ApplyDefaults() {
	if c.HTTP.ReadTimeoutSec <= 0 {
		c.HTTP.ReadTimeoutSec = 10
	}
	if c.HTTP.WriteTimeoutSec <= 0 {
		c.HTTP.WriteTimeoutSec = 10
	}
	if c.HTTP.ShutdownSec <= 0 {
		c.HTTP.ShutdownSec = 10
	}
	if c.Database.Driver == "" {
		c.Database.Driver = DriverValkey
	}
	if c.Database.ReadinessTimeout <= 0 {
		c.Database.ReadinessTimeout = 10
	}
	if c.Search.MaxQueryLength <= 0 {
		c.Search.MaxQueryLength = request.MaxQueryLength
	}
	if c.Search.DefaultLimit <= 0 {
		c.Search.DefaultLimit = request.DefaultLimit
	}
	if c.Search.MaxLimit <= 0 {
		c.Search.MaxLimit = request.MaxLimit
	}
	if c.Storage.KeyPrefix == "" {
		c.Storage.KeyPrefix = DefaultKeyPrefix
	}
}

// Validate checks the configuration for correctness.
func (c *Config) Validate() error {
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("http.port must be between 1 and 65535, got %d", c.HTTP.Port)
	}
	switch c.Database.Driver {
	case DriverRedis, DriverValkey:
	default:
		return fmt.Errorf("database.driver must be %q or %q, got %q", DriverRedis, DriverValkey, c.Database.Driver)
	}
	if len(c.Database.Addrs) == 0 {
		return fmt.Errorf("database.addrs is required")
	}
	if c.Database.CacheTTLSec < 0 {
		return fmt.Errorf("database.cache_ttl_sec must not be negative, got %d", c.Database.CacheTTLSec)
	}
	if c.Search.DefaultLimit > c.Search.MaxLimit {
		return fmt.Errorf(
			"search.default_limit (%d) must not exceed search.max_limit (%d)",
			c.Search.DefaultLimit, c.Search.MaxLimit,
		)
	}
	return nil
}

// findConfigPath locates the config file.
func findConfigPath(env string) string {
	filename := fmt.Sprintf("%s.yaml", env)

	// 1. Check ./config/
	if path := filepath.Join("config", filename); fileExists(path) {
		return path
	}

	// 2. Check relative to the source file
	_, b, _, _ := runtime.Caller(0)
	projectRoot := filepath.Dir(filepath.Dir(filepath.Dir(b))) // internal/config -> project root
	if path := filepath.Join(projectRoot, "config", filename); fileExists(path) {
		return path
	}

	// 3. Fallback to ./config/
	return filepath.Join("config", filename)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// expandEnvVars replaces ${VAR} and ${VAR:-default} with environment variable values.
var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

func expandEnvVars(data []byte) []byte {
	return envVarRegex.ReplaceAllFunc(data, func(match []byte) []byte {
		expr := string(match[2 : len(match)-1]) // strip ${ and }
		varName, defaultVal, hasDefault := strings.Cut(expr, ":-")
		val := os.Getenv(varName)
		if val == "" && hasDefault {
			val = defaultVal
		}
		return []byte(val)
	})
}

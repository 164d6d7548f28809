package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func validConfig() Config {
	cfg := Config{
		HTTP:     HTTPConfig{Port: 8080},
		Database: DatabaseConfig{Addrs: []string{"localhost:6379"}},
	}
	cfg.ApplyDefaults()
	return cfg
}

func TestApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	if cfg.Database.Driver != DriverValkey {
		t.Errorf("expected default driver valkey, got %q", cfg.Database.Driver)
	}
	if cfg.Search.MaxQueryLength != 4096 || cfg.Search.DefaultLimit != 20 || cfg.Search.MaxLimit != 100 {
		t.Errorf("unexpected search defaults: %+v", cfg.Search)
	}
	if cfg.Storage.KeyPrefix != "dirsearch:" {
		t.Errorf("unexpected key prefix %q", cfg.Storage.KeyPrefix)
	}
	if cfg.HTTP.ShutdownSec != 10 || cfg.Database.ReadinessTimeout != 10 {
		t.Errorf("unexpected timeouts: %+v %+v", cfg.HTTP, cfg.Database)
	}
	if cfg.Search.FoldMonospace {
		t.Error("monospace folding must be opt-in")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"valid", func(_ *Config) {}, ""},
		{"bad port", func(c *Config) { c.HTTP.Port = 70000 }, "http.port must be between 1 and 65535, got 70000"},
		{"bad driver", func(c *Config) { c.Database.Driver = "memcached" },
			`database.driver must be "redis" or "valkey", got "memcached"`},
		{"no addrs", func(c *Config) { c.Database.Addrs = nil }, "database.addrs is required"},
		{"negative ttl", func(c *Config) { c.Database.CacheTTLSec = -1 }, "database.cache_ttl_sec must not be negative, got -1"},
		{"limit above max", func(c *Config) { c.Search.DefaultLimit = 200 },
			"search.default_limit (200) must not exceed search.max_limit (100)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || err.Error() != tt.wantErr {
				t.Errorf("unexpected error:\ngot:  %v\nwant: %q", err, tt.wantErr)
			}
		})
	}
}

func TestSearchConfig_Bounds(t *testing.T) {
	b := SearchConfig{MaxQueryLength: 100, DefaultLimit: 5, MaxLimit: 10}.Bounds()
	if b.MaxQueryLength != 100 || b.DefaultLimit != 5 || b.MaxLimit != 10 {
		t.Errorf("unexpected bounds: %+v", b)
	}
}

func TestDatabaseConfig_CacheTTL(t *testing.T) {
	if got := (DatabaseConfig{CacheTTLSec: 30}).CacheTTL(); got != 30*time.Second {
		t.Errorf("expected 30s, got %v", got)
	}
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("DIRSEARCH_TEST_ADDR", "valkey:6379")

	in := []byte("a: ${DIRSEARCH_TEST_ADDR}\nb: ${DIRSEARCH_TEST_UNSET:-fallback}\nc: ${DIRSEARCH_TEST_UNSET}\n")
	want := "a: valkey:6379\nb: fallback\nc: \n"
	if got := string(expandEnvVars(in)); got != want {
		t.Errorf("unexpected expansion:\ngot:  %q\nwant: %q", got, want)
	}
}

func TestLoad_FromConfigDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "config"), 0o755); err != nil {
		t.Fatal(err)
	}
	yml := `
http:
  port: ${DIRSEARCH_TEST_PORT:-9090}
database:
  driver: redis
  addrs: ["localhost:6379"]
  cache_ttl_sec: 15
search:
  fold_monospace: true
storage:
  key_prefix: "test:"
`
	if err := os.WriteFile(filepath.Join(dir, "config", "unittest.yaml"), []byte(yml), 0o600); err != nil {
		t.Fatal(err)
	}
	chdir(t, dir)

	cfg, err := Load("unittest")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTP.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.HTTP.Port)
	}
	if cfg.Database.Driver != DriverRedis || cfg.Database.CacheTTL() != 15*time.Second {
		t.Errorf("unexpected database config: %+v", cfg.Database)
	}
	if !cfg.Search.FoldMonospace || cfg.Search.DefaultLimit != 20 {
		t.Errorf("unexpected search config: %+v", cfg.Search)
	}
	if cfg.Storage.KeyPrefix != "test:" {
		t.Errorf("unexpected key prefix %q", cfg.Storage.KeyPrefix)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	chdir(t, t.TempDir())
	if _, err := Load("does-not-exist"); err == nil {
		t.Fatal("expected error for missing config")
	}
}

func TestGetEnv(t *testing.T) {
	t.Setenv("ENV", "")
	if got := GetEnv(); got != "local" {
		t.Errorf("expected local, got %q", got)
	}
	t.Setenv("ENV", "prod")
	if got := GetEnv(); got != "prod" {
		t.Errorf("expected prod, got %q", got)
	}
}

// chdir changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}

// Package config loads pipeline-setup.yaml and overlays environment variables.
package config

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultFile is looked up in the working directory when no path is given.
const DefaultFile = "pipeline-setup.yaml"

// Environment variables read by Load.
const (
	EnvDSN       = "PGDATABASE"
	EnvRedisAddr = "PIPELINE_SETUP_REDIS_ADDR"
	EnvStoreKey  = "PIPELINE_SETUP_STORE_KEY"
)

// Store backends.
const (
	BackendNone   = "none"
	BackendFile   = "file"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

// Default output paths.
const (
	DefaultPipelineOutput  = "local.config"
	DefaultDatabasesOutput = "db_selection.config"
	DefaultSlurmOutput     = "run_pipeline.sh"
	DefaultStorePath       = ".pipeline-setup/runs"
)

// Config is the full tool configuration.
type Config struct {
	Catalog         Catalog   `yaml:"catalog"`
	IgnoreDatabases []string  `yaml:"ignore_databases"`
	Templates       Artifacts `yaml:"templates"`
	Outputs         Artifacts `yaml:"outputs"`
	Store           Store     `yaml:"store"`
}

// Catalog selects where the database list comes from.
// File takes precedence over DSN.
type Catalog struct {
	DSN  string `yaml:"dsn"`
	File string `yaml:"file"`
}

// Artifacts holds one path per generated artifact.
type Artifacts struct {
	Pipeline  string `yaml:"pipeline"`
	Databases string `yaml:"databases"`
	Slurm     string `yaml:"slurm"`
}

// Store configures where answer sessions are recorded.
type Store struct {
	Backend       string        `yaml:"backend"`
	Path          string        `yaml:"path"`
	RedisAddr     string        `yaml:"redis_addr"`
	RedisPassword string        `yaml:"redis_password"`
	RedisDB       int           `yaml:"redis_db"`
	TTL           time.Duration `yaml:"ttl"`

	// EncryptionKey is a base64 AES-256 key. When set, recorded answers are
	// sealed before they reach the backend.
	EncryptionKey string   `yaml:"encryption_key"`
	FallbackKeys  []string `yaml:"fallback_keys"`
}

// Encrypted reports whether runs are sealed at rest.
func (s Store) Encrypted() bool {
	return s.EncryptionKey != ""
}

// Keys decodes the active and fallback encryption keys.
func (s Store) Keys() ([]byte, [][]byte, error) {
	active, err := decodeKey("store.encryption_key", s.EncryptionKey)
	if err != nil {
		return nil, nil, err
	}
	fallback := make([][]byte, 0, len(s.FallbackKeys))
	for i, k := range s.FallbackKeys {
		key, err := decodeKey(fmt.Sprintf("store.fallback_keys[%d]", i), k)
		if err != nil {
			return nil, nil, err
		}
		fallback = append(fallback, key)
	}
	return active, fallback, nil
}

func decodeKey(name, encoded string) ([]byte, error) {
	key, err := base64.StdEncoding.DecodeString(strings.TrimSpace(encoded))
	if err != nil {
		return nil, fmt.Errorf("%s is not valid base64: %w", name, err)
	}
	if len(key) != 32 {
		return nil, fmt.Errorf("%s must decode to 32 bytes, got %d", name, len(key))
	}
	return key, nil
}

// Default returns the configuration used when no file is present.
func Default() Config {
	var cfg Config
	cfg.applyDefaults()
	return cfg
}

// Load reads path, or DefaultFile when path is empty, then applies the
// environment and defaults. A missing DefaultFile is not an error.
func Load(path string) (Config, error) {
	return load(path, os.Getenv)
}

func load(path string, getenv func(string) string) (Config, error) {
	var cfg Config

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	case !explicit && errors.Is(err, fs.ErrNotExist):
		// no config file, env and defaults only
	default:
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg.applyEnv(getenv)
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(getenv func(string) string) {
	if c.Catalog.DSN == "" {
		c.Catalog.DSN = getenv(EnvDSN)
	}
	if v := getenv(EnvRedisAddr); v != "" {
		c.Store.RedisAddr = v
	}
	if v := getenv(EnvStoreKey); v != "" {
		c.Store.EncryptionKey = v
	}
}

func (c *Config) applyDefaults() {
	if c.Outputs.Pipeline == "" {
		c.Outputs.Pipeline = DefaultPipelineOutput
	}
	if c.Outputs.Databases == "" {
		c.Outputs.Databases = DefaultDatabasesOutput
	}
	if c.Outputs.Slurm == "" {
		c.Outputs.Slurm = DefaultSlurmOutput
	}
	c.Store.Backend = strings.ToLower(strings.TrimSpace(c.Store.Backend))
	if c.Store.Backend == "" {
		c.Store.Backend = BackendFile
	}
	if c.Store.Path == "" {
		c.Store.Path = DefaultStorePath
	}
}

// Validate checks values that cannot be defaulted.
func (c Config) Validate() error {
	switch c.Store.Backend {
	case BackendNone, BackendFile, BackendMemory:
	case BackendRedis:
		if c.Store.RedisAddr == "" {
			return fmt.Errorf("store.redis_addr is required for the redis backend (or set %s)", EnvRedisAddr)
		}
	default:
		return fmt.Errorf("unknown store.backend %q", c.Store.Backend)
	}
	if c.Store.TTL < 0 {
		return fmt.Errorf("store.ttl must not be negative")
	}
	if len(c.Store.FallbackKeys) > 0 && !c.Store.Encrypted() {
		return fmt.Errorf("store.fallback_keys requires store.encryption_key")
	}
	if c.Store.Encrypted() {
		if _, _, err := c.Store.Keys(); err != nil {
			return err
		}
	}
	return nil
}

package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/rnacentral/pipeline-setup/internal/catalog"
	"github.com/rnacentral/pipeline-setup/internal/config"
	"github.com/rnacentral/pipeline-setup/internal/logging"
	"github.com/rnacentral/pipeline-setup/pkg/adapters/file"
	"github.com/rnacentral/pipeline-setup/pkg/adapters/memory"
	"github.com/rnacentral/pipeline-setup/pkg/adapters/redis"
	"github.com/rnacentral/pipeline-setup/pkg/persistence/middleware"
	"github.com/rnacentral/pipeline-setup/pkg/ports"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	return config.Load(path)
}

func newLogger(cmd *cobra.Command) (*slog.Logger, error) {
	level := slog.LevelWarn
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		level = slog.LevelDebug
	}
	format, _ := cmd.Flags().GetString("log-format")
	return logging.New(logging.Options{Level: level, Format: format, Output: cmd.ErrOrStderr()})
}

// newCatalog picks the catalog file when one is configured, the database otherwise.
func newCatalog(cfg config.Config) ports.CatalogSource {
	if cfg.Catalog.File != "" {
		return catalog.NewFileSource(cfg.Catalog.File)
	}
	return catalog.NewPostgresSource(cfg.Catalog.DSN)
}

func ignoreSet(cfg config.Config) catalog.IgnoreSet {
	return catalog.DefaultIgnoreSet().With(cfg.IgnoreDatabases...)
}

// newStore returns nil when recording is disabled. The returned func releases
// any connection held by the store.
func newStore(cfg config.Store) (ports.AnswerStore, func() error, error) {
	store, closer, err := openBackend(cfg)
	if err != nil || store == nil {
		return store, closer, err
	}
	if !cfg.Encrypted() {
		return store, closer, nil
	}

	active, fallback, err := cfg.Keys()
	if err != nil {
		_ = closer()
		return nil, nil, err
	}
	encrypt, err := middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{
		ActiveKey:    active,
		FallbackKeys: fallback,
	})
	if err != nil {
		_ = closer()
		return nil, nil, err
	}
	return middleware.Chain(store, encrypt), closer, nil
}

func openBackend(cfg config.Store) (ports.AnswerStore, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Backend {
	case config.BackendNone:
		return nil, noop, nil
	case config.BackendFile:
		return file.New(cfg.Path), noop, nil
	case config.BackendMemory:
		return memory.NewStore(), noop, nil
	case config.BackendRedis:
		s := redis.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, redis.WithTTL(cfg.TTL))
		return s, s.Close, nil
	default:
		return nil, noop, fmt.Errorf("unknown store backend %q", cfg.Backend)
	}
}

func requireStore(cfg config.Store) (ports.AnswerStore, func() error, error) {
	store, closer, err := newStore(cfg)
	if err != nil {
		return nil, nil, err
	}
	if store == nil {
		return nil, nil, fmt.Errorf("run recording is disabled (store.backend: %s)", cfg.Backend)
	}
	return store, closer, nil
}

func stdoutIsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dashu-baba/architect-layout-solver/internal/config"
	"github.com/dashu-baba/architect-layout-solver/internal/server"
	"github.com/dashu-baba/architect-layout-solver/pkg/cache"
	"github.com/dashu-baba/architect-layout-solver/pkg/pipeline"
	"github.com/dashu-baba/architect-layout-solver/pkg/store"
)

// serveCommand creates the serve command for running the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr       string
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		Long: `Run the HTTP API server.

Exposes the solver over HTTP: POST /api/solve accepts a plan document and
returns the solved layout; solved layouts are stored and can be fetched or
re-rendered later.

Configuration (cache backend, MongoDB persistence, solver deadline) is read
from floorplan.toml; see --config.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), configPath, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")
	cmd.Flags().StringVar(&configPath, "config", "", "config file path (default: ~/.config/floorplan/floorplan.toml)")

	return cmd
}

// runServe wires cache, store, and pipeline from config and runs the server
// until the context is cancelled.
func (c *CLI) runServe(ctx context.Context, configPath, addrOverride string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if addrOverride != "" {
		cfg.Server.Addr = addrOverride
	}

	resultCache, err := c.newServerCache(ctx, cfg.Cache)
	if err != nil {
		return fmt.Errorf("initialize cache: %w", err)
	}

	layoutStore, err := c.newServerStore(ctx, cfg.Store)
	if err != nil {
		return err
	}
	defer layoutStore.Close(context.Background())

	runner := pipeline.NewRunner(resultCache, nil, c.Logger)
	defer runner.Close()

	srv := server.New(server.Options{
		Addr:     cfg.Server.Addr,
		Runner:   runner,
		Store:    layoutStore,
		Logger:   c.Logger,
		Deadline: cfg.Solver.Duration(),
	})

	return srv.Start(ctx)
}

// newServerCache builds the result cache selected by config.
func (c *CLI) newServerCache(ctx context.Context, cfg config.CacheConfig) (cache.Cache, error) {
	switch cfg.Backend {
	case config.CacheBackendNone:
		return cache.NewNullCache(), nil
	case config.CacheBackendRedis:
		c.Logger.Info("using redis cache", "addr", cfg.RedisAddr)
		return cache.NewRedisCache(ctx, cache.RedisConfig{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
	default:
		dir, err := cacheDir()
		if err != nil {
			return cache.NewNullCache(), nil
		}
		return cache.NewFileCache(dir)
	}
}

// newServerStore builds the layout store selected by config.
func (c *CLI) newServerStore(ctx context.Context, cfg config.StoreConfig) (store.Store, error) {
	if cfg.MongoURI == "" {
		c.Logger.Info("using in-memory layout store")
		return store.NewMemoryStore(), nil
	}

	c.Logger.Info("using mongodb layout store", "database", cfg.Database)
	return store.NewMongoStore(ctx, store.MongoConfig{
		URI:        cfg.MongoURI,
		Database:   cfg.Database,
		Collection: cfg.Collection,
	})
}

package dirsearch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kailas-cloud/dirsearch/internal/config"
	"github.com/kailas-cloud/dirsearch/internal/db"
	dbRedis "github.com/kailas-cloud/dirsearch/internal/db/redis"
	"github.com/kailas-cloud/dirsearch/internal/domain/search/request"
	"github.com/kailas-cloud/dirsearch/internal/domain/search/result"
	"github.com/kailas-cloud/dirsearch/internal/repository/snapshot"
	healthuc "github.com/kailas-cloud/dirsearch/internal/usecase/health"
	"github.com/kailas-cloud/dirsearch/internal/usecase/resolve"
	searchuc "github.com/kailas-cloud/dirsearch/internal/usecase/search"
)

const defaultReadinessTimeout = 10 * time.Second

// Internal interfaces, swapped in tests.
type searchUseCase interface {
	Search(ctx context.Context, req *request.Request) (result.Result, error)
}

type resolveUseCase interface {
	Resolve(ctx context.Context, segment string) (resolve.Outcome, error)
}

type snapshotWriter interface {
	SaveCatalog(ctx context.Context, entities []Entity) error
	SaveProfiles(ctx context.Context, profiles []Profile) error
}

type healthUseCase interface {
	Check(ctx context.Context) healthuc.Report
}

// Client serves searches and resolutions from snapshots kept in Valkey or Redis.
type Client struct {
	store     db.Store
	engine    *Engine
	searchSvc searchUseCase
	resolver  resolveUseCase
	snapshots snapshotWriter
	healthSvc healthUseCase
	obs       *observer
}

// Connect creates a Client and waits for the database.
// The provided context is used for the initial readiness check.
func Connect(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := newEngineConfig(opts)

	if len(cfg.addrs) == 0 {
		return nil, errors.New("dirsearch: database address required (use WithValkey or WithRedis)")
	}

	engine, err := newEngine(cfg)
	if err != nil {
		return nil, fmt.Errorf("dirsearch: %w", err)
	}

	store, err := createStore(cfg)
	if err != nil {
		return nil, err
	}

	if err := store.WaitForReady(ctx, defaultReadinessTimeout); err != nil {
		store.Close()
		return nil, fmt.Errorf("dirsearch: database not ready: %w", err)
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		store.Close()
		return nil, err
	}
	return wireClient(store, engine, cfg, obs), nil
}

func createStore(cfg *engineConfig) (db.Store, error) {
	switch cfg.driver {
	case config.DriverValkey, config.DriverRedis:
		s, err := dbRedis.NewStore(dbRedis.Config{
			Addrs:        cfg.addrs,
			Password:     cfg.password,
			DisableCache: cfg.cacheTTL <= 0,
		})
		if err != nil {
			return nil, fmt.Errorf("dirsearch: create %s store: %w", cfg.driver, err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("dirsearch: unknown driver %q", cfg.driver)
	}
}

func wireClient(store db.Store, engine *Engine, cfg *engineConfig, obs *observer) *Client {
	repo := snapshot.New(store, cfg.keyPrefix, cfg.cacheTTL)
	return &Client{
		store:     store,
		engine:    engine,
		searchSvc: searchuc.New(repo, engine.normalizer),
		resolver:  resolve.New(repo, engine.resolver),
		snapshots: repo,
		healthSvc: healthuc.New(store, repo),
		obs:       obs,
	}
}

// Close releases all resources.
func (c *Client) Close() {
	if c.store != nil {
		c.store.Close()
	}
}

// Engine returns the in-memory engine configured with the client's options.
func (c *Client) Engine() *Engine {
	return c.engine
}

// Ping checks database connectivity.
func (c *Client) Ping(ctx context.Context) (err error) {
	start := time.Now()
	defer func() { c.obs.observe("ping", start, err) }()

	if err = c.store.Ping(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// Healthy reports whether the database answers and both snapshots are loaded.
func (c *Client) Healthy(ctx context.Context) bool {
	return c.healthSvc.Check(ctx).Status == healthuc.Healthy
}

// Search runs q against the stored snapshots. limit <= 0 selects the default page size.
// A query longer than 4096 bytes fails with ErrInvalidQuery.
func (c *Client) Search(ctx context.Context, q string, limit int) (res SearchResult, err error) {
	start := time.Now()
	defer func() { c.obs.observe("search", start, err) }()

	req, err := request.New(q, limit, request.Bounds{})
	if err != nil {
		return SearchResult{}, fmt.Errorf("search: %w", err)
	}
	r, err := c.searchSvc.Search(ctx, &req)
	if err != nil {
		return SearchResult{}, fmt.Errorf("search: %w", err)
	}
	return searchFromResult(&r), nil
}

// Resolve maps a URL path segment to a stored profile. The error is reserved
// for storage failures; absence is a NotFound outcome.
func (c *Client) Resolve(ctx context.Context, segment string) (out Outcome, err error) {
	start := time.Now()
	defer func() { c.obs.observe("resolve", start, err) }()

	out, err = c.resolver.Resolve(ctx, segment)
	if err != nil {
		return nil, fmt.Errorf("resolve: %w", err)
	}
	return out, nil
}

// LoadSnapshots replaces the stored catalog and profile snapshots.
// Profiles are written first.
func (c *Client) LoadSnapshots(ctx context.Context, entities []Entity, profiles []Profile) (err error) {
	start := time.Now()
	defer func() { c.obs.observe("load_snapshots", start, err) }()

	if err = c.snapshots.SaveProfiles(ctx, profiles); err != nil {
		return fmt.Errorf("save profiles: %w", err)
	}
	if err = c.snapshots.SaveCatalog(ctx, entities); err != nil {
		return fmt.Errorf("save catalog: %w", err)
	}
	return nil
}

package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/dashu-baba/architect-layout-solver/pkg/cache"
	"github.com/dashu-baba/architect-layout-solver/pkg/plan"
	"github.com/dashu-baba/architect-layout-solver/pkg/render"
	"github.com/dashu-baba/architect-layout-solver/pkg/solver"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete validate → solve → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, doc plan.Plan, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	result := &Result{
		Artifacts: make(map[string][]byte),
	}
	result.Stats.RoomCount = len(doc.Rooms)

	// Stage 1: Solve
	solveStart := time.Now()
	sol, solveHit, err := r.SolveWithCacheInfo(ctx, doc, opts)
	if err != nil {
		return nil, err
	}
	result.Solution = sol
	result.Stats.SolveTime = time.Since(solveStart)
	result.CacheInfo.SolveHit = solveHit
	result.PlanHash = r.planHash(doc)

	r.Logger.Info("solved layout",
		"rooms", len(sol.PlacedRooms),
		"score", sol.TotalScore,
		"duration", result.Stats.SolveTime)

	// Stage 2: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, sol, doc, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// SolveWithCacheInfo solves the plan with caching and returns cache hit info.
// Only successful solutions are cached; NO_SOLUTION and TIMEOUT outcomes are
// recomputed on every call.
func (r *Runner) SolveWithCacheInfo(ctx context.Context, doc plan.Plan, opts Options) (plan.Solution, bool, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return plan.Solution{}, false, err
	}

	cacheKey := r.Keyer.SolveKey(r.planHash(doc), opts.SolveKeyOpts())

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			sol, err := plan.UnmarshalSolution(data)
			if err == nil {
				return sol, true, nil // Cache hit
			}
		}
	}

	solveCtx := ctx
	if opts.Deadline > 0 {
		var cancel context.CancelFunc
		solveCtx, cancel = context.WithTimeout(ctx, opts.Deadline)
		defer cancel()
	}

	layout, err := solver.SolveLayout(solveCtx, doc.Rooms, doc.Boundary.Width, doc.Boundary.Height)
	if err != nil {
		return plan.Solution{}, false, err
	}
	sol := plan.FromLayout(layout)

	// Cache the result
	if data, err := plan.MarshalSolution(sol); err == nil {
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLSolution)
	}

	return sol, false, nil // Cache miss
}

// Solve is a convenience wrapper that discards the cache hit info.
func (r *Runner) Solve(ctx context.Context, doc plan.Plan, opts Options) (plan.Solution, error) {
	sol, _, err := r.SolveWithCacheInfo(ctx, doc, opts)
	return sol, err
}

// RenderWithCacheInfo generates artifacts with caching and returns cache hit info.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, sol plan.Solution, doc plan.Plan, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, false, err
	}

	// Compute cache key from solution data
	solData, err := plan.MarshalSolution(sol)
	if err != nil {
		return nil, false, fmt.Errorf("serialize solution for cache key: %w", err)
	}
	solutionHash := cache.Hash(solData)

	// Try to get all formats from cache
	allCached := true
	artifacts := make(map[string][]byte)

	for _, format := range opts.Formats {
		cacheKey := r.Keyer.ArtifactKey(solutionHash, opts.ArtifactKeyOpts(format))
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			artifacts[format] = data
		} else {
			allCached = false
			break
		}
	}

	if allCached && len(artifacts) == len(opts.Formats) {
		return artifacts, true, nil // All artifacts from cache
	}

	// Render all formats
	rendered := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		data, err := render.Artifact(format, sol, doc, opts.RenderOptions())
		if err != nil {
			return nil, false, fmt.Errorf("render %s: %w", format, err)
		}
		rendered[format] = data
	}

	// Cache each format
	for format, data := range rendered {
		cacheKey := r.Keyer.ArtifactKey(solutionHash, opts.ArtifactKeyOpts(format))
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLArtifact)
	}

	return rendered, false, nil // Cache miss
}

// Render is a convenience wrapper that discards the cache hit info.
func (r *Runner) Render(ctx context.Context, sol plan.Solution, doc plan.Plan, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, sol, doc, opts)
	return artifacts, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// planHash returns the content hash of the plan's canonical encoding.
func (r *Runner) planHash(doc plan.Plan) string {
	data, _ := plan.Marshal(doc)
	return cache.Hash(data)
}

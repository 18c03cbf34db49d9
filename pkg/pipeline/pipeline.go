// Package pipeline provides the core solve pipeline for the layout solver.
//
// This package implements the validate → solve → render pipeline shared by
// the CLI and the HTTP API. Centralizing this logic keeps behaviour
// consistent across entry points and puts result caching in one place.
//
// # Architecture
//
// The pipeline consists of two cacheable stages:
//
//  1. Solve: run the constraint solver over the validated plan
//  2. Render: generate output artifacts (SVG, JSON, text, DOT, PNG)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{Formats: []string{"svg"}}
//	result, err := runner.Execute(ctx, doc, opts)
//	if err != nil {
//	    return err
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/dashu-baba/architect-layout-solver/pkg/cache"
	"github.com/dashu-baba/architect-layout-solver/pkg/plan"
	"github.com/dashu-baba/architect-layout-solver/pkg/render"
)

// DefaultFormat is the artifact produced when no formats are requested.
const DefaultFormat = render.FormatSVG

// Options contains all configuration for the solve pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Solve options
	Deadline time.Duration `json:"deadline,omitempty"` // cooperative solver deadline (0 = none)
	Refresh  bool          `json:"refresh,omitempty"`  // bypass the solve cache

	// Render options
	Formats   []string `json:"formats,omitempty"`
	Scale     float64  `json:"scale,omitempty"`      // SVG pixels per metre
	ShowScore bool     `json:"show_score,omitempty"` // include scores in rendered labels

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Solution is the solved layout in wire form.
	Solution plan.Solution

	// PlanHash is the content hash of the canonical plan encoding.
	PlanHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	RoomCount  int
	SolveTime  time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	SolveHit  bool // Whether the solution came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// ValidateAndSetDefaults checks the options and applies defaults.
// This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if len(o.Formats) == 0 {
		o.Formats = []string{DefaultFormat}
	}
	if err := render.ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// RenderOptions returns the render-stage options.
func (o *Options) RenderOptions() render.Options {
	return render.Options{
		Scale:     o.Scale,
		ShowScore: o.ShowScore,
	}
}

// SolveKeyOpts returns cache key options for the solve stage.
func (o *Options) SolveKeyOpts() cache.SolveKeyOpts {
	return cache.SolveKeyOpts{
		Deadline: o.Deadline,
	}
}

// ArtifactKeyOpts returns cache key options for one rendered format.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format:    format,
		ShowScore: o.ShowScore,
	}
}
